/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package proto

// EncryptionRequest/EncryptionResponse and ChunkData live in this file
// and chunkdata.go rather than schema/mibomi.mbm: their byte-array
// fields are varint-length-prefixed (vec_count_cls must be a
// fixed-width scalar), and ChunkData's section count comes from a
// bitmask, not a length field at all.

import "github.com/lonami/mibomi-go/buf"

// EncryptionRequest is sent by the server during login to begin the
// encryption handshake (login state, id 0x01).
type EncryptionRequest struct {
	ServerID    string
	PublicKey   []byte
	VerifyToken []byte
}

func ReadEncryptionRequest(b *buf.Buf) (EncryptionRequest, error) {
	var v EncryptionRequest
	serverID, err := b.ReadStr()
	if err != nil {
		return v, err
	}
	v.ServerID = serverID

	pubLen, err := b.ReadVarInt(32)
	if err != nil {
		return v, err
	}
	pub, err := b.ReadN(int(pubLen))
	if err != nil {
		return v, err
	}
	v.PublicKey = pub

	tokLen, err := b.ReadVarInt(32)
	if err != nil {
		return v, err
	}
	tok, err := b.ReadN(int(tokLen))
	if err != nil {
		return v, err
	}
	v.VerifyToken = tok
	return v, nil
}

// EncodeEncryptionRequest is the server-side encoder matching
// ReadEncryptionRequest; the client library never sends this, but a
// test server standing in for one needs it, and it keeps the pair
// symmetric the way every schema-generated packet's is.
func EncodeEncryptionRequest(serverID string, publicKey, verifyToken []byte) []byte {
	b := buf.NewEmpty()
	b.WriteStr(serverID)
	b.WriteVarInt(int64(len(publicKey)), 32)
	b.WriteLeft(publicKey)
	b.WriteVarInt(int64(len(verifyToken)), 32)
	b.WriteLeft(verifyToken)
	return b.Bytes()
}

// EncryptionResponse is the client's reply (login state, id 0x01):
// the shared secret and verify token, each RSA/PKCS#1v1.5-encrypted
// under the server's public key.
type EncryptionResponse struct {
	SharedSecret []byte
	VerifyToken  []byte
}

func ReadEncryptionResponse(b *buf.Buf) (EncryptionResponse, error) {
	var v EncryptionResponse
	secretLen, err := b.ReadVarInt(32)
	if err != nil {
		return v, err
	}
	secret, err := b.ReadN(int(secretLen))
	if err != nil {
		return v, err
	}
	v.SharedSecret = secret

	tokenLen, err := b.ReadVarInt(32)
	if err != nil {
		return v, err
	}
	token, err := b.ReadN(int(tokenLen))
	if err != nil {
		return v, err
	}
	v.VerifyToken = token
	return v, nil
}

func EncodeEncryptionResponse(sharedSecret, verifyToken []byte) []byte {
	b := buf.NewEmpty()
	b.WriteVarInt(int64(len(sharedSecret)), 32)
	b.WriteLeft(sharedSecret)
	b.WriteVarInt(int64(len(verifyToken)), 32)
	b.WriteLeft(verifyToken)
	return b.Bytes()
}
