/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package auth

import (
	"crypto/sha1"
	"math/big"
)

// ComputeServerHash implements Mojang's "special" server hash: the
// SHA-1 digest of serverID, sharedSecret and the server's DER-encoded
// public key, concatenated in that order, reinterpreted as a signed
// big-endian integer and printed as lowercase hex with no leading
// zeros (a leading '-' for a negative digest). This is the serverId
// value SessionJoin and the server's own "has joined" check must agree
// on bit for bit.
func ComputeServerHash(serverID string, sharedSecret, publicKey []byte) string {
	h := sha1.New()
	h.Write([]byte(serverID))
	h.Write(sharedSecret)
	h.Write(publicKey)
	digest := h.Sum(nil)

	n := new(big.Int).SetBytes(digest)
	if digest[0]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(len(digest)*8)))
	}
	return n.Text(16)
}
