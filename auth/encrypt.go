/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"errors"
)

// ErrNotRSAKey is returned by ParsePublicKey when the DER blob decodes
// to some other key type; Mojang has only ever sent RSA keys here.
var ErrNotRSAKey = errors.New("auth: server public key is not RSA")

// ParsePublicKey decodes the DER-encoded SubjectPublicKeyInfo an
// EncryptionRequest packet carries.
func ParsePublicKey(der []byte) (*rsa.PublicKey, error) {
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, err
	}
	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, ErrNotRSAKey
	}
	return pub, nil
}

// GenerateSharedSecret produces a fresh 16-byte AES key for the
// encryption handshake.
func GenerateSharedSecret() ([]byte, error) {
	secret := make([]byte, 16)
	if _, err := rand.Read(secret); err != nil {
		return nil, err
	}
	return secret, nil
}

// EncryptPKCS1v15 encrypts data (the shared secret, or the verify token
// echoed back unchanged) under the server's RSA public key the way an
// EncryptionResponse packet requires.
func EncryptPKCS1v15(pub *rsa.PublicKey, data []byte) ([]byte, error) {
	return rsa.EncryptPKCS1v15(rand.Reader, pub, data)
}
