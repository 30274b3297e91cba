/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package auth

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"testing"
)

func TestParsePublicKeyAndEncryptRoundTrip(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatal(err)
	}
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		t.Fatal(err)
	}

	pub, err := ParsePublicKey(der)
	if err != nil {
		t.Fatal(err)
	}

	secret, err := GenerateSharedSecret()
	if err != nil {
		t.Fatal(err)
	}
	if len(secret) != 16 {
		t.Fatalf("got %d-byte secret, want 16", len(secret))
	}

	encrypted, err := EncryptPKCS1v15(pub, secret)
	if err != nil {
		t.Fatal(err)
	}
	decrypted, err := rsa.DecryptPKCS1v15(rand.Reader, priv, encrypted)
	if err != nil {
		t.Fatal(err)
	}
	if string(decrypted) != string(secret) {
		t.Fatalf("round trip mismatch: got %x, want %x", decrypted, secret)
	}
}

func TestParsePublicKeyRejectsNonRSA(t *testing.T) {
	// A PKIX-encoded Ed25519 key decodes fine but isn't RSA.
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParsePublicKey(der); err != ErrNotRSAKey {
		t.Fatalf("got %v, want ErrNotRSAKey", err)
	}
}
