/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package auth

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCredentialsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")
	want := Credentials{
		AccessToken: "access-token-value",
		ClientToken: "client-token-value",
		ProfileID:   "0123456789abcdef0123456789abcdef",
	}
	if err := SaveCredentials(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := LoadCredentials(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLoadCredentialsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist")
	if _, err := LoadCredentials(path); err != ErrNoCredentials {
		t.Fatalf("got %v, want ErrNoCredentials", err)
	}
}

func TestLoadCredentialsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")
	if err := os.WriteFile(path, []byte("only-one-line\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCredentials(path); err != ErrMalformedCredentials {
		t.Fatalf("got %v, want ErrMalformedCredentials", err)
	}
}
