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
	"strings"
)

// Credentials is the small bit of state worth keeping between runs so a
// bot doesn't have to re-authenticate with Mojang (and mint a fresh
// client token) every time it starts.
type Credentials struct {
	AccessToken string
	ClientToken string
	ProfileID   string
}

// SaveCredentials writes c to path as three newline-separated lines, in
// AccessToken/ClientToken/ProfileID order.
func SaveCredentials(path string, c Credentials) error {
	data := strings.Join([]string{c.AccessToken, c.ClientToken, c.ProfileID}, "\n") + "\n"
	return os.WriteFile(path, []byte(data), 0600)
}

// LoadCredentials reads back what SaveCredentials wrote. It returns
// ErrNoCredentials if path doesn't exist yet, and ErrMalformedCredentials
// if it exists but isn't the three lines this package ever writes.
func LoadCredentials(path string) (Credentials, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Credentials{}, ErrNoCredentials
	} else if err != nil {
		return Credentials{}, err
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		return Credentials{}, ErrMalformedCredentials
	}
	return Credentials{
		AccessToken: lines[0],
		ClientToken: lines[1],
		ProfileID:   lines[2],
	}, nil
}
