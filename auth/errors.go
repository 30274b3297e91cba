/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package auth

import "errors"

var (
	// ErrAuthFailed is returned when Mojang rejects a username/password pair.
	ErrAuthFailed error = errors.New("auth: invalid username or password")
	// ErrSessionJoinFailed describes a session join the server rejected.
	// SessionJoin does not return it: it reports a rejection as false
	// with a nil error.
	ErrSessionJoinFailed error = errors.New("auth: session join rejected")
	// ErrNoCredentials is returned by LoadCredentials when the file doesn't exist yet.
	ErrNoCredentials error = errors.New("auth: no cached credentials")
	// ErrMalformedCredentials is returned by LoadCredentials for a file that
	// doesn't have the three lines a Credentials dump always writes.
	ErrMalformedCredentials error = errors.New("auth: malformed credentials file")
)
