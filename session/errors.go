/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package session

import "fmt"

// ProtocolError reports a packet that's well-framed but doesn't belong
// where it appeared: an unexpected id in the login sequence. Malformed
// slot, entity-metadata and NBT payloads are reported by the decoding
// packages' own errors, not by ProtocolError.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("session: protocol: %s", e.Reason)
}

// AuthFailed reports that Mojang rejected the login credentials, or
// that session_join didn't answer with its expected HTTP 204.
type AuthFailed struct {
	Reason string
}

func (e *AuthFailed) Error() string {
	return fmt.Sprintf("session: auth failed: %s", e.Reason)
}
