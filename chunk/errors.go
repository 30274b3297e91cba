/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package chunk

import (
	"errors"
	"fmt"
)

// ErrAbsentSection is returned by Chunk.Set when the target section is
// air (never sent by the server), which the wire format has no
// representation for writing into.
var ErrAbsentSection = errors.New("chunk: cannot write into an absent section")

// DecodeError reports a malformed Chunk Data payload: a palette length
// too short to hold every index, a non-empty cursor after the last
// section, or similar structural violations.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("chunk: decode: %s", e.Reason)
}
