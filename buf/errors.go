/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package buf

import "errors"

var (
	// ErrShortRead is returned when a read operation requires more bytes
	// than remain in the buffer.
	ErrShortRead = errors.New("buf: short read")

	// ErrVarintTooLong is returned when a varint continues past the byte
	// ceiling for its declared bit width (5 bytes for 32 bits, 10 for 64).
	ErrVarintTooLong = errors.New("buf: varint is too long")

	// ErrUtf8 is returned when a length-prefixed string is not valid UTF-8.
	ErrUtf8 = errors.New("buf: invalid utf-8 in string")

	// ErrUnknownFormat is returned when ReadFmt/WriteFmt encounters a format
	// rune that isn't one of the eleven fixed-width scalar codes.
	ErrUnknownFormat = errors.New("buf: unknown format rune")

	// ErrBadVarintBits is returned when ReadVarInt/WriteVarInt are asked for
	// a bit width other than 32 or 64.
	ErrBadVarintBits = errors.New("buf: varint bits must be 32 or 64")
)
