/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package buf implements the random-access read/write byte cursor that
// backs every wire structure in the protocol: framing headers, packet
// payloads, NBT trees and chunk sections all move through a Buf.
//
// All multi-byte numeric operations are big-endian, matching the Java
// Edition wire format.
package buf

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Buf is a cursor over a byte slice. Reads advance an internal offset;
// writes append to the underlying slice. The same cursor can therefore
// be used to build a payload (writes only), to parse one (reads only),
// or to do both, as the transport layer does when it prepends a
// varint-length header to an already-built payload.
type Buf struct {
	data []byte
	pos  int
}

// New wraps data for reading. The returned Buf's write methods will
// append beyond the end of data rather than overwrite it.
func New(data []byte) *Buf {
	return &Buf{data: data}
}

// NewEmpty returns a Buf with no backing bytes, ready for writing.
func NewEmpty() *Buf {
	return &Buf{}
}

// Bytes returns the full backing slice, including anything already
// consumed by reads.
func (b *Buf) Bytes() []byte {
	return b.data
}

// Remaining returns the number of unread bytes.
func (b *Buf) Remaining() int {
	return len(b.data) - b.pos
}

// Pos returns the current read offset.
func (b *Buf) Pos() int {
	return b.pos
}

func (b *Buf) take(n int) ([]byte, error) {
	if n < 0 || b.Remaining() < n {
		return nil, ErrShortRead
	}
	out := b.data[b.pos : b.pos+n]
	b.pos += n
	return out, nil
}

func (b *Buf) put(p []byte) {
	b.data = append(b.data, p...)
}

// ReadN consumes and returns the next n bytes.
func (b *Buf) ReadN(n int) ([]byte, error) {
	return b.take(n)
}

// ReadLeft consumes and returns whatever bytes remain in the buffer.
func (b *Buf) ReadLeft() []byte {
	out := b.data[b.pos:]
	b.pos = len(b.data)
	return out
}

// WriteLeft appends raw bytes with no length prefix.
func (b *Buf) WriteLeft(p []byte) {
	b.put(p)
}

// Fixed-width scalar readers/writers. Format codes follow the Python
// struct convention named in the schema DSL: b/B int8/uint8, h/H
// int16/uint16, i/I int32/uint32, q/Q int64/uint64, ? bool, f/d
// float32/float64.

func (b *Buf) ReadI8() (int8, error) {
	p, err := b.take(1)
	if err != nil {
		return 0, err
	}
	return int8(p[0]), nil
}

func (b *Buf) WriteI8(v int8) { b.put([]byte{byte(v)}) }

func (b *Buf) ReadU8() (uint8, error) {
	p, err := b.take(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

func (b *Buf) WriteU8(v uint8) { b.put([]byte{v}) }

func (b *Buf) ReadBool() (bool, error) {
	v, err := b.ReadU8()
	return v != 0, err
}

func (b *Buf) WriteBool(v bool) {
	if v {
		b.WriteU8(1)
	} else {
		b.WriteU8(0)
	}
}

func (b *Buf) ReadI16() (int16, error) {
	p, err := b.take(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(p)), nil
}

func (b *Buf) WriteI16(v int16) {
	var p [2]byte
	binary.BigEndian.PutUint16(p[:], uint16(v))
	b.put(p[:])
}

func (b *Buf) ReadU16() (uint16, error) {
	p, err := b.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(p), nil
}

func (b *Buf) WriteU16(v uint16) {
	var p [2]byte
	binary.BigEndian.PutUint16(p[:], v)
	b.put(p[:])
}

func (b *Buf) ReadI32() (int32, error) {
	p, err := b.take(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(p)), nil
}

func (b *Buf) WriteI32(v int32) {
	var p [4]byte
	binary.BigEndian.PutUint32(p[:], uint32(v))
	b.put(p[:])
}

func (b *Buf) ReadU32() (uint32, error) {
	p, err := b.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(p), nil
}

func (b *Buf) WriteU32(v uint32) {
	var p [4]byte
	binary.BigEndian.PutUint32(p[:], v)
	b.put(p[:])
}

func (b *Buf) ReadI64() (int64, error) {
	p, err := b.take(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(p)), nil
}

func (b *Buf) WriteI64(v int64) {
	var p [8]byte
	binary.BigEndian.PutUint64(p[:], uint64(v))
	b.put(p[:])
}

func (b *Buf) ReadU64() (uint64, error) {
	p, err := b.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(p), nil
}

func (b *Buf) WriteU64(v uint64) {
	var p [8]byte
	binary.BigEndian.PutUint64(p[:], v)
	b.put(p[:])
}

func (b *Buf) ReadFloat32() (float32, error) {
	v, err := b.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (b *Buf) WriteFloat32(v float32) { b.WriteU32(math.Float32bits(v)) }

func (b *Buf) ReadFloat64() (float64, error) {
	v, err := b.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (b *Buf) WriteFloat64(v float64) { b.WriteU64(math.Float64bits(v)) }

// ReadStr reads a varint-32 length-prefixed UTF-8 string.
func (b *Buf) ReadStr() (string, error) {
	n, err := b.ReadVarInt(32)
	if err != nil {
		return "", err
	}
	p, err := b.take(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(p) {
		return "", ErrUtf8
	}
	return string(p), nil
}

// WriteStr writes a varint-32 length-prefixed UTF-8 string.
func (b *Buf) WriteStr(s string) {
	b.WriteVarInt(int64(len(s)), 32)
	b.put([]byte(s))
}

// ReadUUID reads 16 raw bytes as a UUID.
func (b *Buf) ReadUUID() (uuid.UUID, error) {
	p, err := b.take(16)
	if err != nil {
		return uuid.UUID{}, err
	}
	var u uuid.UUID
	copy(u[:], p)
	return u, nil
}

// WriteUUID writes 16 raw bytes.
func (b *Buf) WriteUUID(u uuid.UUID) {
	b.put(u[:])
}

// ReadAngle reads one unsigned byte representing 1/256 of a full turn
// and returns it as degrees in [0, 360).
func (b *Buf) ReadAngle() (float64, error) {
	v, err := b.ReadU8()
	if err != nil {
		return 0, err
	}
	return float64(v) * (360.0 / 256.0), nil
}

// WriteAngle writes degrees as one unsigned byte in units of 1/256 turn.
func (b *Buf) WriteAngle(degrees float64) {
	turns := math.Mod(degrees, 360)
	if turns < 0 {
		turns += 360
	}
	b.WriteU8(uint8(turns * (256.0 / 360.0)))
}

const (
	posXBits = 26
	posYBits = 12
	posZBits = 26

	posXMask = (int64(1) << posXBits) - 1
	posYMask = (int64(1) << posYBits) - 1
	posZMask = (int64(1) << posZBits) - 1
)

// ReadPos decodes the packed position format: x occupies bits 63-38, y
// bits 37-26, z bits 25-0, each sign-extended from its field width.
func (b *Buf) ReadPos() (x, y, z int64, err error) {
	v, err := b.ReadU64()
	if err != nil {
		return 0, 0, 0, err
	}
	x = signExtend(int64(v>>(posYBits+posZBits))&posXMask, posXBits)
	y = signExtend(int64(v>>posZBits)&posYMask, posYBits)
	z = signExtend(int64(v)&posZMask, posZBits)
	return
}

// WritePos packs (x, y, z) into the position format described in
// ReadPos. Out-of-range inputs are masked to their field width; the
// resulting wire bytes match what masking the signed value directly
// against 0x3ffffff/0xfff would produce for in-range inputs.
func (b *Buf) WritePos(x, y, z int64) {
	v := (uint64(x)&uint64(posXMask))<<(posYBits+posZBits) |
		(uint64(y)&uint64(posYMask))<<posZBits |
		(uint64(z) & uint64(posZMask))
	b.WriteU64(v)
}

func signExtend(v int64, bits uint) int64 {
	shift := 64 - bits
	return (v << shift) >> shift
}

// Position is the (x, y, z) triple packed by ReadPos/WritePos, offered as
// a single value so generated code can treat "pos" like any other
// single-field type.
type Position struct {
	X, Y, Z int64
}

func (b *Buf) ReadPosition() (Position, error) {
	x, y, z, err := b.ReadPos()
	return Position{X: x, Y: y, Z: z}, err
}

func (b *Buf) WritePosition(p Position) {
	b.WritePos(p.X, p.Y, p.Z)
}
