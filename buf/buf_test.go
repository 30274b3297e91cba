/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package buf

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
)

func TestVarintRoundTrip(t *testing.T) {
	cases := []struct {
		v    int64
		bits int
		want []byte
	}{
		{0, 32, []byte{0x00}},
		{1, 32, []byte{0x01}},
		{2, 32, []byte{0x02}},
		{127, 32, []byte{0x7f}},
		{128, 32, []byte{0x80, 0x01}},
		{255, 32, []byte{0xff, 0x01}},
		{2147483647, 32, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
		{-1, 32, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
		{-2147483648, 32, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
	}
	for _, c := range cases {
		w := NewEmpty()
		if err := w.WriteVarInt(c.v, c.bits); err != nil {
			t.Fatalf("write %d: %v", c.v, err)
		}
		if !bytes.Equal(w.Bytes(), c.want) {
			t.Fatalf("encode %d: got % x want % x", c.v, w.Bytes(), c.want)
		}
		r := New(w.Bytes())
		got, err := r.ReadVarInt(c.bits)
		if err != nil {
			t.Fatalf("read %d: %v", c.v, err)
		}
		if got != c.v {
			t.Fatalf("round trip %d: got %d", c.v, got)
		}
	}
}

func TestVarintTooLong(t *testing.T) {
	b := New([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00})
	if _, err := b.ReadVarInt(32); err != ErrVarintTooLong {
		t.Fatalf("expected ErrVarintTooLong, got %v", err)
	}
}

func TestPositionRoundTrip(t *testing.T) {
	cases := [][3]int64{
		{97, 98, 99},
		{-1, -2, 99},
		{98, 99, -1},
	}
	for _, c := range cases {
		w := NewEmpty()
		w.WritePos(c[0], c[1], c[2])
		r := New(w.Bytes())
		x, y, z, err := r.ReadPos()
		if err != nil {
			t.Fatalf("read pos: %v", err)
		}
		if x != c[0] || y != c[1] || z != c[2] {
			t.Fatalf("pos round trip %v: got (%d,%d,%d)", c, x, y, z)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	w := NewEmpty()
	w.WriteStr("hello, mibomi")
	r := New(w.Bytes())
	s, err := r.ReadStr()
	if err != nil {
		t.Fatal(err)
	}
	if s != "hello, mibomi" {
		t.Fatalf("got %q", s)
	}
}

func TestUUIDRoundTrip(t *testing.T) {
	w := NewEmpty()
	var want uuid.UUID
	for i := range want {
		want[i] = byte(i)
	}
	w.WriteUUID(want)
	r := New(w.Bytes())
	got, err := r.ReadUUID()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestReadLeft(t *testing.T) {
	r := New([]byte{1, 2, 3, 4})
	if _, err := r.ReadU8(); err != nil {
		t.Fatal(err)
	}
	left := r.ReadLeft()
	if !bytes.Equal(left, []byte{2, 3, 4}) {
		t.Fatalf("got % x", left)
	}
	if r.Remaining() != 0 {
		t.Fatalf("expected buffer drained")
	}
}

func TestShortRead(t *testing.T) {
	r := New([]byte{0x01})
	if _, err := r.ReadU16(); err != ErrShortRead {
		t.Fatalf("expected ErrShortRead, got %v", err)
	}
}
