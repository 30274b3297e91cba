/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package world

import "testing"

func TestFloorDivModMatchesPythonDivmod(t *testing.T) {
	cases := []struct{ a, b, q, r int32 }{
		{149, 16, 9, 5},
		{-13, 16, -1, 3},
		{-16, 16, -1, 0},
		{0, 16, 0, 0},
		{15, 16, 0, 15},
	}
	for _, c := range cases {
		q, r := floorDivMod(c.a, c.b)
		if q != c.q || r != c.r {
			t.Errorf("floorDivMod(%d, %d) = (%d, %d), want (%d, %d)", c.a, c.b, q, r, c.q, c.r)
		}
	}
}

func TestAtReturnsZeroForUnknownChunk(t *testing.T) {
	w := New()
	if got := w.At(149, 64, -13); got != 0 {
		t.Fatalf("At = %d, want 0", got)
	}
}

func TestSetRejectsUnknownChunk(t *testing.T) {
	w := New()
	if err := w.Set(0, 64, 0, 1); err != ErrUnknownChunk {
		t.Fatalf("err = %v, want ErrUnknownChunk", err)
	}
}
