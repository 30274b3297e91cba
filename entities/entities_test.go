/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package entities

import "testing"

func TestFeedSpawnThenMove(t *testing.T) {
	e := New()
	e.FeedSpawn(1, 10, 64, -5)
	if err := e.FeedMove(1, 11, 65, -4); err != nil {
		t.Fatalf("move: %v", err)
	}
	ent, ok := e.Get(1)
	if !ok {
		t.Fatal("expected entity 1 to be known")
	}
	if ent.X != 11 || ent.Y != 65 || ent.Z != -4 {
		t.Fatalf("position = %+v, want (11, 65, -4)", ent)
	}
}

func TestFeedRelativeMove(t *testing.T) {
	e := New()
	e.FeedSpawn(2, 0, 0, 0)
	if err := e.FeedRelativeMove(2, 4096, -4096, 8192); err != nil {
		t.Fatalf("relative move: %v", err)
	}
	ent, _ := e.Get(2)
	if ent.X != 1 || ent.Y != -1 || ent.Z != 2 {
		t.Fatalf("position = %+v, want (1, -1, 2)", ent)
	}
}

func TestMoveUnknownEntity(t *testing.T) {
	e := New()
	if err := e.FeedMove(99, 0, 0, 0); err != ErrUnknownEntity {
		t.Fatalf("err = %v, want ErrUnknownEntity", err)
	}
	if err := e.FeedRelativeMove(99, 0, 0, 0); err != ErrUnknownEntity {
		t.Fatalf("err = %v, want ErrUnknownEntity", err)
	}
}
