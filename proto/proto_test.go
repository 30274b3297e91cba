/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package proto

import (
	"testing"

	"github.com/lonami/mibomi-go/buf"
	"github.com/lonami/mibomi-go/nbt"
)

func TestEmptySlotRoundTrip(t *testing.T) {
	b := buf.NewEmpty()
	Slot{Present: false}.WriteSlot(b)
	got, err := ReadSlot(buf.New(b.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if got.Present {
		t.Fatalf("expected absent slot, got %+v", got)
	}
}

func TestPresentSlotRoundTrip(t *testing.T) {
	want := Slot{Present: true, ItemID: 42, Count: 3, Damage: 0, Tag: nbt.TagCompound("", []nbt.Tag{nbt.TagByte("x", 1)})}
	b := buf.NewEmpty()
	want.WriteSlot(b)
	got, err := ReadSlot(buf.New(b.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if got.ItemID != want.ItemID || got.Count != want.Count || !got.Tag.Equal(want.Tag) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestEntityMetadataRoundTrip(t *testing.T) {
	want := EntityMetadata{Entries: []MetaEntry{
		{Index: 0, Type: MetaByte, Value: int8(0)},
		{Index: 6, Type: MetaFloat, Value: float32(20)},
		{Index: 7, Type: MetaVarInt, Value: int32(5)},
	}}
	b := buf.NewEmpty()
	if err := want.WriteEntityMetadata(b); err != nil {
		t.Fatal(err)
	}
	got, err := ReadEntityMetadata(buf.New(b.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Entries) != len(want.Entries) {
		t.Fatalf("got %d entries want %d", len(got.Entries), len(want.Entries))
	}
	for i := range want.Entries {
		if got.Entries[i].Index != want.Entries[i].Index || got.Entries[i].Value != want.Entries[i].Value {
			t.Fatalf("entry %d: got %+v want %+v", i, got.Entries[i], want.Entries[i])
		}
	}
}
