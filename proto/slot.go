/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package proto holds the hand-rolled wire types the schema DSL
// references by name but cannot itself describe — entmeta and slot —
// plus the struct types and Read/Encode functions mbm/codegen emits for
// every packet definition in schema/mibomi.mbm. The generated file is
// checked in rather than produced by a go:generate step so the module
// builds with nothing but `go build`.
package proto

import (
	"github.com/lonami/mibomi-go/buf"
	"github.com/lonami/mibomi-go/nbt"
)

// Slot is one inventory/container slot: either empty, or an item id,
// stack count, (legacy) damage value and an NBT compound of extra tag
// data.
type Slot struct {
	Present bool
	ItemID  int16
	Count   int8
	Damage  int16
	Tag     nbt.Tag
}

// ReadSlot decodes a Slot: a present flag, and only if true, the item
// id, stack count, damage value and a trailing NBT tag (TagEnd when the
// item carries no extra data).
func ReadSlot(b *buf.Buf) (Slot, error) {
	present, err := b.ReadBool()
	if err != nil || !present {
		return Slot{Present: present}, err
	}
	fields, err := b.ReadFmt("hbh")
	if err != nil {
		return Slot{}, err
	}
	tag, err := nbt.Read(b)
	if err != nil {
		return Slot{}, err
	}
	return Slot{
		Present: true,
		ItemID:  fields[0].(int16),
		Count:   fields[1].(int8),
		Damage:  fields[2].(int16),
		Tag:     tag,
	}, nil
}

// WriteSlot appends s to b in the format ReadSlot expects.
func (s Slot) WriteSlot(b *buf.Buf) {
	b.WriteBool(s.Present)
	if !s.Present {
		return
	}
	b.WriteFmt("hbh", s.ItemID, s.Count, s.Damage)
	// a zero-value Tag already has Kind == End, matching an item with no
	// extra NBT data.
	nbt.Write(b, s.Tag)
}
