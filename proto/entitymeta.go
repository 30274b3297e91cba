/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package proto

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lonami/mibomi-go/buf"
)

// MetaType discriminates the value payload of one EntityMetadata entry.
type MetaType int32

const (
	MetaByte        MetaType = 0
	MetaVarInt      MetaType = 1
	MetaFloat       MetaType = 2
	MetaString      MetaType = 3
	MetaChat        MetaType = 4
	MetaSlot        MetaType = 5
	MetaBoolean     MetaType = 6
	MetaRotation    MetaType = 7
	MetaPosition    MetaType = 8
	MetaOptPosition MetaType = 9
	MetaDirection   MetaType = 10
	MetaOptUUID     MetaType = 11
	MetaBlockID     MetaType = 12
)

// metaEndIndex is the index byte terminating an entity metadata stream.
const metaEndIndex = 0xff

// MetaEntry is one (index, type, value) triple of an EntityMetadata
// array. Value holds the Go type readMetaValue produces for Type: int8,
// int32, float32, string, bool, buf.Position, Slot, [3]float32,
// *buf.Position, *uuid pointer, or nil for MetaOptPosition/MetaOptUUID
// when absent.
type MetaEntry struct {
	Index uint8
	Type  MetaType
	Value interface{}
}

// EntityMetadata is the ordered list of metadata entries a Entity
// Metadata packet (or an embedded entmeta field) carries.
type EntityMetadata struct {
	Entries []MetaEntry
}

// ReadEntityMetadata reads entries until the 0xff terminator index.
func ReadEntityMetadata(b *buf.Buf) (EntityMetadata, error) {
	var m EntityMetadata
	for {
		idx, err := b.ReadU8()
		if err != nil {
			return EntityMetadata{}, err
		}
		if idx == metaEndIndex {
			return m, nil
		}
		typ, err := b.ReadVarInt(32)
		if err != nil {
			return EntityMetadata{}, err
		}
		val, err := readMetaValue(b, MetaType(typ))
		if err != nil {
			return EntityMetadata{}, err
		}
		m.Entries = append(m.Entries, MetaEntry{Index: idx, Type: MetaType(typ), Value: val})
	}
}

func readMetaValue(b *buf.Buf, typ MetaType) (interface{}, error) {
	switch typ {
	case MetaByte:
		return b.ReadI8()
	case MetaVarInt:
		v, err := b.ReadVarInt(32)
		return int32(v), err
	case MetaFloat:
		return b.ReadFloat32()
	case MetaString:
		return b.ReadStr()
	case MetaChat:
		return b.ReadStr()
	case MetaSlot:
		return ReadSlot(b)
	case MetaBoolean:
		return b.ReadBool()
	case MetaRotation:
		fields, err := b.ReadFmt("fff")
		if err != nil {
			return nil, err
		}
		return [3]float32{fields[0].(float32), fields[1].(float32), fields[2].(float32)}, nil
	case MetaPosition:
		return b.ReadPosition()
	case MetaOptPosition:
		present, err := b.ReadBool()
		if err != nil || !present {
			return nil, err
		}
		pos, err := b.ReadPosition()
		return &pos, err
	case MetaDirection:
		v, err := b.ReadVarInt(32)
		return int32(v), err
	case MetaOptUUID:
		present, err := b.ReadBool()
		if err != nil || !present {
			return nil, err
		}
		u, err := b.ReadUUID()
		return &u, err
	case MetaBlockID:
		v, err := b.ReadVarInt(32)
		return int32(v), err
	default:
		return nil, fmt.Errorf("proto: unknown entity metadata type %d", typ)
	}
}

// WriteEntityMetadata appends every entry followed by the 0xff
// terminator.
func (m EntityMetadata) WriteEntityMetadata(b *buf.Buf) error {
	for _, e := range m.Entries {
		b.WriteU8(e.Index)
		b.WriteVarInt(int64(e.Type), 32)
		if err := writeMetaValue(b, e.Type, e.Value); err != nil {
			return err
		}
	}
	b.WriteU8(metaEndIndex)
	return nil
}

func writeMetaValue(b *buf.Buf, typ MetaType, val interface{}) error {
	switch typ {
	case MetaByte:
		b.WriteI8(val.(int8))
	case MetaVarInt, MetaDirection, MetaBlockID:
		b.WriteVarInt(int64(val.(int32)), 32)
	case MetaFloat:
		b.WriteFloat32(val.(float32))
	case MetaString, MetaChat:
		b.WriteStr(val.(string))
	case MetaSlot:
		val.(Slot).WriteSlot(b)
	case MetaBoolean:
		b.WriteBool(val.(bool))
	case MetaRotation:
		r := val.([3]float32)
		b.WriteFmt("fff", r[0], r[1], r[2])
	case MetaPosition:
		b.WritePosition(val.(buf.Position))
	case MetaOptPosition:
		if val == nil {
			b.WriteBool(false)
			return nil
		}
		b.WriteBool(true)
		b.WritePosition(*val.(*buf.Position))
	case MetaOptUUID:
		if val == nil {
			b.WriteBool(false)
			return nil
		}
		b.WriteBool(true)
		b.WriteUUID(*val.(*uuid.UUID))
	default:
		return fmt.Errorf("proto: unknown entity metadata type %d", typ)
	}
	return nil
}
