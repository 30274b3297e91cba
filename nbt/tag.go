/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package nbt implements the Named Binary Tag format used for chunk
// metadata, entity data and the per-slot "nbt" field of the slot type: a
// recursive, big-endian, tagged tree of 13 kinds.
package nbt

import "bytes"

// Kind discriminates the 13 tag payload shapes. The numeric values are
// part of the wire format; do not reorder them.
type Kind uint8

const (
	End       Kind = 0
	Byte      Kind = 1
	Short     Kind = 2
	Int       Kind = 3
	Long      Kind = 4
	Float     Kind = 5
	Double    Kind = 6
	ByteArray Kind = 7
	String    Kind = 8
	List      Kind = 9
	Compound  Kind = 10
	IntArray  Kind = 11
	LongArray Kind = 12
)

// Tag is a single node of an NBT tree. Exactly one of the typed fields
// below is meaningful, selected by Kind; the rest are zero. This mirrors
// the single-struct-with-discriminant shape used for entry metadata
// elsewhere in this module rather than one Go type per kind.
type Tag struct {
	Kind Kind
	Name string

	byteVal   int8
	shortVal  int16
	intVal    int32
	longVal   int64
	floatVal  float32
	doubleVal float64
	bytesVal  []byte
	strVal    string
	listKind  Kind
	listVal   []Tag
	compound  []Tag
	intArray  []int32
	longArray []int64
}

// TagEnd returns the unnamed End sentinel.
func TagEnd() Tag { return Tag{Kind: End} }

func TagByte(name string, v int8) Tag       { return Tag{Kind: Byte, Name: name, byteVal: v} }
func TagShort(name string, v int16) Tag     { return Tag{Kind: Short, Name: name, shortVal: v} }
func TagInt(name string, v int32) Tag       { return Tag{Kind: Int, Name: name, intVal: v} }
func TagLong(name string, v int64) Tag      { return Tag{Kind: Long, Name: name, longVal: v} }
func TagFloat(name string, v float32) Tag   { return Tag{Kind: Float, Name: name, floatVal: v} }
func TagDouble(name string, v float64) Tag  { return Tag{Kind: Double, Name: name, doubleVal: v} }
func TagByteArray(name string, v []byte) Tag {
	return Tag{Kind: ByteArray, Name: name, bytesVal: v}
}
func TagString(name, v string) Tag { return Tag{Kind: String, Name: name, strVal: v} }

// TagList builds a List tag. elemKind is End when items is empty, per
// the wire rule that an empty list writes element-kind End and length 0.
func TagList(name string, elemKind Kind, items []Tag) Tag {
	if len(items) == 0 {
		elemKind = End
	}
	return Tag{Kind: List, Name: name, listKind: elemKind, listVal: items}
}

func TagCompound(name string, children []Tag) Tag {
	return Tag{Kind: Compound, Name: name, compound: children}
}

func TagIntArray(name string, v []int32) Tag {
	return Tag{Kind: IntArray, Name: name, intArray: v}
}

func TagLongArray(name string, v []int64) Tag {
	return Tag{Kind: LongArray, Name: name, longArray: v}
}

func (t Tag) AsByte() int8         { return t.byteVal }
func (t Tag) AsShort() int16       { return t.shortVal }
func (t Tag) AsInt() int32         { return t.intVal }
func (t Tag) AsLong() int64        { return t.longVal }
func (t Tag) AsFloat() float32     { return t.floatVal }
func (t Tag) AsDouble() float64    { return t.doubleVal }
func (t Tag) AsByteArray() []byte  { return t.bytesVal }
func (t Tag) AsString() string     { return t.strVal }
func (t Tag) ListElemKind() Kind   { return t.listKind }
func (t Tag) AsList() []Tag        { return t.listVal }
func (t Tag) AsCompound() []Tag    { return t.compound }
func (t Tag) AsIntArray() []int32  { return t.intArray }
func (t Tag) AsLongArray() []int64 { return t.longArray }

// Child looks up a named tag inside a Compound. It returns ErrNotCompound
// if t isn't one, and ErrNoSuchChild if no child matches name.
func (t Tag) Child(name string) (Tag, error) {
	if t.Kind != Compound {
		return Tag{}, ErrNotCompound
	}
	for _, c := range t.compound {
		if c.Name == name {
			return c, nil
		}
	}
	return Tag{}, ErrNoSuchChild
}

// Equal reports whether t and other are structurally identical: same
// kind, name and value, recursively for List/Compound.
func (t Tag) Equal(other Tag) bool {
	if t.Kind != other.Kind || t.Name != other.Name {
		return false
	}
	switch t.Kind {
	case End:
		return true
	case Byte:
		return t.byteVal == other.byteVal
	case Short:
		return t.shortVal == other.shortVal
	case Int:
		return t.intVal == other.intVal
	case Long:
		return t.longVal == other.longVal
	case Float:
		return t.floatVal == other.floatVal
	case Double:
		return t.doubleVal == other.doubleVal
	case ByteArray:
		return bytes.Equal(t.bytesVal, other.bytesVal)
	case String:
		return t.strVal == other.strVal
	case List:
		if t.listKind != other.listKind || len(t.listVal) != len(other.listVal) {
			return false
		}
		for i := range t.listVal {
			if !t.listVal[i].Equal(other.listVal[i]) {
				return false
			}
		}
		return true
	case Compound:
		if len(t.compound) != len(other.compound) {
			return false
		}
		for i := range t.compound {
			if !t.compound[i].Equal(other.compound[i]) {
				return false
			}
		}
		return true
	case IntArray:
		if len(t.intArray) != len(other.intArray) {
			return false
		}
		for i := range t.intArray {
			if t.intArray[i] != other.intArray[i] {
				return false
			}
		}
		return true
	case LongArray:
		if len(t.longArray) != len(other.longArray) {
			return false
		}
		for i := range t.longArray {
			if t.longArray[i] != other.longArray[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}
