/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package nbt

import (
	"github.com/lonami/mibomi-go/buf"
)

// Read decodes one named tag: a kind byte, an i16-length-prefixed UTF-8
// name, and the kind's payload.
func Read(b *buf.Buf) (Tag, error) {
	kind, err := readKind(b)
	if err != nil {
		return Tag{}, err
	}
	if kind == End {
		return TagEnd(), nil
	}
	name, err := readName(b)
	if err != nil {
		return Tag{}, err
	}
	return readPayload(b, kind, name)
}

// Write encodes t as a named tag. Writing TagEnd() emits the lone 0x00
// sentinel byte with no name or payload.
func Write(b *buf.Buf, t Tag) error {
	b.WriteU8(uint8(t.Kind))
	if t.Kind == End {
		return nil
	}
	writeName(b, t.Name)
	return writePayload(b, t)
}

func readKind(b *buf.Buf) (Kind, error) {
	v, err := b.ReadU8()
	if err != nil {
		return 0, err
	}
	if v > uint8(LongArray) {
		return 0, ErrUnknownKind
	}
	return Kind(v), nil
}

func readName(b *buf.Buf) (string, error) {
	return readRawStr(b)
}

func writeName(b *buf.Buf, name string) {
	writeRawStr(b, name)
}

// readPayload reads the value for an already-consumed (kind, name) pair.
func readPayload(b *buf.Buf, kind Kind, name string) (Tag, error) {
	switch kind {
	case Byte:
		v, err := b.ReadI8()
		if err != nil {
			return Tag{}, err
		}
		return TagByte(name, v), nil
	case Short:
		v, err := b.ReadI16()
		if err != nil {
			return Tag{}, err
		}
		return TagShort(name, v), nil
	case Int:
		v, err := b.ReadI32()
		if err != nil {
			return Tag{}, err
		}
		return TagInt(name, v), nil
	case Long:
		v, err := b.ReadI64()
		if err != nil {
			return Tag{}, err
		}
		return TagLong(name, v), nil
	case Float:
		v, err := b.ReadFloat32()
		if err != nil {
			return Tag{}, err
		}
		return TagFloat(name, v), nil
	case Double:
		v, err := b.ReadFloat64()
		if err != nil {
			return Tag{}, err
		}
		return TagDouble(name, v), nil
	case ByteArray:
		n, err := b.ReadI32()
		if err != nil {
			return Tag{}, err
		}
		p, err := b.ReadN(int(n))
		if err != nil {
			return Tag{}, err
		}
		cp := make([]byte, len(p))
		copy(cp, p)
		return TagByteArray(name, cp), nil
	case String:
		s, err := readRawStr(b)
		if err != nil {
			return Tag{}, err
		}
		return TagString(name, s), nil
	case List:
		return readList(b, name)
	case Compound:
		return readCompound(b, name)
	case IntArray:
		n, err := b.ReadI32()
		if err != nil {
			return Tag{}, err
		}
		vals := make([]int32, n)
		for i := range vals {
			v, err := b.ReadI32()
			if err != nil {
				return Tag{}, err
			}
			vals[i] = v
		}
		return TagIntArray(name, vals), nil
	case LongArray:
		n, err := b.ReadI32()
		if err != nil {
			return Tag{}, err
		}
		vals := make([]int64, n)
		for i := range vals {
			v, err := b.ReadI64()
			if err != nil {
				return Tag{}, err
			}
			vals[i] = v
		}
		return TagLongArray(name, vals), nil
	default:
		return Tag{}, ErrUnknownKind
	}
}

// readRawStr reads the i16-length-prefixed UTF-8 string shared by names
// and TagString payloads.
func readRawStr(b *buf.Buf) (string, error) {
	n, err := b.ReadI16()
	if err != nil {
		return "", err
	}
	p, err := b.ReadN(int(n))
	if err != nil {
		return "", err
	}
	return string(p), nil
}

func writeRawStr(b *buf.Buf, s string) {
	b.WriteI16(int16(len(s)))
	b.WriteLeft([]byte(s))
}

func readList(b *buf.Buf, name string) (Tag, error) {
	elemKind, err := readKind(b)
	if err != nil {
		return Tag{}, err
	}
	n, err := b.ReadI32()
	if err != nil {
		return Tag{}, err
	}
	items := make([]Tag, n)
	for i := range items {
		item, err := readPayload(b, elemKind, "")
		if err != nil {
			return Tag{}, err
		}
		items[i] = item
	}
	return TagList(name, elemKind, items), nil
}

func readCompound(b *buf.Buf, name string) (Tag, error) {
	var children []Tag
	for {
		kind, err := readKind(b)
		if err != nil {
			return Tag{}, err
		}
		if kind == End {
			break
		}
		childName, err := readName(b)
		if err != nil {
			return Tag{}, err
		}
		child, err := readPayload(b, kind, childName)
		if err != nil {
			return Tag{}, err
		}
		children = append(children, child)
	}
	return TagCompound(name, children), nil
}

func writePayload(b *buf.Buf, t Tag) error {
	switch t.Kind {
	case Byte:
		b.WriteI8(t.byteVal)
	case Short:
		b.WriteI16(t.shortVal)
	case Int:
		b.WriteI32(t.intVal)
	case Long:
		b.WriteI64(t.longVal)
	case Float:
		b.WriteFloat32(t.floatVal)
	case Double:
		b.WriteFloat64(t.doubleVal)
	case ByteArray:
		b.WriteI32(int32(len(t.bytesVal)))
		b.WriteLeft(t.bytesVal)
	case String:
		writeRawStr(b, t.strVal)
	case List:
		b.WriteU8(uint8(t.listKind))
		b.WriteI32(int32(len(t.listVal)))
		for _, item := range t.listVal {
			if err := writePayload(b, item); err != nil {
				return err
			}
		}
	case Compound:
		for _, child := range t.compound {
			if err := Write(b, child); err != nil {
				return err
			}
		}
		b.WriteU8(uint8(End))
	case IntArray:
		b.WriteI32(int32(len(t.intArray)))
		for _, v := range t.intArray {
			b.WriteI32(v)
		}
	case LongArray:
		b.WriteI32(int32(len(t.longArray)))
		for _, v := range t.longArray {
			b.WriteI64(v)
		}
	default:
		return ErrUnknownKind
	}
	return nil
}
