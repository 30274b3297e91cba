/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package buf

// ReadFmt reads one or more fixed-width scalars described by format,
// a string of Python-struct-style codes (b B h H i I q Q ? f d). It
// exists so the code generator can fold a run of consecutive
// fixed-width fields into a single call instead of one per field.
func (b *Buf) ReadFmt(format string) ([]interface{}, error) {
	out := make([]interface{}, 0, len(format))
	for _, r := range format {
		switch r {
		case 'b':
			v, err := b.ReadI8()
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		case 'B':
			v, err := b.ReadU8()
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		case 'h':
			v, err := b.ReadI16()
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		case 'H':
			v, err := b.ReadU16()
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		case 'i':
			v, err := b.ReadI32()
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		case 'I':
			v, err := b.ReadU32()
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		case 'q':
			v, err := b.ReadI64()
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		case 'Q':
			v, err := b.ReadU64()
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		case '?':
			v, err := b.ReadBool()
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		case 'f':
			v, err := b.ReadFloat32()
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		case 'd':
			v, err := b.ReadFloat64()
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		default:
			return nil, ErrUnknownFormat
		}
	}
	return out, nil
}

// WriteFmt appends len(format) scalars packed according to format.
// Values must be supplied in the Go type matching their code (int8 for
// 'b', uint8 for 'B', and so on).
func (b *Buf) WriteFmt(format string, vals ...interface{}) error {
	if len(vals) != len([]rune(format)) {
		return ErrUnknownFormat
	}
	for i, r := range format {
		switch r {
		case 'b':
			b.WriteI8(vals[i].(int8))
		case 'B':
			b.WriteU8(vals[i].(uint8))
		case 'h':
			b.WriteI16(vals[i].(int16))
		case 'H':
			b.WriteU16(vals[i].(uint16))
		case 'i':
			b.WriteI32(vals[i].(int32))
		case 'I':
			b.WriteU32(vals[i].(uint32))
		case 'q':
			b.WriteI64(vals[i].(int64))
		case 'Q':
			b.WriteU64(vals[i].(uint64))
		case '?':
			b.WriteBool(vals[i].(bool))
		case 'f':
			b.WriteFloat32(vals[i].(float32))
		case 'd':
			b.WriteFloat64(vals[i].(float64))
		default:
			return ErrUnknownFormat
		}
	}
	return nil
}

// BuiltinFmt maps a schema type name to its fixed-width format code, and
// reports ok=false for the non-fixed named types (vari32, vari64, uuid,
// str, bytes, angle, pos, entmeta, nbt, slot).
func BuiltinFmt(cls string) (code byte, ok bool) {
	switch cls {
	case "i8":
		return 'b', true
	case "u8":
		return 'B', true
	case "i16":
		return 'h', true
	case "u16":
		return 'H', true
	case "i32":
		return 'i', true
	case "u32":
		return 'I', true
	case "i64":
		return 'q', true
	case "u64":
		return 'Q', true
	case "bool":
		return '?', true
	case "float":
		return 'f', true
	case "double":
		return 'd', true
	default:
		return 0, false
	}
}
