/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package codegen

import "github.com/lonami/mibomi-go/buf"

// goType returns the Go type an ArgDefinition's Cls maps to, for fixed
// scalars and the fixed vocabulary of non-fixed named types. ok is false
// for a custom (schema-defined) class name, which the caller must
// resolve to the class's own generated struct type.
func goType(cls string) (typ string, ok bool) {
	if _, isFixed := buf.BuiltinFmt(cls); isFixed {
		return fixedGoType(cls), true
	}
	switch cls {
	case "vari32":
		return "int32", true
	case "vari64":
		return "int64", true
	case "uuid":
		return "uuid.UUID", true
	case "str":
		return "string", true
	case "bytes":
		return "[]byte", true
	case "angle":
		return "float64", true
	case "pos":
		return "buf.Position", true
	case "nbt":
		return "nbt.Tag", true
	case "entmeta":
		return "EntityMetadata", true
	case "slot":
		return "Slot", true
	default:
		return "", false
	}
}

func fixedGoType(cls string) string {
	switch cls {
	case "i8":
		return "int8"
	case "u8":
		return "uint8"
	case "i16":
		return "int16"
	case "u16":
		return "uint16"
	case "i32":
		return "int32"
	case "u32":
		return "uint32"
	case "i64":
		return "int64"
	case "u64":
		return "uint64"
	case "bool":
		return "bool"
	case "float":
		return "float32"
	case "double":
		return "float64"
	default:
		return ""
	}
}
