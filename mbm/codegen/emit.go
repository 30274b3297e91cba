/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package codegen turns a parsed mbm.Definition into Go source: a struct
// type, an inbound Read constructor, and (where the definition allows
// it) an outbound Encode function. The grouping optimization folds runs
// of fixed-width fields into a single buf.ReadFmt/WriteFmt call, the way
// the schema's reference implementation folds them into one struct.unpack.
package codegen

import (
	"fmt"
	"strings"

	"github.com/lonami/mibomi-go/buf"
	"github.com/lonami/mibomi-go/mbm"
)

type emitter struct {
	buf    strings.Builder
	indent int
	counts map[string]int
}

// tmpName returns base itself the first time it's requested for this
// GenerateDefinition call, and base suffixed by an occurrence count on
// every later call. A definition with only one read of a given shape
// (the common case) keeps the same short name codegen has always used;
// a definition with two or more at the same block scope (e.g. two
// non-fixed scalar fields in a row) gets distinct identifiers so the
// emitted := doesn't redeclare the same target twice.
func (e *emitter) tmpName(base string) string {
	if e.counts == nil {
		e.counts = make(map[string]int)
	}
	n := e.counts[base]
	e.counts[base] = n + 1
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s%d", base, n)
}

func (e *emitter) line(format string, args ...interface{}) {
	e.buf.WriteString(strings.Repeat("\t", e.indent))
	fmt.Fprintf(&e.buf, format, args...)
	e.buf.WriteByte('\n')
}

func (e *emitter) blank() { e.buf.WriteByte('\n') }

// item is one element of a collapsed argument sequence: either a run of
// fixed-width ArgDefinitions sharing one buf.ReadFmt/WriteFmt call, or a
// single Arg handled on its own (vector, optional, non-fixed type,
// Condition, ConditionDisable).
type item struct {
	group  []mbm.ArgDefinition
	single mbm.Arg
}

// collapseArgs mirrors the reference generator's grouping pass:
// references are treated as their underlying definition for collapsing
// eligibility, and a definition that is itself referenced elsewhere is
// skipped at its declaration site (its read/write happens where the
// reference occurs instead).
func collapseArgs(args []mbm.Arg) []item {
	var items []item
	var group []mbm.ArgDefinition

	flush := func() {
		if len(group) > 0 {
			items = append(items, item{group: group})
			group = nil
		}
	}

	for _, arg := range args {
		resolved := arg
		if ref, ok := arg.(mbm.ArgReference); ok {
			resolved = args[ref.RefIndex].(mbm.ArgDefinition)
		}

		if ad, ok := arg.(mbm.ArgDefinition); ok && ad.Referenced {
			continue
		}

		if ad, ok := resolved.(mbm.ArgDefinition); ok &&
			ad.BuiltinFmt != 0 && !ad.Optional && ad.VecCountCls == "" {
			group = append(group, ad)
			continue
		}

		flush()
		items = append(items, item{single: arg})
	}
	flush()
	return items
}

// GenerateDefinition emits the struct type and Read constructor for def,
// and its Encode function unless def.Params is non-empty (outbound
// encoding for a definition with caller-supplied parsing params is
// unsupported, so writeEncoder is not called for it and no error is
// returned).
func GenerateDefinition(def mbm.Definition) (string, error) {
	var e emitter
	if err := writeStruct(&e, def); err != nil {
		return "", err
	}
	e.blank()
	if err := writeReader(&e, def); err != nil {
		return "", err
	}
	if len(def.Params) == 0 {
		e.blank()
		if err := writeEncoder(&e, def); err != nil {
			return "", err
		}
	}
	return e.buf.String(), nil
}

func writeStruct(e *emitter, def mbm.Definition) error {
	e.line("type %s struct {", def.Class)
	e.indent++
	for _, arg := range def.Args {
		ad, ok := arg.(mbm.ArgDefinition)
		if !ok {
			continue
		}
		typ, ok := goType(ad.Cls)
		if !ok {
			typ = ad.Cls
		}
		if ad.VecCountCls != "" {
			if ad.Cls == "u8" {
				typ = "[]byte"
			} else {
				typ = "[]" + typ
			}
		}
		if ad.Optional {
			typ = "*" + typ
		}
		e.line("%s %s", exportName(ad.Name), typ)
	}
	e.indent--
	e.line("}")
	return nil
}

// exportName turns a snake_case schema field name into an exported Go
// identifier: on_ground -> OnGround.
func exportName(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

func paramList(def mbm.Definition) string {
	parts := make([]string, len(def.Params))
	for i, p := range def.Params {
		parts[i] = p + " int64"
	}
	return strings.Join(parts, ", ")
}

func writeReader(e *emitter, def mbm.Definition) error {
	sig := "b *buf.Buf"
	if pl := paramList(def); pl != "" {
		sig += ", " + pl
	}
	e.line("func Read%s(%s) (%s, error) {", def.Class, sig, def.Class)
	e.indent++
	e.line("var v %s", def.Class)

	for _, it := range collapseArgs(def.Args) {
		switch {
		case it.group != nil:
			if err := readGroup(e, it.group); err != nil {
				return err
			}
		default:
			if err := readSingle(e, def, it.single); err != nil {
				return err
			}
		}
	}
	e.line("return v, nil")
	e.indent--
	e.line("}")
	return nil
}

func readGroup(e *emitter, group []mbm.ArgDefinition) error {
	fmtStr := ""
	for _, ad := range group {
		fmtStr += string(ad.BuiltinFmt)
	}
	fields := e.tmpName("_fields")
	e.line("%s, err := b.ReadFmt(%q)", fields, fmtStr)
	e.line("if err != nil {")
	e.indent++
	e.line("return v, err")
	e.indent--
	e.line("}")
	for i, ad := range group {
		typ, _ := goType(ad.Cls)
		e.line("v.%s = %s[%d].(%s)", exportName(ad.Name), fields, i, typ)
	}
	return nil
}

func readSingle(e *emitter, def mbm.Definition, arg mbm.Arg) error {
	switch a := arg.(type) {
	case mbm.Condition:
		operand := "v." + exportName(a.Name)
		for _, p := range def.Params {
			if p == a.Name {
				operand = p
				break
			}
		}
		e.line("if %s %s %s {", operand, a.Op, a.Value)
		e.indent++
		return nil
	case mbm.ConditionDisable:
		e.indent--
		e.line("}")
		return nil
	case mbm.ArgReference:
		ref := def.Args[a.RefIndex].(mbm.ArgDefinition)
		return readArgDefinition(e, ref)
	case mbm.ArgDefinition:
		return readArgDefinition(e, a)
	}
	return nil
}

func readArgDefinition(e *emitter, ad mbm.ArgDefinition) error {
	target := "v." + exportName(ad.Name)
	if ad.Optional {
		// target is a pointer field; read the value into a plain local of
		// the pointed-to type first, then take its address, since readOne
		// assigns its result with = rather than returning it.
		typ, ok := goType(ad.Cls)
		if !ok {
			typ = ad.Cls
		}
		tmp := e.tmpName("_opt")
		e.line("if ok, err := b.ReadBool(); err != nil {")
		e.indent++
		e.line("return v, err")
		e.indent--
		e.line("} else if ok {")
		e.indent++
		e.line("var %s %s", tmp, typ)
		if err := readOne(e, tmp, ad); err != nil {
			return err
		}
		e.line("%s = &%s", target, tmp)
		e.indent--
		e.line("}")
		return nil
	}
	if ad.VecCountCls != "" {
		return readVector(e, target, ad)
	}
	return readOne(e, target, ad)
}

func readVector(e *emitter, target string, ad mbm.ArgDefinition) error {
	countTyp := fixedGoType(ad.VecCountCls)
	if countTyp == "" {
		return codegenErr(ad.Name, "vector count type must be a fixed-width scalar")
	}
	count := e.tmpName("_count")
	n := e.tmpName("_n")
	e.line("%s, err := b.ReadFmt(%q)", count, string(mustFmtCode(ad.VecCountCls)))
	e.line("if err != nil {")
	e.indent++
	e.line("return v, err")
	e.indent--
	e.line("}")
	e.line("%s := int64(%s[0].(%s))", n, count, countTyp)

	if ad.Cls == "u8" {
		e.line("%s, err = b.ReadN(int(%s))", target, n)
		e.line("if err != nil {")
		e.indent++
		e.line("return v, err")
		e.indent--
		e.line("}")
		return nil
	}

	elemTyp, ok := goType(ad.Cls)
	if !ok {
		elemTyp = ad.Cls
	}
	i := e.tmpName("_i")
	e.line("%s = make([]%s, %s)", target, elemTyp, n)
	e.line("for %s := int64(0); %s < %s; %s++ {", i, i, n, i)
	e.indent++
	if err := readOne(e, target+"["+i+"]", ad); err != nil {
		return err
	}
	e.indent--
	e.line("}")
	return nil
}

func mustFmtCode(cls string) byte {
	code, _ := buf.BuiltinFmt(cls)
	return code
}

func readOne(e *emitter, target string, ad mbm.ArgDefinition) error {
	v := e.tmpName("_v")
	if ad.BuiltinFmt != 0 {
		typ, _ := goType(ad.Cls)
		e.line("%s, err := b.ReadFmt(%q)", v, string(ad.BuiltinFmt))
		e.line("if err != nil {")
		e.indent++
		e.line("return v, err")
		e.indent--
		e.line("}")
		e.line("%s = %s[0].(%s)", target, v, typ)
		return nil
	}

	switch ad.Cls {
	case "vari32":
		e.line("%s, err := b.ReadVarInt(32)", v)
		emitErrCheck(e)
		e.line("%s = int32(%s)", target, v)
	case "vari64":
		e.line("%s, err := b.ReadVarInt(64)", v)
		emitErrCheck(e)
		e.line("%s = %s", target, v)
	case "uuid":
		e.line("%s, err := b.ReadUUID()", v)
		emitErrCheck(e)
		e.line("%s = %s", target, v)
	case "str":
		e.line("%s, err := b.ReadStr()", v)
		emitErrCheck(e)
		e.line("%s = %s", target, v)
	case "bytes":
		e.line("%s = b.ReadLeft()", target)
	case "angle":
		e.line("%s, err := b.ReadAngle()", v)
		emitErrCheck(e)
		e.line("%s = %s", target, v)
	case "pos":
		e.line("%s, err := b.ReadPosition()", v)
		emitErrCheck(e)
		e.line("%s = %s", target, v)
	case "nbt":
		e.line("%s, err := nbt.Read(b)", v)
		emitErrCheck(e)
		e.line("%s = %s", target, v)
	case "entmeta":
		e.line("%s, err := ReadEntityMetadata(b)", v)
		emitErrCheck(e)
		e.line("%s = %s", target, v)
	case "slot":
		e.line("%s, err := ReadSlot(b)", v)
		emitErrCheck(e)
		e.line("%s = %s", target, v)
	default:
		ctorArgs := ""
		for _, c := range ad.CtorArgs {
			ctorArgs += ", v." + exportName(c)
		}
		e.line("%s, err := Read%s(b%s)", v, ad.Cls, ctorArgs)
		emitErrCheck(e)
		e.line("%s = %s", target, v)
	}
	return nil
}

func emitErrCheck(e *emitter) {
	e.line("if err != nil {")
	e.indent++
	e.line("return v, err")
	e.indent--
	e.line("}")
}

func writeEncoder(e *emitter, def mbm.Definition) error {
	params := make([]string, 0, len(def.Args))
	for _, arg := range def.Args {
		ad, ok := arg.(mbm.ArgDefinition)
		if !ok {
			continue
		}
		typ, ok := goType(ad.Cls)
		if !ok {
			typ = ad.Cls
		}
		if ad.VecCountCls != "" {
			if ad.Cls == "u8" {
				typ = "[]byte"
			} else {
				typ = "[]" + typ
			}
		}
		if ad.Optional {
			typ = "*" + typ
		}
		params = append(params, exportName(ad.Name)+" "+typ)
	}

	e.line("func Encode%s(%s) []byte {", def.Class, strings.Join(params, ", "))
	e.indent++
	e.line("b := buf.NewEmpty()")
	for _, it := range collapseArgs(def.Args) {
		switch {
		case it.group != nil:
			writeGroupEncode(e, it.group)
		default:
			if err := writeSingleEncode(e, def, it.single); err != nil {
				return err
			}
		}
	}
	e.line("return b.Bytes()")
	e.indent--
	e.line("}")
	return nil
}

func writeGroupEncode(e *emitter, group []mbm.ArgDefinition) {
	fmtStr := ""
	names := make([]string, len(group))
	for i, ad := range group {
		fmtStr += string(ad.BuiltinFmt)
		names[i] = exportName(ad.Name)
	}
	e.line("b.WriteFmt(%q, %s)", fmtStr, strings.Join(names, ", "))
}

func writeSingleEncode(e *emitter, def mbm.Definition, arg mbm.Arg) error {
	switch a := arg.(type) {
	case mbm.Condition:
		e.line("if %s %s %s {", exportName(a.Name), a.Op, a.Value)
		e.indent++
		return nil
	case mbm.ConditionDisable:
		e.indent--
		e.line("}")
		return nil
	case mbm.ArgReference:
		ref := def.Args[a.RefIndex].(mbm.ArgDefinition)
		return writeOne(e, exportName(a.Name), ref)
	case mbm.ArgDefinition:
		if a.Referenced {
			return nil
		}
		return writeArgDefinition(e, a)
	}
	return nil
}

func writeArgDefinition(e *emitter, ad mbm.ArgDefinition) error {
	name := exportName(ad.Name)
	if ad.Optional {
		e.line("if %s == nil {", name)
		e.indent++
		e.line("b.WriteBool(false)")
		e.indent--
		e.line("} else {")
		e.indent++
		e.line("b.WriteBool(true)")
		if err := writeOne(e, "(*"+name+")", ad); err != nil {
			return err
		}
		e.indent--
		e.line("}")
		return nil
	}
	if ad.VecCountCls != "" {
		return writeVector(e, name, ad)
	}
	return writeOne(e, name, ad)
}

func writeVector(e *emitter, name string, ad mbm.ArgDefinition) error {
	if fixedGoType(ad.VecCountCls) == "" {
		return codegenErr(ad.Name, "vector count type must be a fixed-width scalar")
	}
	e.line("b.WriteFmt(%q, %s(len(%s)))", string(mustFmtCode(ad.VecCountCls)), fixedGoType(ad.VecCountCls), name)
	if ad.Cls == "u8" {
		e.line("b.WriteLeft(%s)", name)
		return nil
	}
	e.line("for _, _x := range %s {", name)
	e.indent++
	if err := writeOne(e, "_x", ad); err != nil {
		return err
	}
	e.indent--
	e.line("}")
	return nil
}

func writeOne(e *emitter, valueExpr string, ad mbm.ArgDefinition) error {
	if ad.BuiltinFmt != 0 {
		e.line("b.WriteFmt(%q, %s)", string(ad.BuiltinFmt), valueExpr)
		return nil
	}
	switch ad.Cls {
	case "vari32":
		e.line("b.WriteVarInt(int64(%s), 32)", valueExpr)
	case "vari64":
		e.line("b.WriteVarInt(%s, 64)", valueExpr)
	case "uuid":
		e.line("b.WriteUUID(%s)", valueExpr)
	case "str":
		e.line("b.WriteStr(%s)", valueExpr)
	case "bytes":
		e.line("b.WriteLeft(%s)", valueExpr)
	case "angle":
		e.line("b.WriteAngle(%s)", valueExpr)
	case "pos":
		e.line("b.WritePosition(%s)", valueExpr)
	case "nbt":
		e.line("nbt.Write(b, %s)", valueExpr)
	case "entmeta":
		e.line("%s.WriteEntityMetadata(b)", valueExpr)
	case "slot":
		e.line("%s.WriteSlot(b)", valueExpr)
	default:
		e.line("%s.Write%s(b)", valueExpr, ad.Cls)
	}
	return nil
}
