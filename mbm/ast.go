/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package mbm parses the packet schema DSL ("MBM" — a small declarative
// language describing inbound/outbound Minecraft packets) into a
// validated AST. codegen (a sibling package) turns that AST into Go
// source implementing the described packets.
package mbm

import "github.com/lonami/mibomi-go/buf"

// Arg is the tagged-union element of a Definition's argument list: one
// of ArgDefinition, Condition, ConditionDisable or ArgReference.
// Implementations pattern-match on the concrete type rather than calling
// virtual methods, mirroring how the generator itself dispatches on arg
// shape.
type Arg interface {
	argNode()
}

// ArgDefinition declares one named field of a packet.
type ArgDefinition struct {
	Name string
	// Cls is the type name: one of the 11 fixed scalar types or a
	// non-fixed named type (vari32, vari64, uuid, str, bytes, angle,
	// pos, entmeta, nbt, slot) or a reference to another schema class.
	Cls string
	// VecCountCls is the type used to read a length prefix when this
	// field is a vector; empty when the field is scalar.
	VecCountCls string
	// Optional marks a field prefixed on the wire by a single bool.
	Optional bool
	// CtorArgs names previously-declared fields passed when
	// constructing a non-builtin Cls.
	CtorArgs []string
	// BuiltinFmt is the format code ('b', 'B', 'h', ...) when Cls names
	// one of the 11 fixed-width scalar types, or 0 otherwise.
	BuiltinFmt byte
	// Referenced is set by validation when some later ArgReference in
	// the same Definition names this field; its value is then consumed
	// at the reference's wire position instead of being its own
	// standalone read/write.
	Referenced bool
}

func (ArgDefinition) argNode() {}

// Condition gates every following Arg, up to the next ConditionDisable,
// on a runtime comparison of a previously bound value against Value.
type Condition struct {
	Name  string
	Op    string
	Value string
}

func (Condition) argNode() {}

// ConditionDisable (a bare "?") closes the most recently opened
// Condition.
type ConditionDisable struct{}

func (ConditionDisable) argNode() {}

// ArgReference reuses a previously declared ArgDefinition by name. On
// decode its reader is invoked at this position and the value is stored
// under the referenced field; on encode it substitutes that field's
// already-bound value. RefIndex is resolved by name (not by identity)
// to the referenced Arg's position in the owning Definition's Args.
type ArgReference struct {
	Name     string
	RefIndex int
}

func (ArgReference) argNode() {}

// Definition is one parsed MBM statement.
type Definition struct {
	Name   string
	HasID  bool
	ID     int
	Params []string
	Args   []Arg
	Class  string

	// HasOptionalContent is true iff any ArgDefinition is Optional or
	// any Condition appears among Args.
	HasOptionalContent bool
}

func newArgDefinition(name, cls, vecCountCls string, optional bool, ctorArgs []string) ArgDefinition {
	code, ok := buf.BuiltinFmt(cls)
	ad := ArgDefinition{
		Name:        name,
		Cls:         cls,
		VecCountCls: vecCountCls,
		Optional:    optional,
		CtorArgs:    ctorArgs,
	}
	if ok {
		ad.BuiltinFmt = code
	}
	return ad
}
