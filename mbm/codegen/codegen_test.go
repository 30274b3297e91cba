/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package codegen

import (
	"strings"
	"testing"

	"github.com/lonami/mibomi-go/mbm"
)

func parseOne(t *testing.T, src string) mbm.Definition {
	t.Helper()
	defs, err := mbm.ParseString(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("got %d definitions", len(defs))
	}
	return defs[0]
}

func TestGeneratesStructAndReaderAndEncoder(t *testing.T) {
	def := parseOne(t, "keep_alive#0x1f id:vari64 -> KeepAlive;")
	src, err := GenerateDefinition(def)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"type KeepAlive struct {",
		"Id int64",
		"func ReadKeepAlive(b *buf.Buf) (KeepAlive, error) {",
		"func EncodeKeepAlive(Id int64) []byte {",
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("generated source missing %q:\n%s", want, src)
		}
	}
}

func TestCollapsesConsecutiveFixedFields(t *testing.T) {
	def := parseOne(t, "position x:double y:double z:double on_ground:bool -> Position;")
	src, err := GenerateDefinition(def)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(src, `b.ReadFmt("ddd?")`) {
		t.Fatalf("expected a collapsed ReadFmt call, got:\n%s", src)
	}
}

func TestRejectsEncoderWithParams(t *testing.T) {
	defs, err := mbm.ParseString("variant#0x00 chosen:u8 -> Variant;")
	if err != nil {
		t.Fatal(err)
	}
	def := defs[0]
	def.Params = []string{"proto"}
	src, err := GenerateDefinition(def)
	if err != nil {
		t.Fatalf("reader generation should still succeed: %v", err)
	}
	if len(def.Params) == 0 {
		t.Fatal("expected params set")
	}
	if strings.Contains(src, "func EncodeVariant") {
		t.Fatalf("expected no encoder for a definition with params:\n%s", src)
	}
}

func TestRejectsNonFixedVectorCount(t *testing.T) {
	def := parseOne(t, "entry list:vari32+u8 -> Entry;")
	_, err := GenerateDefinition(def)
	if err == nil {
		t.Fatal("expected CodegenError")
	}
	if _, ok := err.(*CodegenError); !ok {
		t.Fatalf("got %T: %v", err, err)
	}
}

func TestOptionalFieldIsPointerAndBoolPrefixed(t *testing.T) {
	def := parseOne(t, "chat message:str reason:i32? -> Chat;")
	src, err := GenerateDefinition(def)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(src, "Reason *int32") {
		t.Fatalf("expected optional field as pointer:\n%s", src)
	}
	if !strings.Contains(src, "b.ReadBool()") {
		t.Fatalf("expected bool-prefixed optional read:\n%s", src)
	}
}

func TestOptionalFieldReadsThroughLocalBeforeTakingAddress(t *testing.T) {
	def := parseOne(t, "chat message:str reason:i32? -> Chat;")
	src, err := GenerateDefinition(def)
	if err != nil {
		t.Fatal(err)
	}
	// Reason is *int32: the read must land in a plain int32 local first,
	// then take its address, rather than assigning an int32 into the
	// pointer field directly.
	if !strings.Contains(src, "var _opt int32") {
		t.Fatalf("expected a local of the pointed-to type:\n%s", src)
	}
	if !strings.Contains(src, "v.Reason = &_opt") {
		t.Fatalf("expected the pointer field set from the local's address:\n%s", src)
	}
}

func TestDistinctTempNamesForRepeatedReadShapes(t *testing.T) {
	def := parseOne(t, "handshake host:str addr:str -> Handshake;")
	src, err := GenerateDefinition(def)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(src, "_v, err := b.ReadStr()") || !strings.Contains(src, "_v1, err := b.ReadStr()") {
		t.Fatalf("expected two distinct temp names for two str reads:\n%s", src)
	}
}

func TestVectorOfU8IsRawBytes(t *testing.T) {
	def := parseOne(t, "payload data:i16+u8 -> Payload;")
	src, err := GenerateDefinition(def)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(src, "Data []byte") {
		t.Fatalf("expected []byte vector field:\n%s", src)
	}
	if !strings.Contains(src, "b.ReadN(int(_n))") {
		t.Fatalf("expected raw-bytes vector read:\n%s", src)
	}
}
