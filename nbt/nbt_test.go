/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package nbt

import (
	"testing"

	"github.com/lonami/mibomi-go/buf"
)

func roundTrip(t *testing.T, tag Tag) Tag {
	t.Helper()
	w := buf.NewEmpty()
	if err := Write(w, tag); err != nil {
		t.Fatalf("write: %v", err)
	}
	r := buf.New(w.Bytes())
	got, err := Read(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return got
}

func TestShortRoundTrip(t *testing.T) {
	tag := TagShort("shortTest", 32767)
	got := roundTrip(t, tag)
	if !got.Equal(tag) {
		t.Fatalf("got %+v want %+v", got, tag)
	}
}

func TestCompoundRoundTrip(t *testing.T) {
	tag := TagCompound("hello world", []Tag{
		TagString("name", "Bananrama"),
	})
	got := roundTrip(t, tag)
	if !got.Equal(tag) {
		t.Fatalf("got %+v want %+v", got, tag)
	}
	name, err := got.Child("name")
	if err != nil {
		t.Fatalf("child lookup: %v", err)
	}
	if name.AsString() != "Bananrama" {
		t.Fatalf("got %q", name.AsString())
	}
}

func TestEmptyListWiresAsEndKind(t *testing.T) {
	tag := TagList("empty", String, nil)
	w := buf.NewEmpty()
	if err := Write(w, tag); err != nil {
		t.Fatal(err)
	}
	// kind byte, i16 name len, name bytes, element-kind byte, i32 count
	want := []byte{byte(List), 0, 5, 'e', 'm', 'p', 't', 'y', byte(End), 0, 0, 0, 0}
	got := w.Bytes()
	if string(got) != string(want) {
		t.Fatalf("got % x want % x", got, want)
	}
	r := buf.New(got)
	read, err := Read(r)
	if err != nil {
		t.Fatal(err)
	}
	if read.ListElemKind() != End || len(read.AsList()) != 0 {
		t.Fatalf("got elemKind=%d len=%d", read.ListElemKind(), len(read.AsList()))
	}
}

func TestListRoundTrip(t *testing.T) {
	tag := TagList("nums", Int, []Tag{
		TagInt("", 1),
		TagInt("", 2),
		TagInt("", 3),
	})
	got := roundTrip(t, tag)
	if !got.Equal(tag) {
		t.Fatalf("got %+v want %+v", got, tag)
	}
}

func TestNestedCompound(t *testing.T) {
	tag := TagCompound("root", []Tag{
		TagByte("flag", 1),
		TagCompound("inner", []Tag{
			TagLong("big", 1234567890123),
			TagIntArray("arr", []int32{1, 2, 3}),
		}),
	})
	got := roundTrip(t, tag)
	if !got.Equal(tag) {
		t.Fatalf("got %+v want %+v", got, tag)
	}
}

func TestEndSentinelIsSingleByte(t *testing.T) {
	w := buf.NewEmpty()
	if err := Write(w, TagEnd()); err != nil {
		t.Fatal(err)
	}
	if got := w.Bytes(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("got % x", got)
	}
}
