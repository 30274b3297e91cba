/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package log

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testFile string = `session.log`

func newLogger(t *testing.T) (*Logger, string) {
	t.Helper()
	p := filepath.Join(t.TempDir(), testFile)
	fout, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	return New(fout), p
}

func TestNewWritesRFC5424Lines(t *testing.T) {
	lgr, path := newLogger(t)
	if err := lgr.Infof("session: logged in as %s", "Mibomi"); err != nil {
		t.Fatal(err)
	}
	if err := lgr.Close(); err != nil {
		t.Fatal(err)
	}
	bts, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(bts), "session: logged in as Mibomi") {
		t.Fatalf("missing formatted message: %s", bts)
	}
}

func TestAppendReopensExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), testFile)
	first, err := NewFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Infof("first line"); err != nil {
		t.Fatal(err)
	}
	if err := first.Close(); err != nil {
		t.Fatal(err)
	}

	second, err := NewFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := second.Infof("second line"); err != nil {
		t.Fatal(err)
	}
	if err := second.Close(); err != nil {
		t.Fatal(err)
	}

	bts, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(bts), "first line") || !strings.Contains(string(bts), "second line") {
		t.Fatalf("missing appended lines: %s", bts)
	}
}

func TestLevelFiltering(t *testing.T) {
	lgr, path := newLogger(t)
	if err := lgr.SetLevel(WARN); err != nil {
		t.Fatal(err)
	}
	if err := lgr.Infof("session: keep-alive echoed"); err != nil {
		t.Fatal(err)
	}
	if err := lgr.Warnf("session: keep-alive watchdog expired"); err != nil {
		t.Fatal(err)
	}
	if err := lgr.Close(); err != nil {
		t.Fatal(err)
	}

	bts, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	s := string(bts)
	if strings.Contains(s, "keep-alive echoed") {
		t.Fatal("INFO line logged below the WARN threshold")
	}
	if !strings.Contains(s, "keep-alive watchdog expired") {
		t.Fatal("WARN line missing", s)
	}
}

func TestStructuredCallCarriesKVParam(t *testing.T) {
	lgr, path := newLogger(t)
	if err := lgr.Error("session: handler failed", KV("handler", "chat_message")); err != nil {
		t.Fatal(err)
	}
	if err := lgr.Close(); err != nil {
		t.Fatal(err)
	}
	bts, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(bts), `handler="chat_message"`) {
		t.Fatalf("missing structured param: %s", bts)
	}
}

func TestKVLoggerTagsEveryLine(t *testing.T) {
	lgr, path := newLogger(t)
	kvl := NewLoggerWithKV(lgr, KV("server", "mc.example.com:25565"))

	if err := kvl.Error("session: decoding packet failed", KVErr(ErrInvalidLevel)); err != nil {
		t.Fatal(err)
	}
	if err := kvl.Close(); err != nil {
		t.Fatal(err)
	}

	bts, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	s := string(bts)
	if !strings.Contains(s, `server="mc.example.com:25565"`) {
		t.Fatalf("KVLogger did not tag line with its fixed param: %s", s)
	}
	if !strings.Contains(s, `error=`) {
		t.Fatalf("KVLogger did not carry the call-site param through: %s", s)
	}
}

func TestNewDiscardLoggerSwallowsOutput(t *testing.T) {
	lgr := NewDiscardLogger()
	if err := lgr.Infof("this goes nowhere"); err != nil {
		t.Fatal(err)
	}
	if err := lgr.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestTrimLength(t *testing.T) {
	input := "twelve bytes"
	output := trimLength(10, input)
	if output != "twelve byt" {
		t.Fatal("trimLength", output)
	}
}

func TestTrimPathLength(t *testing.T) {
	input := "session/session.go:148"
	output := trimPathLength(16, input)
	if output != "session.go:148" {
		t.Fatal("trimPathLength", output)
	}
}

func TestLevelFromString(t *testing.T) {
	lvl, err := LevelFromString("warn")
	if err != nil {
		t.Fatal(err)
	}
	if lvl != WARN {
		t.Fatalf("got %v, want WARN", lvl)
	}
	if _, err := LevelFromString("bogus"); err == nil {
		t.Fatal("expected an error for an invalid level name")
	}
}
