/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package transport

import (
	"bytes"
	"compress/zlib"
	"crypto/aes"
	"io"
	"net"
	"testing"

	"github.com/lonami/mibomi-go/buf"
)

// pipe returns two Conns wired together over an in-memory socket pair.
func pipe() (*Conn, *Conn) {
	a, b := net.Pipe()
	return &Conn{sock: a, threshold: noThreshold}, &Conn{sock: b, threshold: noThreshold}
}

func TestRoundTripPlain(t *testing.T) {
	a, b := pipe()
	payload := []byte("hello mibomi")
	errCh := make(chan error, 1)
	go func() { errCh <- a.Send(0x42, payload) }()

	id, body, err := b.Recv()
	if err != nil {
		t.Fatalf("recv: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("send: %v", err)
	}
	if id != 0x42 {
		t.Fatalf("id = %#x, want 0x42", id)
	}
	if !bytes.Equal(body.ReadLeft(), payload) {
		t.Fatal("payload mismatch")
	}
}

func TestRoundTripCompressed(t *testing.T) {
	a, b := pipe()
	a.EnableCompression(256)
	b.EnableCompression(256)

	payload := bytes.Repeat([]byte{0xab}, 1000)
	errCh := make(chan error, 1)
	go func() { errCh <- a.Send(7, payload) }()

	id, body, err := b.Recv()
	if err != nil {
		t.Fatalf("recv: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("send: %v", err)
	}
	if id != 7 {
		t.Fatalf("id = %d, want 7", id)
	}
	if !bytes.Equal(body.ReadLeft(), payload) {
		t.Fatal("payload mismatch")
	}
}

func TestRoundTripEncryptedAndCompressed(t *testing.T) {
	a, b := pipe()
	secret := bytes.Repeat([]byte{0x11}, 16)
	if err := a.EnableEncryption(secret); err != nil {
		t.Fatalf("a enable encryption: %v", err)
	}
	if err := b.EnableEncryption(secret); err != nil {
		t.Fatalf("b enable encryption: %v", err)
	}
	a.EnableCompression(256)
	b.EnableCompression(256)

	payload := bytes.Repeat([]byte{0x5a}, 500)
	errCh := make(chan error, 1)
	go func() { errCh <- a.Send(1, payload) }()

	id, body, err := b.Recv()
	if err != nil {
		t.Fatalf("recv: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("send: %v", err)
	}
	if id != 1 {
		t.Fatalf("id = %d, want 1", id)
	}
	if !bytes.Equal(body.ReadLeft(), payload) {
		t.Fatal("payload mismatch")
	}
}

// TestCompressionThresholdWireShape checks the literal wire shapes the
// compression envelope must produce: a payload under threshold carries
// varint(0) then the raw bytes; a payload at or above threshold carries
// the true length then zlib data.
func TestCompressionThresholdWireShape(t *testing.T) {
	c := &Conn{threshold: 256}

	small := bytes.Repeat([]byte{0x01}, 10)
	framedSmall, err := c.frame(small)
	if err != nil {
		t.Fatalf("frame small: %v", err)
	}
	fb := buf.New(framedSmall)
	n, err := fb.ReadVarInt(32)
	if err != nil || n != 0 {
		t.Fatalf("data_length = %d, err %v; want 0", n, err)
	}
	if !bytes.Equal(fb.ReadLeft(), small) {
		t.Fatal("sub-threshold payload not carried raw")
	}

	large := bytes.Repeat([]byte{0x02}, 300)
	framedLarge, err := c.frame(large)
	if err != nil {
		t.Fatalf("frame large: %v", err)
	}
	lb := buf.New(framedLarge)
	n, err = lb.ReadVarInt(32)
	if err != nil || n != 300 {
		t.Fatalf("data_length = %d, err %v; want 300", n, err)
	}
	zr, err := zlib.NewReader(bytes.NewReader(lb.ReadLeft()))
	if err != nil {
		t.Fatalf("zlib: %v", err)
	}
	decompressed, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("zlib read: %v", err)
	}
	if !bytes.Equal(decompressed, large) {
		t.Fatal("over-threshold payload did not round-trip through zlib")
	}
}

func TestRecvRejectsCompressedBelowThreshold(t *testing.T) {
	a, b := pipe()
	b.EnableCompression(256)

	// Hand-build a frame claiming data_length=10 (below threshold 256)
	// with a non-zero data_length, which the protocol forbids.
	inner := buf.NewEmpty()
	inner.WriteVarInt(10, 32)
	inner.WriteLeft(bytes.Repeat([]byte{0x00}, 10))
	outer := buf.NewEmpty()
	outer.WriteVarInt(int64(len(inner.Bytes())), 32)
	outer.WriteLeft(inner.Bytes())

	errCh := make(chan error, 1)
	go func() { _, err := a.sock.Write(outer.Bytes()); errCh <- err }()

	_, _, err := b.Recv()
	if _, ok := err.(*FramingError); !ok {
		t.Fatalf("err = %v, want *FramingError", err)
	}
	<-errCh
}

func TestCFB8RoundTrips(t *testing.T) {
	key := bytes.Repeat([]byte{0x2a}, 16)
	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("new cipher: %v", err)
	}
	enc := newCFB8(block, key, false)

	block2, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("new cipher: %v", err)
	}
	dec := newCFB8(block2, key, true)

	plaintext := []byte("the quick brown fox jumps over the lazy dog, 1.12.2")
	ciphertext := make([]byte, len(plaintext))
	enc.XORKeyStream(ciphertext, plaintext)

	recovered := make([]byte, len(ciphertext))
	dec.XORKeyStream(recovered, ciphertext)

	if !bytes.Equal(recovered, plaintext) {
		t.Fatalf("recovered = %q, want %q", recovered, plaintext)
	}
}
