/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package transport implements the framed, optionally compressed,
// optionally encrypted byte pipeline a session speaks over: length-
// prefixed packets, a zlib threshold gate, and an AES-128/CFB8 stream
// cipher that activates partway through the connection's life once the
// login handshake negotiates a shared secret.
package transport

import (
	"bytes"
	"compress/zlib"
	"crypto/aes"
	"crypto/cipher"
	"io"
	"net"
	"sync"

	"github.com/lonami/mibomi-go/buf"
)

// noThreshold marks compression as disabled.
const noThreshold = -1

// Conn is a single connection to a Minecraft server. Reads and writes
// each hold their own mutex: the read side additionally carries
// decryption state that must be consumed in strict byte order, so Recv
// callers are serialized the same way the teacher's EntryWriter
// serializes writers around its buffered socket.
type Conn struct {
	sock net.Conn

	writeMu sync.Mutex
	readMu  sync.Mutex

	threshold int // noThreshold disables compression

	encryptor cipher.Stream
	decryptor cipher.Stream
}

// Dial opens a TCP connection to addr with compression and encryption
// both initially disabled, matching the state a freshly connected
// client is in before the login handshake negotiates either.
func Dial(addr string) (*Conn, error) {
	sock, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, &TransportError{Op: "dial", Err: err}
	}
	return &Conn{sock: sock, threshold: noThreshold}, nil
}

// NewConn wraps an already-established net.Conn, compression and
// encryption both initially disabled. Useful for the server side of a
// connection accepted from a net.Listener, which Dial has no use for.
func NewConn(sock net.Conn) *Conn {
	return &Conn{sock: sock, threshold: noThreshold}
}

// Close closes the underlying socket.
func (c *Conn) Close() error {
	return c.sock.Close()
}

// EnableCompression activates the compression threshold gate: packets
// whose uncompressed length is at least threshold bytes are zlib
// compressed on send, and Recv enforces the same floor on decompressed
// length. A negative threshold disables compression again, as the
// protocol's Set Compression packet allows.
func (c *Conn) EnableCompression(threshold int) {
	c.writeMu.Lock()
	c.readMu.Lock()
	defer c.writeMu.Unlock()
	defer c.readMu.Unlock()
	c.threshold = threshold
}

// EnableEncryption derives an AES-128/CFB8 encryptor and decryptor from
// sharedSecret, used as both key and IV per the login handshake. Every
// byte sent or received after this call, including subsequent frame
// length headers, passes through the cipher.
func (c *Conn) EnableEncryption(sharedSecret []byte) error {
	block, err := aes.NewCipher(sharedSecret)
	if err != nil {
		return &TransportError{Op: "enable encryption", Err: err}
	}
	c.writeMu.Lock()
	c.readMu.Lock()
	defer c.writeMu.Unlock()
	defer c.readMu.Unlock()
	c.encryptor = newCFB8(block, sharedSecret, false)
	c.decryptor = newCFB8(block, sharedSecret, true)
	return nil
}

// Send frames id and payload as a single packet body, applies the
// compression threshold if active, and writes the result through the
// encryptor if active.
func (c *Conn) Send(id int32, payload []byte) error {
	body := buf.NewEmpty()
	if err := body.WriteVarInt(int64(id), 32); err != nil {
		return &TransportError{Op: "send", Err: err}
	}
	body.WriteLeft(payload)

	framed, err := c.frame(body.Bytes())
	if err != nil {
		return err
	}

	outer := buf.NewEmpty()
	if err := outer.WriteVarInt(int64(len(framed)), 32); err != nil {
		return &TransportError{Op: "send", Err: err}
	}
	outer.WriteLeft(framed)
	wire := outer.Bytes()

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.encryptor != nil {
		enc := make([]byte, len(wire))
		c.encryptor.XORKeyStream(enc, wire)
		wire = enc
	}
	if _, err := c.sock.Write(wire); err != nil {
		return &TransportError{Op: "send", Err: err}
	}
	return nil
}

// frame applies the compression envelope to an already-assembled packet
// body (varint id + payload), if compression is active.
func (c *Conn) frame(p []byte) ([]byte, error) {
	if c.threshold < 0 {
		return p, nil
	}
	out := buf.NewEmpty()
	if len(p) < c.threshold {
		if err := out.WriteVarInt(0, 32); err != nil {
			return nil, &TransportError{Op: "compress", Err: err}
		}
		out.WriteLeft(p)
		return out.Bytes(), nil
	}
	if err := out.WriteVarInt(int64(len(p)), 32); err != nil {
		return nil, &TransportError{Op: "compress", Err: err}
	}
	var zbuf bytes.Buffer
	zw := zlib.NewWriter(&zbuf)
	if _, err := zw.Write(p); err != nil {
		return nil, &TransportError{Op: "compress", Err: err}
	}
	if err := zw.Close(); err != nil {
		return nil, &TransportError{Op: "compress", Err: err}
	}
	out.WriteLeft(zbuf.Bytes())
	return out.Bytes(), nil
}

// Recv reads one full packet, undoing encryption, the outer length
// frame, and compression in turn, and returns the packet id and a Buf
// positioned at the start of its payload.
func (c *Conn) Recv() (int32, *buf.Buf, error) {
	c.readMu.Lock()
	defer c.readMu.Unlock()

	length, err := c.readVarint32()
	if err != nil {
		return 0, nil, err
	}
	if length < 0 {
		return 0, nil, &FramingError{Reason: "negative frame length"}
	}

	raw := make([]byte, length)
	if _, err := io.ReadFull(c.sock, raw); err != nil {
		return 0, nil, &TransportError{Op: "recv", Err: err}
	}
	if c.decryptor != nil {
		dec := make([]byte, len(raw))
		c.decryptor.XORKeyStream(dec, raw)
		raw = dec
	}

	body := buf.New(raw)
	if c.threshold >= 0 {
		dataLength, err := body.ReadVarInt(32)
		if err != nil {
			return 0, nil, &FramingError{Reason: "truncated compression header"}
		}
		if dataLength != 0 {
			if dataLength < int64(c.threshold) {
				return 0, nil, &FramingError{Reason: "compressed packet below threshold"}
			}
			zr, err := zlib.NewReader(bytes.NewReader(body.ReadLeft()))
			if err != nil {
				return 0, nil, &FramingError{Reason: "invalid zlib stream"}
			}
			decompressed, err := io.ReadAll(zr)
			if err != nil {
				return 0, nil, &FramingError{Reason: "truncated zlib stream"}
			}
			if int64(len(decompressed)) != dataLength {
				return 0, nil, &FramingError{Reason: "decompressed length mismatch"}
			}
			body = buf.New(decompressed)
		}
	}

	id, err := body.ReadVarInt(32)
	if err != nil {
		return 0, nil, &FramingError{Reason: "truncated packet id"}
	}
	return int32(id), body, nil
}

// readByte reads and, if active, decrypts a single socket byte. The
// frame length header must be decrypted one byte at a time because its
// own length isn't known until it's decoded, and CFB8 state must be
// consumed in the exact order it was produced.
func (c *Conn) readByte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(c.sock, b[:]); err != nil {
		return 0, &TransportError{Op: "recv", Err: err}
	}
	if c.decryptor == nil {
		return b[0], nil
	}
	var out [1]byte
	c.decryptor.XORKeyStream(out[:], b[:])
	return out[0], nil
}

// readVarint32 decodes a 32-bit varint directly off the socket, byte by
// byte, so that a live decryptor's sequential state stays correct across
// the length header and the frame body that follows it.
func (c *Conn) readVarint32() (int64, error) {
	const maxBytes = 5 // ceil(32/7)
	var result uint64
	var shift uint
	for i := 0; ; i++ {
		if i >= maxBytes {
			return 0, &FramingError{Reason: "varint too long"}
		}
		bt, err := c.readByte()
		if err != nil {
			return 0, err
		}
		result |= uint64(bt&0x7f) << shift
		if bt&0x80 == 0 {
			break
		}
		shift += 7
	}
	shiftBits := uint(64 - 32)
	return (int64(result) << shiftBits) >> shiftBits, nil
}
