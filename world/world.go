/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package world holds the client's view of the loaded world: a
// registry of chunks keyed by chunk coordinate, with block lookups that
// fall through to air for chunks that haven't arrived yet.
package world

import (
	"errors"
	"sync"

	"github.com/lonami/mibomi-go/chunk"
)

// ErrUnknownChunk is returned by Set when the owning chunk hasn't been
// fed into the registry yet.
var ErrUnknownChunk = errors.New("world: cannot write into an unknown chunk")

type chunkKey struct{ x, z int32 }

// World maps chunk coordinates to decoded chunks, mutated only by the
// inbound handlers of the connection that owns it.
type World struct {
	mu     sync.RWMutex
	chunks map[chunkKey]*chunk.Chunk
}

// New returns an empty World.
func New() *World {
	return &World{chunks: make(map[chunkKey]*chunk.Chunk)}
}

// FeedChunk installs or replaces the chunk at c.X, c.Z.
func (w *World) FeedChunk(c *chunk.Chunk) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.chunks[chunkKey{c.X, c.Z}] = c
}

// Chunk returns the chunk at chunk coordinate (x, z), or nil if unknown.
func (w *World) Chunk(x, z int32) *chunk.Chunk {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.chunks[chunkKey{x, z}]
}

// At returns the block id at world block coordinate (x, y, z), or 0 if
// the owning chunk is unknown.
func (w *World) At(x, y, z int32) int32 {
	xh, xl := floorDivMod(x, 16)
	zh, zl := floorDivMod(z, 16)
	c := w.Chunk(xh, zh)
	if c == nil {
		return 0
	}
	return c.At(int(xl), int(y), int(zl))
}

// Set writes the block id at world block coordinate (x, y, z). It
// returns ErrUnknownChunk if the owning chunk hasn't arrived, or
// whatever error the chunk itself returns for an absent section.
func (w *World) Set(x, y, z, value int32) error {
	xh, xl := floorDivMod(x, 16)
	zh, zl := floorDivMod(z, 16)
	c := w.Chunk(xh, zh)
	if c == nil {
		return ErrUnknownChunk
	}
	return c.Set(int(xl), int(y), int(zl), value)
}

// floorDivMod divides a by b the way Python's divmod does: the
// quotient rounds toward negative infinity and the remainder always
// has the sign of b. Go's native / and % truncate toward zero, which
// would place negative world coordinates in the wrong chunk.
func floorDivMod(a, b int32) (q, r int32) {
	q = a / b
	r = a % b
	if r != 0 && (r < 0) != (b < 0) {
		q--
		r += b
	}
	return
}
