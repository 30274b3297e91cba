/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package proto

import (
	"github.com/lonami/mibomi-go/buf"
	"github.com/lonami/mibomi-go/chunk"
	"github.com/lonami/mibomi-go/nbt"
)

// ChunkData is the envelope around a chunk's section run: everything
// chunk.Decode needs, plus the block entities that ride along with it.
// The wire order is x, z, new_chunk, bit_mask (varint), a
// size-prefixed Data blob, then a varint count of NBT block entities.
type ChunkData struct {
	X, Z          int32
	NewChunk      bool
	BitMask       uint16
	Data          []byte
	BlockEntities []nbt.Tag
}

func ReadChunkData(b *buf.Buf) (ChunkData, error) {
	var v ChunkData

	x, err := b.ReadI32()
	if err != nil {
		return v, err
	}
	v.X = x

	z, err := b.ReadI32()
	if err != nil {
		return v, err
	}
	v.Z = z

	newChunk, err := b.ReadBool()
	if err != nil {
		return v, err
	}
	v.NewChunk = newChunk

	bitMask, err := b.ReadVarInt(32)
	if err != nil {
		return v, err
	}
	v.BitMask = uint16(bitMask)

	size, err := b.ReadVarInt(32)
	if err != nil {
		return v, err
	}
	data, err := b.ReadN(int(size))
	if err != nil {
		return v, err
	}
	v.Data = data

	count, err := b.ReadVarInt(32)
	if err != nil {
		return v, err
	}
	entities := make([]nbt.Tag, count)
	for i := range entities {
		tag, err := nbt.Read(b)
		if err != nil {
			return v, err
		}
		entities[i] = tag
	}
	v.BlockEntities = entities
	return v, nil
}

// Decode hands the payload off to the chunk package, assuming the
// overworld dimension (the only one with sky light); a caller decoding
// a non-overworld dimension's chunk should call chunk.Decode directly.
func (v ChunkData) Decode() (*chunk.Chunk, error) {
	return chunk.Decode(v.X, v.Z, v.BitMask, v.NewChunk, true, v.Data, v.BlockEntities)
}
