/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package chunk

import "github.com/lonami/mibomi-go/buf"

// Section is one 16x16x16 cube of block ids, plus its light data.
// SkyLight is nil for sections decoded outside the overworld.
type Section struct {
	blocks   [sectionSize]int32
	Light    *LightData
	SkyLight *LightData
}

// At returns the block id at section-relative (x, y, z).
func (s *Section) At(x, y, z int) int32 {
	return s.blocks[(y*sectionHeight+z)*sectionWidth+x]
}

// Set overwrites the block id at section-relative (x, y, z).
func (s *Section) Set(x, y, z int, value int32) {
	s.blocks[(y*sectionHeight+z)*sectionWidth+x] = value
}

// paletteFunc maps a raw packed index to a block id: the identity
// function for a direct palette, or a slice lookup for an indirect one.
type paletteFunc func(raw uint64) int32

func readSection(b *buf.Buf, overWorld bool) (*Section, error) {
	bpbByte, err := b.ReadU8()
	if err != nil {
		return nil, err
	}
	bpb := int(bpbByte)

	palette, err := readPalette(b, bpb)
	if err != nil {
		return nil, err
	}

	packBpb := bpb
	if bpb <= 4 {
		packBpb = 4 // indirect palette packing floor; bpb > 8 (direct) is never clamped
	}

	length, err := b.ReadVarInt(32)
	if err != nil {
		return nil, err
	}
	if length*64 < int64(sectionSize*packBpb) {
		return nil, &DecodeError{Reason: "packed word count too short for bits-per-block"}
	}

	words := make([]uint64, length)
	for i := range words {
		words[i], err = b.ReadU64()
		if err != nil {
			return nil, err
		}
	}

	sec := &Section{}
	var bits uint
	var integer uint64
	mask := uint64(1)<<uint(packBpb) - 1
	wi := 0
	for i := 0; i < sectionSize; i++ {
		if bits < uint(packBpb) {
			integer |= words[wi] << bits
			wi++
			bits += 64
		}
		sec.blocks[i] = palette(integer & mask)
		integer >>= uint(packBpb)
		bits -= uint(packBpb)
	}

	sec.Light, err = readLightData(b)
	if err != nil {
		return nil, err
	}
	if overWorld {
		sec.SkyLight, err = readLightData(b)
		if err != nil {
			return nil, err
		}
	}
	return sec, nil
}

// readPalette consumes the palette encoding that precedes the packed
// index words and returns a function translating a packed index into a
// block id.
func readPalette(b *buf.Buf, bpb int) (paletteFunc, error) {
	if bpb > 8 {
		if _, err := b.ReadVarInt(32); err != nil { // direct palette stub, unused
			return nil, err
		}
		return func(raw uint64) int32 { return int32(raw) }, nil
	}

	n, err := b.ReadVarInt(32)
	if err != nil {
		return nil, err
	}
	entries := make([]int32, n)
	for i := range entries {
		combined, err := b.ReadVarInt(32)
		if err != nil {
			return nil, err
		}
		entries[i] = int32(combined >> 4) // legacy block+metadata id, metadata in the low nibble
	}
	return func(raw uint64) int32 {
		if int(raw) >= len(entries) {
			return 0
		}
		return entries[raw]
	}, nil
}
