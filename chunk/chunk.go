/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package chunk decodes the bit-packed section format a Chunk Data
// packet carries: a palette per 16x16x16 section, a run of big-endian
// words holding palette indices packed to a variable bit width, and
// per-block light data.
package chunk

import (
	"github.com/lonami/mibomi-go/nbt"

	"github.com/lonami/mibomi-go/buf"
)

const (
	chunkHeight   = 256
	sectionWidth  = 16
	sectionHeight = 16
	sectionCount  = chunkHeight / sectionHeight
	sectionSize   = sectionWidth * sectionHeight * sectionWidth
)

// Chunk is one vertical column of up to 16 sections, addressed by
// world-relative block coordinates. A nil section represents air and
// reads as block id 0 everywhere.
type Chunk struct {
	X, Z          int32
	Sections      [sectionCount]*Section
	Biome         *BiomeInfo // nil unless this was a "new" chunk
	BlockEntities []nbt.Tag
}

// Decode parses a Chunk Data payload's section run. bitMask has bit i
// set iff Sections[i] is present. overWorld selects whether each
// section carries a second, sky-light LightData. newChunk selects
// whether 256 bytes of BiomeInfo follow the last section.
func Decode(x, z int32, bitMask uint16, newChunk, overWorld bool, data []byte, blockEntities []nbt.Tag) (*Chunk, error) {
	b := buf.New(data)
	c := &Chunk{X: x, Z: z, BlockEntities: blockEntities}

	for sectionY := 0; sectionY < sectionCount; sectionY++ {
		if bitMask&(1<<uint(sectionY)) == 0 {
			continue
		}
		sec, err := readSection(b, overWorld)
		if err != nil {
			return nil, err
		}
		c.Sections[sectionY] = sec
	}

	if newChunk {
		biome, err := readBiomeInfo(b)
		if err != nil {
			return nil, err
		}
		c.Biome = biome
	}

	if b.Remaining() != 0 {
		return nil, &DecodeError{Reason: "trailing bytes after chunk sections"}
	}
	return c, nil
}

// At returns the block id at chunk-relative (x, y, z), or 0 if the
// owning section is absent.
func (c *Chunk) At(x, y, z int) int32 {
	yh, yl := y/sectionHeight, y%sectionHeight
	sec := c.Sections[yh]
	if sec == nil {
		return 0
	}
	return sec.At(x, yl, z)
}

// Set writes the block id at chunk-relative (x, y, z). It returns
// ErrAbsentSection if the owning section was never sent (i.e. is air).
func (c *Chunk) Set(x, y, z int, value int32) error {
	yh, yl := y/sectionHeight, y%sectionHeight
	sec := c.Sections[yh]
	if sec == nil {
		return ErrAbsentSection
	}
	sec.Set(x, yl, z, value)
	return nil
}
