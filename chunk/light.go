/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package chunk

import "github.com/lonami/mibomi-go/buf"

const lightDataLen = sectionHeight * sectionWidth * sectionWidth / 2

// LightData holds one nibble (0-15) per block in a section: even x
// occupies the low nibble of its byte, odd x the high nibble.
type LightData struct {
	data []byte
}

func readLightData(b *buf.Buf) (*LightData, error) {
	raw, err := b.ReadN(lightDataLen)
	if err != nil {
		return nil, err
	}
	return &LightData{data: append([]byte(nil), raw...)}, nil
}

// At returns the light level at section-relative (x, y, z).
func (l *LightData) At(x, y, z int) uint8 {
	v := l.data[((y*sectionHeight+z)*sectionWidth+x)/2]
	if x&1 == 1 {
		v >>= 4
	}
	return v & 0x0f
}

// Set overwrites the light level at section-relative (x, y, z).
func (l *LightData) Set(x, y, z int, value uint8) {
	i := ((y*sectionHeight+z)*sectionWidth + x) / 2
	j := l.data[i]
	if x&1 == 1 {
		j = (j & 0x0f) | (value << 4)
	} else {
		j = (j & 0xf0) | (value & 0x0f)
	}
	l.data[i] = j
}

const biomeInfoLen = sectionWidth * sectionWidth

// BiomeInfo holds one biome id per (x, z) column in a "new" chunk.
type BiomeInfo struct {
	data []byte
}

func readBiomeInfo(b *buf.Buf) (*BiomeInfo, error) {
	raw, err := b.ReadN(biomeInfoLen)
	if err != nil {
		return nil, err
	}
	return &BiomeInfo{data: append([]byte(nil), raw...)}, nil
}

// At returns the biome id at column-relative (x, z).
func (bi *BiomeInfo) At(x, z int) uint8 {
	return bi.data[z*sectionWidth+x]
}

// Set overwrites the biome id at column-relative (x, z).
func (bi *BiomeInfo) Set(x, z int, value uint8) {
	bi.data[z*sectionWidth+x] = value
}
