/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package transport

import "crypto/cipher"

// cfb8 implements 8-bit CFB mode over an arbitrary block cipher. The
// standard library's crypto/cipher only offers CFB with a segment size
// equal to the cipher's block size; the login encryption handshake
// mandates the 8-bit variant, so it's built directly on the cipher.Block
// primitive instead.
//
// Keystream byte i is the first byte of Encrypt(shiftRegister); the
// register then drops its oldest byte and appends the ciphertext byte
// that resulted from this step, encrypt or decrypt alike.
type cfb8 struct {
	block   cipher.Block
	shift   []byte
	out     []byte
	decrypt bool
}

// newCFB8 returns a cipher.Stream implementing CFB-8 over block, seeded
// with iv (which must be block.BlockSize() bytes). decrypt selects
// whether XORKeyStream treats src as ciphertext (true) or plaintext
// (false); the distinction matters because the byte fed back into the
// shift register is always the ciphertext byte, never the plaintext.
func newCFB8(block cipher.Block, iv []byte, decrypt bool) cipher.Stream {
	bs := block.BlockSize()
	shift := make([]byte, bs)
	copy(shift, iv)
	return &cfb8{block: block, shift: shift, out: make([]byte, bs), decrypt: decrypt}
}

func (c *cfb8) XORKeyStream(dst, src []byte) {
	for i, in := range src {
		c.block.Encrypt(c.out, c.shift)
		var ct, pt byte
		if c.decrypt {
			ct = in
			pt = in ^ c.out[0]
			dst[i] = pt
		} else {
			pt = in
			ct = in ^ c.out[0]
			dst[i] = ct
		}
		copy(c.shift, c.shift[1:])
		c.shift[len(c.shift)-1] = ct
	}
}
