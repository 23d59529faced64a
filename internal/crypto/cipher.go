// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

const (
	// Rounds is the fixed number of substitution–permutation rounds.
	Rounds = 8

	// BlockSize is the width of the P-box in bytes.
	BlockSize = 8
)

// pbox sends the byte at position j of a complete block to position pbox[j].
var pbox = [BlockSize]int{2, 5, 1, 7, 4, 0, 3, 6}

// pboxInv is the inverse permutation, built once at init.
var pboxInv [BlockSize]int

func init() {
	for j, p := range pbox {
		pboxInv[p] = j
	}
}

// spnCipher is an 8-round substitution–permutation network over bytes.
// The plaintext is treated as its UTF-8 byte sequence and the substitution
// step wraps modulo 256, so the transform is closed over all byte values
// and exactly invertible by subtraction. Ciphertext is raw bytes; the
// storage layer is responsible for printable framing.
type spnCipher struct {
	roundKeys [][]byte
}

// NewCipher binds roundKeys to the round transform. Exactly [Rounds] keys
// are required; every key is used as a repeating byte sequence by the
// substitution step of its round. Returns [ErrWrongRoundKeyCount] on a
// mismatched key count.
func NewCipher(roundKeys []string) (Cipher, error) {
	if len(roundKeys) != Rounds {
		return nil, ErrWrongRoundKeyCount
	}

	keys := make([][]byte, Rounds)
	for i, key := range roundKeys {
		keys[i] = []byte(key)
	}

	return &spnCipher{roundKeys: keys}, nil
}

// Encrypt implements [Cipher]. Each round applies keyed substitution
// followed by the block permutation. The input slice is not modified.
func (c *spnCipher) Encrypt(plaintext []byte) []byte {
	out := make([]byte, len(plaintext))
	copy(out, plaintext)

	for round := 0; round < Rounds; round++ {
		substitute(out, c.roundKeys[round])
		out = permute(out, pbox)
	}

	return out
}

// Decrypt implements [Cipher]. Rounds are undone in reverse order, inverse
// permutation first: substitution and permutation do not commute.
func (c *spnCipher) Decrypt(ciphertext []byte) []byte {
	out := make([]byte, len(ciphertext))
	copy(out, ciphertext)

	for round := Rounds - 1; round >= 0; round-- {
		out = permute(out, pboxInv)
		unsubstitute(out, c.roundKeys[round])
	}

	return out
}

// substitute adds the key byte at position i mod len(key) to every text
// byte in place. Byte arithmetic wraps modulo 256.
func substitute(text, key []byte) {
	for i := range text {
		text[i] += key[i%len(key)]
	}
}

func unsubstitute(text, key []byte) {
	for i := range text {
		text[i] -= key[i%len(key)]
	}
}

// permute rearranges every complete BlockSize-byte block according to rule.
// A trailing partial block is copied through unpermuted, in both
// directions, so arbitrary-length input still round-trips exactly.
func permute(in []byte, rule [BlockSize]int) []byte {
	out := make([]byte, len(in))

	offset := 0
	for offset < len(in) {
		blockLen := min(BlockSize, len(in)-offset)

		if blockLen < BlockSize {
			copy(out[offset:], in[offset:offset+blockLen])
		} else {
			for j := 0; j < BlockSize; j++ {
				out[offset+rule[j]] = in[offset+j]
			}
		}

		offset += blockLen
	}

	return out
}
