// Package salsa20 implements the Salsa20 core permutation and its HSalsa20
// variant, the two building blocks behind the keystream generator in
// package keystream.
//
// Both operate on a 64-byte input block laid out as 16 little-endian 32-bit
// words: four constant words, eight key words, four input words (nonce and
// block counter), interleaved as "C K K K K C I I I I C K K K K C" — see
// package keystream for how callers assemble that block. Core runs the
// full 20-round Salsa20 permutation and adds the permuted state back onto
// the input, producing one Salsa20 keystream block. HCore runs the same 20
// rounds but skips the final add and emits only the 8 words used for
// XSalsa20 subkey derivation.
package salsa20

import (
	"encoding/binary"
	"math/bits"
)

// BlockSize is the size in bytes of a Salsa20 input or output block.
const BlockSize = 64

// HBlockSize is the size in bytes of an HSalsa20 output block.
const HBlockSize = 32

// Constant holds the default Salsa20 constant string "expand 32-byte k",
// split into the four 4-byte groups loaded into an input block's C-word
// slots (offsets 0..3, 20..23, 40..43, 60..63).
var Constant = [16]byte{'e', 'x', 'p', 'a', 'n', 'd', ' ', '3', '2', '-', 'b', 'y', 't', 'e', ' ', 'k'}

// quarterRound applies the four add-rotate-xor steps of one Salsa20
// quarter-round to state words a (diagonal), b, c, d (above-diagonal),
// cycling a -> d -> b -> a -> c -> b -> d -> c -> a.
func quarterRound(x *[16]uint32, a, b, c, d uint32) {
	x[b] ^= bits.RotateLeft32(x[a]+x[d], 7)
	x[c] ^= bits.RotateLeft32(x[b]+x[a], 9)
	x[d] ^= bits.RotateLeft32(x[c]+x[b], 13)
	x[a] ^= bits.RotateLeft32(x[d]+x[c], 18)
}

// doubleRound applies one column round followed by one row round, per the
// Salsa20 specification.
func doubleRound(x *[16]uint32) {
	// Columns.
	quarterRound(x, 0, 4, 8, 12)
	quarterRound(x, 5, 9, 13, 1)
	quarterRound(x, 10, 14, 2, 6)
	quarterRound(x, 15, 3, 7, 11)

	// Rows.
	quarterRound(x, 0, 1, 2, 3)
	quarterRound(x, 5, 6, 7, 4)
	quarterRound(x, 10, 11, 8, 9)
	quarterRound(x, 15, 12, 13, 14)
}

func loadWork(x *[16]uint32, blk *[BlockSize]byte) {
	for i := 0; i < 16; i++ {
		x[i] = binary.LittleEndian.Uint32(blk[i*4:])
	}
}

// Core runs the 20-round (10 double-round) Salsa20 permutation over in and
// writes state+input (32-bit wraparound add, little-endian) to out. out and
// in may alias.
func Core(out *[BlockSize]byte, in *[BlockSize]byte) {
	var x [16]uint32
	loadWork(&x, in)

	for i := 0; i < 10; i++ {
		doubleRound(&x)
	}

	for i := 0; i < 16; i++ {
		word := x[i] + binary.LittleEndian.Uint32(in[i*4:])
		binary.LittleEndian.PutUint32(out[i*4:], word)
	}
}

// HCore runs the same 20-round permutation as Core but, instead of adding
// the result back onto the input, emits 32 bytes drawn from state words
// 0, 5, 10, 15, 6, 7, 8, 9 (in that order), each stored little-endian. This
// is used exclusively for XSalsa20 subkey derivation.
func HCore(out *[HBlockSize]byte, in *[BlockSize]byte) {
	var x [16]uint32
	loadWork(&x, in)

	for i := 0; i < 10; i++ {
		doubleRound(&x)
	}

	order := [8]uint32{0, 5, 10, 15, 6, 7, 8, 9}
	for i, w := range order {
		binary.LittleEndian.PutUint32(out[i*4:], x[w])
	}
}
