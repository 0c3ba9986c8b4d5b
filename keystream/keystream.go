// Package keystream assembles Salsa20 input blocks for the box package: a
// per-call keystream block generator, plus the XSalsa20 subkey derivation
// used to extend an 8-byte nonce to 24 bytes.
//
// The block counter is a full 64-bit little-endian word. box caps messages
// at (2^16-1)*64+32 bytes (about 4MiB-32B), so the indices it passes stay
// within 16 bits.
package keystream

import (
	"encoding/binary"

	"github.com/mcunacl/box/salsa20"
)

// KeySize is the size in bytes of a Salsa20/XSalsa20 key.
const KeySize = 32

// NonceSize is the size in bytes of a plain Salsa20 nonce.
const NonceSize = 8

// XNonceSize is the size in bytes of the extended-nonce prefix consumed by
// XSalsa20Subkey. The full 24-byte XSalsa20 nonce is this prefix followed by
// an 8-byte Salsa20 nonce (NonceSize).
const XNonceSize = 16

func loadBlock(key *[KeySize]byte, i16 *[16]byte) *[salsa20.BlockSize]byte {
	var blk [salsa20.BlockSize]byte
	copy(blk[0:4], salsa20.Constant[0:4])
	copy(blk[4:20], key[0:16])
	copy(blk[20:24], salsa20.Constant[4:8])
	copy(blk[24:40], i16[:])
	copy(blk[40:44], salsa20.Constant[8:12])
	copy(blk[44:60], key[16:32])
	copy(blk[60:64], salsa20.Constant[12:16])
	return &blk
}

// Block writes the Salsa20 keystream block for the given key, 8-byte nonce
// and block index into out. index is stored little-endian as the full
// 64-bit counter word that follows the nonce in the input block.
func Block(out *[salsa20.BlockSize]byte, key *[KeySize]byte, nonce *[NonceSize]byte, index uint64) {
	var i16 [16]byte
	copy(i16[0:8], nonce[:])
	binary.LittleEndian.PutUint64(i16[8:16], index)

	blk := loadBlock(key, &i16)
	salsa20.Core(out, blk)
}

// XSalsa20Subkey derives the 32-byte XSalsa20 subkey from key and the first
// 16 bytes of an extended nonce. out and key may alias.
func XSalsa20Subkey(out *[KeySize]byte, key *[KeySize]byte, nonce16 *[XNonceSize]byte) {
	blk := loadBlock(key, nonce16)
	salsa20.HCore(out, blk)
}
