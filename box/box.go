// Package box implements a NaCl-secretbox-style authenticated encryption
// composer: Salsa20 for confidentiality, Poly1305 for integrity, combined
// encrypt-then-MAC. It is grounded directly on original_source/box.c's
// crypto_box/crypto_box_open, generalized from fixed 8-bit buffers to Go
// slices and fixed-size key/nonce/tag arrays.
//
// Seal and Open both work in place on the caller's buffer: Seal overwrites
// plaintext with ciphertext, Open overwrites ciphertext with plaintext (or
// leaves the buffer untouched on authentication failure). Neither allocates.
package box

import (
	"github.com/mcunacl/box/keystream"
	"github.com/mcunacl/box/poly1305"
)

// KeySize is the size in bytes of a Seal/Open key.
const KeySize = keystream.KeySize

// NonceSize is the size in bytes of a Seal/Open nonce.
const NonceSize = keystream.NonceSize

// AuthSize is the size in bytes of a Seal/Open authentication tag.
const AuthSize = poly1305.TagSize

// ExtendedNonceSize is the size in bytes of the XSalsa20 extended nonce
// prefix consumed by keystream.XSalsa20Subkey.
const ExtendedNonceSize = keystream.XNonceSize

// MaxMessageLen is the largest message Seal/Open will accept. It keeps the
// keystream block index within 16 bits: the message takes the last 32
// bytes of block 0 plus at most 2^16-1 full 64-byte blocks, for
// (2^16-1)*64+32 bytes total.
const MaxMessageLen = (1<<16-1)*64 + 32

func block0(key *[KeySize]byte, nonce *[NonceSize]byte) [64]byte {
	var ks [64]byte
	keystream.Block(&ks, key, nonce, 0)
	return ks
}

// mix XORs src into dst in place. len(src) must be >= len(dst).
func mix(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// crypt XORs the Salsa20 keystream for (key, nonce) into m in place,
// following the block-0 offset-by-32 convention shared by Seal and Open.
func crypt(m []byte, key *[KeySize]byte, nonce *[NonceSize]byte) {
	ks := block0(key, nonce)

	if len(m) <= 32 {
		mix(m, ks[32:32+len(m)])
		return
	}

	mix(m[:32], ks[32:64])
	rest := m[32:]
	var idx uint64 = 1

	for len(rest) > 64 {
		var blk [64]byte
		keystream.Block(&blk, key, nonce, idx)
		idx++
		mix(rest[:64], blk[:])
		rest = rest[64:]
	}

	var blk [64]byte
	keystream.Block(&blk, key, nonce, idx)
	mix(rest, blk[:len(rest)])
}

// macKey regenerates keystream block 0 and splits it into the clamped
// Poly1305 multiplier r and additive nonce s.
func macKey(key *[KeySize]byte, nonce *[NonceSize]byte) (r, s [16]byte) {
	ks := block0(key, nonce)
	copy(r[:], ks[0:16])
	copy(s[:], ks[16:32])
	poly1305.PrepareR(&r)
	return r, s
}

// Seal encrypts m in place under key and nonce and writes the 16-byte
// authentication tag to tag. The tag covers the ciphertext, not the
// plaintext — MAC follows encryption.
func Seal(m []byte, tag *[AuthSize]byte, key *[KeySize]byte, nonce *[NonceSize]byte) error {
	if len(m) > MaxMessageLen {
		return MessageSizeError(len(m))
	}

	crypt(m, key, nonce)

	r, s := macKey(key, nonce)
	poly1305.Eval(tag, &r, &s, m)
	return nil
}

// Open verifies m (in place, holding ciphertext) against tag under key and
// nonce. On success it decrypts m in place and returns nil. On failure it
// returns an AuthenticationError and leaves m untouched — no partial
// decryption is ever exposed.
func Open(m []byte, tag *[AuthSize]byte, key *[KeySize]byte, nonce *[NonceSize]byte) error {
	if len(m) > MaxMessageLen {
		return MessageSizeError(len(m))
	}

	r, s := macKey(key, nonce)

	var computed [AuthSize]byte
	poly1305.Eval(&computed, &r, &s, m)

	if !poly1305.Compare(&computed, tag) {
		return AuthenticationError{}
	}

	crypt(m, key, nonce)
	return nil
}
