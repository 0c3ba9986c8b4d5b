// Package poly1305 implements the Poly1305 one-time message authenticator
// using byte-limb (8-bit) arithmetic instead of the 26-bit or 64-bit limbs
// typical of desktop implementations. Every accumulator is a fixed-size
// byte array, and every multiply-reduce step uses nothing wider than a
// 16-bit carry — the whole algorithm runs comfortably on an 8-bit MCU with
// no native wide-multiply instruction.
//
// r and s together form the 32-byte Poly1305 one-time key: the first 16
// bytes (clamped by PrepareR) are the multiplier r, the last 16 bytes are
// the additive nonce s. Per Poly1305's requirements, this key must never be
// reused across two different messages.
package poly1305

// TagSize is the size in bytes of a Poly1305 authentication tag.
const TagSize = 16

// PrepareR clamps r in place per the Poly1305 specification, zeroing the
// top 4 bits of every 4th byte and the bottom 2 bits of every byte that
// follows one of those. Call this once on the r half of a one-time key
// before Eval.
func PrepareR(r *[16]byte) {
	r[3] &= 15
	r[7] &= 15
	r[11] &= 15
	r[15] &= 15

	r[4] &= 252
	r[8] &= 252
	r[12] &= 252
}

// addChunk adds (2^(8*len(m)) + m) to the 17-byte accumulator x, modulo
// 2^136. len(m) must be <= 16.
func addChunk(x *[17]byte, m []byte) {
	var c uint16
	i := 0

	for ; i < len(m); i++ {
		c += uint16(x[i]) + uint16(m[i])
		x[i] = byte(c)
		c >>= 8
	}

	c += uint16(x[i]) + 1
	x[i] = byte(c)
	i++
	c >>= 8

	for ; i < 17; i++ {
		c += uint16(x[i])
		x[i] = byte(c)
		c >>= 8
	}
}

// mulModP multiplies the 17-byte accumulator x by the 16-byte clamped key
// r, reducing modulo the Poly1305 prime 2^130-5, and leaves the partially
// reduced result back in x.
func mulModP(x *[17]byte, r *[16]byte) {
	var h [33]byte

	for i := 0; i < 16; i++ {
		d := uint16(r[i])
		var c uint16
		j := 0

		for ; j < 17; j++ {
			product := d * uint16(x[j])
			k := i + j
			c += product + uint16(h[k])
			h[k] = byte(c)
			c >>= 8
		}

		for ; j+i < 33; j++ {
			k := i + j
			c += uint16(h[k])
			h[k] = byte(c)
			c >>= 8
		}
	}

	// Fold the upper 16 bytes of h into the lower 17 using 2^136 = 320
	// (mod p), i.e. 2^136 = 2^8 + 2^6 (mod p).
	c := uint16(h[0]) + uint16(h[17])<<6
	h[0] = byte(c)
	c >>= 8

	for i := 1; i < 16; i++ {
		c += uint16(h[i]) + uint16(h[i+16]) + uint16(h[i+17])<<6
		h[i] = byte(c)
		c >>= 8
	}

	c += uint16(h[16]) + uint16(h[32])
	h[16] = byte(c & 3)
	c >>= 2

	// Fold the remaining carry using 2^130 = 5 (mod p).
	c += c << 2

	for i := 0; i < 17; i++ {
		c += uint16(h[i])
		x[i] = byte(c)
		c >>= 8
	}
}

// addNonce adds the 16-byte s value to the accumulator x, modulo 2^136.
func addNonce(x *[17]byte, n *[16]byte) {
	var c uint16

	for i := 0; i < 16; i++ {
		c += uint16(x[i]) + uint16(n[i])
		x[i] = byte(c)
		c >>= 8
	}

	x[16] = byte(c)
}

// reduce takes a partially reduced accumulator h (h < 2p) and writes
// out = h mod p, in constant time.
func reduce(out *[TagSize]byte, h *[17]byte) {
	c := uint16(5)

	for i := 0; i < 16; i++ {
		c += uint16(h[i])
		out[i] = byte(c)
		c >>= 8
	}

	c += uint16(h[16])
	c -= 4
	isNegative := byte(0) - byte((c>>15)&1)

	for i := 0; i < 16; i++ {
		out[i] ^= isNegative & (h[i] ^ out[i])
	}
}

// Eval computes the Poly1305 tag of msg under the clamped multiplier r and
// additive nonce s, writing it to out.
func Eval(out *[TagSize]byte, r *[16]byte, s *[16]byte, msg []byte) {
	var h [17]byte

	for len(msg) > 16 {
		addChunk(&h, msg[:16])
		mulModP(&h, r)
		msg = msg[16:]
	}

	if len(msg) > 0 {
		addChunk(&h, msg)
		mulModP(&h, r)
	}

	addNonce(&h, s)
	reduce(out, &h)
}

// Compare reports whether a and b are equal, in constant time with respect
// to the position of any differing byte.
func Compare(a, b *[TagSize]byte) bool {
	var x byte
	for i := 0; i < TagSize; i++ {
		x |= a[i] ^ b[i]
	}
	return x == 0
}
