package keystream

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlock_KnownVector(t *testing.T) {
	var key [KeySize]byte
	key[0] = 0x80
	var nonce [NonceSize]byte

	want, err := hex.DecodeString(
		"e3be8fdd8beca2e3ea8ef9475b29a6e" +
			"7003951e1097a5c38d23b7a5fad9f68" +
			"44b22c97559e2723c7cbbd3fe4fc8d9" +
			"a0744652a83e72a9c461876af4d7ef1a117",
	)
	assert.NoError(t, err)

	var out [64]byte
	Block(&out, &key, &nonce, 0)
	assert.Equal(t, want, out[:])
}

func TestBlock_CounterAdvancesOutput(t *testing.T) {
	var key [KeySize]byte
	var nonce [NonceSize]byte

	var blk0, blk1 [64]byte
	Block(&blk0, &key, &nonce, 0)
	Block(&blk1, &key, &nonce, 1)
	assert.NotEqual(t, blk0[:], blk1[:])
}

func TestXSalsa20Subkey_KnownVector(t *testing.T) {
	key, err := hex.DecodeString("1b27556473e985d462cd51197a9a46c76009549eac6474f206c4ee0844f68389")
	assert.NoError(t, err)
	assert.Len(t, key, 32)

	// First 16 bytes of the canonical XSalsa20 24-byte nonce example.
	nonce16, err := hex.DecodeString("69696ee955b62b73cd62bda875fc73d6")
	assert.NoError(t, err)
	assert.Len(t, nonce16, 16)

	want, err := hex.DecodeString("dc908dda0b9344a953629b733820778880f3ceb421bb61b91cbd4c3e66256ce4")
	assert.NoError(t, err)
	assert.Len(t, want, 32)

	var k [KeySize]byte
	copy(k[:], key)
	var n16 [XNonceSize]byte
	copy(n16[:], nonce16)

	var out [KeySize]byte
	XSalsa20Subkey(&out, &k, &n16)
	assert.Equal(t, want, out[:])
}

func TestXSalsa20Subkey_AliasesKey(t *testing.T) {
	var key [KeySize]byte
	for i := range key {
		key[i] = byte(i)
	}
	var nonce16 [XNonceSize]byte
	for i := range nonce16 {
		nonce16[i] = byte(i + 1)
	}

	var separate [KeySize]byte
	XSalsa20Subkey(&separate, &key, &nonce16)

	aliased := key
	XSalsa20Subkey(&aliased, &aliased, &nonce16)

	assert.Equal(t, separate, aliased)
}
