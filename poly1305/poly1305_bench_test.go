package poly1305

import (
	"crypto/rand"
	"testing"
)

var (
	benchR    [16]byte
	benchS    [16]byte
	benchData = make([]byte, 1024)
)

func init() {
	var key [32]byte
	rand.Read(key[:])
	copy(benchR[:], key[:16])
	copy(benchS[:], key[16:])
	PrepareR(&benchR)
	rand.Read(benchData)
}

func BenchmarkEval_1K(b *testing.B) {
	var tag [TagSize]byte
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Eval(&tag, &benchR, &benchS, benchData)
	}
}

func BenchmarkEval_64B(b *testing.B) {
	var tag [TagSize]byte
	data := benchData[:64]
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Eval(&tag, &benchR, &benchS, data)
	}
}
