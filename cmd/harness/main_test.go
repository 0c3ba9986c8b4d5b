package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_VectorsFile(t *testing.T) {
	f, err := os.Open("../../testdata/vectors.txt")
	assert.NoError(t, err)
	defer f.Close()

	var out bytes.Buffer
	passed, total := run(f, &out)

	assert.Equal(t, total, passed)
	assert.Greater(t, total, 0)
	assert.Contains(t, out.String(), "cases passed")
}

func TestRun_RejectsLengthMismatch(t *testing.T) {
	in := bytes.NewBufferString(
		"K:0000000000000000000000000000000000000000000000000000000000000000\n" +
			"N:000000000000000000000000000000000000000000000000\n" +
			"S:351f86faa3b988468a850122b65b0acece9c4826806aeee63de9c0da2bd7f91e\n" +
			"P:00\n" +
			"C:\n" +
			"A:6aa52cee9c330bc7a1a8e6440ccf9035\n" +
			"\n",
	)

	var out bytes.Buffer
	passed, total := run(in, &out)
	assert.Equal(t, 1, total)
	assert.Equal(t, 0, passed)
}

func TestParseLine(t *testing.T) {
	got, err := parseLine("K:deadbeef")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, got)

	got, err = parseLine("P:")
	assert.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseLine("K")
	assert.Error(t, err)
}
