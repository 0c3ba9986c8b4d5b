// Command harness reads Salsa20/Poly1305 test-vector records from stdin and
// checks them against package box and package keystream. It is an external
// test collaborator, not part of the library surface: record format is
// K/N/S/P/C/A lines (see parseLine and applyField), one record per blank-line-terminated
// group, following original_source/test.c's line format.
package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mcunacl/box/box"
	"github.com/mcunacl/box/keystream"
)

// record mirrors original_source/test.c's struct tv: one test case parsed
// from a group of K/N/S/P/C/A lines.
type record struct {
	key    []byte
	nonce  []byte // 24 bytes: 16-byte XSalsa20 prefix + 8-byte box nonce
	subkey []byte
	plain  []byte
	cipher []byte
	auth   []byte
}

func (r *record) empty() bool {
	return r.key == nil && r.nonce == nil && r.subkey == nil &&
		r.plain == nil && r.cipher == nil && r.auth == nil
}

// parseLine extracts the hex payload following a one-character field tag
// and separator, e.g. "K:00112233...". Parsing stops at the first
// non-hex-digit character, matching original_source/test.c's parse_arg.
func parseLine(line string) ([]byte, error) {
	if len(line) < 2 {
		return nil, fmt.Errorf("harness: line too short: %q", line)
	}

	hexPart := line[2:]
	end := 0
	for end < len(hexPart) && isHexDigit(hexPart[end]) {
		end++
	}
	hexPart = hexPart[:end-end%2]

	return hex.DecodeString(hexPart)
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func applyField(r *record, line string) error {
	payload, err := parseLine(line)
	if err != nil {
		return err
	}

	switch line[0] {
	case 'K':
		r.key = payload
	case 'N':
		r.nonce = payload
	case 'S':
		r.subkey = payload
	case 'P':
		r.plain = payload
	case 'C':
		r.cipher = payload
	case 'A':
		r.auth = payload
	default:
		return fmt.Errorf("harness: unrecognized field tag %q", line[0])
	}
	return nil
}

// runCase asserts the four properties original_source/test.c's test()
// function checks: subkey equality, seal ciphertext+tag equality, tamper
// rejection (with buffer left untouched), and plaintext recovery.
func runCase(w io.Writer, r *record) error {
	if len(r.key) != box.KeySize {
		return fmt.Errorf("harness: key must be %d bytes, got %d", box.KeySize, len(r.key))
	}
	if len(r.nonce) != box.ExtendedNonceSize+box.NonceSize {
		return fmt.Errorf("harness: nonce must be %d bytes, got %d",
			box.ExtendedNonceSize+box.NonceSize, len(r.nonce))
	}
	if len(r.plain) != len(r.cipher) {
		return fmt.Errorf("harness: plaintext/ciphertext length mismatch: %d vs %d",
			len(r.plain), len(r.cipher))
	}

	var key [box.KeySize]byte
	copy(key[:], r.key)

	var xnonce [box.ExtendedNonceSize]byte
	copy(xnonce[:], r.nonce[:box.ExtendedNonceSize])

	var boxNonce [box.NonceSize]byte
	copy(boxNonce[:], r.nonce[box.ExtendedNonceSize:])

	var subkey [box.KeySize]byte
	keystream.XSalsa20Subkey(&subkey, &key, &xnonce)
	if !bytes.Equal(subkey[:], r.subkey) {
		return fmt.Errorf("harness: subkey mismatch")
	}

	buf := make([]byte, len(r.plain))
	copy(buf, r.plain)

	var tag [box.AuthSize]byte
	if err := box.Seal(buf, &tag, &subkey, &boxNonce); err != nil {
		return fmt.Errorf("harness: seal: %w", err)
	}
	if !bytes.Equal(buf, r.cipher) {
		return fmt.Errorf("harness: ciphertext mismatch")
	}
	if !bytes.Equal(tag[:], r.auth) {
		return fmt.Errorf("harness: tag mismatch")
	}

	before := make([]byte, len(buf))
	copy(before, buf)

	badTag := tag
	badTag[0] ^= 1
	if err := box.Open(buf, &badTag, &subkey, &boxNonce); err == nil {
		return fmt.Errorf("harness: open accepted a tampered tag")
	}
	if !bytes.Equal(buf, before) {
		return fmt.Errorf("harness: buffer mutated after failed open")
	}

	if err := box.Open(buf, &tag, &subkey, &boxNonce); err != nil {
		return fmt.Errorf("harness: open: %w", err)
	}
	if !bytes.Equal(buf, r.plain) {
		return fmt.Errorf("harness: recovered plaintext mismatch")
	}

	fmt.Fprintf(w, "ok: length %d\n", len(r.plain))
	return nil
}

// run reads K/N/S/P/C/A records from in, checks each against package box
// and package keystream, and writes per-case progress plus a summary to
// out. It returns the number of passing cases and the total case count.
func run(in io.Reader, out io.Writer) (passed, total int) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	r := &record{}
	bad := false
	failures := 0
	cases := 0

	flush := func() {
		if bad {
			cases++
			failures++
			r, bad = &record{}, false
			return
		}
		if r.empty() {
			return
		}
		cases++
		if err := runCase(out, r); err != nil {
			fmt.Fprintln(out, err)
			failures++
		}
		r = &record{}
	}

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		if err := applyField(r, line); err != nil {
			fmt.Fprintln(out, err)
			bad = true
		}
	}
	flush()

	fmt.Fprintf(out, "%d/%d cases passed\n", cases-failures, cases)
	return cases - failures, cases
}

func main() {
	passed, total := run(os.Stdin, os.Stdout)
	if passed != total {
		os.Exit(1)
	}
}
