// Package cuid2 implements a Cuid2-style identifier: a 24-character base-36
// string whose first character is a lowercase letter, backed by an unsigned
// 128-bit value.
//
// The generator mixes process id, host fingerprint, wall time, and random
// draws through a non-cryptographic hash. The result is suitable as a
// database key in a cooperative setting; it is not a secret, not monotonic,
// and not collision-free under adversarial conditions.
package cuid2

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"lukechampine.com/uint128"
)

// Length is the exact length of the textual form.
const Length = 24

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ID is a Cuid2 identifier. The zero value renders as 24 zeros; use New,
// Generate, or Parse to obtain a meaningful one.
type ID struct {
	n uint128.Uint128
}

// Uint128 returns the underlying 128-bit value.
func (id ID) Uint128() uint128.Uint128 {
	return id.n
}

// String returns the 24-character base-36 form, left-padded with '0'.
func (id ID) String() string {
	digits := formatBase36(id.n)
	buf := make([]byte, 0, Length)
	for i := len(digits); i < Length; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, digits...)
	return string(buf)
}

// Parse accepts exactly 24 base-36 characters. Uppercase letters are
// accepted; the canonical form is lowercase.
func Parse(s string) (ID, error) {
	if len(s) != Length {
		return ID{}, &WrongLengthError{Len: len(s)}
	}
	var n uint128.Uint128
	for _, c := range s {
		var v uint64
		switch {
		case c >= '0' && c <= '9':
			v = uint64(c - '0')
		case c >= 'a' && c <= 'z':
			v = uint64(c-'a') + 10
		case c >= 'A' && c <= 'Z':
			v = uint64(c-'A') + 10
		default:
			return ID{}, &IllegalCharacterError{Char: c}
		}
		n = n.Mul64(36).Add64(v)
	}
	return ID{n: n}, nil
}

var hostname, _ = os.Hostname()

// Generate produces a fresh identifier using rng for entropy.
//
// A 64-bit digest of (pid, hostname, wall clock, random draw) forms one half
// of a 128-bit value and a second draw the other. The value is rendered in
// base-36, padded to 23 digits, prefixed with a uniformly random lowercase
// letter, and cut to 24 characters; the stored value is the one that
// round-trips through that string. Go does not expose thread identity, so the
// hostname stands in for the thread id entropy input.
func Generate(rng *rand.Rand) ID {
	var word [8]byte
	h := xxhash.New()
	binary.LittleEndian.PutUint64(word[:], uint64(os.Getpid()))
	h.Write(word[:])
	h.WriteString(hostname)
	binary.LittleEndian.PutUint64(word[:], uint64(time.Now().UnixNano()))
	h.Write(word[:])
	binary.LittleEndian.PutUint64(word[:], rng.Uint64())
	h.Write(word[:])

	hi := h.Sum64()
	lo := rng.Uint64()
	x := uint128.New(hi, lo)

	buf := make([]byte, 0, Length+2)
	buf = append(buf, 'a'+byte(rng.IntN(26)))
	digits := formatBase36(x)
	for i := len(digits); i < Length-1; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, digits...)

	id, _ := Parse(string(buf[:Length]))
	return id
}

var (
	procMu   sync.Mutex
	procRand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
)

// New generates an identifier from the process-default entropy source.
func New() ID {
	procMu.Lock()
	defer procMu.Unlock()
	return Generate(procRand)
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Randomize replaces the identifier with a freshly generated one.
func (id *ID) Randomize(rng *rand.Rand) {
	*id = Generate(rng)
}

// WrongLengthError reports an input whose length is not exactly Length.
type WrongLengthError struct {
	Len int
}

func (e *WrongLengthError) Error() string {
	return fmt.Sprintf("cuid2 must be %d characters, got %d", Length, e.Len)
}

// IllegalCharacterError reports a character outside the base-36 alphabet.
type IllegalCharacterError struct {
	Char rune
}

func (e *IllegalCharacterError) Error() string {
	return fmt.Sprintf("illegal cuid2 character %q", e.Char)
}

// formatBase36 renders n in base 36 without padding. 2^128-1 needs at most
// 25 digits.
func formatBase36(n uint128.Uint128) string {
	if n.IsZero() {
		return "0"
	}
	var buf [25]byte
	i := len(buf)
	for !n.IsZero() {
		var r uint64
		n, r = n.QuoRem64(36)
		i--
		buf[i] = alphabet[r]
	}
	return string(buf[i:])
}
