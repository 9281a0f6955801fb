// Package crockford renders and parses unsigned 128-bit values in Crockford's
// Base32 (https://www.crockford.com/base32.html) without check digit.
//
// The canonical form is the shortest base-32 string whose value equals the
// input, except that zero renders as "0". Parsing is case-insensitive and
// accepts the Crockford aliases (O→0, I/L→1); the check-digit alphabet is
// rejected with a dedicated error.
package crockford

import (
	"fmt"
	"math/rand/v2"

	"lukechampine.com/uint128"
)

const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const (
	bits      = 128
	digitBits = 5                // log2(32)
	remBits   = bits % digitBits // 3 spare bits at the top of a 128-bit value

	// MaxDigits is the length of the longest canonical rendering
	// ("7ZZZZZZZZZZZZZZZZZZZZZZZZZ"). Inputs longer than this wrap mod 2^128.
	MaxDigits = 26
)

// ID is an unsigned 128-bit value with a Crockford Base32 textual form.
type ID struct {
	n uint128.Uint128
}

// FromUint128 wraps an existing 128-bit value.
func FromUint128(n uint128.Uint128) ID {
	return ID{n: n}
}

// From64 wraps a 64-bit value.
func From64(v uint64) ID {
	return ID{n: uint128.From64(v)}
}

// Uint128 returns the underlying 128-bit value.
func (id ID) Uint128() uint128.Uint128 {
	return id.n
}

// String returns the canonical Crockford Base32 rendering.
//
// 128 bits split into 25 full 5-bit digits plus a 3-bit remainder at the top.
// After the remainder is consumed the value is shifted left and a sentinel
// bit is planted at the lowest position; the digit loop stops when only the
// sentinel remains, which avoids both a digit counter and a buffer reversal.
func (id ID) String() string {
	x := id.n
	if x.IsZero() {
		return "0"
	}

	stop := uint128.From64(1).Lsh(bits - remBits)
	buf := make([]byte, 0, MaxDigits)

	head := x.Rsh(bits - remBits).Lo
	x = x.Lsh(remBits).Or64(1)
	if head != 0 {
		buf = append(buf, alphabet[head])
	} else {
		// Skip leading zero digits so the first emitted digit is the highest
		// nonzero 5-bit window.
		lz := uint(x.LeadingZeros())
		x = x.Lsh(lz / digitBits * digitBits)
	}

	for x != stop {
		buf = append(buf, alphabet[x.Rsh(bits-digitBits).Lo])
		x = x.Lsh(digitBits)
	}

	return string(buf)
}

// Parse folds s left-to-right into a 128-bit accumulator. The empty string
// parses to zero. Overflow is not checked: inputs longer than MaxDigits
// digits silently wrap mod 2^128.
func Parse(s string) (ID, error) {
	var n uint128.Uint128
	for _, c := range s {
		if c >= 128 {
			return ID{}, &InvalidDigitError{Digit: c}
		}
		switch v := reverse[c]; v {
		case invalidDigit:
			return ID{}, &InvalidDigitError{Digit: c}
		case checkDigit:
			return ID{}, &CheckDigitError{Digit: c}
		default:
			n = n.Lsh(digitBits).Or64(uint64(v))
		}
	}
	return ID{n: n}, nil
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

// Randomize replaces the value with 128 random bits from rng.
func (id *ID) Randomize(rng *rand.Rand) {
	id.n = uint128.New(rng.Uint64(), rng.Uint64())
}

// InvalidDigitError reports a character outside the Crockford digit, alias,
// and check-digit sets.
type InvalidDigitError struct {
	Digit rune
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid crockford base32 digit %q", e.Digit)
}

// CheckDigitError reports a character from the Crockford check-digit alphabet
// (* ~ $ = U), which this codec does not support.
type CheckDigitError struct {
	Digit rune
}

func (e *CheckDigitError) Error() string {
	return fmt.Sprintf("check digit %q is not supported", e.Digit)
}

const (
	invalidDigit = -1
	checkDigit   = -2
)

// reverse maps ASCII characters to digit values, invalidDigit, or checkDigit.
var reverse = func() [128]int8 {
	var t [128]int8
	for i := range t {
		t[i] = invalidDigit
	}

	set := func(v int8, chars ...byte) {
		for _, c := range chars {
			t[c] = v
		}
	}

	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		t[c] = int8(i)
		if c >= 'A' && c <= 'Z' {
			t[c+'a'-'A'] = int8(i)
		}
	}

	set(0, 'O', 'o')
	set(1, 'I', 'i', 'L', 'l')
	set(checkDigit, '*', '~', '$', '=', 'U', 'u')

	return t
}()
