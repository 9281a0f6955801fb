// Package humanoid provides human-readable, type-tagged identifiers of the
// form "<prefix>_<body>", where the prefix names the entity class (for
// example "cus" or "usr") and the body is any textual identifier.
//
// The prefix is carried as a zero-sized tag type, so identifiers for
// different entity classes are different Go types and cannot be mixed up:
//
//	type CustomerTag struct{}
//
//	func (CustomerTag) Prefix() string { return "cus" }
//
//	type CustomerID = humanoid.ID[CustomerTag, cuid2.ID]
//
// Any comparable body with a String method plugs in; parsing additionally
// needs the body's pointer type to implement encoding.TextUnmarshaler, which
// the crockford and cuid2 packages do, as do ulid.ULID, ksuid.KSUID, and
// uuid.UUID.
package humanoid

import (
	"encoding"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Prefix is implemented by zero-sized tag types that name an entity class.
// The returned string must be constant for the lifetime of the type.
type Prefix interface {
	Prefix() string
}

// Body is the contract for identifier bodies.
type Body interface {
	comparable
	fmt.Stringer
}

// ID binds a prefix tag to a body at the type level. The prefix contributes
// no storage; equality compares bodies, and two IDs with different prefix
// tags are distinct types.
type ID[P Prefix, B Body] struct {
	body B
}

// From wraps a body value.
func From[P Prefix, B Body](body B) ID[P, B] {
	return ID[P, B]{body: body}
}

// Body returns the wrapped body value.
func (id ID[P, B]) Body() B {
	return id.body
}

// String renders "<prefix>_<body>".
func (id ID[P, B]) String() string {
	var p P
	return p.Prefix() + "_" + id.body.String()
}

// Hash folds the prefix and body into a 64-bit digest, so the same body under
// different prefixes hashes differently.
func (id ID[P, B]) Hash() uint64 {
	return xxhash.Sum64String(id.String())
}

// Parse requires s to start with the prefix, followed by '_', followed by a
// body the body's own parser accepts. Body parse errors are wrapped in
// *BodyError and remain matchable with errors.As.
func Parse[P Prefix, B Body](s string) (ID[P, B], error) {
	var id ID[P, B]
	var p P

	rest, ok := strings.CutPrefix(s, p.Prefix())
	if !ok {
		return id, &NoPrefixError{Prefix: p.Prefix()}
	}
	rest, ok = strings.CutPrefix(rest, "_")
	if !ok {
		return id, ErrNoUnderscore
	}
	if err := unmarshalBody(&id.body, rest); err != nil {
		return id, &BodyError{Err: err}
	}
	return id, nil
}

// ParseOptional strips the prefix if present, then a leading '_' if present,
// and parses the remainder as a body. Only body parse errors surface.
func ParseOptional[P Prefix, B Body](s string) (ID[P, B], error) {
	var id ID[P, B]
	var p P

	s = strings.TrimPrefix(s, p.Prefix())
	s = strings.TrimPrefix(s, "_")
	if err := unmarshalBody(&id.body, s); err != nil {
		return id, err
	}
	return id, nil
}

// Random samples a fresh body from rng and wraps it. The body's pointer type
// must implement Randomizer.
func Random[P Prefix, B Body](rng *rand.Rand) (ID[P, B], error) {
	var id ID[P, B]
	r, ok := any(&id.body).(Randomizer)
	if !ok {
		return id, fmt.Errorf("body type %T does not support random sampling", id.body)
	}
	r.Randomize(rng)
	return id, nil
}

// Randomizer is implemented by body pointer types that can overwrite
// themselves with a randomly sampled value.
type Randomizer interface {
	Randomize(*rand.Rand)
}

// MarshalText implements encoding.TextMarshaler; the identifier serializes
// as its rendered string.
func (id ID[P, B]) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via the required-prefix
// parser.
func (id *ID[P, B]) UnmarshalText(text []byte) error {
	parsed, err := Parse[P, B](string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func unmarshalBody[B Body](body *B, s string) error {
	u, ok := any(body).(encoding.TextUnmarshaler)
	if !ok {
		return fmt.Errorf("body type %T does not implement encoding.TextUnmarshaler", *body)
	}
	return u.UnmarshalText([]byte(s))
}

// Text is a plain-string body for identifiers whose body carries no further
// structure.
type Text string

func (t Text) String() string { return string(t) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Text) UnmarshalText(b []byte) error {
	*t = Text(b)
	return nil
}

// NoPrefixError reports an input that does not start with the expected
// prefix.
type NoPrefixError struct {
	Prefix string
}

func (e *NoPrefixError) Error() string {
	return fmt.Sprintf("missing %q prefix", e.Prefix)
}

// ErrNoUnderscore reports an input lacking the '_' separating the prefix
// from the id part.
var ErrNoUnderscore = errors.New("missing '_' separating the prefix from the id part")

// BodyError wraps an error from the body's own parser.
type BodyError struct {
	Err error
}

func (e *BodyError) Error() string {
	return "couldn't parse the id: " + e.Err.Error()
}

func (e *BodyError) Unwrap() error {
	return e.Err
}
