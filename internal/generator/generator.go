package generator

import (
	"fmt"
	"strings"
)

// Generator mints, validates, and parses prefixed identifiers
// ("<prefix>_<body>") for one entity class.
type Generator interface {
	Generate() (string, error)
	GenerateBatch(count int) ([]string, error)
	Validate(id string) (bool, string) // (valid, reason)
	Parse(id string) (*ParseResult, error)
}

// ParseResult holds the parsed fields from a prefixed identifier.
type ParseResult struct {
	Prefix        string
	Body          string
	Canonical     string // canonical rendering of the full identifier
	DecimalValue  string // crockford128/cuid2: base-10 form of the 128-bit value
	TimestampMs   int64  // ulid/ksuid: absolute unix ms
	RandomPayload string // ulid/ksuid: hex-encoded random bytes
	BodyLength    int32
}

// stripPrefix removes the required "<prefix>_" head from id.
func stripPrefix(prefix, id string) (string, error) {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok {
		return "", fmt.Errorf("missing %q prefix", prefix)
	}
	rest, ok = strings.CutPrefix(rest, "_")
	if !ok {
		return "", fmt.Errorf("missing '_' after prefix")
	}
	return rest, nil
}

func join(prefix, body string) string {
	return prefix + "_" + body
}
