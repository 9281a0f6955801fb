package generator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// ULIDGenerator mints prefixed ULID (Universally Unique Lexicographically
// Sortable Identifier) identifiers.
type ULIDGenerator struct {
	prefix string
}

// NewULIDGenerator creates a new ULIDGenerator for the given prefix.
func NewULIDGenerator(prefix string) *ULIDGenerator {
	return &ULIDGenerator{prefix: prefix}
}

func (g *ULIDGenerator) Generate() (string, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return "", fmt.Errorf("failed to generate ULID: %w", err)
	}
	return join(g.prefix, id.String()), nil
}

func (g *ULIDGenerator) GenerateBatch(count int) ([]string, error) {
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := g.Generate()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (g *ULIDGenerator) Validate(id string) (bool, string) {
	body, err := stripPrefix(g.prefix, id)
	if err != nil {
		return false, err.Error()
	}
	if len(body) != 26 {
		return false, fmt.Sprintf("expected body length 26, got %d", len(body))
	}
	if _, err := ulid.Parse(body); err != nil {
		return false, fmt.Sprintf("invalid ULID body: %v", err)
	}
	return true, ""
}

func (g *ULIDGenerator) Parse(id string) (*ParseResult, error) {
	body, err := stripPrefix(g.prefix, id)
	if err != nil {
		return nil, err
	}
	parsed, err := ulid.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("invalid ULID body: %w", err)
	}

	return &ParseResult{
		Prefix:        g.prefix,
		Body:          body,
		Canonical:     join(g.prefix, parsed.String()),
		TimestampMs:   int64(parsed.Time()),
		RandomPayload: hex.EncodeToString(parsed.Entropy()),
		BodyLength:    int32(len(body)),
	}, nil
}
