package generator

import (
	"encoding/hex"
	"fmt"

	"github.com/segmentio/ksuid"
)

// KSUIDGenerator mints prefixed KSUID (K-Sortable Unique IDentifier)
// identifiers.
type KSUIDGenerator struct {
	prefix string
}

// NewKSUIDGenerator creates a new KSUIDGenerator for the given prefix.
func NewKSUIDGenerator(prefix string) *KSUIDGenerator {
	return &KSUIDGenerator{prefix: prefix}
}

func (g *KSUIDGenerator) Generate() (string, error) {
	id, err := ksuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate KSUID: %w", err)
	}
	return join(g.prefix, id.String()), nil
}

func (g *KSUIDGenerator) GenerateBatch(count int) ([]string, error) {
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

func (g *KSUIDGenerator) Validate(id string) (bool, string) {
	body, err := stripPrefix(g.prefix, id)
	if err != nil {
		return false, err.Error()
	}
	if len(body) != 27 {
		return false, fmt.Sprintf("expected body length 27, got %d", len(body))
	}
	if _, err := ksuid.Parse(body); err != nil {
		return false, fmt.Sprintf("invalid KSUID body: %v", err)
	}
	return true, ""
}

func (g *KSUIDGenerator) Parse(id string) (*ParseResult, error) {
	body, err := stripPrefix(g.prefix, id)
	if err != nil {
		return nil, err
	}
	parsed, err := ksuid.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("invalid KSUID body: %w", err)
	}

	return &ParseResult{
		Prefix:        g.prefix,
		Body:          body,
		Canonical:     join(g.prefix, parsed.String()),
		TimestampMs:   parsed.Time().UnixMilli(),
		RandomPayload: hex.EncodeToString(parsed.Payload()),
		BodyLength:    int32(len(body)),
	}, nil
}
