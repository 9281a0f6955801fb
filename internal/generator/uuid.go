package generator

import (
	"fmt"

	"github.com/google/uuid"
)

// UUIDGenerator mints prefixed UUID v4 identifiers.
type UUIDGenerator struct {
	prefix string
}

// NewUUIDGenerator creates a new UUIDGenerator for the given prefix.
func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

func (g *UUIDGenerator) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate UUID: %w", err)
	}
	return join(g.prefix, id.String()), nil
}

func (g *UUIDGenerator) GenerateBatch(count int) ([]string, error) {
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

func (g *UUIDGenerator) Validate(id string) (bool, string) {
	body, err := stripPrefix(g.prefix, id)
	if err != nil {
		return false, err.Error()
	}
	parsed, err := uuid.Parse(body)
	if err != nil {
		return false, fmt.Sprintf("invalid UUID body: %v", err)
	}
	if parsed.Version() != 4 {
		return false, fmt.Sprintf("expected UUID v4, got v%d", parsed.Version())
	}
	return true, ""
}

func (g *UUIDGenerator) Parse(id string) (*ParseResult, error) {
	body, err := stripPrefix(g.prefix, id)
	if err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID body: %w", err)
	}

	return &ParseResult{
		Prefix:     g.prefix,
		Body:       body,
		Canonical:  join(g.prefix, parsed.String()),
		BodyLength: int32(len(body)),
	}, nil
}
