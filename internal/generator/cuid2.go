package generator

import (
	"fmt"

	"github.com/mrobakowski/humanoid/cuid2"
)

// Cuid2Generator mints prefixed pseudo-Cuid2 identifiers.
type Cuid2Generator struct {
	prefix string
}

// NewCuid2Generator creates a new Cuid2Generator for the given prefix.
func NewCuid2Generator(prefix string) *Cuid2Generator {
	return &Cuid2Generator{prefix: prefix}
}

func (g *Cuid2Generator) Generate() (string, error) {
	return join(g.prefix, cuid2.New().String()), nil
}

func (g *Cuid2Generator) GenerateBatch(count int) ([]string, error) {
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

func (g *Cuid2Generator) Validate(id string) (bool, string) {
	body, err := stripPrefix(g.prefix, id)
	if err != nil {
		return false, err.Error()
	}
	if _, err := cuid2.Parse(body); err != nil {
		return false, err.Error()
	}
	return true, ""
}

func (g *Cuid2Generator) Parse(id string) (*ParseResult, error) {
	body, err := stripPrefix(g.prefix, id)
	if err != nil {
		return nil, err
	}
	parsed, err := cuid2.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("invalid cuid2 body: %w", err)
	}

	return &ParseResult{
		Prefix:       g.prefix,
		Body:         body,
		Canonical:    join(g.prefix, parsed.String()),
		DecimalValue: parsed.Uint128().String(),
		BodyLength:   int32(len(body)),
	}, nil
}
