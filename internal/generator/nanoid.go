package generator

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	DefaultNanoIDSize     = 21
	DefaultNanoIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NanoIDGenerator mints prefixed NanoID identifiers with configurable size
// and alphabet. '_' and '-' are excluded from the default alphabet so the
// prefix separator stays unambiguous.
type NanoIDGenerator struct {
	prefix   string
	size     int
	alphabet string
}

// NewNanoIDGenerator creates a new NanoIDGenerator.
// size must be between 1 and 256. alphabet must have at least 2 characters.
func NewNanoIDGenerator(prefix string, size int, alphabet string) (*NanoIDGenerator, error) {
	if size < 1 || size > 256 {
		return nil, fmt.Errorf("nanoid size must be between 1 and 256, got %d", size)
	}
	if len(alphabet) < 2 {
		return nil, fmt.Errorf("nanoid alphabet must have at least 2 characters, got %d", len(alphabet))
	}
	return &NanoIDGenerator{
		prefix:   prefix,
		size:     size,
		alphabet: alphabet,
	}, nil
}

func (g *NanoIDGenerator) Generate() (string, error) {
	id, err := gonanoid.Generate(g.alphabet, g.size)
	if err != nil {
		return "", fmt.Errorf("failed to generate NanoID: %w", err)
	}
	return join(g.prefix, id), nil
}

func (g *NanoIDGenerator) GenerateBatch(count int) ([]string, error) {
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

func (g *NanoIDGenerator) Validate(id string) (bool, string) {
	body, err := stripPrefix(g.prefix, id)
	if err != nil {
		return false, err.Error()
	}
	if len(body) != g.size {
		return false, fmt.Sprintf("expected body length %d, got %d", g.size, len(body))
	}
	for _, c := range body {
		if !strings.ContainsRune(g.alphabet, c) {
			return false, fmt.Sprintf("character '%c' not in alphabet", c)
		}
	}
	return true, ""
}

func (g *NanoIDGenerator) Parse(id string) (*ParseResult, error) {
	valid, reason := g.Validate(id)
	if !valid {
		return nil, fmt.Errorf("invalid NanoID: %s", reason)
	}
	body, _ := stripPrefix(g.prefix, id)

	return &ParseResult{
		Prefix:     g.prefix,
		Body:       body,
		Canonical:  id,
		BodyLength: int32(len(body)),
	}, nil
}
