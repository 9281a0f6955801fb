package generator

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/mrobakowski/humanoid/crockford"
)

// CrockfordGenerator mints prefixed identifiers whose body is a random
// 128-bit value rendered in Crockford Base32.
type CrockfordGenerator struct {
	prefix string

	mu  sync.Mutex
	rng *rand.Rand
}

// NewCrockfordGenerator creates a new CrockfordGenerator for the given prefix.
func NewCrockfordGenerator(prefix string) *CrockfordGenerator {
	return &CrockfordGenerator{
		prefix: prefix,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

func (g *CrockfordGenerator) Generate() (string, error) {
	g.mu.Lock()
	var id crockford.ID
	id.Randomize(g.rng)
	g.mu.Unlock()
	return join(g.prefix, id.String()), nil
}

func (g *CrockfordGenerator) GenerateBatch(count int) ([]string, error) {
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

func (g *CrockfordGenerator) Validate(id string) (bool, string) {
	body, err := stripPrefix(g.prefix, id)
	if err != nil {
		return false, err.Error()
	}
	if len(body) > crockford.MaxDigits {
		return false, fmt.Sprintf("body exceeds %d digits and would wrap", crockford.MaxDigits)
	}
	if _, err := crockford.Parse(body); err != nil {
		return false, err.Error()
	}
	return true, ""
}

func (g *CrockfordGenerator) Parse(id string) (*ParseResult, error) {
	body, err := stripPrefix(g.prefix, id)
	if err != nil {
		return nil, err
	}
	if len(body) > crockford.MaxDigits {
		return nil, fmt.Errorf("body exceeds %d digits and would wrap", crockford.MaxDigits)
	}
	parsed, err := crockford.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("invalid crockford body: %w", err)
	}

	return &ParseResult{
		Prefix:       g.prefix,
		Body:         body,
		Canonical:    join(g.prefix, parsed.String()),
		DecimalValue: parsed.Uint128().String(),
		BodyLength:   int32(len(body)),
	}, nil
}
