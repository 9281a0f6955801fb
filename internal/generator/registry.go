package generator

import "fmt"

// Schemes lists the supported body schemes.
var Schemes = []string{"crockford128", "cuid2", "ulid", "ksuid", "nanoid", "uuid"}

// New returns a Generator for the named scheme, minting identifiers with the
// given prefix. nanoSize and nanoAlphabet only apply to the nanoid scheme.
func New(scheme, prefix string, nanoSize int, nanoAlphabet string) (Generator, error) {
	switch scheme {
	case "crockford128":
		return NewCrockfordGenerator(prefix), nil
	case "cuid2":
		return NewCuid2Generator(prefix), nil
	case "ulid":
		return NewULIDGenerator(prefix), nil
	case "ksuid":
		return NewKSUIDGenerator(prefix), nil
	case "nanoid":
		return NewNanoIDGenerator(prefix, nanoSize, nanoAlphabet)
	case "uuid":
		return NewUUIDGenerator(prefix), nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q", scheme)
	}
}
