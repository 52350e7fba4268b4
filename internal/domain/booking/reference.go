package booking

import (
	"fmt"
	"math/rand/v2"
	"time"
	"unicode"
)

const DefaultReferencePrefix = "HRS"

// Identifiers is the pair of human-facing codes assigned once at creation.
type Identifiers struct {
	Reference          string
	ConfirmationNumber string
}

type IdentifierGenerator interface {
	Generate(now time.Time) Identifiers
}

// RandomIdentifierGenerator produces <PREFIX>_<yyyyMMddHHmmss>_<4 digits> references
// and CONF<yyyyMMdd><6 digits> confirmation numbers.
type RandomIdentifierGenerator struct {
	prefix string
	intN   func(n int) int
}

func NewIdentifierGenerator(prefix string) (*RandomIdentifierGenerator, error) {
	if prefix == "" {
		prefix = DefaultReferencePrefix
	}
	for _, r := range prefix {
		if r > unicode.MaxASCII || !unicode.IsUpper(r) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
		}
	}
	return &RandomIdentifierGenerator{prefix: prefix, intN: rand.IntN}, nil
}

func (g *RandomIdentifierGenerator) Generate(now time.Time) Identifiers {
	now = now.UTC()
	return Identifiers{
		Reference:          fmt.Sprintf("%s_%s_%04d", g.prefix, now.Format("20060102150405"), g.intN(10_000)),
		ConfirmationNumber: fmt.Sprintf("CONF%s%06d", now.Format("20060102"), g.intN(1_000_000)),
	}
}
