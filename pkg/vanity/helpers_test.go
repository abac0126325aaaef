package vanity

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var errStubExhausted = errors.New("stub entropy exhausted")

// sequenceGenerator yields match on its hit-th call (1-based) and miss otherwise.
type sequenceGenerator struct {
	calls atomic.Uint64
	hit   uint64
	match string
	miss  string
}

func newSequenceGenerator(hit uint64, match, miss string) *sequenceGenerator {
	return &sequenceGenerator{hit: hit, match: match, miss: miss}
}

func (g *sequenceGenerator) Generate() (Candidate, error) {
	n := g.calls.Add(1)
	text := g.miss
	if n == g.hit {
		text = g.match
	}
	return Candidate{PrivateKey: n, PublicText: []byte(text)}, nil
}

// neverGenerator never produces a match.
func neverGenerator() Generator {
	var n atomic.Uint64
	return GeneratorFunc(func() (Candidate, error) {
		return Candidate{PrivateKey: n.Add(1), PublicText: []byte("ssh-ed25519 zzzzzzzz")}, nil
	})
}

// failingGenerator fails on every call.
func failingGenerator() Generator {
	return GeneratorFunc(func() (Candidate, error) {
		return Candidate{}, errStubExhausted
	})
}

// failFirstGenerator fails its first n calls, then behaves like next.
func failFirstGenerator(n uint64, next Generator) Generator {
	var calls atomic.Uint64
	return GeneratorFunc(func() (Candidate, error) {
		if calls.Add(1) <= n {
			return Candidate{}, fmt.Errorf("call %d: %w", calls.Load(), errStubExhausted)
		}
		return next.Generate()
	})
}

// asciiLower is the reference used to check the case-insensitive matcher.
func asciiLower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func testConfig(workers int) SearchConfig {
	cfg := DefaultSearchConfig()
	cfg.Workers = workers
	return cfg
}
