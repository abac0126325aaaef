package keygen

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrImpossiblePattern is returned when a pattern contains bytes that never
// appear in the public text of a key type.
var ErrImpossiblePattern = errors.New("pattern can never match")

const (
	base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	hexAlphabet    = "0123456789abcdef"
)

// layout describes the random part of a key type's public text.
type layout struct {
	alphabet  string
	extra     string // bytes from the fixed prefix, matchable but not random
	positions int    // number of random characters
	folded    bool   // alphabet contains both letter cases
}

func layoutFor(k KeyType) (layout, error) {
	switch k {
	case Ed25519:
		// 68 base64 characters, the first 25 encode the fixed blob header.
		return layout{alphabet: base64Alphabet, extra: "-= ", positions: 43, folded: true}, nil
	case ECDSAP256:
		// 140 base64 characters, about 48 of them fixed header.
		return layout{alphabet: base64Alphabet, extra: "-= ", positions: 92, folded: true}, nil
	case Secp256k1:
		// "02" or "03" followed by the 64 hex digits of X.
		return layout{alphabet: hexAlphabet, positions: 64}, nil
	default:
		return layout{}, fmt.Errorf("%w: %d", ErrUnknownKeyType, int(k))
	}
}

func (l layout) allows(b byte, ignoreCase bool) bool {
	if strings.IndexByte(l.alphabet, b) >= 0 || strings.IndexByte(l.extra, b) >= 0 {
		return true
	}
	if ignoreCase {
		return strings.IndexByte(l.alphabet, lower(b)) >= 0 || strings.IndexByte(l.alphabet, upper(b)) >= 0
	}
	return false
}

// ValidatePattern reports whether pattern can occur in the public text of k.
func ValidatePattern(k KeyType, pattern string, ignoreCase bool) error {
	l, err := layoutFor(k)
	if err != nil {
		return err
	}
	for i := 0; i < len(pattern); i++ {
		if !l.allows(pattern[i], ignoreCase) {
			return fmt.Errorf("%w: %q at offset %d is not used by %s public keys", ErrImpossiblePattern, pattern[i], i, k)
		}
	}
	return nil
}

// Difficulty estimates the expected number of attempts needed to find pattern
// in the random part of a k public key. Impossible patterns yield +Inf; the
// estimate is never below 1.
func Difficulty(k KeyType, pattern string, ignoreCase bool) float64 {
	l, err := layoutFor(k)
	if err != nil || ValidatePattern(k, pattern, ignoreCase) != nil {
		return math.Inf(1)
	}
	if pattern == "" {
		return 1
	}

	places := l.positions - len(pattern) + 1
	if places < 1 {
		return math.Inf(1)
	}

	p := 1.0
	size := float64(len(l.alphabet))
	for i := 0; i < len(pattern); i++ {
		b := pattern[i]
		hits := 0.0
		if strings.IndexByte(l.alphabet, b) >= 0 {
			hits++
		}
		if ignoreCase && lower(b) != upper(b) {
			other := lower(b)
			if other == b {
				other = upper(b)
			}
			if strings.IndexByte(l.alphabet, other) >= 0 {
				hits++
			}
		}
		if hits == 0 {
			// Prefix-only byte such as '-': present in every key.
			continue
		}
		p *= hits / size
	}
	// Prefix bytes alone would otherwise give an estimate below one attempt.
	return math.Max(1, 1/(p*float64(places)))
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
