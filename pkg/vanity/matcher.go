package vanity

import "bytes"

// Matches reports whether needle occurs in haystack.
//
// With caseSensitive set the search is an exact byte substring search. Otherwise
// ASCII letters compare without regard to case; bytes outside A-Z/a-z must match
// exactly. An empty needle matches any haystack.
func Matches(haystack, needle []byte, caseSensitive bool) bool {
	if caseSensitive {
		return Contains(haystack, needle)
	}
	return ContainsFold(haystack, needle)
}

// Contains is the case-sensitive matcher.
func Contains(haystack, needle []byte) bool {
	if len(needle) > len(haystack) {
		return false
	}
	return bytes.Index(haystack, needle) >= 0
}

// ContainsFold is the ASCII case-insensitive matcher.
//
// It never lower-cases the haystack. Candidate start positions are located by
// scanning for the first needle byte in either case, then the rest of the needle
// is verified byte by byte. A failed verification restarts the scan one byte
// later; haystacks are encoded public keys, so the naive restart is cheap.
func ContainsFold(haystack, needle []byte) bool {
	n := len(needle)
	if n == 0 {
		return true
	}
	if n > len(haystack) {
		return false
	}

	lower := toLower(needle[0])
	upper := toUpper(needle[0])
	last := len(haystack) - n

	for start := 0; start <= last; {
		window := haystack[start : last+1]
		var off int
		if lower == upper {
			off = bytes.IndexByte(window, lower)
		} else {
			off = indexEither(window, lower, upper)
		}
		if off < 0 {
			return false
		}

		pos := start + off
		if equalFold(haystack[pos+1:pos+n], needle[1:]) {
			return true
		}
		start = pos + 1
	}
	return false
}

// indexEither returns the index of the first occurrence of a or b in s.
func indexEither(s []byte, a, b byte) int {
	i := bytes.IndexByte(s, a)
	if i == 0 {
		return 0
	}
	// Only the prefix before the first a can hold an earlier b.
	limit := s
	if i > 0 {
		limit = s[:i]
	}
	if j := bytes.IndexByte(limit, b); j >= 0 {
		return j
	}
	return i
}

// equalFold compares equal-length byte slices with ASCII case folding.
func equalFold(a, b []byte) bool {
	for i := range b {
		if toLower(a[i]) != toLower(b[i]) {
			return false
		}
	}
	return true
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// Target is an immutable search pattern. For case-insensitive searches the
// lower-cased copy is derived once by NewTarget and shared by every worker.
type Target struct {
	pattern       string
	needle        []byte
	caseSensitive bool
}

// NewTarget validates and prepares a search pattern.
func NewTarget(pattern string, caseSensitive bool) (*Target, error) {
	if pattern == "" {
		return nil, ErrEmptyTarget
	}
	needle := []byte(pattern)
	if !caseSensitive {
		for i, b := range needle {
			needle[i] = toLower(b)
		}
	}
	return &Target{
		pattern:       pattern,
		needle:        needle,
		caseSensitive: caseSensitive,
	}, nil
}

// Pattern returns the pattern as supplied by the operator.
func (t *Target) Pattern() string { return t.pattern }

// CaseSensitive reports the matching mode.
func (t *Target) CaseSensitive() bool { return t.caseSensitive }

// Match tests an encoded public key against the target.
func (t *Target) Match(text []byte) bool {
	if t.caseSensitive {
		return Contains(text, t.needle)
	}
	return ContainsFold(text, t.needle)
}
