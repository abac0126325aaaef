package vanity

// Generator produces candidates for the workers.
//
// Implementations must use a cryptographically secure random source, must be
// safe for concurrent use by all workers, and must encode deterministically.
// An error is treated as fatal for the calling worker only.
type Generator interface {
	Generate() (Candidate, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func() (Candidate, error)

// Generate calls f.
func (f GeneratorFunc) Generate() (Candidate, error) {
	return f()
}
