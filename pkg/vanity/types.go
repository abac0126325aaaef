package vanity

import "crypto"

// Candidate is one generated keypair and the canonical text form of its public half.
type Candidate struct {
	PrivateKey crypto.PrivateKey // Private half, type depends on the Generator
	PublicText []byte            // Encoded public key as tested against the target
}

// Outcome is the terminal state of a search.
type Outcome int

const (
	// OutcomeCancelled means the search stopped without a match.
	OutcomeCancelled Outcome = iota
	// OutcomeMatched means a worker found a candidate containing the target.
	OutcomeMatched
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeMatched:
		return "matched"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is produced exactly once per search.
type Result struct {
	Outcome   Outcome
	Candidate Candidate // Zero unless Outcome == OutcomeMatched
	Attempts  uint64    // Total attempts at the moment of the match
	WorkerID  int       // Worker that found the match
	SearchID  string    // Correlation id assigned by Client.Search
}

// Matched reports whether the result carries a usable key.
func (r *Result) Matched() bool {
	return r != nil && r.Outcome == OutcomeMatched
}

func cancelledResult() *Result {
	return &Result{Outcome: OutcomeCancelled, WorkerID: -1}
}
