package vanity

import "fmt"

// worker owns one generate-and-test loop. It keeps searching until it finds a
// match, observes the stop flag, or its generator fails.
type worker struct {
	id            int
	target        *Target
	gen           Generator
	progress      *Progress
	stop          *StopFlag
	batchSize     uint64
	checkInterval uint64
}

// run searches until a match, a stop, or a generation failure. It returns a
// result only for a match.
func (w *worker) run() (*Result, error) {
	for !w.stop.Stopped() {
		var local uint64
		for local < w.batchSize {
			cand, err := w.gen.Generate()
			if err != nil {
				return nil, fmt.Errorf("worker %d: generate candidate: %w", w.id, err)
			}
			local++

			if w.target.Match(cand.PublicText) {
				attempts := w.progress.Total() + local
				w.stop.Stop()
				return &Result{
					Outcome:   OutcomeMatched,
					Candidate: cand,
					Attempts:  attempts,
					WorkerID:  w.id,
				}, nil
			}

			// Partial batches are dropped on a stop; Total is advisory.
			if local%w.checkInterval == 0 && w.stop.Stopped() {
				return nil, nil
			}
		}

		w.progress.Add(w.batchSize)
		searchAttempts.Add(float64(w.batchSize))
	}
	return nil, nil
}
