// Package vanity provides a concurrent search engine for "vanity" keys: keypairs
// whose textual public key contains an operator-chosen substring.
//
// The engine is a brute-force generate-and-test loop. A pool of workers repeatedly
// asks a Generator for a fresh random keypair, tests the encoded public text
// against the target, and stops as soon as one of them matches or the search is
// cancelled. Generated keys are ordinary independently random keypairs; the
// pattern is a cosmetic filter applied after generation.
//
// Basic Usage:
//
//	gen, _ := keygen.New(keygen.Ed25519)
//	client := vanity.NewClient(gen)
//	result, err := client.Search(ctx, "AAAA")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if result.Outcome == vanity.OutcomeMatched {
//		fmt.Printf("%s after %d attempts\n", result.Candidate.PublicText, result.Attempts)
//	}
//
// Customizing the search (defaults are sensible; override as needed):
//
//	cfg := vanity.DefaultSearchConfig()
//	cfg.CaseSensitive = false
//	cfg.Workers = 8
//	client := vanity.NewClient(gen).
//		WithConfig(cfg).
//		WithReporter(progress.NewText(os.Stdout, true))
//
// Cancellation:
//
// Every search owns a StopFlag. The first matching worker latches it, and so does
// cancellation of the context passed to Client.Search (Ctrl+C, a timeout). Workers
// re-check the flag every CheckInterval attempts, so a stop request is honoured
// after at most that many further attempts per worker.
//
// The lower level pieces (Engine, Progress, StopFlag, Target, Matches) are exported
// so the engine can be driven and tested without the Client.
package vanity
