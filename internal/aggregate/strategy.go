package aggregate

import "context"

// Strategy is one of the two alternative gathering algorithms. Exactly one
// strategy runs per pipeline invocation; both produce the same bucket shape
// for the consolidator.
type Strategy interface {
	// Name identifies the strategy in logs and mode selection.
	Name() string

	// Gather runs the crawl and returns the accumulated per-raw-code player
	// buckets. Per-unit fetch failures are recorded in the Result, never
	// returned as an error; the run completes with whatever succeeded.
	Gather(ctx context.Context) (Buckets, *Result)
}
