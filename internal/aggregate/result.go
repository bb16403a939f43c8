package aggregate

import "fmt"

// Result tracks counts and errors from a strategy run. Every fetch failure
// is non-fatal: it is recorded here and the unit of work that hit it simply
// contributes no data.
type Result struct {
	RostersFetched  int
	GamesMined      int
	PlayersDetailed int
	PlayersSkipped  int
	Errors          []string
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"rosters=%d games=%d details=%d skipped=%d errors=%d",
		r.RostersFetched, r.GamesMined,
		r.PlayersDetailed, r.PlayersSkipped,
		len(r.Errors),
	)
}
