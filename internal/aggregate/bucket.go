// Package aggregate builds the consolidated player database. Two mutually
// exclusive strategies gather per-raw-team-code player sets: the legacy
// strategy crawls rosters (and optionally games) over a team×season matrix,
// the directory strategy walks the global player directory and filters season
// totals. The consolidator then folds either strategy's buckets into the
// canonical franchise structure.
package aggregate

import "strings"

// Record is one player as accumulated during a run. Legacy-mode records
// carry only a display name; directory-mode records carry a stable ID plus
// optional attributes.
type Record struct {
	ID         string
	Name       string
	BirthDate  string
	BirthPlace string
	Position   string
}

// Key is the identity used for deduplication: the stable ID when present,
// otherwise the case-folded display name.
func (r Record) Key() string {
	if r.ID != "" {
		return "id:" + r.ID
	}
	return "name:" + strings.ToLower(r.Name)
}

// Buckets maps a raw team code (current or historical) to the set of
// players accumulated for it, keyed by Record identity. A Buckets value is
// owned by exactly one strategy run and mutated only by it.
type Buckets map[string]map[string]Record

// Add inserts a record into the team's set. The first record for an identity
// wins; later duplicates are ignored.
func (b Buckets) Add(teamCode string, rec Record) {
	set, ok := b[teamCode]
	if !ok {
		set = make(map[string]Record)
		b[teamCode] = set
	}
	key := rec.Key()
	if _, exists := set[key]; !exists {
		set[key] = rec
	}
}

// Has reports whether the team's bucket already holds the record's identity.
func (b Buckets) Has(teamCode string, rec Record) bool {
	_, ok := b[teamCode][rec.Key()]
	return ok
}

// Count returns the number of distinct players in a team's bucket.
func (b Buckets) Count(teamCode string) int {
	return len(b[teamCode])
}
