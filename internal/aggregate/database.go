package aggregate

import (
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"github.com/albapepper/journeyman-data/internal/season"
	"github.com/albapepper/journeyman-data/internal/team"
)

// Entry is one player in the output artifact. Legacy-mode entries carry only
// a name and serialize as a bare string; directory-mode entries serialize as
// an object. Consumers match by id first, then by case-insensitive name, so
// both fields survive serialization when present.
type Entry struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	BirthDate  string `json:"birth_date,omitempty"`
	BirthPlace string `json:"birth_place,omitempty"`
	Position   string `json:"position,omitempty"`
}

// MarshalJSON emits a bare name string for ID-less (legacy mode) entries and
// a full object otherwise. The two shapes are never mixed in one run.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.ID == "" {
		return json.Marshal(e.Name)
	}
	type entry Entry // drop the method to avoid recursion
	return json.Marshal(entry(e))
}

// UnmarshalJSON accepts both shapes, so published artifacts of either mode
// can be read back.
func (e *Entry) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		e.Name = s
		return nil
	}
	type entry Entry
	return json.Unmarshal(b, (*entry)(e))
}

// Database is the output artifact. Every current franchise gets a key,
// even when its list is empty, plus run metadata.
type Database struct {
	Teams          map[string][]Entry `json:"teams"`
	GeneratedAt    string             `json:"generated_at"`
	SeasonsCovered []string           `json:"seasons_covered"`
}

// Consolidate folds raw per-code buckets into the canonical franchise
// structure. Buckets whose code cannot be canonicalized are discarded with a
// warning. Each franchise's set becomes a list sorted ascending by display
// name, deduplicated by Record identity.
func Consolidate(buckets Buckets, seasons []season.Season, now time.Time, logger *slog.Logger) *Database {
	if logger == nil {
		logger = slog.Default()
	}

	merged := make(map[string]map[string]Record, len(team.CurrentCodes))
	for _, code := range team.CurrentCodes {
		merged[code] = make(map[string]Record)
	}

	// Buckets fold in sorted raw-code order so that when two raw codes feed
	// the same franchise with attribute-divergent duplicates, the same record
	// wins on every run.
	rawCodes := make([]string, 0, len(buckets))
	for rawCode := range buckets {
		rawCodes = append(rawCodes, rawCode)
	}
	sort.Strings(rawCodes)

	for _, rawCode := range rawCodes {
		set := buckets[rawCode]
		current, ok := team.Canonicalize(rawCode)
		if !ok {
			logger.Warn("No franchise mapping for team code, dropping bucket",
				"team", rawCode, "players", len(set))
			continue
		}
		for key, rec := range set {
			if _, exists := merged[current][key]; !exists {
				merged[current][key] = rec
			}
		}
		if rawCode != current {
			logger.Info("Consolidated historical team", "from", rawCode, "into", current, "players", len(set))
		}
	}

	teams := make(map[string][]Entry, len(merged))
	for code, set := range merged {
		entries := make([]Entry, 0, len(set))
		for _, rec := range set {
			entries = append(entries, Entry{
				ID:         rec.ID,
				Name:       rec.Name,
				BirthDate:  rec.BirthDate,
				BirthPlace: rec.BirthPlace,
				Position:   rec.Position,
			})
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Name != entries[j].Name {
				return entries[i].Name < entries[j].Name
			}
			return entries[i].ID < entries[j].ID
		})
		teams[code] = entries
	}

	return &Database{
		Teams:          teams,
		GeneratedAt:    now.UTC().Format(time.RFC3339),
		SeasonsCovered: season.Strings(seasons),
	}
}
