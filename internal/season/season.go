// Package season handles NHL season codes: eight-digit identifiers formed by
// concatenating a season's start and end calendar years, e.g. 20152016.
package season

import (
	"fmt"
	"strconv"
)

// Season is an eight-digit season code as the source API spells it.
type Season string

// New builds the season code for the season starting in the given year.
func New(startYear int) Season {
	return Season(strconv.Itoa(startYear) + strconv.Itoa(startYear+1))
}

// StartYear extracts the starting calendar year from a numeric season code,
// e.g. StartYear(20152016) == 2015.
func StartYear(code int) int {
	return code / 10000
}

// Range generates one Season per start year in [start, end], inclusive.
// An invalid range is the one fatal, pre-network configuration error of a
// pipeline run.
func Range(start, end int) ([]Season, error) {
	if start > end {
		return nil, fmt.Errorf("invalid season range: start year %d after end year %d", start, end)
	}
	if start < 1917 || end > 2100 {
		return nil, fmt.Errorf("season range %d-%d outside supported bounds", start, end)
	}
	seasons := make([]Season, 0, end-start+1)
	for year := start; year <= end; year++ {
		seasons = append(seasons, New(year))
	}
	return seasons, nil
}

// Strings converts a season list for serialization into the output artifact.
func Strings(seasons []Season) []string {
	out := make([]string, len(seasons))
	for i, s := range seasons {
		out[i] = string(s)
	}
	return out
}
