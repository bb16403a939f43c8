package nhle

import (
	"context"
	"encoding/json"
	"fmt"
)

// SeasonTotal is one season line from a player's landing page. The team is
// exposed as a full display name, not a code; the pipeline maps it through
// the static name lookup.
type SeasonTotal struct {
	Season       int      `json:"season"`
	TeamName     *string  `json:"teamName"`
	LeagueAbbrev *string  `json:"leagueAbbrev"`
	Points       *int     `json:"points"`
	SavePctg     *float64 `json:"savePctg"`
}

// DraftDetails is the draft record on a player's landing page. Undrafted
// players have no draftDetails object at all.
type DraftDetails struct {
	Year        *int    `json:"year"`
	Round       *int    `json:"round"`
	PickInRound *int    `json:"pickInRound"`
	TeamAbbrev  *string `json:"teamAbbrev"`
}

// PlayerLanding is the full player detail record.
type PlayerLanding struct {
	PlayerID          json.Number   `json:"playerId"`
	FirstName         NameField     `json:"firstName"`
	LastName          NameField     `json:"lastName"`
	BirthDate         *string       `json:"birthDate"`
	BirthCity         *string       `json:"birthCity"`
	BirthCountry      *string       `json:"birthCountry"`
	Position          *string       `json:"position"`
	HeightInInches    *int          `json:"heightInInches"`
	WeightInPounds    *int          `json:"weightInPounds"`
	CurrentTeamAbbrev *string       `json:"currentTeamAbbrev"`
	DraftDetails      *DraftDetails `json:"draftDetails"`
	SeasonTotals      []SeasonTotal `json:"seasonTotals"`
}

// FullName joins first and last names into the display name.
func (p *PlayerLanding) FullName() string {
	return p.FirstName.Default + " " + p.LastName.Default
}

// BirthPlace composes "City, Country", or country alone when the city is
// absent. A city without a country is not surfaced; the source data never
// produces one.
func (p *PlayerLanding) BirthPlace() string {
	if p.BirthCountry == nil {
		return ""
	}
	if p.BirthCity != nil && *p.BirthCity != "" {
		return *p.BirthCity + ", " + *p.BirthCountry
	}
	return *p.BirthCountry
}

// PlayerLanding fetches the detail record for a player.
func (c *Client) PlayerLanding(ctx context.Context, playerID string) (*PlayerLanding, error) {
	url := fmt.Sprintf("%s/player/%s/landing", c.baseURL, playerID)
	var landing PlayerLanding
	if err := c.getJSON(ctx, url, &landing); err != nil {
		return nil, err
	}
	return &landing, nil
}
