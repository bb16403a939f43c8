package nhle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/albapepper/journeyman-data/internal/season"
)

// TeamAbbrev carries the side identifiers of a scheduled game.
type TeamAbbrev struct {
	Abbrev string `json:"abbrev"`
}

// Game is one scheduled game.
type Game struct {
	ID       int64      `json:"id"`
	AwayTeam TeamAbbrev `json:"awayTeam"`
	HomeTeam TeamAbbrev `json:"homeTeam"`
}

// Schedule is a team's season schedule in game order.
type Schedule struct {
	Games []Game `json:"games"`
}

// Involves reports whether the team played in the game.
func (g Game) Involves(teamCode string) bool {
	return g.AwayTeam.Abbrev == teamCode || g.HomeTeam.Abbrev == teamCode
}

// scheduleEndpoints lists schedule URL templates in fallback order: the
// current-generation endpoint, an alternate shape, then the legacy host.
func (c *Client) scheduleEndpoints(teamCode string, s season.Season) []string {
	return []string{
		fmt.Sprintf("%s/club-schedule-season/%s/%s", c.baseURL, teamCode, s),
		fmt.Sprintf("%s/schedule/%s/%s", c.baseURL, teamCode, s),
		fmt.Sprintf("%s/teams/%s/schedule?season=%s", c.legacyURL, teamCode, s),
	}
}

// Schedule fetches a team's season schedule, trying each endpoint shape in
// order. The first endpoint that answers 2xx and parses into the schedule
// schema wins; a 2xx body that does not parse is a soft failure and the next
// shape is tried. When every shape fails the returned error names all
// attempted URLs.
func (c *Client) Schedule(ctx context.Context, teamCode string, s season.Season) (*Schedule, error) {
	urls := c.scheduleEndpoints(teamCode, s)
	errs := make([]error, 0, len(urls))

	for _, url := range urls {
		body, err := c.get(ctx, url)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		var schedule Schedule
		if err := json.Unmarshal(body, &schedule); err != nil || schedule.Games == nil {
			errs = append(errs, &ParseError{URL: url, Err: errors.New("body does not match schedule schema")})
			continue
		}
		return &schedule, nil
	}

	return nil, fmt.Errorf("all schedule endpoints failed for %s/%s (tried %s): %w",
		teamCode, s, strings.Join(urls, ", "), errors.Join(errs...))
}
