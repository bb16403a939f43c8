package nhle

import (
	"context"
	"fmt"
)

// BoxscoreSide is one team's player lists in a boxscore. Both lists are
// optional; absent means empty.
type BoxscoreSide struct {
	Skaters []NamePair `json:"skaters"`
	Goalies []NamePair `json:"goalies"`
}

// Names flattens skaters and goalies into display names.
func (s *BoxscoreSide) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.Skaters)+len(s.Goalies))
	for _, p := range s.Skaters {
		names = append(names, p.FullName())
	}
	for _, p := range s.Goalies {
		names = append(names, p.FullName())
	}
	return names
}

// Boxscore holds the per-side player lists of a finished game. Sides are
// optional for games the API has no detail for.
type Boxscore struct {
	AwayTeam *BoxscoreSide `json:"awayTeam"`
	HomeTeam *BoxscoreSide `json:"homeTeam"`
}

// Side returns the away or home player lists depending on which side the
// team played, or nil when the boxscore carries neither.
func (b *Boxscore) Side(game Game, teamCode string) *BoxscoreSide {
	if game.AwayTeam.Abbrev == teamCode {
		return b.AwayTeam
	}
	return b.HomeTeam
}

// Boxscore fetches the boxscore for a game.
func (c *Client) Boxscore(ctx context.Context, gameID int64) (*Boxscore, error) {
	url := fmt.Sprintf("%s/gamecenter/%d/boxscore", c.baseURL, gameID)
	var box Boxscore
	if err := c.getJSON(ctx, url, &box); err != nil {
		return nil, err
	}
	return &box, nil
}
