package nhle

import (
	"context"
	"fmt"

	"github.com/albapepper/journeyman-data/internal/season"
)

// NameField is the localized name wrapper the API uses everywhere.
type NameField struct {
	Default string `json:"default"`
}

// NamePair is a roster or boxscore player entry.
type NamePair struct {
	FirstName NameField `json:"firstName"`
	LastName  NameField `json:"lastName"`
}

// FullName joins first and last names into the display name used for
// legacy-mode player identity.
func (p NamePair) FullName() string {
	return p.FirstName.Default + " " + p.LastName.Default
}

// Roster is a team's season roster snapshot. Any of the three position
// lists may be absent; absent means empty, not failure.
type Roster struct {
	Forwards   []NamePair `json:"forwards"`
	Defensemen []NamePair `json:"defensemen"`
	Goalies    []NamePair `json:"goalies"`
}

// Names flattens all three position lists into display names.
func (r *Roster) Names() []string {
	names := make([]string, 0, len(r.Forwards)+len(r.Defensemen)+len(r.Goalies))
	for _, lists := range [][]NamePair{r.Forwards, r.Defensemen, r.Goalies} {
		for _, p := range lists {
			names = append(names, p.FullName())
		}
	}
	return names
}

// Roster fetches the roster snapshot for a team and season.
func (c *Client) Roster(ctx context.Context, teamCode string, s season.Season) (*Roster, error) {
	url := fmt.Sprintf("%s/roster/%s/%s", c.baseURL, teamCode, s)
	var roster Roster
	if err := c.getJSON(ctx, url, &roster); err != nil {
		return nil, err
	}
	return &roster, nil
}
