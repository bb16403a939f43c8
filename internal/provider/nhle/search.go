package nhle

import (
	"context"
	"net/url"
	"strconv"
)

// searchLimit is large enough that the single directory call returns the
// complete player universe; the endpoint does not paginate.
const searchLimit = 100000

// DirectoryPlayer is a lightweight record from the player search endpoint.
type DirectoryPlayer struct {
	PlayerID     string  `json:"playerId"`
	Name         string  `json:"name"`
	PositionCode string  `json:"positionCode"`
	LastSeasonID *string `json:"lastSeasonId"`
	Active       bool    `json:"active"`
}

// SearchAllPlayers fetches the full universe of known players in one call.
func (c *Client) SearchAllPlayers(ctx context.Context) ([]DirectoryPlayer, error) {
	params := url.Values{}
	params.Set("culture", "en-us")
	params.Set("limit", strconv.Itoa(searchLimit))
	params.Set("q", "*")

	u := c.searchURL + "/search/player?" + params.Encode()
	var players []DirectoryPlayer
	if err := c.getJSON(ctx, u, &players); err != nil {
		return nil, err
	}
	return players, nil
}
