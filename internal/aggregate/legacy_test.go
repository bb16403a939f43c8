package aggregate

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/journeyman-data/internal/provider/nhle"
	"github.com/albapepper/journeyman-data/internal/season"
)

// newMockedClient returns a zero-delay client whose requests hit httpmock.
// Unregistered URLs fail, which exercises the non-fatal failure paths for
// the rest of the team×season matrix.
func newMockedClient(t *testing.T) *nhle.Client {
	t.Helper()
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
	return nhle.NewClient(0, discardLogger())
}

func TestLegacyStrategy_RosterFoldsIntoFranchise(t *testing.T) {
	client := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodGet, nhle.BaseURL+"/roster/ATL/20102011",
		httpmock.NewStringResponder(http.StatusOK, `{
			"forwards": [{"firstName": {"default": "John"}, "lastName": {"default": "Doe"}}]
		}`))

	seasons, err := season.Range(2010, 2010)
	require.NoError(t, err)

	strategy := NewLegacyStrategy(client, seasons, false, discardLogger())
	buckets, result := strategy.Gather(context.Background())

	assert.Equal(t, 1, result.RostersFetched)
	assert.Equal(t, 1, buckets.Count("ATL"))

	db := Consolidate(buckets, seasons, time.Now(), discardLogger())
	require.Len(t, db.Teams["WPG"], 1)
	assert.Equal(t, "John Doe", db.Teams["WPG"][0].Name)
	assert.NotContains(t, db.Teams, "ATL")
}

func TestLegacyStrategy_FailuresContributeNothing(t *testing.T) {
	client := newMockedClient(t)

	// No responders at all: every roster fetch fails.
	seasons, err := season.Range(2015, 2015)
	require.NoError(t, err)

	strategy := NewLegacyStrategy(client, seasons, false, discardLogger())
	buckets, result := strategy.Gather(context.Background())

	assert.Empty(t, buckets)
	assert.NotEmpty(t, result.Errors)
	assert.Equal(t, 0, result.RostersFetched)

	// The output still carries every franchise with an empty list.
	db := Consolidate(buckets, seasons, time.Now(), discardLogger())
	assert.Len(t, db.Teams, 32)
}

func TestLegacyStrategy_GameMiningAddsNonRosterPlayers(t *testing.T) {
	client := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodGet, nhle.BaseURL+"/roster/BOS/20152016",
		httpmock.NewStringResponder(http.StatusOK, `{
			"forwards": [{"firstName": {"default": "Roster"}, "lastName": {"default": "Regular"}}]
		}`))
	httpmock.RegisterResponder(http.MethodGet, nhle.BaseURL+"/club-schedule-season/BOS/20152016",
		httpmock.NewStringResponder(http.StatusOK, `{
			"games": [
				{"id": 1, "awayTeam": {"abbrev": "BOS"}, "homeTeam": {"abbrev": "MTL"}},
				{"id": 2, "awayTeam": {"abbrev": "MTL"}, "homeTeam": {"abbrev": "TOR"}}
			]
		}`))
	// Game 1 involves BOS: it carries the roster regular plus a call-up.
	httpmock.RegisterResponder(http.MethodGet, nhle.BaseURL+"/gamecenter/1/boxscore",
		httpmock.NewStringResponder(http.StatusOK, `{
			"awayTeam": {
				"skaters": [
					{"firstName": {"default": "Roster"}, "lastName": {"default": "Regular"}},
					{"firstName": {"default": "Late"}, "lastName": {"default": "Callup"}}
				]
			}
		}`))

	seasons, err := season.Range(2015, 2015)
	require.NoError(t, err)

	strategy := NewLegacyStrategy(client, seasons, true, discardLogger())
	buckets, result := strategy.Gather(context.Background())

	assert.Equal(t, 1, result.GamesMined)
	assert.Equal(t, 2, buckets.Count("BOS"))
	assert.True(t, buckets.Has("BOS", Record{Name: "Late Callup"}))

	// Game 2 does not involve BOS, so its boxscore was never requested.
	info := httpmock.GetCallCountInfo()
	assert.Zero(t, info["GET "+nhle.BaseURL+"/gamecenter/2/boxscore"])
}

func TestLegacyStrategy_GameMiningBounded(t *testing.T) {
	client := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodGet, nhle.BaseURL+"/roster/BOS/20152016",
		httpmock.NewStringResponder(http.StatusOK, `{}`))

	games := `{"games": [`
	for i := 1; i <= 15; i++ {
		if i > 1 {
			games += ","
		}
		games += `{"id": ` + strconv.Itoa(i) + `, "awayTeam": {"abbrev": "BOS"}, "homeTeam": {"abbrev": "MTL"}}`
	}
	games += `]}`
	httpmock.RegisterResponder(http.MethodGet, nhle.BaseURL+"/club-schedule-season/BOS/20152016",
		httpmock.NewStringResponder(http.StatusOK, games))

	for i := 1; i <= 15; i++ {
		httpmock.RegisterResponder(http.MethodGet, nhle.BaseURL+"/gamecenter/"+strconv.Itoa(i)+"/boxscore",
			httpmock.NewStringResponder(http.StatusOK, `{"awayTeam": {"skaters": []}}`))
	}

	seasons, err := season.Range(2015, 2015)
	require.NoError(t, err)

	strategy := NewLegacyStrategy(client, seasons, true, discardLogger())
	_, result := strategy.Gather(context.Background())

	// Only the first maxGamesPerSeason games are examined.
	assert.Equal(t, maxGamesPerSeason, result.GamesMined)
}

