package nhle

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scheduleBody = `{
  "games": [
    {"id": 2015020001, "awayTeam": {"abbrev": "BOS"}, "homeTeam": {"abbrev": "MTL"}},
    {"id": 2015020002, "awayTeam": {"abbrev": "MTL"}, "homeTeam": {"abbrev": "TOR"}}
  ]
}`

func TestSchedule_FirstEndpointWins(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, BaseURL+"/club-schedule-season/MTL/20152016",
		httpmock.NewStringResponder(http.StatusOK, scheduleBody))

	schedule, err := c.Schedule(context.Background(), "MTL", "20152016")
	require.NoError(t, err)
	require.Len(t, schedule.Games, 2)
	assert.Equal(t, int64(2015020001), schedule.Games[0].ID)
	assert.Equal(t, "BOS", schedule.Games[0].AwayTeam.Abbrev)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestSchedule_FallsBackPastNonSuccessStatuses(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, BaseURL+"/club-schedule-season/MTL/20152016",
		httpmock.NewStringResponder(http.StatusNotFound, `not found`))
	httpmock.RegisterResponder(http.MethodGet, BaseURL+"/schedule/MTL/20152016",
		httpmock.NewStringResponder(http.StatusInternalServerError, `oops`))
	httpmock.RegisterResponder(http.MethodGet, LegacyBaseURL+"/teams/MTL/schedule?season=20152016",
		httpmock.NewStringResponder(http.StatusOK, scheduleBody))

	schedule, err := c.Schedule(context.Background(), "MTL", "20152016")
	require.NoError(t, err)
	assert.Len(t, schedule.Games, 2)

	// Exactly the three templates were tried, nothing beyond.
	assert.Equal(t, 3, httpmock.GetTotalCallCount())
}

func TestSchedule_UnparsableSuccessIsSoftFailure(t *testing.T) {
	c := newTestClient(t)

	// 200 with a body that is valid JSON but not the schedule schema.
	httpmock.RegisterResponder(http.MethodGet, BaseURL+"/club-schedule-season/MTL/20152016",
		httpmock.NewStringResponder(http.StatusOK, `{"message": "moved"}`))
	httpmock.RegisterResponder(http.MethodGet, BaseURL+"/schedule/MTL/20152016",
		httpmock.NewStringResponder(http.StatusOK, scheduleBody))

	schedule, err := c.Schedule(context.Background(), "MTL", "20152016")
	require.NoError(t, err)
	assert.Len(t, schedule.Games, 2)
	assert.Equal(t, 2, httpmock.GetTotalCallCount())
}

func TestSchedule_AllEndpointsFail(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, BaseURL+"/club-schedule-season/MTL/20152016",
		httpmock.NewStringResponder(http.StatusNotFound, ``))
	httpmock.RegisterResponder(http.MethodGet, BaseURL+"/schedule/MTL/20152016",
		httpmock.NewStringResponder(http.StatusNotFound, ``))
	httpmock.RegisterResponder(http.MethodGet, LegacyBaseURL+"/teams/MTL/schedule?season=20152016",
		httpmock.NewStringResponder(http.StatusBadGateway, ``))

	_, err := c.Schedule(context.Background(), "MTL", "20152016")
	require.Error(t, err)

	// The aggregate error names every attempted URL.
	assert.Contains(t, err.Error(), BaseURL+"/club-schedule-season/MTL/20152016")
	assert.Contains(t, err.Error(), BaseURL+"/schedule/MTL/20152016")
	assert.Contains(t, err.Error(), LegacyBaseURL+"/teams/MTL/schedule?season=20152016")
}

func TestGame_Involves(t *testing.T) {
	g := Game{AwayTeam: TeamAbbrev{Abbrev: "BOS"}, HomeTeam: TeamAbbrev{Abbrev: "MTL"}}
	assert.True(t, g.Involves("BOS"))
	assert.True(t, g.Involves("MTL"))
	assert.False(t, g.Involves("TOR"))
}
