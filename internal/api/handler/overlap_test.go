package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/journeyman-data/internal/store"
)

func TestScoreOverlapWeightsSpecialization(t *testing.T) {
	doc, err := parseDocument([]byte(directoryFixture))
	require.NoError(t, err)

	gameTeams := []string{"Boston Bruins", "Chicago Blackhawks"}
	result := scoreOverlap(doc, []overlapPlayer{
		{ID: "1", Name: "Alpha One"},
		{ID: "2", Name: "Beta Two"},
	}, gameTeams)

	require.Len(t, result.Players, 2)

	// Alpha One played for 4 franchises, 2 of which are in this game.
	alpha := result.Players[0]
	assert.Equal(t, 4, alpha.TotalTeamsPlayed)
	assert.Equal(t, 2, alpha.TeamsInCurrentGame)
	assert.InDelta(t, 0.5, alpha.SpecializationRatio, 1e-9)
	assert.InDelta(t, 1.0, alpha.OverlapScore, 1e-9)
	assert.NotNil(t, alpha.PlayerInfo)

	// Beta Two is a perfect specialist: 1 of 1 teams in the game.
	beta := result.Players[1]
	assert.Equal(t, 1, beta.TotalTeamsPlayed)
	assert.Equal(t, 1, beta.TeamsInCurrentGame)
	assert.InDelta(t, 1.0, beta.SpecializationRatio, 1e-9)
	assert.InDelta(t, 1.0, beta.OverlapScore, 1e-9)

	assert.Equal(t, 2, result.PlayerCount)
	assert.InDelta(t, 2.0, result.TotalOverlapScore, 1e-9)
	assert.InDelta(t, 1.0, result.AverageOverlap, 1e-9)
}

func TestScoreOverlapUnknownPlayer(t *testing.T) {
	doc, err := parseDocument([]byte(directoryFixture))
	require.NoError(t, err)

	result := scoreOverlap(doc, []overlapPlayer{{Name: "Nobody Anywhere"}}, []string{"Boston Bruins"})

	require.Len(t, result.Players, 1)
	assert.Equal(t, 0, result.Players[0].TotalTeamsPlayed)
	assert.Zero(t, result.Players[0].OverlapScore)
	assert.Zero(t, result.TotalOverlapScore)
}

func TestScoreOverlapMatchesBareNamesCaseInsensitively(t *testing.T) {
	doc, err := parseDocument([]byte(`{"teams":{"BOS":["Alpha One"],"CHI":["alpha one"]}}`))
	require.NoError(t, err)

	result := scoreOverlap(doc, []overlapPlayer{{Name: "ALPHA ONE"}}, []string{"Boston Bruins"})

	require.Len(t, result.Players, 1)
	assert.Equal(t, 2, result.Players[0].TotalTeamsPlayed)
	assert.Equal(t, 1, result.Players[0].TeamsInCurrentGame)
}

func TestOverlapPlayerAcceptsBareString(t *testing.T) {
	var players []overlapPlayer
	require.NoError(t, json.Unmarshal([]byte(`["Alpha One", {"name":"Beta Two","id":"2"}]`), &players))
	require.Len(t, players, 2)
	assert.Equal(t, "Alpha One", players[0].Name)
	assert.Empty(t, players[0].ID)
	assert.Equal(t, "2", players[1].ID)
}

func TestCalculateOverlapValidation(t *testing.T) {
	kv := newFakeKV()
	kv.databases[store.KeyDirectory] = []byte(directoryFixture)
	h := newTestHandler(kv)

	cases := []struct {
		name string
		body string
		code string
	}{
		{"bad json", `{`, "INVALID_JSON"},
		{"no players", `{"teams":["Boston Bruins"]}`, "MISSING_PLAYERS"},
		{"no teams", `{"players":["Alpha One"]}`, "MISSING_TEAMS"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/overlap", strings.NewReader(tc.body))
			h.CalculateOverlap(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.code, decodeErrorCode(t, rec.Body.Bytes()))
		})
	}
}

func TestCalculateOverlapEndToEnd(t *testing.T) {
	kv := newFakeKV()
	kv.databases[store.KeyDirectory] = []byte(directoryFixture)
	h := newTestHandler(kv)

	body := `{"players":[{"id":"1","name":"Alpha One"}],"teams":["Boston Bruins","Chicago Blackhawks"]}`
	rec := httptest.NewRecorder()
	h.CalculateOverlap(rec, httptest.NewRequest(http.MethodPost, "/api/v1/overlap", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var result overlapResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.InDelta(t, 1.0, result.TotalOverlapScore, 1e-9)
	assert.Equal(t, 1, result.PlayerCount)
}

func TestCalculateOverlapStoreUnavailable(t *testing.T) {
	h := newTestHandler(newFakeKV())

	body := `{"players":["Alpha One"],"teams":["Boston Bruins"]}`
	rec := httptest.NewRecorder()
	h.CalculateOverlap(rec, httptest.NewRequest(http.MethodPost, "/api/v1/overlap", strings.NewReader(body)))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "STORE_ERROR", decodeErrorCode(t, rec.Body.Bytes()))
}
