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

func TestSubmitDailyMissingFields(t *testing.T) {
	h := newTestHandler(newFakeKV())

	cases := []string{
		`{"date":"2026-08-26","user_id":"u1"}`,
		`{"players":["Alpha One"],"user_id":"u1"}`,
		`{"players":["Alpha One"],"date":"2026-08-26"}`,
	}
	for _, body := range cases {
		rec := httptest.NewRecorder()
		h.SubmitDaily(rec, httptest.NewRequest(http.MethodPost, "/api/v1/submit", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "MISSING_FIELDS", decodeErrorCode(t, rec.Body.Bytes()))
	}
}

func TestSubmitDailyRejectsDuplicate(t *testing.T) {
	kv := newFakeKV()
	kv.submissions["2026-08-26_u1"] = []byte(`{}`)
	h := newTestHandler(kv)

	body := `{"players":["Alpha One"],"date":"2026-08-26","user_id":"u1"}`
	rec := httptest.NewRecorder()
	h.SubmitDaily(rec, httptest.NewRequest(http.MethodPost, "/api/v1/submit", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "already_submitted", resp["error"])
}

func TestSubmitDailyRecordsSubmission(t *testing.T) {
	kv := newFakeKV()
	kv.databases[store.KeyDirectory] = []byte(directoryFixture)
	h := newTestHandler(kv)

	body := `{"players":["Alpha One","Beta Two"],"date":"2026-08-26","user_id":"u1"}`
	rec := httptest.NewRecorder()
	h.SubmitDaily(rec, httptest.NewRequest(http.MethodPost, "/api/v1/submit", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Success             bool          `json:"success"`
		OverlapData         overlapResult `json:"overlap_data"`
		LeaderboardPosition int           `json:"leaderboard_position"`
		TotalSubmissions    int           `json:"total_submissions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.OverlapData.PlayerCount)
	assert.Equal(t, 1, resp.LeaderboardPosition)
	assert.Zero(t, resp.TotalSubmissions)

	// The submission is stored and usage counters bumped for each player.
	stored, ok := kv.submissions["2026-08-26_u1"]
	require.True(t, ok)
	var saved struct {
		Players     []string `json:"players"`
		PlayerCount int      `json:"player_count"`
	}
	require.NoError(t, json.Unmarshal(stored, &saved))
	assert.Equal(t, []string{"Alpha One", "Beta Two"}, saved.Players)
	assert.Equal(t, 2, saved.PlayerCount)

	assert.Equal(t, int64(1), kv.usage["2026-08-26"]["Alpha One"])
	assert.Equal(t, int64(1), kv.usage["2026-08-26"]["Beta Two"])
}

func TestSubmitDailyDatabaseUnavailable(t *testing.T) {
	h := newTestHandler(newFakeKV())

	body := `{"players":["Alpha One"],"date":"2026-08-26","user_id":"u1"}`
	rec := httptest.NewRecorder()
	h.SubmitDaily(rec, httptest.NewRequest(http.MethodPost, "/api/v1/submit", strings.NewReader(body)))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "STORE_ERROR", decodeErrorCode(t, rec.Body.Bytes()))
}
