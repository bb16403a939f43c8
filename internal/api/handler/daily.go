package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/albapepper/journeyman-data/internal/api/respond"
	"github.com/albapepper/journeyman-data/internal/cache"
	"github.com/albapepper/journeyman-data/internal/team"
)

// dailyTeamCount is how many franchises each daily puzzle uses.
const dailyTeamCount = 8

// dailyTeamsCacheKey holds the rendered daily-teams response. Its short TTL
// covers the day rollover.
const dailyTeamsCacheKey = "daily_teams"

// dailyTeams picks the day's franchises deterministically: the day number
// seeds a linear congruential generator that draws without replacement.
// Every client asking on the same day gets the same teams.
func dailyTeams(date time.Time) []string {
	day := date.UTC().Unix() / (24 * 60 * 60)
	seed := uint64(day)

	available := team.CurrentNames()
	selected := make([]string, 0, dailyTeamCount)
	for len(selected) < dailyTeamCount {
		idx := int(seed % uint64(len(available)))
		selected = append(selected, available[idx])
		available = append(available[:idx], available[idx+1:]...)
		seed = (seed*1103515245 + 12345) % (1 << 31)
	}
	return selected
}

// GetDailyTeams serves the deterministic team selection for today.
func (h *Handler) GetDailyTeams(w http.ResponseWriter, r *http.Request) {
	if data, etag, ok := h.cache.Get(dailyTeamsCacheKey); ok {
		respond.WriteJSON(w, http.StatusOK, data, etag)
		return
	}

	now := time.Now()
	data, err := json.Marshal(map[string]any{
		"teams":        dailyTeams(now),
		"date":         strconv.FormatInt(now.UTC().Unix()/(24*60*60), 10),
		"generated_at": now.UTC().Format(time.RFC3339),
	})
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_ERROR", "Failed to encode daily teams")
		return
	}
	etag := h.cache.Set(dailyTeamsCacheKey, data, cache.TTLDailyTeams)
	respond.WriteJSON(w, http.StatusOK, data, etag)
}
