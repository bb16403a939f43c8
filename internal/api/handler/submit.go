package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/albapepper/journeyman-data/internal/api/respond"
)

type submitRequest struct {
	Players []string `json:"players"`
	Date    string   `json:"date"`
	UserID  string   `json:"user_id"`
}

// SubmitDaily records a user's daily solution: scores it against today's
// teams, bumps per-player usage counters, and stores the submission.
func (h *Handler) SubmitDaily(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_JSON", "Request body is not valid JSON")
		return
	}
	if len(req.Players) == 0 || req.Date == "" || req.UserID == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_FIELDS", "players, date, and user_id are required")
		return
	}

	ctx := r.Context()

	exists, err := h.kv.SubmissionExists(ctx, req.Date, req.UserID)
	if err != nil {
		h.logger.Error("Submission lookup failed", "error", err)
		respond.WriteError(w, http.StatusServiceUnavailable, "STORE_ERROR", "Submission store is unavailable")
		return
	}
	if exists {
		respond.WriteJSONObject(w, http.StatusOK, map[string]any{
			"error":   "already_submitted",
			"message": "You have already submitted a solution for today",
		})
		return
	}

	doc, err := h.document(ctx)
	if err != nil {
		h.logger.Error("Database load failed", "error", err)
		respond.WriteError(w, http.StatusServiceUnavailable, "STORE_ERROR", "Player database is unavailable")
		return
	}

	players := make([]overlapPlayer, len(req.Players))
	for i, name := range req.Players {
		players[i] = overlapPlayer{Name: name}
	}
	overlap := scoreOverlap(doc, players, dailyTeams(time.Now()))

	if err := h.kv.IncrementUsage(ctx, req.Date, req.Players); err != nil {
		h.logger.Warn("Usage counter update failed", "error", err)
	}

	submission, err := json.Marshal(map[string]any{
		"players":       req.Players,
		"player_count":  len(req.Players),
		"overlap_score": overlap.TotalOverlapScore,
		"submitted_at":  time.Now().UTC().Unix(),
	})
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_ERROR", "Failed to encode submission")
		return
	}
	if err := h.kv.SaveSubmission(ctx, req.Date, req.UserID, submission); err != nil {
		h.logger.Error("Submission save failed", "error", err)
		respond.WriteError(w, http.StatusServiceUnavailable, "STORE_ERROR", "Submission store is unavailable")
		return
	}

	// Leaderboard ranking is not implemented; submissions are stored but
	// never scanned, so position and count are fixed placeholders.
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"success":              true,
		"overlap_data":         overlap,
		"leaderboard_position": 1,
		"total_submissions":    0,
	})
}
