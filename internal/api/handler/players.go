package handler

import (
	"net/http"

	"github.com/albapepper/journeyman-data/internal/api/respond"
	"github.com/albapepper/journeyman-data/internal/cache"
	"github.com/albapepper/journeyman-data/internal/store"
)

// GetPlayers serves the legacy-mode artifact (bare name lists).
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	h.servePlayers(w, r, store.KeyLegacy)
}

// GetPlayersV2 serves the directory-mode artifact (full player objects).
func (h *Handler) GetPlayersV2(w http.ResponseWriter, r *http.Request) {
	h.servePlayers(w, r, store.KeyDirectory)
}

func (h *Handler) servePlayers(w http.ResponseWriter, r *http.Request, key string) {
	data, etag, err := h.databaseBytes(r.Context(), key)
	if err != nil {
		if store.IsNotFound(err) {
			respond.WriteError(w, http.StatusNotFound, "NOT_PUBLISHED",
				"No player database has been published under "+key)
			return
		}
		h.logger.Error("Database load failed", "key", key, "error", err)
		respond.WriteError(w, http.StatusServiceUnavailable, "STORE_ERROR",
			"Player database is unavailable")
		return
	}

	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, http.StatusOK, data, etag)
}
