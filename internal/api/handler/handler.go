// Package handler provides HTTP handlers for the read-side trivia API.
// Handlers serve the published artifact from the KV store; inside this
// package the artifact is accessed as a loosely-typed document, since the
// read side depends only on the output schema, never on pipeline internals.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/journeyman-data/internal/api/respond"
	"github.com/albapepper/journeyman-data/internal/cache"
	"github.com/albapepper/journeyman-data/internal/config"
	"github.com/albapepper/journeyman-data/internal/provider/nhle"
	"github.com/albapepper/journeyman-data/internal/store"
)

// KV is the slice of the store the handlers need.
type KV interface {
	GetDatabase(ctx context.Context, key string) ([]byte, error)
	SubmissionExists(ctx context.Context, date, userID string) (bool, error)
	SaveSubmission(ctx context.Context, date, userID string, doc []byte) error
	IncrementUsage(ctx context.Context, date string, players []string) error
	Ping(ctx context.Context) error
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	kv     KV
	cache  *cache.Cache
	cfg    *config.Config
	nhl    *nhle.Client
	logger *slog.Logger
}

// New creates a Handler with shared dependencies. The NHL client is used
// only by hint generation to enrich the selected player with live details.
func New(kv KV, c *cache.Cache, cfg *config.Config, nhl *nhle.Client, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		kv:     kv,
		cache:  c,
		cfg:    cfg,
		nhl:    nhl,
		logger: logger,
	}
}

// Root serves API info at /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"name":    "Journeyman Data API",
		"version": "1.0.0",
		"status":  "running",
	})
}

// HealthCheck returns basic health status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckStore verifies KV store connectivity.
func (h *Handler) HealthCheckStore(w http.ResponseWriter, r *http.Request) {
	if err := h.kv.Ping(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]any{
			"status":    "unhealthy",
			"store":     "disconnected",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"store":     "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// databaseBytes loads an artifact's raw bytes through the cache.
func (h *Handler) databaseBytes(ctx context.Context, key string) (data []byte, etag string, err error) {
	if data, etag, ok := h.cache.Get(key); ok {
		return data, etag, nil
	}
	data, err = h.kv.GetDatabase(ctx, key)
	if err != nil {
		return nil, "", err
	}
	etag = h.cache.Set(key, data, cache.TTLDatabase)
	return data, etag, nil
}

// document loads and parses the richer (directory-mode) artifact used by
// the scoring and hint endpoints.
func (h *Handler) document(ctx context.Context) (*document, error) {
	data, _, err := h.databaseBytes(ctx, store.KeyDirectory)
	if err != nil {
		return nil, err
	}
	return parseDocument(data)
}
