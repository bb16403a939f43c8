// Package api wires the chi router, middleware, and handlers for the
// read-side trivia API.
package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"

	"github.com/albapepper/journeyman-data/internal/api/handler"
	"github.com/albapepper/journeyman-data/internal/cache"
	"github.com/albapepper/journeyman-data/internal/config"
	"github.com/albapepper/journeyman-data/internal/provider/nhle"
)

// NewRouter creates and configures the chi router with all middleware and routes.
func NewRouter(kv handler.KV, appCache *cache.Cache, cfg *config.Config, nhl *nhle.Client, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS: the game client is a browser app served from another origin.
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(kv, appCache, cfg, nhl, logger)

	// --- Routes ---

	r.Get("/", h.Root)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/store", h.HealthCheckStore)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/players", h.GetPlayers)
		r.Get("/playersv2", h.GetPlayersV2)
		r.Get("/daily-teams", h.GetDailyTeams)

		r.Post("/overlap", h.CalculateOverlap)
		r.Post("/hint", h.GetHint)
		r.Post("/submit", h.SubmitDaily)
	})

	return r
}
