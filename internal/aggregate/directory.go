package aggregate

import (
	"context"
	"log/slog"

	"github.com/albapepper/journeyman-data/internal/provider/nhle"
	"github.com/albapepper/journeyman-data/internal/season"
	"github.com/albapepper/journeyman-data/internal/team"
)

// DirectoryStrategy fetches the global player directory once, then walks it
// player by player, keeping season-total entries whose start year falls
// inside the configured range and mapping their team display names to codes.
type DirectoryStrategy struct {
	client    *nhle.Client
	startYear int
	endYear   int
	logger    *slog.Logger
}

// NewDirectoryStrategy creates the directory crawl over [startYear, endYear].
func NewDirectoryStrategy(client *nhle.Client, startYear, endYear int, logger *slog.Logger) *DirectoryStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirectoryStrategy{
		client:    client,
		startYear: startYear,
		endYear:   endYear,
		logger:    logger,
	}
}

func (s *DirectoryStrategy) Name() string { return "directory" }

// Gather fetches the directory and then details each player sequentially.
// A failed detail fetch skips that player only.
func (s *DirectoryStrategy) Gather(ctx context.Context) (Buckets, *Result) {
	buckets := make(Buckets)
	result := &Result{}

	players, err := s.client.SearchAllPlayers(ctx)
	if err != nil {
		s.logger.Warn("Player directory fetch failed", "error", err)
		result.AddErrorf("player directory: %v", err)
		return buckets, result
	}
	s.logger.Info("Player directory fetched", "players", len(players))

	for i, p := range players {
		if ctx.Err() != nil {
			result.AddErrorf("run interrupted: %v", ctx.Err())
			break
		}

		landing, err := s.client.PlayerLanding(ctx, p.PlayerID)
		if err != nil {
			s.logger.Warn("Player detail fetch failed", "player", p.PlayerID, "name", p.Name, "error", err)
			result.AddErrorf("player %s: %v", p.PlayerID, err)
			result.PlayersSkipped++
			continue
		}
		result.PlayersDetailed++

		codes := s.teamCodesInRange(landing)
		if len(codes) == 0 {
			// Nothing inside the season range; the player is dropped entirely.
			continue
		}

		rec := Record{
			ID:         p.PlayerID,
			Name:       landing.FullName(),
			BirthDate:  deref(landing.BirthDate),
			BirthPlace: landing.BirthPlace(),
			Position:   deref(landing.Position),
		}
		if rec.Position == "" {
			rec.Position = p.PositionCode
		}
		for code := range codes {
			buckets.Add(code, rec)
		}

		if (i+1)%500 == 0 {
			s.logger.Info("Directory progress", "processed", i+1, "players", len(players))
		}
	}

	return buckets, result
}

// teamCodesInRange collects the distinct team codes of the player's season
// totals whose start year lies inside [startYear, endYear]. Entries with
// team names outside the franchise lookup are skipped.
func (s *DirectoryStrategy) teamCodesInRange(landing *nhle.PlayerLanding) map[string]bool {
	codes := make(map[string]bool)
	for _, st := range landing.SeasonTotals {
		if st.TeamName == nil {
			continue
		}
		year := season.StartYear(st.Season)
		if year < s.startYear || year > s.endYear {
			continue
		}
		code, ok := team.CodeFromName(*st.TeamName)
		if !ok {
			continue
		}
		codes[code] = true
	}
	return codes
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
