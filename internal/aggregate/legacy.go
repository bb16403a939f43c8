package aggregate

import (
	"context"
	"log/slog"

	"github.com/albapepper/journeyman-data/internal/provider/nhle"
	"github.com/albapepper/journeyman-data/internal/season"
	"github.com/albapepper/journeyman-data/internal/team"
)

// maxGamesPerSeason bounds boxscore mining per team/season. Late call-ups
// show up within the first handful of games; crawling a full schedule per
// season would triple the request count for marginal gain.
const maxGamesPerSeason = 10

// LegacyStrategy crawls the roster endpoint across all (current and historical)
// teams × the season range. With game mining enabled it also pulls the first
// boxscores of each season to catch players who appeared in games but are
// missing from the roster snapshot.
type LegacyStrategy struct {
	client       *nhle.Client
	seasons      []season.Season
	includeGames bool
	logger       *slog.Logger
}

// NewLegacyStrategy creates the per-team/season roster crawl.
func NewLegacyStrategy(client *nhle.Client, seasons []season.Season, includeGames bool, logger *slog.Logger) *LegacyStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	return &LegacyStrategy{
		client:       client,
		seasons:      seasons,
		includeGames: includeGames,
		logger:       logger,
	}
}

func (s *LegacyStrategy) Name() string { return "legacy" }

// Gather walks the full team×season matrix sequentially.
func (s *LegacyStrategy) Gather(ctx context.Context) (Buckets, *Result) {
	buckets := make(Buckets)
	result := &Result{}

	codes := team.AllCodes()
	for i, code := range codes {
		if ctx.Err() != nil {
			result.AddErrorf("run interrupted: %v", ctx.Err())
			break
		}

		// Roster names seen for this team across all seasons; game mining
		// only reports players absent from every roster snapshot so far.
		rosterNames := make(map[string]bool)
		gameOnly := 0

		for _, sn := range s.seasons {
			roster, err := s.client.Roster(ctx, code, sn)
			if err != nil {
				s.logger.Warn("Roster fetch failed", "team", code, "season", sn, "error", err)
				result.AddErrorf("roster %s/%s: %v", code, sn, err)
			} else {
				result.RostersFetched++
				for _, name := range roster.Names() {
					rosterNames[name] = true
					buckets.Add(code, Record{Name: name})
				}
			}

			if s.includeGames {
				gameOnly += s.mineGames(ctx, buckets, result, code, sn, rosterNames)
			}
		}

		s.logger.Info("Team complete",
			"team", code,
			"progress", i+1,
			"teams", len(codes),
			"players", buckets.Count(code),
			"game_only", gameOnly)
	}

	return buckets, result
}

// mineGames pulls the schedule and up to maxGamesPerSeason boxscores of games
// the team played in, adding any player not already known from a roster.
// Returns how many new players the games contributed.
func (s *LegacyStrategy) mineGames(
	ctx context.Context,
	buckets Buckets,
	result *Result,
	code string,
	sn season.Season,
	rosterNames map[string]bool,
) int {
	schedule, err := s.client.Schedule(ctx, code, sn)
	if err != nil {
		s.logger.Warn("Schedule fetch failed", "team", code, "season", sn, "error", err)
		result.AddErrorf("schedule %s/%s: %v", code, sn, err)
		return 0
	}

	added := 0
	examined := 0
	for _, game := range schedule.Games {
		if examined >= maxGamesPerSeason {
			break
		}
		if !game.Involves(code) {
			continue
		}
		examined++

		box, err := s.client.Boxscore(ctx, game.ID)
		if err != nil {
			s.logger.Warn("Boxscore fetch failed", "game", game.ID, "error", err)
			result.AddErrorf("boxscore %d: %v", game.ID, err)
			continue
		}
		result.GamesMined++

		for _, name := range box.Side(game, code).Names() {
			if rosterNames[name] {
				continue
			}
			rec := Record{Name: name}
			if buckets.Has(code, rec) {
				continue
			}
			buckets.Add(code, rec)
			added++
		}
	}

	if added > 0 {
		s.logger.Info("Games contributed players missing from rosters",
			"team", code, "season", sn, "players", added)
	}
	return added
}
