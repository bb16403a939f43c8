// Command ingest is the Journeyman data pipeline CLI.
//
// Usage:
//
//	journeyman-ingest generate --strategy legacy --start-year 2015 --end-year 2025
//	journeyman-ingest generate --strategy directory --output players_v2.json
//	journeyman-ingest publish --input nhl_players.json --key playersv2
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/journeyman-data/internal/aggregate"
	"github.com/albapepper/journeyman-data/internal/config"
	"github.com/albapepper/journeyman-data/internal/provider/nhle"
	"github.com/albapepper/journeyman-data/internal/season"
	"github.com/albapepper/journeyman-data/internal/store"
	"github.com/albapepper/journeyman-data/internal/team"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "journeyman-ingest",
		Short: "NHL player database pipeline",
	}

	root.AddCommand(generateCmd())
	root.AddCommand(publishCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// generate command
// --------------------------------------------------------------------------

func generateCmd() *cobra.Command {
	var (
		output       string
		delayMillis  int
		startYear    int
		endYear      int
		includeGames bool
		strategyName string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Crawl the NHL API and write the consolidated player database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			// Configuration validation is the only fatal error class and
			// happens before any network activity.
			seasons, err := season.Range(startYear, endYear)
			if err != nil {
				return err
			}

			client := nhle.NewClient(time.Duration(delayMillis)*time.Millisecond, logger)

			var strategy aggregate.Strategy
			switch strategyName {
			case "legacy":
				strategy = aggregate.NewLegacyStrategy(client, seasons, includeGames, logger)
			case "directory":
				strategy = aggregate.NewDirectoryStrategy(client, startYear, endYear, logger)
			default:
				return fmt.Errorf("unknown strategy %q (want legacy or directory)", strategyName)
			}

			logger.Info("Starting player database generation",
				"strategy", strategy.Name(),
				"seasons", len(seasons),
				"teams", len(team.AllCodes()),
				"delay_ms", delayMillis,
				"include_games", includeGames,
				"output", output)

			start := time.Now()
			buckets, result := strategy.Gather(ctx)
			db := aggregate.Consolidate(buckets, seasons, time.Now(), logger)

			logger.Info("Gather finished",
				"duration", time.Since(start).Round(time.Second),
				"requests", client.Completed(),
				"summary", result.Summary())
			for _, e := range result.Errors {
				logger.Warn("gather error", "error", e)
			}

			// The artifact is written exactly once, after the full run.
			data, err := json.MarshalIndent(db, "", "  ")
			if err != nil {
				return fmt.Errorf("encode database: %w", err)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write database: %w", err)
			}

			total := 0
			for _, players := range db.Teams {
				total += len(players)
			}
			logger.Info("Database saved",
				"path", output,
				"teams", len(db.Teams),
				"players", total,
				"size_kb", fmt.Sprintf("%.2f", float64(len(data))/1024.0))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", config.DefaultOutputPath, "Output file path for the JSON database")
	cmd.Flags().IntVarP(&delayMillis, "delay", "d", config.DefaultDelayMillis, "Delay between requests in milliseconds")
	cmd.Flags().IntVar(&startYear, "start-year", config.DefaultStartYear, "Start year for season data collection")
	cmd.Flags().IntVar(&endYear, "end-year", config.DefaultEndYear, "End year for season data collection")
	cmd.Flags().BoolVar(&includeGames, "include-games", false, "Mine boxscores for players missing from rosters (legacy strategy only)")
	cmd.Flags().StringVar(&strategyName, "strategy", config.DefaultStrategy, "Gathering strategy: legacy or directory")
	return cmd
}

// --------------------------------------------------------------------------
// publish command
// --------------------------------------------------------------------------

func publishCmd() *cobra.Command {
	var (
		input    string
		key      string
		redisURL string
	)
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload a generated database to the KV store for the read-side API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			if key != store.KeyLegacy && key != store.KeyDirectory {
				return fmt.Errorf("unknown key %q (want %s or %s)", key, store.KeyLegacy, store.KeyDirectory)
			}

			data, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("read database: %w", err)
			}
			var db aggregate.Database
			if err := json.Unmarshal(data, &db); err != nil {
				return fmt.Errorf("validate database: %w", err)
			}

			if redisURL == "" {
				cfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				redisURL = cfg.RedisURL
			}

			kv, err := store.New(ctx, redisURL)
			if err != nil {
				return fmt.Errorf("connect to store: %w", err)
			}
			defer kv.Close()

			if err := kv.PutDatabase(ctx, key, data); err != nil {
				return err
			}
			logger.Info("Database published",
				"key", key,
				"teams", len(db.Teams),
				"generated_at", db.GeneratedAt,
				"size_kb", fmt.Sprintf("%.2f", float64(len(data))/1024.0))
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", config.DefaultOutputPath, "Database file to publish")
	cmd.Flags().StringVar(&key, "key", store.KeyDirectory, "KV key to publish under (players or playersv2)")
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "Redis URL (defaults to REDIS_URL)")
	return cmd
}
