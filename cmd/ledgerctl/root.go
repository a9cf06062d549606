package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/commission-tracker/backend/config"
	"github.com/commission-tracker/backend/internal/infra/cache"
	"github.com/commission-tracker/backend/internal/infra/db"
	"github.com/commission-tracker/backend/internal/infra/dependency"
)

var rootCmd = &cobra.Command{
	Use:   "ledgerctl",
	Short: "Operate the commission ledger from the command line",
	Long: `ledgerctl runs commission tracker operations without the HTTP API:
schema migration, per-account ledger reports and remittance imports.

By default it connects to DATABASE_URL. Pass --sqlite to work against a
local SQLite file instead.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()

		level := cfg.Log.Level
		if raw, _ := cmd.Flags().GetString("log-level"); raw != "" {
			if err := level.UnmarshalText([]byte(raw)); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", raw, err)
			}
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
}

// cfg is loaded once flags are parsed, after main has read .env.
var cfg *config.Config

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("sqlite", "", "Use this SQLite file instead of DATABASE_URL")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); defaults to LOG_LEVEL")
}

// openDatabase connects to SQLite when --sqlite is set, PostgreSQL otherwise.
func openDatabase(cmd *cobra.Command) (*db.Database, error) {
	if path, _ := cmd.Flags().GetString("sqlite"); path != "" {
		return db.NewSQLiteConnection(path)
	}
	return db.NewPostgresConnection(&cfg.Database)
}

// session bundles what a command needs to run use cases.
type session struct {
	database *db.Database
	redis    *redis.Client
	useCases *dependency.UseCases
}

// openSession migrates the database and wires the use cases.
// Redis is only connected when withRedis is set.
func openSession(cmd *cobra.Command, withRedis bool) (*session, error) {
	database, err := openDatabase(cmd)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(); err != nil {
		_ = database.Close()
		return nil, err
	}

	s := &session{database: database}
	if withRedis {
		client, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("imports need redis: %w", err)
		}
		s.redis = client
	}

	s.useCases = dependency.NewUseCases(cfg, dependency.NewRepositories(database.DB(), s.redis), slog.Default())
	return s, nil
}

func (s *session) Close() {
	if s.redis != nil {
		_ = s.redis.Close()
	}
	if err := s.database.Close(); err != nil {
		slog.Error("Failed to close database connection", "error", err)
	}
}
