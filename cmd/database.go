package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"campaign-planner/db/migrations"
	"campaign-planner/internal/adapter/catalog"
	"campaign-planner/internal/config"
	"campaign-planner/internal/db"
)

func newMigrateCmd(cfg *config.Config) *cobra.Command {
	var (
		version uint
		down    bool
	)
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the PostgreSQL schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			logger := cfg.Log.NewLogger(os.Stdout, cfg.Env)
			if down {
				version = 0
			}
			if err := db.MigrateTo(cfg.Psql.Addr.String(), version); err != nil {
				return err
			}
			logger.Info("schema migrated", slog.Uint64("version", uint64(version)))
			return nil
		},
	}
	cmd.Flags().UintVar(&version, "version", migrations.Version, "target schema version")
	cmd.Flags().BoolVar(&down, "down", false, "roll back every migration")
	return cmd
}

func newSeedCmd(cfg *config.Config) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a YAML catalog into the PostgreSQL catalog tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := cfg.Log.NewLogger(os.Stdout, cfg.Env)
			if path == "" {
				path = cfg.Settings.CatalogPath
			}
			c, err := catalog.LoadFile(path)
			if err != nil {
				return err
			}

			pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err = db.Seed(cmd.Context(), pool, c); err != nil {
				return err
			}
			logger.Info("catalog seeded",
				slog.Int("audiences", len(c.Audiences)),
				slog.Int("templates", len(c.Templates)))
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "file", "", "catalog file; defaults to SETTINGS_CATALOG_PATH or the built-in catalog")
	return cmd
}
