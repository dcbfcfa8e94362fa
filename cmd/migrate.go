package main

import (
	"context"
	"database/sql"
	root "landregistry"
	"landregistry/internal/config"
	"landregistry/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand applies the embedded registry schema with goose and then
// brings the river job tables up to date. --version stops the registry
// schema at a given migration.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			target, _ := cmd.Flags().GetInt64("version")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			db := strg.DB.(*sql.DB)

			goose.SetBaseFS(root.Migrations)
			if err := goose.SetDialect("postgres"); err != nil {
				logger.Fatal(ctx, "could not set goose dialect to postgres", zap.Error(err))
			}

			var err error
			if target > 0 {
				err = goose.UpTo(db, "migrations", target)
			} else {
				err = goose.Up(db, "migrations")
			}
			if err != nil {
				logger.Fatal(ctx, "could not migrate registry schema", zap.Error(err))
			}
			version, err := goose.GetDBVersion(db)
			if err != nil {
				logger.Fatal(ctx, "could not read schema version", zap.Error(err))
			}
			logger.Info(ctx, "registry schema migrated", zap.Int64("version", version))

			migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
			if err != nil {
				logger.Fatal(ctx, "could not create river queue migrator", zap.Error(err))
			}
			res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
			if err != nil {
				logger.Fatal(ctx, "could not migrate river queue tables", zap.Error(err))
			}
			logger.Info(ctx, "river queue tables migrated", zap.Int("applied", len(res.Versions)))
		},
	}

	cmd.Flags().Int64("version", 0, "Stop at this registry schema version (0 = latest)")

	return cmd
}
