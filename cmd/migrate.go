package cmd

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/peoplebook/apiserver/config"
	"github.com/peoplebook/apiserver/internal/db"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations to both databases",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		if err := migrateUp("file://internal/db/migrations/records", db.PostgresURL(cfg.RecordsDB)); err != nil {
			return fmt.Errorf("records migrations failed: %w", err)
		}
		if err := migrateUp("file://internal/db/migrations/users", db.PostgresURL(cfg.UsersDB)); err != nil {
			return fmt.Errorf("users migrations failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
}

func migrateUp(migrationsURL, dsn string) error {
	migrator, err := migrate.New(migrationsURL, dsn)
	if err != nil {
		return fmt.Errorf("init migrator failed: %w", err)
	}
	defer func() {
		_, _ = migrator.Close()
	}()

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("migrate up failed: %w", err)
	}
	return nil
}
