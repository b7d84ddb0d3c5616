package main

import (
	"database/sql"
	"fmt"

	"github.com/georgemunganga/storefront-admin/internal/config"
	"github.com/georgemunganga/storefront-admin/internal/platform/migrations"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the database schema",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openForMigrate(opts)
			if err != nil {
				return err
			}
			if err := migrations.Up(db); err != nil {
				return err
			}
			opts.logger.Info("migrations applied")
			return nil
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openForMigrate(opts)
			if err != nil {
				return err
			}
			if err := migrations.Down(db, steps); err != nil {
				return err
			}
			opts.logger.Info("migrations rolled back")
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	cmd.AddCommand(up, down)
	return cmd
}

// openForMigrate returns a dedicated connection; the migrate driver closes it.
func openForMigrate(opts *rootOptions) (*sql.DB, error) {
	url, err := config.LoadDatabase(opts.envFiles...)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}
