package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/transqa/internal/config"
	"github.com/Taichi-iskw/transqa/migrations"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if err := migrations.Up(cfg.DatabaseURL); err != nil {
			return err
		}

		return printVersion(cmd, cfg.DatabaseURL)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, _ := cmd.Flags().GetInt("steps")

		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if err := migrations.Down(cfg.DatabaseURL, steps); err != nil {
			return err
		}

		return printVersion(cmd, cfg.DatabaseURL)
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the current schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		return printVersion(cmd, cfg.DatabaseURL)
	},
}

func printVersion(cmd *cobra.Command, databaseURL string) error {
	version, dirty, err := migrations.Version(databaseURL)
	if err != nil {
		return err
	}

	if version == 0 {
		cmd.Println("Schema version: none")
		return nil
	}
	cmd.Printf("Schema version: %d", version)
	if dirty {
		cmd.Print(" (dirty)")
	}
	cmd.Println()
	return nil
}

func init() {
	migrateDownCmd.Flags().Int("steps", 1, "Number of migrations to roll back (0 rolls back all)")

	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateVersionCmd)
}
