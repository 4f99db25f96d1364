package main

import (
	"context"
	"fmt"
	"os"

	"hospital-backend/cmd/bootstrap"
	"hospital-backend/config"
	"hospital-backend/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "hospital",
		Short:        "Hospital administration API",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			app, err := bootstrap.New(cfg)
			if err != nil {
				return err
			}
			return app.Run()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if err := database.MigrateUp(cfg.DB); err != nil {
				return err
			}
			bootstrap.NewLogger(cfg).Info("Migrations applied")
			return nil
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if err := database.MigrateDown(cfg.DB, steps); err != nil {
				return err
			}
			bootstrap.NewLogger(cfg).Infof("Rolled back %d migration(s)", steps)
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	cmd.AddCommand(down)

	cmd.AddCommand(&cobra.Command{
		Use:   "auto",
		Short: "Sync the schema from the gorm models (development only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.IsProduction() {
				return fmt.Errorf("auto migration is disabled in production, use migrate up")
			}
			db, err := database.NewPostgresConnection(cfg.DB, false)
			if err != nil {
				return err
			}
			if err := database.AutoMigrate(db); err != nil {
				return err
			}
			bootstrap.NewLogger(cfg).Info("Schema synced from models")
			return nil
		},
	})

	return cmd
}

func seedCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert default roles and an initial admin user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			log := bootstrap.NewLogger(cfg)

			db, err := database.NewPostgresConnection(cfg.DB, cfg.IsProduction())
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			return bootstrap.Seed(context.Background(), db, log, username, password)
		},
	}
	cmd.Flags().StringVar(&username, "admin-username", os.Getenv("SEED_ADMIN_USERNAME"), "initial admin username")
	cmd.Flags().StringVar(&password, "admin-password", os.Getenv("SEED_ADMIN_PASSWORD"), "initial admin password")
	return cmd
}
