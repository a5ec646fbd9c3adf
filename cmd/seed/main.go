package main

import (
	"fmt"
	"os"

	"autocare/config"
	"autocare/infras/otel"
	"autocare/infras/postgres"
	blogRepo "autocare/internal/domains/blog/repository"
	serviceRepo "autocare/internal/domains/carservice/repository"
	userRepo "autocare/internal/domains/user/repository"
	"autocare/internal/seed"
	"autocare/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	reset         bool
	adminName     string
	adminEmail    string
	adminPassword string
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with an admin account, the service catalogue and sample posts",
	Long: `Seed inserts the initial data the platform needs to be usable.

Existing rows are detected by email, service name and post slug, so the command
can be run repeatedly.

Examples:
  seed                                   # Seed using SEED_ADMIN_* from the environment
  seed --admin-email admin@example.com   # Override the admin email
  seed --reset                           # Truncate all tables first`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Get()

		db := postgres.New(cfg)
		defer func() {
			if err := db.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close database connections")
			}
		}()

		tracer := otel.New(cfg)

		seeder := seed.New(
			userRepo.New(db, tracer),
			serviceRepo.New(db, tracer),
			blogRepo.New(db, tracer),
			db,
		)

		result, err := seeder.Run(cmd.Context(), seed.Options{
			Reset:         reset,
			AdminName:     adminName,
			AdminEmail:    adminEmail,
			AdminPassword: adminPassword,
		})
		if err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}

		log.Info().
			Bool("admin", result.Admin).
			Int("services", result.Services).
			Int("posts", result.Posts).
			Msg("Seeding completed")

		return nil
	},
}

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	rootCmd.Flags().BoolVar(&reset, "reset", false, "Truncate all tables before seeding")
	rootCmd.Flags().StringVar(&adminName, "admin-name", cfg.Seed.AdminName, "Admin display name")
	rootCmd.Flags().StringVar(&adminEmail, "admin-email", cfg.Seed.AdminEmail, "Admin email")
	rootCmd.Flags().StringVar(&adminPassword, "admin-password", cfg.Seed.AdminPassword, "Admin password")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
