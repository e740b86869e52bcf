package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"rentora.backend/internal/config"
	"rentora.backend/internal/domain/entities"
	"rentora.backend/internal/infrastructure/email"
	"rentora.backend/internal/infrastructure/jobs"
	"rentora.backend/internal/infrastructure/models"
	"rentora.backend/internal/infrastructure/repositories"
	"rentora.backend/pkg/crypto"
	"rentora.backend/pkg/logger"
	"rentora.backend/pkg/redis"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "rentctl",
		Short: "Rentora operations tool",
	}

	rootCmd.AddCommand(
		migrateCmd(),
		seedCmd(),
		remindScanCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.URL(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger.Init(cfg.Server.Env)

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}

			if err := db.AutoMigrate(models.All()...); err != nil {
				return fmt.Errorf("migrate schema: %w", err)
			}

			fmt.Println("schema up to date")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var adminEmail, adminPassword string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the initial admin user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger.Init(cfg.Server.Env)

			if !crypto.ValidatePassword(adminPassword) {
				return fmt.Errorf("admin password does not meet the password policy")
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}

			ctx := context.Background()
			userRepo := repositories.NewUserRepository(db)

			if _, err := userRepo.GetByEmail(ctx, adminEmail); err == nil {
				fmt.Printf("admin %s already exists, nothing to do\n", adminEmail)
				return nil
			}

			hash, err := crypto.HashPassword(adminPassword)
			if err != nil {
				return fmt.Errorf("hash admin password: %w", err)
			}

			admin := &entities.User{
				Email:        adminEmail,
				Name:         "Administrator",
				PasswordHash: hash,
				Role:         entities.UserRoleAdmin,
			}
			if err := userRepo.Create(ctx, admin); err != nil {
				return fmt.Errorf("create admin user: %w", err)
			}

			fmt.Printf("admin %s created\n", adminEmail)
			return nil
		},
	}

	cmd.Flags().StringVar(&adminEmail, "email", "admin@rentora.local", "admin email address")
	cmd.Flags().StringVar(&adminPassword, "password", "", "admin password (required)")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func remindScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remind-scan",
		Short: "Run one rent payment reminder pass",
		Long:  "Scans for upcoming and overdue rent payments and emails reminders. Intended to be run from cron; repeated runs on the same day are deduplicated.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger.Init(cfg.Server.Env)

			if err := redis.Init(cfg.Redis.URL, cfg.Redis.Password); err != nil {
				return fmt.Errorf("initialize redis: %w", err)
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}

			mailer := email.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass, cfg.SMTP.Sender)
			scan := jobs.NewReminderScan(
				repositories.NewPaymentRepository(db),
				repositories.NewLeaseRepository(db),
				repositories.NewUserRepository(db),
				mailer,
				cfg.Billing.ReminderWindow,
			)

			return scan.Run(cmd.Context())
		},
	}
}
