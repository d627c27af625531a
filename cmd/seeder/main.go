// Command seeder mengisi data awal (katalog divisi, pengaturan situs).
//
// Usage:
//
//	go run ./cmd/seeder all
//	go run ./cmd/seeder divisions --file path/to/divisions.yaml
//	go run ./cmd/seeder settings --force
package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/configs"
	"ukmfilm_backend/internals/seeds"
)

var (
	seedFile  string
	forceSeed bool
	timeout   time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "seeder",
	Short: "Seeder data awal UKM Film",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configs.LoadEnv()
	},
	SilenceUsage: true,
}

var divisionsCmd = &cobra.Command{
	Use:   "divisions",
	Short: "Sisipkan katalog divisi dari YAML",
	RunE: withDB(func(ctx context.Context, db *gorm.DB) error {
		return seeds.RunDivisionSeeds(ctx, db, seedFile)
	}),
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Isi pengaturan situs dari YAML",
	RunE: withDB(func(ctx context.Context, db *gorm.DB) error {
		return seeds.RunSettingSeeds(ctx, db, seedFile, forceSeed)
	}),
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Jalankan semua seeder (file default)",
	RunE: withDB(func(ctx context.Context, db *gorm.DB) error {
		return seeds.RunAllSeeds(ctx, db)
	}),
}

func withDB(fn func(ctx context.Context, db *gorm.DB) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		db, err := configs.InitSeederDB()
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		return fn(ctx, db)
	}
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "batas waktu seeding")
	divisionsCmd.Flags().StringVar(&seedFile, "file", "", "path file YAML (default: data bawaan)")
	settingsCmd.Flags().StringVar(&seedFile, "file", "", "path file YAML (default: data bawaan)")
	settingsCmd.Flags().BoolVar(&forceSeed, "force", false, "timpa pengaturan yang sudah ada")

	rootCmd.AddCommand(divisionsCmd, settingsCmd, allCmd)
}

func main() {
	defer configs.SyncLogger()
	if err := rootCmd.Execute(); err != nil {
		configs.Log.Errorf("❌ Seeder gagal: %v", err)
		configs.SyncLogger()
		os.Exit(1)
	}
}
