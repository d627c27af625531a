package seeds

import (
	"context"

	"gorm.io/gorm"

	"ukmfilm_backend/internals/seeds/organization/divisions"
	"ukmfilm_backend/internals/seeds/settings"
)

const (
	DivisionsFile = "internals/seeds/organization/divisions/data_divisions.yaml"
	SettingsFile  = "internals/seeds/settings/data_settings.yaml"
)

func RunDivisionSeeds(ctx context.Context, db *gorm.DB, file string) error {
	if file == "" {
		file = DivisionsFile
	}
	_, err := divisions.SeedDivisionsFromYAML(ctx, db, file)
	return err
}

func RunSettingSeeds(ctx context.Context, db *gorm.DB, file string, force bool) error {
	if file == "" {
		file = SettingsFile
	}
	_, err := settings.SeedSettingsFromYAML(ctx, db, file, force)
	return err
}

func RunAllSeeds(ctx context.Context, db *gorm.DB) error {
	//* Organisasi
	if err := RunDivisionSeeds(ctx, db, ""); err != nil {
		return err
	}
	//* Situs
	return RunSettingSeeds(ctx, db, "", false)
}
