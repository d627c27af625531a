package settings

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/configs"
	"ukmfilm_backend/internals/features/settings/model"
	"ukmfilm_backend/internals/features/settings/service"
)

type SettingSeed struct {
	SiteName     string            `yaml:"site_name"`
	Tagline      *string           `yaml:"tagline"`
	About        *string           `yaml:"about"`
	Vision       *string           `yaml:"vision"`
	Mission      *string           `yaml:"mission"`
	ContactEmail *string           `yaml:"contact_email"`
	ContactPhone *string           `yaml:"contact_phone"`
	Address      *string           `yaml:"address"`
	SocialLinks  map[string]string `yaml:"social_links"`
}

func (s SettingSeed) ToModel() model.SiteSettingModel {
	links := make(map[string]any, len(s.SocialLinks))
	for k, v := range s.SocialLinks {
		links[k] = v
	}
	return model.SiteSettingModel{
		SettingID:        model.SingletonID,
		SiteName:         s.SiteName,
		SiteTagline:      s.Tagline,
		SiteAbout:        s.About,
		SiteVision:       s.Vision,
		SiteMission:      s.Mission,
		SiteContactEmail: s.ContactEmail,
		SiteContactPhone: s.ContactPhone,
		SiteAddress:      s.Address,
		SiteSocialLinks:  links,
	}
}

// SeedSettings hanya mengisi kalau baris pengaturan belum ada (kecuali force).
func SeedSettings(ctx context.Context, db *gorm.DB, seed SettingSeed, force bool) (bool, error) {
	if seed.SiteName == "" {
		return false, errors.New("seed pengaturan: site_name wajib diisi")
	}
	if !force {
		var cnt int64
		if err := db.WithContext(ctx).Model(&model.SiteSettingModel{}).Count(&cnt).Error; err != nil {
			return false, fmt.Errorf("cek pengaturan: %w", err)
		}
		if cnt > 0 {
			configs.Log.Info("ℹ️ Pengaturan situs sudah ada, dilewati.")
			return false, nil
		}
	}
	m := seed.ToModel()
	if err := service.Upsert(ctx, db, &m); err != nil {
		return false, fmt.Errorf("simpan pengaturan: %w", err)
	}
	configs.Log.Info("✅ Pengaturan situs disimpan.")
	return true, nil
}

func SeedSettingsFromYAML(ctx context.Context, db *gorm.DB, filePath string, force bool) (bool, error) {
	configs.Log.Infof("📥 Membaca file: %s", filePath)
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return false, fmt.Errorf("baca file %s: %w", filePath, err)
	}
	var seed SettingSeed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return false, fmt.Errorf("decode YAML pengaturan: %w", err)
	}
	return SeedSettings(ctx, db, seed, force)
}
