package divisions

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/configs"
	"ukmfilm_backend/internals/features/organization/divisions/model"
)

type DivisionSeed struct {
	Code        string  `yaml:"code"`
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
	Order       int     `yaml:"order"`
}

// ParseDivisionsYAML membaca daftar divisi dari YAML.
func ParseDivisionsYAML(raw []byte) ([]DivisionSeed, error) {
	var seeds []DivisionSeed
	if err := yaml.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("decode YAML divisi: %w", err)
	}
	for i, s := range seeds {
		if model.NormalizeCode(s.Code) == "" || s.Name == "" {
			return nil, fmt.Errorf("seed divisi #%d: code & name wajib diisi", i+1)
		}
	}
	return seeds, nil
}

// SeedDivisions menyisipkan divisi yang kodenya belum ada. Divisi lama tidak diubah.
func SeedDivisions(ctx context.Context, db *gorm.DB, seeds []DivisionSeed) (int, error) {
	var existing []string
	if err := db.WithContext(ctx).Model(&model.DivisionModel{}).
		Pluck("division_code", &existing).Error; err != nil {
		return 0, fmt.Errorf("ambil kode divisi: %w", err)
	}
	existingMap := make(map[string]bool, len(existing))
	for _, c := range existing {
		existingMap[model.NormalizeCode(c)] = true
	}

	var fresh []model.DivisionModel
	for _, s := range seeds {
		code := model.NormalizeCode(s.Code)
		if existingMap[code] {
			continue
		}
		existingMap[code] = true
		fresh = append(fresh, model.DivisionModel{
			DivisionCode:        code,
			DivisionName:        s.Name,
			DivisionDescription: s.Description,
			DivisionOrder:       s.Order,
		})
	}
	if len(fresh) == 0 {
		configs.Log.Info("ℹ️ Tidak ada divisi baru untuk disisipkan.")
		return 0, nil
	}
	if err := db.WithContext(ctx).Create(&fresh).Error; err != nil {
		return 0, fmt.Errorf("insert divisi: %w", err)
	}
	configs.Log.Infof("✅ %d divisi disisipkan.", len(fresh))
	return len(fresh), nil
}

func SeedDivisionsFromYAML(ctx context.Context, db *gorm.DB, filePath string) (int, error) {
	configs.Log.Infof("📥 Membaca file: %s", filePath)
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("baca file %s: %w", filePath, err)
	}
	seeds, err := ParseDivisionsYAML(raw)
	if err != nil {
		return 0, err
	}
	return SeedDivisions(ctx, db, seeds)
}
