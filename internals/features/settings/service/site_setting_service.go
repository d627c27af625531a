package service

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ukmfilm_backend/internals/features/settings/model"
)

// Get: baris singleton; belum ada → nilai default (tidak disimpan).
func Get(ctx context.Context, db *gorm.DB) (*model.SiteSettingModel, error) {
	var m model.SiteSettingModel
	err := db.WithContext(ctx).First(&m, "setting_id = ?", model.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.SiteSettingModel{
			SettingID:       model.SingletonID,
			SiteSocialLinks: datatypes.JSONMap{},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Upsert menulis baris singleton (insert atau replace semua kolom).
func Upsert(ctx context.Context, db *gorm.DB, m *model.SiteSettingModel) error {
	m.SettingID = model.SingletonID
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_id"}},
		UpdateAll: true,
	}).Create(m).Error
}
