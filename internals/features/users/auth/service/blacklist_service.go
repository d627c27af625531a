package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ukmfilm_backend/internals/features/users/auth/model"
)

// HashToken: token mentah tidak pernah disimpan, hanya HMAC-nya (hex).
func HashToken(rawAccessToken, secret string) string {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(rawAccessToken))
	return hex.EncodeToString(m.Sum(nil))
}

// Add memasukkan token ke blacklist sampai expiresAt.
func Add(ctx context.Context, db *gorm.DB, rawAccessToken, secret string, expiresAt time.Time) error {
	if db == nil || strings.TrimSpace(rawAccessToken) == "" || strings.TrimSpace(secret) == "" {
		return nil
	}
	row := model.TokenBlacklist{
		Token:     HashToken(rawAccessToken, secret),
		ExpiredAt: expiresAt.UTC(),
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "token"}},
		DoUpdates: clause.Assignments(map[string]any{
			"expired_at": row.ExpiredAt,
			"deleted_at": nil,
		}),
	}).Create(&row).Error
}

// IsBlacklisted: ada baris aktif dan belum expired?
func IsBlacklisted(ctx context.Context, db *gorm.DB, rawAccessToken, secret string) (bool, error) {
	if db == nil || strings.TrimSpace(rawAccessToken) == "" || strings.TrimSpace(secret) == "" {
		return false, nil
	}
	var cnt int64
	err := db.WithContext(ctx).Model(&model.TokenBlacklist{}).
		Where("token = ? AND expired_at > ?", HashToken(rawAccessToken, secret), time.Now().UTC()).
		Count(&cnt).Error
	return cnt > 0, err
}

// PurgeExpired menghapus permanen baris yang expired sebelum `before`.
func PurgeExpired(ctx context.Context, db *gorm.DB, before time.Time, batch int) (int64, error) {
	if batch <= 0 {
		batch = 100
	}
	var ids []uint
	if err := db.WithContext(ctx).Unscoped().Model(&model.TokenBlacklist{}).
		Where("expired_at < ?", before.UTC()).
		Limit(batch).
		Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	res := db.WithContext(ctx).Unscoped().Where("id IN ?", ids).Delete(&model.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
