package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/features/organization/divisions/model"
)

var (
	ErrDivisionNotFound  = errors.New("divisi tidak ditemukan")
	ErrDivisionCodeTaken = errors.New("kode divisi sudah dipakai")
	ErrDivisionInUse     = errors.New("divisi masih dipakai anggota")
)

// ListCatalog mengembalikan katalog divisi aktif (non soft-deleted) sesuai urutan tampil.
func ListCatalog(ctx context.Context, db *gorm.DB) ([]model.DivisionModel, error) {
	var list []model.DivisionModel
	err := db.WithContext(ctx).
		Order("division_order ASC, division_code ASC").
		Find(&list).Error
	return list, err
}

func FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.DivisionModel, error) {
	var ent model.DivisionModel
	if err := db.WithContext(ctx).First(&ent, "division_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDivisionNotFound
		}
		return nil, err
	}
	return &ent, nil
}

// CodeTaken: cek kode (case-insensitive) di antara divisi yang belum dihapus.
func CodeTaken(ctx context.Context, db *gorm.DB, code string, exceptID *uuid.UUID) (bool, error) {
	q := db.WithContext(ctx).Model(&model.DivisionModel{}).
		Where("LOWER(division_code) = ?", model.NormalizeCode(code))
	if exceptID != nil {
		q = q.Where("division_id <> ?", *exceptID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// MemberCount menghitung anggota yang mereferensikan divisi.
func MemberCount(ctx context.Context, db *gorm.DB, divisionID uuid.UUID) (int64, error) {
	var cnt int64
	err := db.WithContext(ctx).Table("members").
		Where("member_division_id = ?", divisionID).
		Count(&cnt).Error
	return cnt, err
}
