// file: internals/features/organization/cabinets/service/cabinet_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/constants"
	"ukmfilm_backend/internals/features/organization/cabinets/model"
	divisionModel "ukmfilm_backend/internals/features/organization/divisions/model"
	divisionService "ukmfilm_backend/internals/features/organization/divisions/service"
)

var (
	ErrCabinetNotFound   = errors.New("kabinet tidak ditemukan")
	ErrNoActiveCabinet   = errors.New("Belum ada kabinet aktif")
	ErrMemberNotFound    = errors.New("anggota tidak ditemukan")
	ErrDivisionNotExists = errors.New("divisi tidak ditemukan")
)

// preloadMembers: anggota urut deterministik + divisinya.
func preloadMembers(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Members", func(tx *gorm.DB) *gorm.DB {
			return tx.Order(model.MemberOrderClause)
		}).
		Preload("Members.Division")
}

func FindCabinet(ctx context.Context, db *gorm.DB, id uuid.UUID, withMembers bool) (*model.CabinetModel, error) {
	q := db.WithContext(ctx)
	if withMembers {
		q = preloadMembers(q)
	}
	var m model.CabinetModel
	if err := q.First(&m, "cabinet_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCabinetNotFound
		}
		return nil, fmt.Errorf("find cabinet: %w", err)
	}
	return &m, nil
}

// GetActiveCabinet: nil, ErrNoActiveCabinet kalau tidak ada.
func GetActiveCabinet(ctx context.Context, db *gorm.DB) (*model.CabinetModel, error) {
	var m model.CabinetModel
	err := preloadMembers(db.WithContext(ctx)).
		Where("cabinet_status = ?", constants.CabinetStatusActive).
		Order("cabinet_updated_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveCabinet
		}
		return nil, fmt.Errorf("get active cabinet: %w", err)
	}
	return &m, nil
}

// Activate: nonaktifkan semua kabinet lain lalu aktifkan id, dalam satu transaksi.
func Activate(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.CabinetModel, error) {
	var out model.CabinetModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, "cabinet_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCabinetNotFound
			}
			return err
		}
		if err := deactivateOthers(tx, id); err != nil {
			return err
		}
		if err := tx.Model(&out).Update("cabinet_status", constants.CabinetStatusActive).Error; err != nil {
			return err
		}
		out.CabinetStatus = constants.CabinetStatusActive
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCabinet: kalau status active, lewat jalur transaksi yang sama.
func CreateCabinet(ctx context.Context, db *gorm.DB, m *model.CabinetModel) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.CabinetStatus == constants.CabinetStatusActive {
			if err := deactivateOthers(tx, uuid.Nil); err != nil {
				return err
			}
		}
		return tx.Create(m).Error
	})
}

// SaveCabinet: simpan perubahan; status active → kabinet lain dinonaktifkan dulu.
func SaveCabinet(ctx context.Context, db *gorm.DB, m *model.CabinetModel) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.IsActive() {
			if err := deactivateOthers(tx, m.CabinetID); err != nil {
				return err
			}
		}
		return tx.Omit("Members").Save(m).Error
	})
}

// SoftDeleteCabinet: status jadi inactive supaya restore tidak bentrok index aktif.
func SoftDeleteCabinet(ctx context.Context, db *gorm.DB, m *model.CabinetModel) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(m).Update("cabinet_status", constants.CabinetStatusInactive).Error; err != nil {
			return err
		}
		m.CabinetStatus = constants.CabinetStatusInactive
		return tx.Delete(m).Error
	})
}

func deactivateOthers(tx *gorm.DB, keep uuid.UUID) error {
	q := tx.Model(&model.CabinetModel{}).
		Where("cabinet_status = ?", constants.CabinetStatusActive)
	if keep != uuid.Nil {
		q = q.Where("cabinet_id <> ?", keep)
	}
	return q.Update("cabinet_status", constants.CabinetStatusInactive).Error
}

/* =========================================================
   Members
========================================================= */

func ListMembers(ctx context.Context, db *gorm.DB, cabinetID uuid.UUID) ([]model.MemberModel, error) {
	var list []model.MemberModel
	err := db.WithContext(ctx).
		Preload("Division").
		Where("member_cabinet_id = ?", cabinetID).
		Order(model.MemberOrderClause).
		Find(&list).Error
	return list, err
}

func FindMember(ctx context.Context, db *gorm.DB, cabinetID, memberID uuid.UUID) (*model.MemberModel, error) {
	var m model.MemberModel
	err := db.WithContext(ctx).
		Preload("Division").
		Where("member_cabinet_id = ? AND member_id = ?", cabinetID, memberID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

// ResolveDivision: divisi wajib ada (tidak terhapus).
func ResolveDivision(ctx context.Context, db *gorm.DB, id uuid.UUID) (*divisionModel.DivisionModel, error) {
	d, err := divisionService.FindByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, divisionService.ErrDivisionNotFound) {
			return nil, ErrDivisionNotExists
		}
		return nil, err
	}
	return d, nil
}

/* =========================================================
   Struktur
========================================================= */

// BuildStructure: load katalog divisi lalu jalankan resolver.
func BuildStructure(ctx context.Context, db *gorm.DB, cabinet *model.CabinetModel) (*Structure, []UnplacedMember, error) {
	divisions, err := divisionService.ListCatalog(ctx, db)
	if err != nil {
		return nil, nil, fmt.Errorf("list divisions: %w", err)
	}
	st, unplaced := ResolveStructureWithDiagnostics(cabinet, divisions)
	return st, unplaced, nil
}
