// file: internals/features/organization/cabinets/model/cabinet_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/constants"
)

type CabinetModel struct {
	CabinetID uuid.UUID `gorm:"type:uuid;primaryKey;column:cabinet_id" json:"cabinet_id"`

	// ============ Identitas ============
	CabinetName        string  `gorm:"type:varchar(120);not null;column:cabinet_name" json:"cabinet_name"`
	CabinetDescription *string `gorm:"type:text;column:cabinet_description" json:"cabinet_description,omitempty"`
	// Example period: "2025/2026"
	CabinetPeriod *string `gorm:"type:varchar(40);column:cabinet_period" json:"cabinet_period,omitempty"`

	// Maksimal satu kabinet aktif (partial unique index)
	CabinetStatus string `gorm:"type:varchar(16);not null;default:'inactive';column:cabinet_status;uniqueIndex:uq_cabinets_single_active,where:cabinet_status = 'active' AND cabinet_deleted_at IS NULL" json:"cabinet_status"`

	Members []MemberModel `gorm:"foreignKey:MemberCabinetID;references:CabinetID" json:"members,omitempty"`

	// ============ Audit / Soft delete ============
	CabinetCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:cabinet_created_at" json:"cabinet_created_at"`
	CabinetUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:cabinet_updated_at" json:"cabinet_updated_at"`
	CabinetDeletedAt gorm.DeletedAt `gorm:"column:cabinet_deleted_at;index" json:"cabinet_deleted_at,omitempty"`
}

func (CabinetModel) TableName() string { return "cabinets" }

func (m *CabinetModel) IsActive() bool { return m.CabinetStatus == constants.CabinetStatusActive }

func NormalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (m *CabinetModel) BeforeCreate(tx *gorm.DB) error {
	if m.CabinetID == uuid.Nil {
		m.CabinetID = uuid.New()
	}
	return nil
}

// ============ Hooks: validation & light normalization ============
func (m *CabinetModel) BeforeSave(tx *gorm.DB) error {
	m.CabinetName = strings.TrimSpace(m.CabinetName)
	m.CabinetStatus = NormalizeStatus(m.CabinetStatus)
	if m.CabinetStatus == "" {
		m.CabinetStatus = constants.CabinetStatusInactive
	}
	if m.CabinetStatus != constants.CabinetStatusActive && m.CabinetStatus != constants.CabinetStatusInactive {
		return errors.New("cabinet_status must be 'active' or 'inactive'")
	}
	m.CabinetDescription = trimPtr(m.CabinetDescription)
	m.CabinetPeriod = trimPtr(m.CabinetPeriod)
	return nil
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}
