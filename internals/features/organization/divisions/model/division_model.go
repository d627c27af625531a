package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DivisionModel struct {
	DivisionID uuid.UUID `gorm:"type:uuid;primaryKey;column:division_id" json:"division_id"`

	// Contoh: "leadership", "anf", "humi"
	DivisionCode        string  `gorm:"type:varchar(40);not null;column:division_code;uniqueIndex:uq_divisions_code_alive,where:division_deleted_at IS NULL" json:"division_code"`
	DivisionName        string  `gorm:"type:varchar(120);not null;column:division_name" json:"division_name"`
	DivisionDescription *string `gorm:"type:text;column:division_description" json:"division_description,omitempty"`
	DivisionOrder       int     `gorm:"not null;default:0;column:division_order" json:"division_order"`

	DivisionCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:division_created_at" json:"division_created_at"`
	DivisionUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:division_updated_at" json:"division_updated_at"`
	DivisionDeletedAt gorm.DeletedAt `gorm:"column:division_deleted_at;index" json:"division_deleted_at,omitempty"`
}

func (DivisionModel) TableName() string { return "divisions" }

func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

func (m *DivisionModel) BeforeCreate(tx *gorm.DB) error {
	if m.DivisionID == uuid.Nil {
		m.DivisionID = uuid.New()
	}
	return nil
}

func (m *DivisionModel) BeforeSave(tx *gorm.DB) error {
	m.DivisionCode = NormalizeCode(m.DivisionCode)
	m.DivisionName = strings.TrimSpace(m.DivisionName)
	if m.DivisionDescription != nil {
		d := strings.TrimSpace(*m.DivisionDescription)
		if d == "" {
			m.DivisionDescription = nil
		} else {
			m.DivisionDescription = &d
		}
	}
	return nil
}
