// file: internals/features/organization/cabinets/model/member_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	divisionModel "ukmfilm_backend/internals/features/organization/divisions/model"
)

// MemberModel: anggota satu kabinet, hard delete.
type MemberModel struct {
	MemberID         uuid.UUID `gorm:"type:uuid;primaryKey;column:member_id" json:"member_id"`
	MemberCabinetID  uuid.UUID `gorm:"type:uuid;not null;column:member_cabinet_id;index:idx_members_cabinet_order,priority:1" json:"member_cabinet_id"`
	MemberDivisionID uuid.UUID `gorm:"type:uuid;not null;column:member_division_id;index" json:"member_division_id"`

	MemberName string `gorm:"type:varchar(120);not null;column:member_name" json:"member_name"`
	// Teks bebas: "Ketua ANF", "Wakil Ketua Umum", "Kabid HUMI", ...
	MemberPosition    string  `gorm:"type:varchar(120);not null;default:'';column:member_position" json:"member_position"`
	MemberImageURL    *string `gorm:"type:text;column:member_image_url" json:"member_image_url,omitempty"`
	MemberDescription *string `gorm:"type:text;column:member_description" json:"member_description,omitempty"`
	MemberOrder       int     `gorm:"not null;default:0;column:member_order;index:idx_members_cabinet_order,priority:2" json:"member_order"`

	// nil kalau divisinya sudah di-soft-delete
	Division *divisionModel.DivisionModel `gorm:"foreignKey:MemberDivisionID;references:DivisionID" json:"division,omitempty"`

	MemberCreatedAt time.Time `gorm:"not null;autoCreateTime;column:member_created_at" json:"member_created_at"`
	MemberUpdatedAt time.Time `gorm:"not null;autoUpdateTime;column:member_updated_at" json:"member_updated_at"`
}

func (MemberModel) TableName() string { return "members" }

// MemberOrderClause: urutan deterministik (dipakai resolver → first-write-wins stabil).
const MemberOrderClause = "member_order ASC, member_created_at ASC, member_id ASC"

func (m *MemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.MemberID == uuid.Nil {
		m.MemberID = uuid.New()
	}
	return nil
}

func (m *MemberModel) BeforeSave(tx *gorm.DB) error {
	m.MemberName = strings.TrimSpace(m.MemberName)
	m.MemberPosition = strings.TrimSpace(m.MemberPosition)
	m.MemberImageURL = trimPtr(m.MemberImageURL)
	m.MemberDescription = trimPtr(m.MemberDescription)
	return nil
}
