package dto

import (
	"strings"
	"time"

	"ukmfilm_backend/internals/features/organization/divisions/model"

	"github.com/google/uuid"
)

// =======================
// Request DTO
// =======================

type DivisionCreateDTO struct {
	DivisionCode        string  `json:"division_code"        validate:"required,min=2,max=40,code"`
	DivisionName        string  `json:"division_name"        validate:"required,min=2,max=120"`
	DivisionDescription *string `json:"division_description,omitempty"`
	DivisionOrder       *int    `json:"division_order,omitempty" validate:"omitempty,min=0"`
}

type DivisionUpdateDTO struct {
	DivisionCode        *string `json:"division_code,omitempty"  validate:"omitempty,min=2,max=40,code"`
	DivisionName        *string `json:"division_name,omitempty"  validate:"omitempty,min=2,max=120"`
	DivisionDescription *string `json:"division_description,omitempty"`
	DivisionOrder       *int    `json:"division_order,omitempty" validate:"omitempty,min=0"`
}

// =======================
// Response DTO
// =======================

type DivisionResponse struct {
	DivisionID          uuid.UUID  `json:"division_id"`
	DivisionCode        string     `json:"division_code"`
	DivisionName        string     `json:"division_name"`
	DivisionDescription *string    `json:"division_description,omitempty"`
	DivisionOrder       int        `json:"division_order"`
	DivisionCreatedAt   time.Time  `json:"division_created_at"`
	DivisionUpdatedAt   time.Time  `json:"division_updated_at"`
	DivisionDeletedAt   *time.Time `json:"division_deleted_at,omitempty"`
}

// =======================
// Helpers
// =======================

// Normalize dipanggil BindAndValidate sebelum validasi.
func (p *DivisionCreateDTO) Normalize() {
	p.DivisionCode = model.NormalizeCode(p.DivisionCode)
	p.DivisionName = strings.TrimSpace(p.DivisionName)
}

func (p *DivisionCreateDTO) ToModel() model.DivisionModel {
	order := 0
	if p.DivisionOrder != nil {
		order = *p.DivisionOrder
	}
	return model.DivisionModel{
		DivisionCode:        p.DivisionCode,
		DivisionName:        p.DivisionName,
		DivisionDescription: p.DivisionDescription,
		DivisionOrder:       order,
	}
}

func (u *DivisionUpdateDTO) Normalize() {
	if u.DivisionCode != nil {
		s := model.NormalizeCode(*u.DivisionCode)
		u.DivisionCode = &s
	}
	if u.DivisionName != nil {
		s := strings.TrimSpace(*u.DivisionName)
		u.DivisionName = &s
	}
}

func (u *DivisionUpdateDTO) ApplyUpdates(ent *model.DivisionModel) {
	if u.DivisionCode != nil {
		ent.DivisionCode = *u.DivisionCode
	}
	if u.DivisionName != nil {
		ent.DivisionName = *u.DivisionName
	}
	if u.DivisionDescription != nil {
		ent.DivisionDescription = u.DivisionDescription
	}
	if u.DivisionOrder != nil {
		ent.DivisionOrder = *u.DivisionOrder
	}
}

func FromModel(m model.DivisionModel) DivisionResponse {
	var deletedAt *time.Time
	if m.DivisionDeletedAt.Valid {
		t := m.DivisionDeletedAt.Time
		deletedAt = &t
	}
	return DivisionResponse{
		DivisionID:          m.DivisionID,
		DivisionCode:        m.DivisionCode,
		DivisionName:        m.DivisionName,
		DivisionDescription: m.DivisionDescription,
		DivisionOrder:       m.DivisionOrder,
		DivisionCreatedAt:   m.DivisionCreatedAt,
		DivisionUpdatedAt:   m.DivisionUpdatedAt,
		DivisionDeletedAt:   deletedAt,
	}
}

func FromModels(list []model.DivisionModel) []DivisionResponse {
	out := make([]DivisionResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
