package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"ukmfilm_backend/internals/features/organization/cabinets/model"
)

// =======================
// Request DTO
// =======================

type CabinetCreateDTO struct {
	CabinetName        string  `json:"cabinet_name"        validate:"required,min=2,max=120"`
	CabinetDescription *string `json:"cabinet_description,omitempty"`
	CabinetPeriod      *string `json:"cabinet_period,omitempty" validate:"omitempty,max=40"`
	CabinetStatus      string  `json:"cabinet_status"      validate:"omitempty,oneof=active inactive"`
}

type CabinetUpdateDTO struct {
	CabinetName        *string `json:"cabinet_name,omitempty"   validate:"omitempty,min=2,max=120"`
	CabinetDescription *string `json:"cabinet_description,omitempty"`
	CabinetPeriod      *string `json:"cabinet_period,omitempty" validate:"omitempty,max=40"`
	CabinetStatus      *string `json:"cabinet_status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// =======================
// Response DTO
// =======================

type CabinetResponse struct {
	CabinetID          uuid.UUID        `json:"cabinet_id"`
	CabinetName        string           `json:"cabinet_name"`
	CabinetDescription *string          `json:"cabinet_description,omitempty"`
	CabinetPeriod      *string          `json:"cabinet_period,omitempty"`
	CabinetStatus      string           `json:"cabinet_status"`
	Members            []MemberResponse `json:"members,omitempty"`
	CabinetCreatedAt   time.Time        `json:"cabinet_created_at"`
	CabinetUpdatedAt   time.Time        `json:"cabinet_updated_at"`
	CabinetDeletedAt   *time.Time       `json:"cabinet_deleted_at,omitempty"`
}

// =======================
// Helpers
// =======================

func (p *CabinetCreateDTO) Normalize() {
	p.CabinetName = strings.TrimSpace(p.CabinetName)
	p.CabinetStatus = model.NormalizeStatus(p.CabinetStatus)
}

func (p *CabinetCreateDTO) ToModel() model.CabinetModel {
	return model.CabinetModel{
		CabinetName:        p.CabinetName,
		CabinetDescription: p.CabinetDescription,
		CabinetPeriod:      p.CabinetPeriod,
		CabinetStatus:      p.CabinetStatus,
	}
}

func (u *CabinetUpdateDTO) Normalize() {
	if u.CabinetName != nil {
		s := strings.TrimSpace(*u.CabinetName)
		u.CabinetName = &s
	}
	if u.CabinetStatus != nil {
		s := model.NormalizeStatus(*u.CabinetStatus)
		u.CabinetStatus = &s
	}
}

func (u *CabinetUpdateDTO) ApplyUpdates(ent *model.CabinetModel) {
	if u.CabinetName != nil {
		ent.CabinetName = *u.CabinetName
	}
	if u.CabinetDescription != nil {
		ent.CabinetDescription = u.CabinetDescription
	}
	if u.CabinetPeriod != nil {
		ent.CabinetPeriod = u.CabinetPeriod
	}
	if u.CabinetStatus != nil {
		ent.CabinetStatus = *u.CabinetStatus
	}
}

func FromModel(m model.CabinetModel) CabinetResponse {
	var deletedAt *time.Time
	if m.CabinetDeletedAt.Valid {
		t := m.CabinetDeletedAt.Time
		deletedAt = &t
	}
	var members []MemberResponse
	if len(m.Members) > 0 {
		members = FromMemberModels(m.Members)
	}
	return CabinetResponse{
		CabinetID:          m.CabinetID,
		CabinetName:        m.CabinetName,
		CabinetDescription: m.CabinetDescription,
		CabinetPeriod:      m.CabinetPeriod,
		CabinetStatus:      m.CabinetStatus,
		Members:            members,
		CabinetCreatedAt:   m.CabinetCreatedAt,
		CabinetUpdatedAt:   m.CabinetUpdatedAt,
		CabinetDeletedAt:   deletedAt,
	}
}

func FromModels(list []model.CabinetModel) []CabinetResponse {
	out := make([]CabinetResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
