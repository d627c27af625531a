package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"ukmfilm_backend/internals/features/organization/cabinets/model"
)

type MemberCreateDTO struct {
	MemberDivisionID  uuid.UUID `json:"member_division_id" validate:"required"`
	MemberName        string    `json:"member_name"        validate:"required,min=1,max=120"`
	MemberPosition    string    `json:"member_position"    validate:"max=120"`
	MemberImageURL    *string   `json:"member_image_url,omitempty"   validate:"omitempty,max=2048"`
	MemberDescription *string   `json:"member_description,omitempty"`
	MemberOrder       *int      `json:"member_order,omitempty"       validate:"omitempty,min=0"`
}

type MemberUpdateDTO struct {
	MemberDivisionID  *uuid.UUID `json:"member_division_id,omitempty"`
	MemberName        *string    `json:"member_name,omitempty"        validate:"omitempty,min=1,max=120"`
	MemberPosition    *string    `json:"member_position,omitempty"    validate:"omitempty,max=120"`
	MemberImageURL    *string    `json:"member_image_url,omitempty"   validate:"omitempty,max=2048"`
	MemberDescription *string    `json:"member_description,omitempty"`
	MemberOrder       *int       `json:"member_order,omitempty"       validate:"omitempty,min=0"`
}

type MemberResponse struct {
	MemberID          uuid.UUID `json:"member_id"`
	MemberCabinetID   uuid.UUID `json:"member_cabinet_id"`
	MemberDivisionID  uuid.UUID `json:"member_division_id"`
	DivisionCode      string    `json:"division_code,omitempty"`
	DivisionName      string    `json:"division_name,omitempty"`
	MemberName        string    `json:"member_name"`
	MemberPosition    string    `json:"member_position"`
	MemberImageURL    *string   `json:"member_image_url,omitempty"`
	MemberDescription *string   `json:"member_description,omitempty"`
	MemberOrder       int       `json:"member_order"`
	MemberCreatedAt   time.Time `json:"member_created_at"`
	MemberUpdatedAt   time.Time `json:"member_updated_at"`
}

func (p *MemberCreateDTO) Normalize() {
	p.MemberName = strings.TrimSpace(p.MemberName)
	p.MemberPosition = strings.TrimSpace(p.MemberPosition)
}

func (p *MemberCreateDTO) ToModel(cabinetID uuid.UUID) model.MemberModel {
	order := 0
	if p.MemberOrder != nil {
		order = *p.MemberOrder
	}
	return model.MemberModel{
		MemberCabinetID:   cabinetID,
		MemberDivisionID:  p.MemberDivisionID,
		MemberName:        p.MemberName,
		MemberPosition:    p.MemberPosition,
		MemberImageURL:    p.MemberImageURL,
		MemberDescription: p.MemberDescription,
		MemberOrder:       order,
	}
}

func (u *MemberUpdateDTO) Normalize() {
	if u.MemberName != nil {
		s := strings.TrimSpace(*u.MemberName)
		u.MemberName = &s
	}
	if u.MemberPosition != nil {
		s := strings.TrimSpace(*u.MemberPosition)
		u.MemberPosition = &s
	}
}

func (u *MemberUpdateDTO) ApplyUpdates(ent *model.MemberModel) {
	if u.MemberDivisionID != nil {
		ent.MemberDivisionID = *u.MemberDivisionID
		ent.Division = nil
	}
	if u.MemberName != nil {
		ent.MemberName = *u.MemberName
	}
	if u.MemberPosition != nil {
		ent.MemberPosition = *u.MemberPosition
	}
	if u.MemberImageURL != nil {
		ent.MemberImageURL = u.MemberImageURL
	}
	if u.MemberDescription != nil {
		ent.MemberDescription = u.MemberDescription
	}
	if u.MemberOrder != nil {
		ent.MemberOrder = *u.MemberOrder
	}
}

func FromMemberModel(m model.MemberModel) MemberResponse {
	r := MemberResponse{
		MemberID:          m.MemberID,
		MemberCabinetID:   m.MemberCabinetID,
		MemberDivisionID:  m.MemberDivisionID,
		MemberName:        m.MemberName,
		MemberPosition:    m.MemberPosition,
		MemberImageURL:    m.MemberImageURL,
		MemberDescription: m.MemberDescription,
		MemberOrder:       m.MemberOrder,
		MemberCreatedAt:   m.MemberCreatedAt,
		MemberUpdatedAt:   m.MemberUpdatedAt,
	}
	if m.Division != nil {
		r.DivisionCode = m.Division.DivisionCode
		r.DivisionName = m.Division.DivisionName
	}
	return r
}

func FromMemberModels(list []model.MemberModel) []MemberResponse {
	out := make([]MemberResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromMemberModel(it))
	}
	return out
}
