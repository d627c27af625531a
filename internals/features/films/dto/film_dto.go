package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"ukmfilm_backend/internals/features/films/model"
)

// =======================
// Request DTO
// =======================

type FilmCreateDTO struct {
	FilmTitle       string             `json:"film_title"        validate:"required,min=1,max=255"`
	FilmSlug        *string            `json:"film_slug"         validate:"omitempty,max=160"`
	FilmSynopsis    *string            `json:"film_synopsis"`
	FilmPosterURL   *string            `json:"film_poster_url"   validate:"omitempty,max=2048"`
	FilmTrailerURL  *string            `json:"film_trailer_url"  validate:"omitempty,max=2048"`
	FilmYear        *int               `json:"film_year"         validate:"omitempty,min=1900,max=2100"`
	FilmDurationMin *int               `json:"film_duration_minutes" validate:"omitempty,min=1,max=1000"`
	FilmGenres      []string           `json:"film_genres"       validate:"omitempty,max=10,dive,max=40"`
	FilmCrew        []model.CrewMember `json:"film_crew"         validate:"omitempty,max=100,dive"`
	FilmIsPublished bool               `json:"film_is_published"`
}

type FilmUpdateDTO struct {
	FilmTitle       *string             `json:"film_title"        validate:"omitempty,min=1,max=255"`
	FilmSlug        *string             `json:"film_slug"         validate:"omitempty,max=160"`
	FilmSynopsis    *string             `json:"film_synopsis"`
	FilmPosterURL   *string             `json:"film_poster_url"   validate:"omitempty,max=2048"`
	FilmTrailerURL  *string             `json:"film_trailer_url"  validate:"omitempty,max=2048"`
	FilmYear        *int                `json:"film_year"         validate:"omitempty,min=1900,max=2100"`
	FilmDurationMin *int                `json:"film_duration_minutes" validate:"omitempty,min=1,max=1000"`
	FilmGenres      *[]string           `json:"film_genres"       validate:"omitempty,max=10,dive,max=40"`
	FilmCrew        *[]model.CrewMember `json:"film_crew"         validate:"omitempty,max=100,dive"`
	FilmIsPublished *bool               `json:"film_is_published"`
}

// =======================
// Response DTO
// =======================

type FilmResponse struct {
	FilmID          uuid.UUID          `json:"film_id"`
	FilmTitle       string             `json:"film_title"`
	FilmSlug        string             `json:"film_slug"`
	FilmSynopsis    *string            `json:"film_synopsis,omitempty"`
	FilmPosterURL   *string            `json:"film_poster_url,omitempty"`
	FilmTrailerURL  *string            `json:"film_trailer_url,omitempty"`
	FilmYear        *int               `json:"film_year,omitempty"`
	FilmDurationMin *int               `json:"film_duration_minutes,omitempty"`
	FilmGenres      []string           `json:"film_genres"`
	FilmCrew        []model.CrewMember `json:"film_crew"`
	FilmIsPublished bool               `json:"film_is_published"`
	FilmOwnerID     uuid.UUID          `json:"film_owner_id"`
	FilmCreatedAt   time.Time          `json:"film_created_at"`
	FilmUpdatedAt   time.Time          `json:"film_updated_at"`
	FilmDeletedAt   *time.Time         `json:"film_deleted_at,omitempty"`
}

// =======================
// Helpers
// =======================

func (p *FilmCreateDTO) Normalize() {
	p.FilmTitle = strings.TrimSpace(p.FilmTitle)
	p.FilmGenres = model.NormalizeGenres(p.FilmGenres)
}

func (p *FilmCreateDTO) ToModel(ownerID uuid.UUID) model.FilmModel {
	crew := p.FilmCrew
	if crew == nil {
		crew = []model.CrewMember{}
	}
	return model.FilmModel{
		FilmTitle:       p.FilmTitle,
		FilmSynopsis:    p.FilmSynopsis,
		FilmPosterURL:   p.FilmPosterURL,
		FilmTrailerURL:  p.FilmTrailerURL,
		FilmYear:        p.FilmYear,
		FilmDurationMin: p.FilmDurationMin,
		FilmGenres:      p.FilmGenres,
		FilmCrew:        crew,
		FilmIsPublished: p.FilmIsPublished,
		FilmOwnerID:     ownerID,
	}
}

func (u *FilmUpdateDTO) Normalize() {
	if u.FilmTitle != nil {
		s := strings.TrimSpace(*u.FilmTitle)
		u.FilmTitle = &s
	}
	if u.FilmGenres != nil {
		g := model.NormalizeGenres(*u.FilmGenres)
		u.FilmGenres = &g
	}
}

// ApplyUpdates: slug ditangani service.
func (u *FilmUpdateDTO) ApplyUpdates(m *model.FilmModel) {
	if u.FilmTitle != nil {
		m.FilmTitle = *u.FilmTitle
	}
	if u.FilmSynopsis != nil {
		m.FilmSynopsis = u.FilmSynopsis
	}
	if u.FilmPosterURL != nil {
		m.FilmPosterURL = u.FilmPosterURL
	}
	if u.FilmTrailerURL != nil {
		m.FilmTrailerURL = u.FilmTrailerURL
	}
	if u.FilmYear != nil {
		m.FilmYear = u.FilmYear
	}
	if u.FilmDurationMin != nil {
		m.FilmDurationMin = u.FilmDurationMin
	}
	if u.FilmGenres != nil {
		m.FilmGenres = *u.FilmGenres
	}
	if u.FilmCrew != nil {
		m.FilmCrew = *u.FilmCrew
	}
	if u.FilmIsPublished != nil {
		m.FilmIsPublished = *u.FilmIsPublished
	}
}

func FromModel(m model.FilmModel) FilmResponse {
	var deletedAt *time.Time
	if m.FilmDeletedAt.Valid {
		t := m.FilmDeletedAt.Time
		deletedAt = &t
	}
	genres := []string(m.FilmGenres)
	if genres == nil {
		genres = []string{}
	}
	crew := []model.CrewMember(m.FilmCrew)
	if crew == nil {
		crew = []model.CrewMember{}
	}
	return FilmResponse{
		FilmID:          m.FilmID,
		FilmTitle:       m.FilmTitle,
		FilmSlug:        m.FilmSlug,
		FilmSynopsis:    m.FilmSynopsis,
		FilmPosterURL:   m.FilmPosterURL,
		FilmTrailerURL:  m.FilmTrailerURL,
		FilmYear:        m.FilmYear,
		FilmDurationMin: m.FilmDurationMin,
		FilmGenres:      genres,
		FilmCrew:        crew,
		FilmIsPublished: m.FilmIsPublished,
		FilmOwnerID:     m.FilmOwnerID,
		FilmCreatedAt:   m.FilmCreatedAt,
		FilmUpdatedAt:   m.FilmUpdatedAt,
		FilmDeletedAt:   deletedAt,
	}
}

func FromModels(list []model.FilmModel) []FilmResponse {
	out := make([]FilmResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
