// file: internals/features/films/model/film_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CrewMember: satu baris kredit film, mis. {role: "Sutradara", name: "Ani"}.
type CrewMember struct {
	Role string `json:"role" validate:"required,max=80"`
	Name string `json:"name" validate:"required,max=120"`
}

type FilmModel struct {
	FilmID    uuid.UUID `gorm:"type:uuid;primaryKey;column:film_id" json:"film_id"`
	FilmTitle string    `gorm:"type:varchar(255);not null;column:film_title" json:"film_title"`
	// unik di antara film yang belum dihapus
	FilmSlug        string  `gorm:"type:varchar(160);not null;column:film_slug;uniqueIndex:uq_films_slug_alive,where:film_deleted_at IS NULL" json:"film_slug"`
	FilmSynopsis    *string `gorm:"type:text;column:film_synopsis" json:"film_synopsis,omitempty"`
	FilmPosterURL   *string `gorm:"type:text;column:film_poster_url" json:"film_poster_url,omitempty"`
	FilmTrailerURL  *string `gorm:"type:text;column:film_trailer_url" json:"film_trailer_url,omitempty"`
	FilmYear        *int    `gorm:"column:film_year;index" json:"film_year,omitempty"`
	FilmDurationMin *int    `gorm:"column:film_duration_minutes" json:"film_duration_minutes,omitempty"`

	// JSON array: ["drama","dokumenter"]
	FilmGenres datatypes.JSONSlice[string] `gorm:"column:film_genres" json:"film_genres"`
	// JSON array: [{role,name}]
	FilmCrew datatypes.JSONSlice[CrewMember] `gorm:"column:film_crew" json:"film_crew"`

	FilmIsPublished bool      `gorm:"not null;default:false;column:film_is_published;index" json:"film_is_published"`
	FilmOwnerID     uuid.UUID `gorm:"type:uuid;not null;column:film_owner_id;index" json:"film_owner_id"`

	FilmCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:film_created_at" json:"film_created_at"`
	FilmUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:film_updated_at" json:"film_updated_at"`
	FilmDeletedAt gorm.DeletedAt `gorm:"column:film_deleted_at;index" json:"film_deleted_at,omitempty"`
}

func (FilmModel) TableName() string { return "films" }

// NormalizeGenres: lower-case, trim, buang kosong & duplikat (urutan dipertahankan).
func NormalizeGenres(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, g := range in {
		g = strings.ToLower(strings.TrimSpace(g))
		if g == "" {
			continue
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}

func (m *FilmModel) BeforeCreate(tx *gorm.DB) error {
	if m.FilmID == uuid.Nil {
		m.FilmID = uuid.New()
	}
	return nil
}

func (m *FilmModel) BeforeSave(tx *gorm.DB) error {
	m.FilmTitle = strings.TrimSpace(m.FilmTitle)
	m.FilmGenres = NormalizeGenres(m.FilmGenres)
	if m.FilmCrew == nil {
		m.FilmCrew = datatypes.JSONSlice[CrewMember]{}
	}
	return nil
}
