package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/features/films/model"
	helper "ukmfilm_backend/internals/helpers"
)

var ErrFilmNotFound = errors.New("film tidak ditemukan")

// PublicFilter: filter katalog publik.
type PublicFilter struct {
	Query string
	Year  int
	Genre string
}

// ApplyPublicFilter: hanya film terbit + filter opsional.
func ApplyPublicFilter(q *gorm.DB, f PublicFilter) *gorm.DB {
	q = q.Where("film_is_published = ?", true)
	if like := helper.ContainsPattern(f.Query); like != "" {
		q = q.Where("LOWER(film_title) LIKE ? ESCAPE '\\' OR LOWER(COALESCE(film_synopsis, '')) LIKE ? ESCAPE '\\'", like, like)
	}
	if f.Year > 0 {
		q = q.Where("film_year = ?", f.Year)
	}
	if g := strings.ToLower(strings.TrimSpace(f.Genre)); g != "" {
		// genre disimpan lower-case sebagai elemen JSON string
		q = q.Where(`CAST(film_genres AS TEXT) LIKE ? ESCAPE '\'`, `%"`+helper.EscapeLike(g)+`"%`)
	}
	return q
}

func UniqueSlug(ctx context.Context, db *gorm.DB, title string, requested *string, exceptID uuid.UUID) (string, error) {
	base := title
	if requested != nil && strings.TrimSpace(*requested) != "" {
		base = *requested
	}
	scope := helper.SlugScope{
		Table:            "films",
		Column:           "film_slug",
		SoftDeleteColumn: "film_deleted_at",
	}
	if exceptID != uuid.Nil {
		scope.ExcludeIDColumn = "film_id"
		scope.ExcludeID = exceptID
	}
	return helper.EnsureUniqueSlugCI(ctx, db, scope, helper.Slugify(base, helper.DefaultSlugMaxLen), helper.DefaultSlugMaxLen)
}

func FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID, unscoped bool) (*model.FilmModel, error) {
	q := db.WithContext(ctx)
	if unscoped {
		q = q.Unscoped()
	}
	var m model.FilmModel
	if err := q.First(&m, "film_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFilmNotFound
		}
		return nil, err
	}
	return &m, nil
}

func FindPublishedBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.FilmModel, error) {
	var m model.FilmModel
	err := db.WithContext(ctx).
		Where("LOWER(film_slug) = ? AND film_is_published = ?", strings.ToLower(strings.TrimSpace(slug)), true).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFilmNotFound
		}
		return nil, err
	}
	return &m, nil
}
