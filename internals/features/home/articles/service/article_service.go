package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/features/home/articles/model"
	helper "ukmfilm_backend/internals/helpers"
)

var ErrArticleNotFound = errors.New("artikel tidak ditemukan")

// UniqueSlug: slug dari input (atau judul) lalu dibuat unik di antara artikel yang belum dihapus.
func UniqueSlug(ctx context.Context, db *gorm.DB, title string, requested *string, exceptID uuid.UUID) (string, error) {
	base := title
	if requested != nil && strings.TrimSpace(*requested) != "" {
		base = *requested
	}
	scope := helper.SlugScope{
		Table:            "articles",
		Column:           "article_slug",
		SoftDeleteColumn: "article_deleted_at",
	}
	if exceptID != uuid.Nil {
		scope.ExcludeIDColumn = "article_id"
		scope.ExcludeID = exceptID
	}
	return helper.EnsureUniqueSlugCI(ctx, db, scope, helper.Slugify(base, helper.DefaultSlugMaxLen), helper.DefaultSlugMaxLen)
}

func FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID, unscoped bool) (*model.ArticleModel, error) {
	q := db.WithContext(ctx)
	if unscoped {
		q = q.Unscoped()
	}
	var m model.ArticleModel
	if err := q.First(&m, "article_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindPublishedBySlug: untuk halaman publik (draft dianggap tidak ada).
func FindPublishedBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.ArticleModel, error) {
	var m model.ArticleModel
	err := db.WithContext(ctx).
		Where("LOWER(article_slug) = ? AND article_is_published = ?", strings.ToLower(strings.TrimSpace(slug)), true).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &m, nil
}
