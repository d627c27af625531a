package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"ukmfilm_backend/internals/features/home/articles/model"
)

// ============================
// Response DTO
// ============================

type ArticleDTO struct {
	ArticleID          uuid.UUID  `json:"article_id"`
	ArticleTitle       string     `json:"article_title"`
	ArticleSlug        string     `json:"article_slug"`
	ArticleExcerpt     *string    `json:"article_excerpt,omitempty"`
	ArticleContent     string     `json:"article_content,omitempty"`
	ArticleImageURL    *string    `json:"article_image_url,omitempty"`
	ArticleIsPublished bool       `json:"article_is_published"`
	ArticlePublishedAt *time.Time `json:"article_published_at,omitempty"`
	ArticleAuthorID    uuid.UUID  `json:"article_author_id"`
	ArticleCreatedAt   time.Time  `json:"article_created_at"`
	ArticleUpdatedAt   time.Time  `json:"article_updated_at"`
	ArticleDeletedAt   *time.Time `json:"article_deleted_at,omitempty"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateArticleRequest struct {
	ArticleTitle       string  `json:"article_title"   validate:"required,min=3,max=255"`
	ArticleSlug        *string `json:"article_slug"    validate:"omitempty,max=160"`
	ArticleExcerpt     *string `json:"article_excerpt"`
	ArticleContent     string  `json:"article_content" validate:"required"`
	ArticleImageURL    *string `json:"article_image_url" validate:"omitempty,max=2048"`
	ArticleIsPublished bool    `json:"article_is_published"`
}

type UpdateArticleRequest struct {
	ArticleTitle       *string `json:"article_title"   validate:"omitempty,min=3,max=255"`
	ArticleSlug        *string `json:"article_slug"    validate:"omitempty,max=160"`
	ArticleExcerpt     *string `json:"article_excerpt"`
	ArticleContent     *string `json:"article_content" validate:"omitempty,min=1"`
	ArticleImageURL    *string `json:"article_image_url" validate:"omitempty,max=2048"`
	ArticleIsPublished *bool   `json:"article_is_published"`
}

func (r *CreateArticleRequest) Normalize() {
	r.ArticleTitle = strings.TrimSpace(r.ArticleTitle)
}

func (r *CreateArticleRequest) ToModel(authorID uuid.UUID, now time.Time) model.ArticleModel {
	m := model.ArticleModel{
		ArticleTitle:    r.ArticleTitle,
		ArticleExcerpt:  r.ArticleExcerpt,
		ArticleContent:  r.ArticleContent,
		ArticleImageURL: r.ArticleImageURL,
		ArticleAuthorID: authorID,
	}
	m.SetPublished(r.ArticleIsPublished, now)
	return m
}

func (r *UpdateArticleRequest) Normalize() {
	if r.ArticleTitle != nil {
		s := strings.TrimSpace(*r.ArticleTitle)
		r.ArticleTitle = &s
	}
}

// ApplyUpdates: slug ditangani terpisah oleh service.
func (r *UpdateArticleRequest) ApplyUpdates(m *model.ArticleModel, now time.Time) {
	if r.ArticleTitle != nil {
		m.ArticleTitle = *r.ArticleTitle
	}
	if r.ArticleExcerpt != nil {
		m.ArticleExcerpt = r.ArticleExcerpt
	}
	if r.ArticleContent != nil {
		m.ArticleContent = *r.ArticleContent
	}
	if r.ArticleImageURL != nil {
		m.ArticleImageURL = r.ArticleImageURL
	}
	if r.ArticleIsPublished != nil {
		m.SetPublished(*r.ArticleIsPublished, now)
	}
}

// ============================
// Converter
// ============================

func ToArticleDTO(m model.ArticleModel) ArticleDTO {
	var deletedAt *time.Time
	if m.ArticleDeletedAt.Valid {
		t := m.ArticleDeletedAt.Time
		deletedAt = &t
	}
	return ArticleDTO{
		ArticleID:          m.ArticleID,
		ArticleTitle:       m.ArticleTitle,
		ArticleSlug:        m.ArticleSlug,
		ArticleExcerpt:     m.ArticleExcerpt,
		ArticleContent:     m.ArticleContent,
		ArticleImageURL:    m.ArticleImageURL,
		ArticleIsPublished: m.ArticleIsPublished,
		ArticlePublishedAt: m.ArticlePublishedAt,
		ArticleAuthorID:    m.ArticleAuthorID,
		ArticleCreatedAt:   m.ArticleCreatedAt,
		ArticleUpdatedAt:   m.ArticleUpdatedAt,
		ArticleDeletedAt:   deletedAt,
	}
}

// ToArticleListDTO: tanpa content (list ringan).
func ToArticleListDTO(list []model.ArticleModel) []ArticleDTO {
	out := make([]ArticleDTO, 0, len(list))
	for _, m := range list {
		d := ToArticleDTO(m)
		d.ArticleContent = ""
		out = append(out, d)
	}
	return out
}
