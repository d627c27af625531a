package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"ukmfilm_backend/internals/features/home/carousels/model"
)

type CreateCarouselRequest struct {
	CarouselTitle     string     `json:"carousel_title"      validate:"required,min=1,max=255"`
	CarouselCaption   *string    `json:"carousel_caption"`
	CarouselImageURL  string     `json:"carousel_image_url"  validate:"required,max=2048"`
	CarouselTargetURL *string    `json:"carousel_target_url" validate:"omitempty,max=2048"`
	CarouselOrder     *int       `json:"carousel_order"      validate:"omitempty,min=0"`
	CarouselIsActive  *bool      `json:"carousel_is_active"`
	CarouselArticleID *uuid.UUID `json:"carousel_article_id"`
}

type UpdateCarouselRequest struct {
	CarouselTitle     *string    `json:"carousel_title"      validate:"omitempty,min=1,max=255"`
	CarouselCaption   *string    `json:"carousel_caption"`
	CarouselImageURL  *string    `json:"carousel_image_url"  validate:"omitempty,min=1,max=2048"`
	CarouselTargetURL *string    `json:"carousel_target_url" validate:"omitempty,max=2048"`
	CarouselOrder     *int       `json:"carousel_order"      validate:"omitempty,min=0"`
	CarouselIsActive  *bool      `json:"carousel_is_active"`
	CarouselArticleID *uuid.UUID `json:"carousel_article_id"`
	// true = lepas tautan artikel
	ClearArticle bool `json:"clear_article"`
}

type CarouselResponse struct {
	CarouselID        string          `json:"carousel_id"`
	CarouselTitle     string          `json:"carousel_title"`
	CarouselCaption   *string         `json:"carousel_caption,omitempty"`
	CarouselImageURL  string          `json:"carousel_image_url"`
	CarouselTargetURL *string         `json:"carousel_target_url,omitempty"`
	CarouselOrder     int             `json:"carousel_order"`
	CarouselIsActive  bool            `json:"carousel_is_active"`
	CarouselArticleID *string         `json:"carousel_article_id,omitempty"`
	Article           *ArticlePreview `json:"article,omitempty"`
	CarouselCreatedAt string          `json:"carousel_created_at"`
	CarouselUpdatedAt string          `json:"carousel_updated_at"`
}

type ArticlePreview struct {
	ArticleID      string  `json:"article_id"`
	ArticleTitle   string  `json:"article_title"`
	ArticleSlug    string  `json:"article_slug"`
	ArticleExcerpt *string `json:"article_excerpt,omitempty"`
}

func (r *CreateCarouselRequest) ToModel() model.CarouselModel {
	m := model.CarouselModel{
		CarouselTitle:     strings.TrimSpace(r.CarouselTitle),
		CarouselCaption:   r.CarouselCaption,
		CarouselImageURL:  r.CarouselImageURL,
		CarouselTargetURL: r.CarouselTargetURL,
		CarouselIsActive:  true,
		CarouselArticleID: r.CarouselArticleID,
	}
	if r.CarouselOrder != nil {
		m.CarouselOrder = *r.CarouselOrder
	}
	if r.CarouselIsActive != nil {
		m.CarouselIsActive = *r.CarouselIsActive
	}
	return m
}

func (r *UpdateCarouselRequest) ApplyUpdates(m *model.CarouselModel) {
	if r.CarouselTitle != nil {
		m.CarouselTitle = *r.CarouselTitle
	}
	if r.CarouselCaption != nil {
		m.CarouselCaption = r.CarouselCaption
	}
	if r.CarouselImageURL != nil {
		m.CarouselImageURL = *r.CarouselImageURL
	}
	if r.CarouselTargetURL != nil {
		m.CarouselTargetURL = r.CarouselTargetURL
	}
	if r.CarouselOrder != nil {
		m.CarouselOrder = *r.CarouselOrder
	}
	if r.CarouselIsActive != nil {
		m.CarouselIsActive = *r.CarouselIsActive
	}
	switch {
	case r.ClearArticle:
		m.CarouselArticleID = nil
		m.Article = nil
	case r.CarouselArticleID != nil:
		m.CarouselArticleID = r.CarouselArticleID
		m.Article = nil
	}
}

func ConvertCarouselToDTO(c model.CarouselModel) CarouselResponse {
	var article *ArticlePreview
	if c.Article != nil {
		article = &ArticlePreview{
			ArticleID:      c.Article.ArticleID.String(),
			ArticleTitle:   c.Article.ArticleTitle,
			ArticleSlug:    c.Article.ArticleSlug,
			ArticleExcerpt: c.Article.ArticleExcerpt,
		}
	}

	var articleID *string
	if c.CarouselArticleID != nil {
		str := c.CarouselArticleID.String()
		articleID = &str
	}

	return CarouselResponse{
		CarouselID:        c.CarouselID.String(),
		CarouselTitle:     c.CarouselTitle,
		CarouselCaption:   c.CarouselCaption,
		CarouselImageURL:  c.CarouselImageURL,
		CarouselTargetURL: c.CarouselTargetURL,
		CarouselOrder:     c.CarouselOrder,
		CarouselIsActive:  c.CarouselIsActive,
		CarouselArticleID: articleID,
		Article:           article,
		CarouselCreatedAt: c.CarouselCreatedAt.Format(time.RFC3339),
		CarouselUpdatedAt: c.CarouselUpdatedAt.Format(time.RFC3339),
	}
}

func ConvertCarouselListToDTO(carousels []model.CarouselModel) []CarouselResponse {
	result := make([]CarouselResponse, 0, len(carousels))
	for _, c := range carousels {
		result = append(result, ConvertCarouselToDTO(c))
	}
	return result
}
