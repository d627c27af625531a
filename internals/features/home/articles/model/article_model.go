package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleModel struct {
	ArticleID    uuid.UUID `gorm:"column:article_id;primaryKey;type:uuid" json:"article_id"`
	ArticleTitle string    `gorm:"column:article_title;type:varchar(255);not null" json:"article_title"`
	// unik di antara artikel yang belum dihapus
	ArticleSlug     string  `gorm:"column:article_slug;type:varchar(160);not null;uniqueIndex:uq_articles_slug_alive,where:article_deleted_at IS NULL" json:"article_slug"`
	ArticleExcerpt  *string `gorm:"column:article_excerpt;type:text" json:"article_excerpt,omitempty"`
	ArticleContent  string  `gorm:"column:article_content;type:text;not null" json:"article_content"`
	ArticleImageURL *string `gorm:"column:article_image_url;type:text" json:"article_image_url,omitempty"`

	ArticleIsPublished bool       `gorm:"column:article_is_published;not null;default:false;index" json:"article_is_published"`
	ArticlePublishedAt *time.Time `gorm:"column:article_published_at" json:"article_published_at,omitempty"`
	ArticleAuthorID    uuid.UUID  `gorm:"column:article_author_id;type:uuid;not null;index" json:"article_author_id"`

	ArticleCreatedAt time.Time      `gorm:"column:article_created_at;autoCreateTime" json:"article_created_at"`
	ArticleUpdatedAt time.Time      `gorm:"column:article_updated_at;autoUpdateTime" json:"article_updated_at"`
	ArticleDeletedAt gorm.DeletedAt `gorm:"column:article_deleted_at;index" json:"article_deleted_at,omitempty"`
}

// TableName sets the table name for ArticleModel
func (ArticleModel) TableName() string {
	return "articles"
}

func (m *ArticleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ArticleID == uuid.Nil {
		m.ArticleID = uuid.New()
	}
	return nil
}

// SetPublished: published_at diisi saat pertama kali terbit, tidak di-reset saat unpublish.
func (m *ArticleModel) SetPublished(published bool, now time.Time) {
	if published && m.ArticlePublishedAt == nil {
		t := now.UTC()
		m.ArticlePublishedAt = &t
	}
	m.ArticleIsPublished = published
}

func (m *ArticleModel) BeforeSave(tx *gorm.DB) error {
	m.ArticleTitle = strings.TrimSpace(m.ArticleTitle)
	if m.ArticleExcerpt != nil {
		s := strings.TrimSpace(*m.ArticleExcerpt)
		if s == "" {
			m.ArticleExcerpt = nil
		} else {
			m.ArticleExcerpt = &s
		}
	}
	return nil
}
