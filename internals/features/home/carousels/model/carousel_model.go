package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	articleModel "ukmfilm_backend/internals/features/home/articles/model"
)

type CarouselModel struct {
	CarouselID        uuid.UUID `gorm:"column:carousel_id;primaryKey;type:uuid" json:"carousel_id"`
	CarouselTitle     string    `gorm:"column:carousel_title;type:varchar(255);not null" json:"carousel_title"`
	CarouselCaption   *string   `gorm:"column:carousel_caption;type:text" json:"carousel_caption,omitempty"`
	CarouselImageURL  string    `gorm:"column:carousel_image_url;type:text;not null" json:"carousel_image_url"`
	CarouselTargetURL *string   `gorm:"column:carousel_target_url;type:text" json:"carousel_target_url,omitempty"`
	CarouselOrder     int       `gorm:"column:carousel_order;not null;default:0" json:"carousel_order"`
	CarouselIsActive  bool      `gorm:"column:carousel_is_active;not null;index" json:"carousel_is_active"`

	// opsional: slide yang menautkan ke artikel blog
	CarouselArticleID *uuid.UUID                 `gorm:"column:carousel_article_id;type:uuid" json:"carousel_article_id,omitempty"`
	Article           *articleModel.ArticleModel `gorm:"foreignKey:CarouselArticleID;references:ArticleID;constraint:OnDelete:SET NULL" json:"article,omitempty"`

	CarouselCreatedAt time.Time `gorm:"column:carousel_created_at;autoCreateTime" json:"carousel_created_at"`
	CarouselUpdatedAt time.Time `gorm:"column:carousel_updated_at;autoUpdateTime" json:"carousel_updated_at"`
}

func (CarouselModel) TableName() string { return "carousels" }

// MaxPublicCarousels: jumlah slide di hero publik.
const MaxPublicCarousels = 5

func (m *CarouselModel) BeforeCreate(tx *gorm.DB) error {
	if m.CarouselID == uuid.Nil {
		m.CarouselID = uuid.New()
	}
	return nil
}

func (m *CarouselModel) BeforeSave(tx *gorm.DB) error {
	m.CarouselTitle = strings.TrimSpace(m.CarouselTitle)
	m.CarouselImageURL = strings.TrimSpace(m.CarouselImageURL)
	return nil
}
