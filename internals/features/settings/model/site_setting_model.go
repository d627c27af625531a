package model

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SingletonID: hanya ada satu baris pengaturan situs.
const SingletonID = 1

type SiteSettingModel struct {
	SettingID int `gorm:"primaryKey;autoIncrement:false;column:setting_id" json:"setting_id"`

	SiteName         string  `gorm:"type:varchar(120);not null;default:'';column:site_name" json:"site_name"`
	SiteTagline      *string `gorm:"type:varchar(255);column:site_tagline" json:"site_tagline,omitempty"`
	SiteAbout        *string `gorm:"type:text;column:site_about" json:"site_about,omitempty"`
	SiteVision       *string `gorm:"type:text;column:site_vision" json:"site_vision,omitempty"`
	SiteMission      *string `gorm:"type:text;column:site_mission" json:"site_mission,omitempty"`
	SiteContactEmail *string `gorm:"type:varchar(255);column:site_contact_email" json:"site_contact_email,omitempty"`
	SiteContactPhone *string `gorm:"type:varchar(40);column:site_contact_phone" json:"site_contact_phone,omitempty"`
	SiteAddress      *string `gorm:"type:text;column:site_address" json:"site_address,omitempty"`

	// {"instagram": "https://...", "youtube": "https://..."}
	SiteSocialLinks datatypes.JSONMap `gorm:"column:site_social_links" json:"site_social_links"`

	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (SiteSettingModel) TableName() string { return "site_settings" }

func (m *SiteSettingModel) BeforeSave(tx *gorm.DB) error {
	m.SettingID = SingletonID
	m.SiteName = strings.TrimSpace(m.SiteName)
	if m.SiteSocialLinks == nil {
		m.SiteSocialLinks = datatypes.JSONMap{}
	}
	return nil
}
