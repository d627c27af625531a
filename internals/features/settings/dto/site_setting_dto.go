package dto

import (
	"strings"

	"gorm.io/datatypes"

	"ukmfilm_backend/internals/features/settings/model"
)

// UpsertSettingRequest: PUT mengganti seluruh isi (field kosong → dikosongkan).
type UpsertSettingRequest struct {
	SiteName         string            `json:"site_name"          validate:"required,min=2,max=120"`
	SiteTagline      *string           `json:"site_tagline"       validate:"omitempty,max=255"`
	SiteAbout        *string           `json:"site_about"`
	SiteVision       *string           `json:"site_vision"`
	SiteMission      *string           `json:"site_mission"`
	SiteContactEmail *string           `json:"site_contact_email" validate:"omitempty,email,max=255"`
	SiteContactPhone *string           `json:"site_contact_phone" validate:"omitempty,max=40"`
	SiteAddress      *string           `json:"site_address"`
	SiteSocialLinks  map[string]string `json:"site_social_links"  validate:"omitempty,max=20,dive,keys,min=1,max=40,endkeys,max=2048"`
}

func (r *UpsertSettingRequest) Normalize() {
	r.SiteName = strings.TrimSpace(r.SiteName)
	if r.SiteContactEmail != nil {
		s := strings.ToLower(strings.TrimSpace(*r.SiteContactEmail))
		r.SiteContactEmail = &s
	}
}

func (r *UpsertSettingRequest) ToModel() model.SiteSettingModel {
	links := datatypes.JSONMap{}
	for k, v := range r.SiteSocialLinks {
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		links[k] = v
	}
	return model.SiteSettingModel{
		SettingID:        model.SingletonID,
		SiteName:         r.SiteName,
		SiteTagline:      r.SiteTagline,
		SiteAbout:        r.SiteAbout,
		SiteVision:       r.SiteVision,
		SiteMission:      r.SiteMission,
		SiteContactEmail: r.SiteContactEmail,
		SiteContactPhone: r.SiteContactPhone,
		SiteAddress:      r.SiteAddress,
		SiteSocialLinks:  links,
	}
}
