package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/configs"
	"ukmfilm_backend/internals/features/settings/dto"
	"ukmfilm_backend/internals/features/settings/service"
	helper "ukmfilm_backend/internals/helpers"
)

type SiteSettingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSiteSettingController(db *gorm.DB) *SiteSettingController {
	return &SiteSettingController{DB: db, Validator: helper.Validate}
}

// GET /api/public/settings
func (ctl *SiteSettingController) Get(c *fiber.Ctx) error {
	m, err := service.Get(c.UserContext(), ctl.DB)
	if err != nil {
		configs.Log.Errorw("ambil pengaturan gagal", "err", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
	}
	return helper.JsonOK(c, "ok", m)
}

// PUT /api/admin/settings
func (ctl *SiteSettingController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertSettingRequest
	if err := helper.BindAndValidate(c, ctl.Validator, &req); err != nil {
		return helper.WriteError(c, err)
	}

	m := req.ToModel()
	if err := service.Upsert(c.UserContext(), ctl.DB, &m); err != nil {
		configs.Log.Errorw("simpan pengaturan gagal", "err", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan")
	}
	return helper.JsonUpdated(c, "Pengaturan tersimpan", m)
}
