package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/constants"
	"ukmfilm_backend/internals/features/settings/controller"
	authMiddleware "ukmfilm_backend/internals/middlewares/auth"
)

// Base: /api/public/settings
func SettingPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewSiteSettingController(db)
	public.Get("/settings", ctl.Get)
}

// Base: /api/admin/settings (admin saja)
func SettingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewSiteSettingController(db)
	admin.Put("/settings",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("mengubah pengaturan situs"), constants.AdminOnly),
		ctl.Upsert,
	)
}
