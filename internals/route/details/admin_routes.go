package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	filmRoutes "ukmfilm_backend/internals/features/films/route"
	articleRoutes "ukmfilm_backend/internals/features/home/articles/route"
	carouselRoutes "ukmfilm_backend/internals/features/home/carousels/route"
	cabinetRoutes "ukmfilm_backend/internals/features/organization/cabinets/route"
	divisionRoutes "ukmfilm_backend/internals/features/organization/divisions/route"
	settingRoutes "ukmfilm_backend/internals/features/settings/route"
	authRoutes "ukmfilm_backend/internals/features/users/auth/route"
)

// AdminRoutes: group sudah lewat AuthMiddleware; role dicek per fitur.
func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	authRoutes.AuthAdminRoutes(admin, db)
	divisionRoutes.DivisionAdminRoutes(admin, db)
	cabinetRoutes.CabinetAdminRoutes(admin, db)
	articleRoutes.ArticleAdminRoutes(admin, db)
	carouselRoutes.CarouselAdminRoutes(admin, db)
	filmRoutes.FilmAdminRoutes(admin, db)
	settingRoutes.SettingAdminRoutes(admin, db)
}
