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
)

// PublicRoutes: data situs tanpa login (/api/public/*)
func PublicRoutes(public fiber.Router, db *gorm.DB) {
	divisionRoutes.DivisionPublicRoutes(public, db)
	cabinetRoutes.CabinetPublicRoutes(public, db)
	articleRoutes.ArticlePublicRoutes(public, db)
	carouselRoutes.CarouselPublicRoutes(public, db)
	filmRoutes.FilmPublicRoutes(public, db)
	settingRoutes.SettingPublicRoutes(public, db)
}
