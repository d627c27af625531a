package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/constants"
	"ukmfilm_backend/internals/features/home/carousels/controller"
	authMiddleware "ukmfilm_backend/internals/middlewares/auth"
)

// Base: /api/public/carousels
func CarouselPublicRoutes(public fiber.Router, db *gorm.DB) {
	carouselCtrl := controller.NewCarouselController(db)

	carousel := public.Group("/carousels")
	carousel.Get("/", carouselCtrl.GetAllActiveCarousels) // 🎡 Ambil carousel aktif
}

// Base: /api/admin/carousels (admin saja)
func CarouselAdminRoutes(admin fiber.Router, db *gorm.DB) {
	carouselCtrl := controller.NewCarouselController(db)

	carousel := admin.Group("/carousels",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola carousel"),
			constants.AdminOnly,
		),
	)
	carousel.Get("/", carouselCtrl.GetAllCarouselsAdmin) // 📄 Semua carousel (termasuk non-aktif)
	carousel.Post("/", carouselCtrl.CreateCarousel)      // ➕ Buat carousel
	carousel.Patch("/:id", carouselCtrl.UpdateCarousel)  // 🔄 Update carousel
	carousel.Delete("/:id", carouselCtrl.DeleteCarousel) // ❌ Hapus carousel
}
