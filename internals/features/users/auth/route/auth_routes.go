// file: internals/features/users/auth/route/auth_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "ukmfilm_backend/internals/features/users/auth/controller"
)

// Base: /api/admin/auth (sudah lewat AuthMiddleware)
func AuthAdminRoutes(admin fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	r := admin.Group("/auth")
	r.Post("/logout", authController.Logout)
	r.Get("/me", authController.Me)
}
