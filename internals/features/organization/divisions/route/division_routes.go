package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/constants"
	divisionCtl "ukmfilm_backend/internals/features/organization/divisions/controller"
	authMiddleware "ukmfilm_backend/internals/middlewares/auth"
)

// Base: /api/public/divisions
func DivisionPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := divisionCtl.NewDivisionController(db, nil)

	r := public.Group("/divisions")
	r.Get("/", ctl.ListPublic)
}

// Base: /api/admin/divisions (admin saja)
func DivisionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := divisionCtl.NewDivisionController(db, nil)

	r := admin.Group("/divisions",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola divisi"),
			constants.AdminOnly,
		),
	)
	r.Get("/", ctl.List)
	r.Post("/", ctl.Create)
	r.Patch("/:id", ctl.Patch)
	r.Delete("/:id", ctl.Delete)
	r.Post("/:id/restore", ctl.Restore)
}
