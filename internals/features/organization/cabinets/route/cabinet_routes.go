package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/constants"
	cabinetCtl "ukmfilm_backend/internals/features/organization/cabinets/controller"
	authMiddleware "ukmfilm_backend/internals/middlewares/auth"
)

// Base: /api/public/cabinets
func CabinetPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := cabinetCtl.NewCabinetController(db, nil)

	r := public.Group("/cabinets")
	r.Get("/active", ctl.GetActive)
	r.Get("/active/structure", ctl.GetActiveStructure)
}

// Base: /api/admin/cabinets (admin saja)
func CabinetAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := cabinetCtl.NewCabinetController(db, nil)
	memberCtl := cabinetCtl.NewMemberController(db, nil)

	r := admin.Group("/cabinets",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola kabinet"),
			constants.AdminOnly,
		),
	)
	r.Get("/", ctl.List)
	r.Post("/", ctl.Create)
	r.Get("/:id", ctl.GetByID)
	r.Patch("/:id", ctl.Patch)
	r.Delete("/:id", ctl.Delete)
	r.Post("/:id/restore", ctl.Restore)
	r.Post("/:id/activate", ctl.Activate)
	r.Get("/:id/structure", ctl.GetStructure)

	// members
	r.Get("/:id/members", memberCtl.List)
	r.Post("/:id/members", memberCtl.Create)
	r.Patch("/:id/members/:memberId", memberCtl.Patch)
	r.Delete("/:id/members/:memberId", memberCtl.Delete)
}
