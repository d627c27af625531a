package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/constants"
	filmCtl "ukmfilm_backend/internals/features/films/controller"
	authMiddleware "ukmfilm_backend/internals/middlewares/auth"
)

// Base: /api/public/films
func FilmPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := filmCtl.NewFilmController(db, nil)

	r := public.Group("/films")
	r.Get("/", ctl.ListPublic)
	r.Get("/:slug", ctl.GetBySlug)
}

// Base: /api/admin/films (admin & editor; editor hanya miliknya)
func FilmAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := filmCtl.NewFilmController(db, nil)

	r := admin.Group("/films",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorEditor("mengelola film"),
			constants.EditorAndAbove,
		),
	)
	r.Get("/", ctl.List)
	r.Post("/", ctl.Create)
	r.Patch("/:id", ctl.Patch)
	r.Delete("/:id", ctl.Delete)
	r.Post("/:id/restore", ctl.Restore)
}
