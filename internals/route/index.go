// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/configs"
	middlewares "ukmfilm_backend/internals/middlewares"
	authMiddleware "ukmfilm_backend/internals/middlewares/auth"
	routeDetails "ukmfilm_backend/internals/route/details"
)

var startTime = time.Now()

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	configs.Log.Info("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	configs.Log.Info("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.PublicRoutes(public, db)

	// ===================== ADMIN (JWT + role per fitur) =====================
	configs.Log.Info("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/admin",
		authMiddleware.AuthMiddleware(db),
		middlewares.AdminRateLimiter(),
	)
	routeDetails.AdminRoutes(admin, db)

	configs.Log.Info("[INFO] Routes ready ✅")
}
