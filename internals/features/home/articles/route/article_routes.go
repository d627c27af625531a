package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/constants"
	"ukmfilm_backend/internals/features/home/articles/controller"
	authMiddleware "ukmfilm_backend/internals/middlewares/auth"
)

// Base: /api/public/articles
func ArticlePublicRoutes(public fiber.Router, db *gorm.DB) {
	articleCtrl := controller.NewArticleController(db)

	article := public.Group("/articles")
	article.Get("/", articleCtrl.GetPublishedArticles)  // 📄 artikel terbit
	article.Get("/:slug", articleCtrl.GetArticleBySlug) // 🔍 detail artikel
}

// Base: /api/admin/articles (admin & editor; editor hanya miliknya)
func ArticleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	articleCtrl := controller.NewArticleController(db)

	article := admin.Group("/articles",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorEditor("mengelola artikel"),
			constants.EditorAndAbove,
		),
	)
	article.Get("/", articleCtrl.GetAllArticlesAdmin)
	article.Post("/", articleCtrl.CreateArticle)             // ➕ Buat artikel
	article.Patch("/:id", articleCtrl.UpdateArticle)         // 🔄 Update artikel
	article.Delete("/:id", articleCtrl.DeleteArticle)        // 🗑️ Hapus (soft)
	article.Post("/:id/restore", articleCtrl.RestoreArticle) // ♻️ Restore
}
