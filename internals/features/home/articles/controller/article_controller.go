package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/configs"
	"ukmfilm_backend/internals/features/home/articles/dto"
	"ukmfilm_backend/internals/features/home/articles/model"
	"ukmfilm_backend/internals/features/home/articles/service"
	helper "ukmfilm_backend/internals/helpers"
	helperAuth "ukmfilm_backend/internals/helpers/auth"
)

type ArticleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	now       func() time.Time
}

func NewArticleController(db *gorm.DB) *ArticleController {
	return &ArticleController{DB: db, Validator: helper.Validate, now: time.Now}
}

func (ctrl *ArticleController) notFoundOr500(c *fiber.Ctx, err error, msg string) error {
	if errors.Is(err, service.ErrArticleNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	}
	configs.Log.Errorw(msg, "err", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, msg)
}

// =============================
// 📄 Public: artikel terbit
// GET /api/public/articles?q=&page=&per_page=
// =============================
func (ctrl *ArticleController) GetPublishedArticles(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 50)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.ArticleModel{}).
		Where("article_is_published = ?", true)
	if like := helper.ContainsPattern(c.Query("q")); like != "" {
		q = q.Where("LOWER(article_title) LIKE ? ESCAPE '\\' OR LOWER(COALESCE(article_excerpt, '')) LIKE ? ESCAPE '\\'", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung artikel")
	}
	var list []model.ArticleModel
	if err := q.Order("article_published_at DESC, article_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}

	pg := helper.BuildPagination(total, p, len(list))
	return helper.JsonList(c, "ok", dto.ToArticleListDTO(list), &pg)
}

// =============================
// 🔍 Public: detail by slug
// GET /api/public/articles/:slug
// =============================
func (ctrl *ArticleController) GetArticleBySlug(c *fiber.Ctx) error {
	m, err := service.FindPublishedBySlug(c.UserContext(), ctrl.DB, c.Params("slug"))
	if err != nil {
		return ctrl.notFoundOr500(c, err, "Gagal mengambil artikel")
	}
	return helper.JsonOK(c, "ok", dto.ToArticleDTO(*m))
}

// =============================
// 📄 Admin: semua artikel (draft juga)
// GET /api/admin/articles?q=&include_deleted=&mine=
// =============================
func (ctrl *ArticleController) GetAllArticlesAdmin(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.ArticleModel{})
	if c.QueryBool("include_deleted", false) {
		q = q.Unscoped()
	}
	if like := helper.ContainsPattern(c.Query("q")); like != "" {
		q = q.Where("LOWER(article_title) LIKE ? ESCAPE '\\'", like)
	}
	if c.QueryBool("mine", false) {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.WriteError(c, err)
		}
		q = q.Where("article_author_id = ?", userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung artikel")
	}
	var list []model.ArticleModel
	if err := q.Order("article_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}

	pg := helper.BuildPagination(total, p, len(list))
	return helper.JsonList(c, "ok", dto.ToArticleListDTO(list), &pg)
}

// =============================
// ➕ Create Article
// =============================
func (ctrl *ArticleController) CreateArticle(c *fiber.Ctx) error {
	authorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.WriteError(c, err)
	}

	var body dto.CreateArticleRequest
	if err := helper.BindAndValidate(c, ctrl.Validator, &body); err != nil {
		return helper.WriteError(c, err)
	}

	ctx := c.UserContext()
	article := body.ToModel(authorID, ctrl.now())
	slug, err := service.UniqueSlug(ctx, ctrl.DB, article.ArticleTitle, body.ArticleSlug, uuid.Nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	article.ArticleSlug = slug

	if err := ctrl.DB.WithContext(ctx).Create(&article).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug artikel sudah dipakai")
		}
		configs.Log.Errorw("create artikel gagal", "err", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat artikel")
	}
	return helper.JsonCreated(c, "Artikel berhasil dibuat", dto.ToArticleDTO(article))
}

// =============================
// 🔄 Update Article (PATCH)
// =============================
func (ctrl *ArticleController) UpdateArticle(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}
	ctx := c.UserContext()

	article, err := service.FindByID(ctx, ctrl.DB, id, false)
	if err != nil {
		return ctrl.notFoundOr500(c, err, "Gagal mengambil artikel")
	}
	if err := helperAuth.EnsureOwnerOrAdmin(c, article.ArticleAuthorID, "artikel"); err != nil {
		return helper.WriteError(c, err)
	}

	var body dto.UpdateArticleRequest
	if err := helper.BindAndValidate(c, ctrl.Validator, &body); err != nil {
		return helper.WriteError(c, err)
	}

	titleChanged := body.ArticleTitle != nil && *body.ArticleTitle != article.ArticleTitle
	body.ApplyUpdates(article, ctrl.now())

	// slug hanya dihitung ulang bila diminta eksplisit atau judul berubah
	if body.ArticleSlug != nil || titleChanged {
		slug, err := service.UniqueSlug(ctx, ctrl.DB, article.ArticleTitle, body.ArticleSlug, article.ArticleID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		article.ArticleSlug = slug
	}

	if err := ctrl.DB.WithContext(ctx).Save(article).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug artikel sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui artikel")
	}
	return helper.JsonUpdated(c, "Artikel berhasil diperbarui", dto.ToArticleDTO(*article))
}

// =============================
// 🗑️ Delete Article (soft)
// =============================
func (ctrl *ArticleController) DeleteArticle(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}
	ctx := c.UserContext()

	article, err := service.FindByID(ctx, ctrl.DB, id, false)
	if err != nil {
		return ctrl.notFoundOr500(c, err, "Gagal mengambil artikel")
	}
	if err := helperAuth.EnsureOwnerOrAdmin(c, article.ArticleAuthorID, "artikel"); err != nil {
		return helper.WriteError(c, err)
	}

	if err := ctrl.DB.WithContext(ctx).Delete(article).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus artikel")
	}
	return helper.JsonDeleted(c, "Artikel berhasil dihapus", fiber.Map{"article_id": id})
}

// =============================
// ♻️ Restore Article
// =============================
func (ctrl *ArticleController) RestoreArticle(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}
	ctx := c.UserContext()

	article, err := service.FindByID(ctx, ctrl.DB, id, true)
	if err != nil {
		return ctrl.notFoundOr500(c, err, "Gagal mengambil artikel")
	}
	if err := helperAuth.EnsureOwnerOrAdmin(c, article.ArticleAuthorID, "artikel"); err != nil {
		return helper.WriteError(c, err)
	}
	if !article.ArticleDeletedAt.Valid {
		return helper.JsonOK(c, "OK", dto.ToArticleDTO(*article))
	}

	// slug bisa sudah dipakai artikel lain selama terhapus
	slug, err := service.UniqueSlug(ctx, ctrl.DB, article.ArticleTitle, &article.ArticleSlug, article.ArticleID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}

	if err := ctrl.DB.WithContext(ctx).Unscoped().Model(article).
		Updates(map[string]any{
			"article_deleted_at": nil,
			"article_slug":       slug,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merestore artikel")
	}
	article.ArticleDeletedAt = gorm.DeletedAt{}
	article.ArticleSlug = slug
	return helper.JsonUpdated(c, "Artikel berhasil direstore", dto.ToArticleDTO(*article))
}
