package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/configs"
	"ukmfilm_backend/internals/features/films/dto"
	"ukmfilm_backend/internals/features/films/model"
	"ukmfilm_backend/internals/features/films/service"
	helper "ukmfilm_backend/internals/helpers"
	helperAuth "ukmfilm_backend/internals/helpers/auth"
)

type FilmController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFilmController(db *gorm.DB, v *validator.Validate) *FilmController {
	if v == nil {
		v = helper.Validate
	}
	return &FilmController{DB: db, Validator: v}
}

func (ctl *FilmController) notFoundOr500(c *fiber.Ctx, err error, msg string) error {
	if errors.Is(err, service.ErrFilmNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	}
	configs.Log.Errorw(msg, "err", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, msg)
}

/* ============================================
   PUBLIC
   GET /api/public/films?q=&year=&genre=
   GET /api/public/films/:slug
============================================ */

func (ctl *FilmController) ListPublic(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 12, 60)

	q := service.ApplyPublicFilter(
		ctl.DB.WithContext(c.UserContext()).Model(&model.FilmModel{}),
		service.PublicFilter{
			Query: c.Query("q"),
			Year:  c.QueryInt("year", 0),
			Genre: c.Query("genre"),
		},
	)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung film")
	}
	var list []model.FilmModel
	if err := q.Order("film_year DESC, film_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil film")
	}

	pg := helper.BuildPagination(total, p, len(list))
	return helper.JsonList(c, "ok", dto.FromModels(list), &pg)
}

func (ctl *FilmController) GetBySlug(c *fiber.Ctx) error {
	m, err := service.FindPublishedBySlug(c.UserContext(), ctl.DB, c.Params("slug"))
	if err != nil {
		return ctl.notFoundOr500(c, err, "Gagal mengambil film")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*m))
}

/* ============================================
   ADMIN
   GET /api/admin/films?q=&include_deleted=&mine=
============================================ */

func (ctl *FilmController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.FilmModel{})
	if c.QueryBool("include_deleted", false) {
		q = q.Unscoped()
	}
	if like := helper.ContainsPattern(c.Query("q")); like != "" {
		q = q.Where("LOWER(film_title) LIKE ? ESCAPE '\\'", like)
	}
	if c.QueryBool("mine", false) {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.WriteError(c, err)
		}
		q = q.Where("film_owner_id = ?", userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung film")
	}
	var list []model.FilmModel
	if err := q.Order("film_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil film")
	}

	pg := helper.BuildPagination(total, p, len(list))
	return helper.JsonList(c, "ok", dto.FromModels(list), &pg)
}

// POST /api/admin/films
func (ctl *FilmController) Create(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.WriteError(c, err)
	}

	var p dto.FilmCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.WriteError(c, err)
	}

	ctx := c.UserContext()
	ent := p.ToModel(ownerID)
	slug, err := service.UniqueSlug(ctx, ctl.DB, ent.FilmTitle, p.FilmSlug, uuid.Nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	ent.FilmSlug = slug

	if err := ctl.DB.WithContext(ctx).Create(&ent).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug film sudah dipakai")
		}
		configs.Log.Errorw("create film gagal", "err", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat film")
	}
	return helper.JsonCreated(c, "Berhasil membuat film", dto.FromModel(ent))
}

// PATCH /api/admin/films/:id
func (ctl *FilmController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}
	ctx := c.UserContext()

	ent, err := service.FindByID(ctx, ctl.DB, id, false)
	if err != nil {
		return ctl.notFoundOr500(c, err, "Gagal mengambil film")
	}
	if err := helperAuth.EnsureOwnerOrAdmin(c, ent.FilmOwnerID, "film"); err != nil {
		return helper.WriteError(c, err)
	}

	var p dto.FilmUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.WriteError(c, err)
	}

	titleChanged := p.FilmTitle != nil && *p.FilmTitle != ent.FilmTitle
	p.ApplyUpdates(ent)
	if p.FilmSlug != nil || titleChanged {
		slug, err := service.UniqueSlug(ctx, ctl.DB, ent.FilmTitle, p.FilmSlug, ent.FilmID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		ent.FilmSlug = slug
	}

	if err := ctl.DB.WithContext(ctx).Save(ent).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug film sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui film")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui film", dto.FromModel(*ent))
}

// DELETE /api/admin/films/:id (soft)
func (ctl *FilmController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}
	ctx := c.UserContext()

	ent, err := service.FindByID(ctx, ctl.DB, id, false)
	if err != nil {
		return ctl.notFoundOr500(c, err, "Gagal mengambil film")
	}
	if err := helperAuth.EnsureOwnerOrAdmin(c, ent.FilmOwnerID, "film"); err != nil {
		return helper.WriteError(c, err)
	}
	if err := ctl.DB.WithContext(ctx).Delete(ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus film")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus film", fiber.Map{"film_id": id})
}

// POST /api/admin/films/:id/restore
func (ctl *FilmController) Restore(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}
	ctx := c.UserContext()

	ent, err := service.FindByID(ctx, ctl.DB, id, true)
	if err != nil {
		return ctl.notFoundOr500(c, err, "Gagal mengambil film")
	}
	if err := helperAuth.EnsureOwnerOrAdmin(c, ent.FilmOwnerID, "film"); err != nil {
		return helper.WriteError(c, err)
	}
	if !ent.FilmDeletedAt.Valid {
		return helper.JsonOK(c, "OK", dto.FromModel(*ent))
	}

	slug, err := service.UniqueSlug(ctx, ctl.DB, ent.FilmTitle, &ent.FilmSlug, ent.FilmID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	if err := ctl.DB.WithContext(ctx).Unscoped().Model(ent).
		Updates(map[string]any{
			"film_deleted_at": nil,
			"film_slug":       slug,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merestore film")
	}
	ent.FilmDeletedAt = gorm.DeletedAt{}
	ent.FilmSlug = slug
	return helper.JsonUpdated(c, "Berhasil merestore film", dto.FromModel(*ent))
}
