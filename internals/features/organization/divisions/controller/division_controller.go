package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/configs"
	"ukmfilm_backend/internals/features/organization/divisions/dto"
	"ukmfilm_backend/internals/features/organization/divisions/model"
	"ukmfilm_backend/internals/features/organization/divisions/service"
	helper "ukmfilm_backend/internals/helpers"
)

type DivisionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDivisionController(db *gorm.DB, v *validator.Validate) *DivisionController {
	if v == nil {
		v = helper.Validate
	}
	return &DivisionController{DB: db, Validator: v}
}

/* ============================================
   PUBLIC LIST
   GET /api/public/divisions
============================================ */

func (ctl *DivisionController) ListPublic(c *fiber.Ctx) error {
	list, err := service.ListCatalog(c.UserContext(), ctl.DB)
	if err != nil {
		configs.Log.Errorw("list divisi gagal", "err", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data divisi")
	}
	return helper.JsonList(c, "ok", dto.FromModels(list), nil)
}

/* ============================================
   ADMIN LIST
   GET /api/admin/divisions?q=&include_deleted=
============================================ */

func (ctl *DivisionController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.DivisionModel{})
	if c.QueryBool("include_deleted", false) {
		q = q.Unscoped()
	}
	if like := helper.ContainsPattern(c.Query("q")); like != "" {
		q = q.Where("LOWER(division_code) LIKE ? ESCAPE '\\' OR LOWER(division_name) LIKE ? ESCAPE '\\'", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var list []model.DivisionModel
	if err := q.Order("division_order ASC, division_code ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pg := helper.BuildPagination(total, p, len(list))
	return helper.JsonList(c, "ok", dto.FromModels(list), &pg)
}

/* ============================================
   CREATE
   POST /api/admin/divisions
============================================ */

func (ctl *DivisionController) Create(c *fiber.Ctx) error {
	var p dto.DivisionCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.WriteError(c, err)
	}

	ctx := c.UserContext()
	taken, err := service.CodeTaken(ctx, ctl.DB, p.DivisionCode, nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kode")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, service.ErrDivisionCodeTaken.Error())
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(ctx).Create(&ent).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, service.ErrDivisionCodeTaken.Error())
		}
		configs.Log.Errorw("create divisi gagal", "err", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat divisi")
	}
	return helper.JsonCreated(c, "Berhasil membuat divisi", dto.FromModel(ent))
}

/* ============================================
   PATCH
   PATCH /api/admin/divisions/:id
============================================ */

func (ctl *DivisionController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}
	ctx := c.UserContext()

	ent, err := service.FindByID(ctx, ctl.DB, id)
	if err != nil {
		if errors.Is(err, service.ErrDivisionNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var p dto.DivisionUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.WriteError(c, err)
	}

	// Kode tidak boleh berubah kalau sudah direferensikan anggota
	if p.DivisionCode != nil && *p.DivisionCode != ent.DivisionCode {
		used, err := service.MemberCount(ctx, ctl.DB, ent.DivisionID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa anggota")
		}
		if used > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Kode divisi tidak bisa diubah karena sudah dipakai anggota")
		}
		taken, err := service.CodeTaken(ctx, ctl.DB, *p.DivisionCode, &ent.DivisionID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kode")
		}
		if taken {
			return helper.JsonError(c, fiber.StatusConflict, service.ErrDivisionCodeTaken.Error())
		}
	}

	p.ApplyUpdates(ent)
	if err := ctl.DB.WithContext(ctx).Save(ent).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, service.ErrDivisionCodeTaken.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui divisi")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui divisi", dto.FromModel(*ent))
}

/* ============================================
   DELETE (soft)
   DELETE /api/admin/divisions/:id
============================================ */

func (ctl *DivisionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}
	ctx := c.UserContext()

	ent, err := service.FindByID(ctx, ctl.DB, id)
	if err != nil {
		if errors.Is(err, service.ErrDivisionNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	used, err := service.MemberCount(ctx, ctl.DB, ent.DivisionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa anggota")
	}
	if used > 0 {
		return helper.JsonError(c, fiber.StatusConflict, service.ErrDivisionInUse.Error())
	}

	if err := ctl.DB.WithContext(ctx).Delete(ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus divisi")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus divisi", fiber.Map{"division_id": id})
}

/* ============================================
   RESTORE
   POST /api/admin/divisions/:id/restore
============================================ */

func (ctl *DivisionController) Restore(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}
	ctx := c.UserContext()

	var ent model.DivisionModel
	if err := ctl.DB.WithContext(ctx).Unscoped().First(&ent, "division_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, service.ErrDivisionNotFound.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if !ent.DivisionDeletedAt.Valid {
		return helper.JsonOK(c, "OK", dto.FromModel(ent))
	}

	// kode bisa saja sudah dipakai divisi lain selama terhapus
	taken, err := service.CodeTaken(ctx, ctl.DB, ent.DivisionCode, &ent.DivisionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kode")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, service.ErrDivisionCodeTaken.Error())
	}

	if err := ctl.DB.WithContext(ctx).Unscoped().Model(&ent).
		Update("division_deleted_at", nil).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merestore divisi")
	}
	ent.DivisionDeletedAt = gorm.DeletedAt{}
	return helper.JsonUpdated(c, "Berhasil merestore divisi", dto.FromModel(ent))
}
