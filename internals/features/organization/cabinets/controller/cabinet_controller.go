package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/configs"
	"ukmfilm_backend/internals/constants"
	"ukmfilm_backend/internals/features/organization/cabinets/dto"
	"ukmfilm_backend/internals/features/organization/cabinets/model"
	"ukmfilm_backend/internals/features/organization/cabinets/service"
	helper "ukmfilm_backend/internals/helpers"
)

type CabinetController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCabinetController(db *gorm.DB, v *validator.Validate) *CabinetController {
	if v == nil {
		v = helper.Validate
	}
	return &CabinetController{DB: db, Validator: v}
}

// mapServiceError: sentinel service → status HTTP
func mapServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrCabinetNotFound),
		errors.Is(err, service.ErrNoActiveCabinet),
		errors.Is(err, service.ErrMemberNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDivisionNotExists):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case helper.IsUniqueViolation(err):
		return helper.JsonError(c, fiber.StatusConflict, "Sudah ada kabinet aktif lain")
	}
	configs.Log.Errorw(fallback, "err", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
}

/* ============================================
   PUBLIC
   GET /api/public/cabinets/active
   GET /api/public/cabinets/active/structure
============================================ */

func (ctl *CabinetController) GetActive(c *fiber.Ctx) error {
	cab, err := service.GetActiveCabinet(c.UserContext(), ctl.DB)
	if err != nil {
		return mapServiceError(c, err, "Gagal mengambil kabinet aktif")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*cab))
}

func (ctl *CabinetController) GetActiveStructure(c *fiber.Ctx) error {
	ctx := c.UserContext()
	cab, err := service.GetActiveCabinet(ctx, ctl.DB)
	if err != nil {
		return mapServiceError(c, err, "Gagal mengambil kabinet aktif")
	}
	st, _, err := service.BuildStructure(ctx, ctl.DB, cab)
	if err != nil {
		return mapServiceError(c, err, "Gagal menyusun struktur")
	}
	// ringkasan kabinet tanpa daftar anggota
	summary := *cab
	summary.Members = nil
	return helper.JsonOK(c, "ok", fiber.Map{
		"cabinet":   dto.FromModel(summary),
		"structure": st,
	})
}

/* ============================================
   ADMIN
   GET /api/admin/cabinets?q=&status=&include_deleted=
============================================ */

func (ctl *CabinetController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.CabinetModel{})
	if c.QueryBool("include_deleted", false) {
		q = q.Unscoped()
	}
	if like := helper.ContainsPattern(c.Query("q")); like != "" {
		q = q.Where("LOWER(cabinet_name) LIKE ? ESCAPE '\\' OR LOWER(COALESCE(cabinet_period, '')) LIKE ? ESCAPE '\\'", like, like)
	}
	if st := model.NormalizeStatus(c.Query("status")); st != "" {
		q = q.Where("cabinet_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var list []model.CabinetModel
	if err := q.Order("cabinet_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pg := helper.BuildPagination(total, p, len(list))
	return helper.JsonList(c, "ok", dto.FromModels(list), &pg)
}

// GET /api/admin/cabinets/:id
func (ctl *CabinetController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}
	cab, err := service.FindCabinet(c.UserContext(), ctl.DB, id, true)
	if err != nil {
		return mapServiceError(c, err, "Gagal mengambil kabinet")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*cab))
}

// POST /api/admin/cabinets
func (ctl *CabinetController) Create(c *fiber.Ctx) error {
	var p dto.CabinetCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.WriteError(c, err)
	}

	ent := p.ToModel()
	if err := service.CreateCabinet(c.UserContext(), ctl.DB, &ent); err != nil {
		return mapServiceError(c, err, "Gagal membuat kabinet")
	}
	configs.Log.Infow("kabinet dibuat", "cabinet_id", ent.CabinetID, "status", ent.CabinetStatus)
	return helper.JsonCreated(c, "Berhasil membuat kabinet", dto.FromModel(ent))
}

// PATCH /api/admin/cabinets/:id
func (ctl *CabinetController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}
	ctx := c.UserContext()

	ent, err := service.FindCabinet(ctx, ctl.DB, id, false)
	if err != nil {
		return mapServiceError(c, err, "Gagal mengambil kabinet")
	}

	var p dto.CabinetUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.WriteError(c, err)
	}
	p.ApplyUpdates(ent)

	if err := service.SaveCabinet(ctx, ctl.DB, ent); err != nil {
		return mapServiceError(c, err, "Gagal memperbarui kabinet")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui kabinet", dto.FromModel(*ent))
}

// DELETE /api/admin/cabinets/:id (soft)
func (ctl *CabinetController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}
	ctx := c.UserContext()

	ent, err := service.FindCabinet(ctx, ctl.DB, id, false)
	if err != nil {
		return mapServiceError(c, err, "Gagal mengambil kabinet")
	}
	if err := service.SoftDeleteCabinet(ctx, ctl.DB, ent); err != nil {
		return mapServiceError(c, err, "Gagal menghapus kabinet")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus kabinet", fiber.Map{"cabinet_id": id})
}

// POST /api/admin/cabinets/:id/restore (status tetap inactive)
func (ctl *CabinetController) Restore(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}
	ctx := c.UserContext()

	var ent model.CabinetModel
	if err := ctl.DB.WithContext(ctx).Unscoped().First(&ent, "cabinet_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, service.ErrCabinetNotFound.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if !ent.CabinetDeletedAt.Valid {
		return helper.JsonOK(c, "OK", dto.FromModel(ent))
	}
	if err := ctl.DB.WithContext(ctx).Unscoped().Model(&ent).
		Updates(map[string]any{
			"cabinet_deleted_at": nil,
			"cabinet_status":     constants.CabinetStatusInactive,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merestore kabinet")
	}
	ent.CabinetDeletedAt = gorm.DeletedAt{}
	ent.CabinetStatus = constants.CabinetStatusInactive
	return helper.JsonUpdated(c, "Berhasil merestore kabinet", dto.FromModel(ent))
}

// POST /api/admin/cabinets/:id/activate
func (ctl *CabinetController) Activate(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}
	ent, err := service.Activate(c.UserContext(), ctl.DB, id)
	if err != nil {
		return mapServiceError(c, err, "Gagal mengaktifkan kabinet")
	}
	configs.Log.Infow("✅ kabinet diaktifkan", "cabinet_id", id)
	return helper.JsonUpdated(c, "Kabinet diaktifkan", dto.FromModel(*ent))
}

// GET /api/admin/cabinets/:id/structure (dengan diagnostik unplaced)
func (ctl *CabinetController) GetStructure(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}
	ctx := c.UserContext()

	cab, err := service.FindCabinet(ctx, ctl.DB, id, true)
	if err != nil {
		return mapServiceError(c, err, "Gagal mengambil kabinet")
	}
	st, unplaced, err := service.BuildStructure(ctx, ctl.DB, cab)
	if err != nil {
		return mapServiceError(c, err, "Gagal menyusun struktur")
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"structure": st,
		"unplaced":  unplaced,
	})
}
