package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/configs"
	"ukmfilm_backend/internals/features/organization/cabinets/dto"
	"ukmfilm_backend/internals/features/organization/cabinets/service"
	helper "ukmfilm_backend/internals/helpers"
)

type MemberController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMemberController(db *gorm.DB, v *validator.Validate) *MemberController {
	if v == nil {
		v = helper.Validate
	}
	return &MemberController{DB: db, Validator: v}
}

// cabinetFromParam: :id wajib kabinet yang ada (tidak terhapus).
func (ctl *MemberController) cabinetFromParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return uuid.Nil, err
	}
	if _, err := service.FindCabinet(c.UserContext(), ctl.DB, id, false); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (ctl *MemberController) fail(c *fiber.Ctx, err error, fallback string) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return mapServiceError(c, err, fallback)
}

/* ============================================
   GET /api/admin/cabinets/:id/members
============================================ */

func (ctl *MemberController) List(c *fiber.Ctx) error {
	cabinetID, err := ctl.cabinetFromParam(c)
	if err != nil {
		return ctl.fail(c, err, "Gagal mengambil kabinet")
	}
	list, err := service.ListMembers(c.UserContext(), ctl.DB, cabinetID)
	if err != nil {
		return ctl.fail(c, err, "Gagal mengambil anggota")
	}
	return helper.JsonList(c, "ok", dto.FromMemberModels(list), nil)
}

/* ============================================
   POST /api/admin/cabinets/:id/members
============================================ */

func (ctl *MemberController) Create(c *fiber.Ctx) error {
	cabinetID, err := ctl.cabinetFromParam(c)
	if err != nil {
		return ctl.fail(c, err, "Gagal mengambil kabinet")
	}

	var p dto.MemberCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.WriteError(c, err)
	}

	ctx := c.UserContext()
	div, err := service.ResolveDivision(ctx, ctl.DB, p.MemberDivisionID)
	if err != nil {
		return ctl.fail(c, err, "Gagal memeriksa divisi")
	}

	ent := p.ToModel(cabinetID)
	if err := ctl.DB.WithContext(ctx).Omit("Division").Create(&ent).Error; err != nil {
		return ctl.fail(c, err, "Gagal menambah anggota")
	}
	ent.Division = div
	return helper.JsonCreated(c, "Berhasil menambah anggota", dto.FromMemberModel(ent))
}

/* ============================================
   PATCH /api/admin/cabinets/:id/members/:memberId
============================================ */

func (ctl *MemberController) Patch(c *fiber.Ctx) error {
	cabinetID, err := ctl.cabinetFromParam(c)
	if err != nil {
		return ctl.fail(c, err, "Gagal mengambil kabinet")
	}
	memberID, err := helper.ParseUUIDParam(c, "memberId")
	if err != nil {
		return helper.WriteError(c, err)
	}
	ctx := c.UserContext()

	ent, err := service.FindMember(ctx, ctl.DB, cabinetID, memberID)
	if err != nil {
		return ctl.fail(c, err, "Gagal mengambil anggota")
	}

	var p dto.MemberUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.WriteError(c, err)
	}
	p.ApplyUpdates(ent)

	if ent.Division == nil {
		div, err := service.ResolveDivision(ctx, ctl.DB, ent.MemberDivisionID)
		if err != nil {
			return ctl.fail(c, err, "Gagal memeriksa divisi")
		}
		ent.Division = div
	}

	if err := ctl.DB.WithContext(ctx).Omit("Division").Save(ent).Error; err != nil {
		return ctl.fail(c, err, "Gagal memperbarui anggota")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui anggota", dto.FromMemberModel(*ent))
}

/* ============================================
   DELETE /api/admin/cabinets/:id/members/:memberId (hard)
============================================ */

func (ctl *MemberController) Delete(c *fiber.Ctx) error {
	cabinetID, err := ctl.cabinetFromParam(c)
	if err != nil {
		return ctl.fail(c, err, "Gagal mengambil kabinet")
	}
	memberID, err := helper.ParseUUIDParam(c, "memberId")
	if err != nil {
		return helper.WriteError(c, err)
	}
	ctx := c.UserContext()

	ent, err := service.FindMember(ctx, ctl.DB, cabinetID, memberID)
	if err != nil {
		return ctl.fail(c, err, "Gagal mengambil anggota")
	}
	if err := ctl.DB.WithContext(ctx).Delete(ent).Error; err != nil {
		return ctl.fail(c, err, "Gagal menghapus anggota")
	}
	configs.Log.Infow("anggota dihapus", "cabinet_id", cabinetID, "member_id", memberID)
	return helper.JsonDeleted(c, "Berhasil menghapus anggota", fiber.Map{"member_id": memberID})
}
