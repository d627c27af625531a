package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/configs"
	articleModel "ukmfilm_backend/internals/features/home/articles/model"
	"ukmfilm_backend/internals/features/home/carousels/dto"
	"ukmfilm_backend/internals/features/home/carousels/model"
	helper "ukmfilm_backend/internals/helpers"
)

type CarouselController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCarouselController(db *gorm.DB) *CarouselController {
	return &CarouselController{DB: db, Validator: helper.Validate}
}

// articleExists: tautan artikel wajib ke artikel yang ada.
func (ctrl *CarouselController) articleExists(c *fiber.Ctx, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	var cnt int64
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&articleModel.ArticleModel{}).
		Where("article_id = ?", *id).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Artikel tautan tidak ditemukan")
	}
	return nil
}

// ✅ GET: Ambil carousel aktif (untuk publik)
func (ctrl *CarouselController) GetAllActiveCarousels(c *fiber.Ctx) error {
	var carousels []model.CarouselModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Article", "article_is_published = ?", true).
		Where("carousel_is_active = ?", true).
		Order("carousel_order ASC, carousel_created_at DESC").
		Limit(model.MaxPublicCarousels).
		Find(&carousels).Error; err != nil {
		configs.Log.Errorw("Gagal ambil data carousel", "err", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data carousel")
	}

	return helper.JsonList(c, "ok", dto.ConvertCarouselListToDTO(carousels), nil)
}

// ✅ GET: Admin - Ambil semua carousel
func (ctrl *CarouselController) GetAllCarouselsAdmin(c *fiber.Ctx) error {
	var carousels []model.CarouselModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Article").
		Order("carousel_order ASC, carousel_created_at DESC").
		Find(&carousels).Error; err != nil {
		configs.Log.Errorw("Gagal ambil semua carousel admin", "err", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data")
	}

	return helper.JsonList(c, "ok", dto.ConvertCarouselListToDTO(carousels), nil)
}

// ✅ POST: Admin - Tambah carousel
func (ctrl *CarouselController) CreateCarousel(c *fiber.Ctx) error {
	var req dto.CreateCarouselRequest
	if err := helper.BindAndValidate(c, ctrl.Validator, &req); err != nil {
		return helper.WriteError(c, err)
	}
	if err := ctrl.articleExists(c, req.CarouselArticleID); err != nil {
		return helper.WriteError(c, err)
	}

	ent := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Omit("Article").Create(&ent).Error; err != nil {
		configs.Log.Errorw("Gagal tambah carousel", "err", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal tambah data")
	}

	return helper.JsonCreated(c, "Carousel berhasil ditambahkan", dto.ConvertCarouselToDTO(ent))
}

// ✅ PATCH: Admin - Edit carousel
func (ctrl *CarouselController) UpdateCarousel(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}
	ctx := c.UserContext()

	var existing model.CarouselModel
	if err := ctrl.DB.WithContext(ctx).Where("carousel_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data")
	}

	var req dto.UpdateCarouselRequest
	if err := helper.BindAndValidate(c, ctrl.Validator, &req); err != nil {
		return helper.WriteError(c, err)
	}
	if !req.ClearArticle {
		if err := ctrl.articleExists(c, req.CarouselArticleID); err != nil {
			return helper.WriteError(c, err)
		}
	}
	req.ApplyUpdates(&existing)

	if err := ctrl.DB.WithContext(ctx).Omit("Article").Save(&existing).Error; err != nil {
		configs.Log.Errorw("Gagal update carousel", "err", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update data")
	}

	return helper.JsonUpdated(c, "Carousel berhasil diupdate", dto.ConvertCarouselToDTO(existing))
}

// ✅ DELETE: Admin - Hapus carousel (hard delete)
func (ctrl *CarouselController) DeleteCarousel(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("carousel_id = ?", id).
		Delete(&model.CarouselModel{})
	if res.Error != nil {
		configs.Log.Errorw("Gagal hapus carousel", "err", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus data")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Carousel berhasil dihapus", fiber.Map{"carousel_id": id})
}
