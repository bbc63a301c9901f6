package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "santriku_backend/internals/features/lembaga/akademik/dto"
	model "santriku_backend/internals/features/lembaga/akademik/model"
	helper "santriku_backend/internals/helpers"
)

type JenisTagihanController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewJenisTagihanController(db *gorm.DB) *JenisTagihanController {
	return &JenisTagihanController{DB: db, Validator: validator.New()}
}

// POST /api/a/jenis-tagihan
func (h *JenisTagihanController) Create(c *fiber.Ctx) error {
	var req dto.CreateJenisTagihanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return fiber.NewError(fiber.StatusConflict, "Jenis tagihan sudah ada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat jenis tagihan")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Jenis tagihan berhasil dibuat", m)
}

// GET /api/a/jenis-tagihan (juga dipakai santri untuk lihat daftar biaya)
func (h *JenisTagihanController) List(c *fiber.Ctx) error {
	var rows []model.JenisTagihanModel
	q := h.DB.WithContext(c.Context()).Model(&model.JenisTagihanModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("jenis_tagihan_nama ILIKE ?", "%"+s+"%")
	}
	if err := q.Order("jenis_tagihan_nama ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}

// PATCH /api/a/jenis-tagihan/:id
func (h *JenisTagihanController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.JenisTagihanModel
	if err := h.DB.WithContext(c.Context()).First(&m, "jenis_tagihan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Jenis tagihan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateJenisTagihanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyTo(&m)

	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui jenis tagihan")
	}
	return helper.Success(c, "Jenis tagihan berhasil diperbarui", m)
}

// DELETE /api/a/jenis-tagihan/:id
func (h *JenisTagihanController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := h.DB.WithContext(c.Context()).
		Delete(&model.JenisTagihanModel{}, "jenis_tagihan_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus jenis tagihan")
	}
	return helper.Success(c, "Jenis tagihan berhasil dihapus", nil)
}
