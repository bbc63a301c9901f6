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

type KelasController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewKelasController(db *gorm.DB) *KelasController {
	return &KelasController{DB: db, Validator: validator.New()}
}

// POST /api/a/kelas
func (h *KelasController) Create(c *fiber.Ctx) error {
	var req dto.CreateKelasRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return fiber.NewError(fiber.StatusConflict, "Nama kelas sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kelas")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kelas berhasil dibuat", m)
}

// GET /api/a/kelas
func (h *KelasController) List(c *fiber.Ctx) error {
	var rows []model.KelasModel
	q := h.DB.WithContext(c.Context()).Model(&model.KelasModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("kelas_nama ILIKE ?", "%"+s+"%")
	}
	if err := q.Order("kelas_level ASC, kelas_nama ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}

// PATCH /api/a/kelas/:id
func (h *KelasController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.KelasModel
	if err := h.DB.WithContext(c.Context()).First(&m, "kelas_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateKelasRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyTo(&m)

	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui kelas")
	}
	return helper.Success(c, "Kelas berhasil diperbarui", m)
}

// DELETE /api/a/kelas/:id
func (h *KelasController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := h.DB.WithContext(c.Context()).
		Delete(&model.KelasModel{}, "kelas_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	return helper.Success(c, "Kelas berhasil dihapus", nil)
}
