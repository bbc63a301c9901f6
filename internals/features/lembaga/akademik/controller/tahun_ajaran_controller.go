package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "santriku_backend/internals/features/lembaga/akademik/dto"
	model "santriku_backend/internals/features/lembaga/akademik/model"
	helper "santriku_backend/internals/helpers"
)

type TahunAjaranController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTahunAjaranController(db *gorm.DB) *TahunAjaranController {
	return &TahunAjaranController{DB: db, Validator: validator.New()}
}

// POST /api/a/tahun-ajaran
func (h *TahunAjaranController) Create(c *fiber.Ctx) error {
	var req dto.CreateTahunAjaranRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// kalau dibuat aktif, nonaktifkan tahun ajaran lain
		if m.TahunAjaranAktif {
			if err := tx.Model(&model.TahunAjaranModel{}).
				Where("tahun_ajaran_aktif = TRUE").
				Update("tahun_ajaran_aktif", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(m).Error
	})
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return fiber.NewError(fiber.StatusConflict, "Tahun ajaran sudah ada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat tahun ajaran")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tahun ajaran berhasil dibuat", m)
}

// GET /api/a/tahun-ajaran
func (h *TahunAjaranController) List(c *fiber.Ctx) error {
	var rows []model.TahunAjaranModel
	if err := h.DB.WithContext(c.Context()).
		Order("tahun_ajaran_nama DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}

// POST /api/a/tahun-ajaran/:id/aktifkan
func (h *TahunAjaranController) Aktifkan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	err = h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.TahunAjaranModel{}).
			Where("tahun_ajaran_aktif = TRUE").
			Update("tahun_ajaran_aktif", false).Error; err != nil {
			return err
		}
		res := tx.Model(&model.TahunAjaranModel{}).
			Where("tahun_ajaran_id = ?", id).
			Update("tahun_ajaran_aktif", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengaktifkan tahun ajaran")
	}
	return helper.Success(c, "Tahun ajaran diaktifkan", nil)
}
