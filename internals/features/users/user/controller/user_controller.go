package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	dto "santriku_backend/internals/features/users/user/dto"
	model "santriku_backend/internals/features/users/user/model"
	helper "santriku_backend/internals/helpers"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validator: validator.New()}
}

/* ======================= CREATE (admin) ======================= */
// POST /api/a/users
func (h *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	m := req.ToModel()
	m.UserPassword = string(hashed)

	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Printf("[ERROR] Gagal membuat user: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User berhasil dibuat", dto.FromModel(m))
}

/* ======================= LIST (admin) ======================= */
// GET /api/a/users?role=&kelas_id=&q=
func (h *UserController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.Context()).Model(&model.UserModel{})
	if role := c.Query("role"); role != "" {
		q = q.Where("user_role = ?", role)
	}
	if kelas := c.Query("kelas_id"); kelas != "" {
		q = q.Where("user_kelas_id = ?", kelas)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("user_name ILIKE ? OR user_email ILIKE ?", "%"+s+"%", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.UserModel
	if err := q.Order("user_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithPagination(c, "OK", dto.FromModelList(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= UPDATE (admin) ======================= */
// PATCH /api/a/users/:id
func (h *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.UserModel
	if err := h.DB.WithContext(c.Context()).First(&m, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyTo(&m)

	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui user")
	}
	return helper.Success(c, "User berhasil diperbarui", dto.FromModel(&m))
}

/* ======================= ME ======================= */
// GET /api/u/users/me
func (h *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var m model.UserModel
	if err := h.DB.WithContext(c.Context()).First(&m, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModel(&m))
}

// POST /api/u/users/change-password
func (h *UserController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.UserModel
	if err := h.DB.WithContext(c.Context()).First(&m, "user_id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(m.UserPassword), []byte(req.OldPassword)); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Password lama salah")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	if err := h.DB.WithContext(c.Context()).Model(&m).
		Update("user_password", string(hashed)).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengganti password")
	}
	return helper.Success(c, "Password berhasil diganti", nil)
}
