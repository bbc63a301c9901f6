package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"santriku_backend/internals/configs"
	dto "santriku_backend/internals/features/users/auth/dto"
	userModel "santriku_backend/internals/features/users/user/model"
	helper "santriku_backend/internals/helpers"
)

const tokenTTL = 24 * time.Hour

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

/* ======================= LOGIN ======================= */
// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var u userModel.UserModel
	if err := h.DB.WithContext(c.Context()).
		First(&u, "user_email = ?", req.UserEmail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(req.UserPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	secret := configs.JWTSecret
	if secret == "" {
		log.Println("[ERROR] JWT_SECRET kosong")
		return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   u.UserID.String(),
		"user_name": u.UserName,
		"role":      u.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		log.Printf("[ERROR] Gagal sign token: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.Success(c, "Login berhasil", dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(tokenTTL.Seconds()),
		UserID:      u.UserID.String(),
		UserName:    u.UserName,
		UserRole:    u.UserRole,
	})
}
