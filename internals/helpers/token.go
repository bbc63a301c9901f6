package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Ambil user_id dari c.Locals("user_id")
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
	}
}

// Ambil role dari c.Locals("userRole")
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	v := c.Locals("userRole")
	role, ok := v.(string)
	if !ok || role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Role tidak ditemukan pada token")
	}
	return role, nil
}

// Ambil user_name dari c.Locals("user_name") (best-effort, boleh kosong)
func GetUserNameFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals("user_name").(string); ok {
		return v
	}
	return ""
}
