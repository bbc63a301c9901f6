package dto

import (
	"time"

	"github.com/google/uuid"

	m "santriku_backend/internals/features/users/user/model"
)

/* =============== REQUESTS =============== */

// Create (admin membuat akun santri / admin lain)
type CreateUserRequest struct {
	UserName     string     `json:"user_name" validate:"required,min=3,max=100"`
	UserEmail    string     `json:"user_email" validate:"required,email"`
	UserPassword string     `json:"user_password" validate:"required,min=8"`
	UserRole     string     `json:"user_role" validate:"omitempty,oneof=admin santri"`
	UserKelasID  *uuid.UUID `json:"user_kelas_id" validate:"omitempty"`
}

func (r CreateUserRequest) ToModel() *m.UserModel {
	role := r.UserRole
	if role == "" {
		role = "santri"
	}
	return &m.UserModel{
		UserName:            r.UserName,
		UserEmail:           r.UserEmail,
		UserPassword:        r.UserPassword, // di-hash di controller sebelum simpan
		UserRole:            role,
		UserKelasID:         r.UserKelasID,
		UserAppNotification: true,
	}
}

// Update (partial)
type UpdateUserRequest struct {
	UserName            *string    `json:"user_name" validate:"omitempty,min=3,max=100"`
	UserKelasID         *uuid.UUID `json:"user_kelas_id" validate:"omitempty"`
	UserAppNotification *bool      `json:"user_app_notification" validate:"omitempty"`
}

func (r UpdateUserRequest) ApplyTo(mo *m.UserModel) {
	if r.UserName != nil {
		mo.UserName = *r.UserName
	}
	if r.UserKelasID != nil {
		mo.UserKelasID = r.UserKelasID
	}
	if r.UserAppNotification != nil {
		mo.UserAppNotification = *r.UserAppNotification
	}
}

// Ganti password (self-service)
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

/* =============== RESPONSES =============== */

type UserResponse struct {
	UserID              uuid.UUID  `json:"user_id"`
	UserName            string     `json:"user_name"`
	UserEmail           string     `json:"user_email"`
	UserRole            string     `json:"user_role"`
	UserKelasID         *uuid.UUID `json:"user_kelas_id,omitempty"`
	UserAppNotification bool       `json:"user_app_notification"`
	UserCreatedAt       string     `json:"user_created_at"`
}

func FromModel(mo *m.UserModel) UserResponse {
	return UserResponse{
		UserID:              mo.UserID,
		UserName:            mo.UserName,
		UserEmail:           mo.UserEmail,
		UserRole:            mo.UserRole,
		UserKelasID:         mo.UserKelasID,
		UserAppNotification: mo.UserAppNotification,
		UserCreatedAt:       mo.UserCreatedAt.Format(time.RFC3339),
	}
}

func FromModelList(models []m.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(models))
	for i := range models {
		out = append(out, FromModel(&models[i]))
	}
	return out
}
