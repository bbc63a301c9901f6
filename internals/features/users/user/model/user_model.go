package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName     string    `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail    string    `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex:uq_users_email" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;type:varchar(255);not null" json:"-"`

	// Role dipakai untuk gating route: admin | santri
	UserRole string `gorm:"column:user_role;type:varchar(20);not null;default:santri" json:"user_role"`

	// FK ke kelas (nullable, hanya untuk santri → dipakai generate tagihan per kelas)
	UserKelasID *uuid.UUID `gorm:"column:user_kelas_id;type:uuid;index:idx_users_kelas" json:"user_kelas_id,omitempty"`

	// Preferensi notifikasi in-app (dipakai fan-out webhook ke admin)
	UserAppNotification bool `gorm:"column:user_app_notification;not null;default:true" json:"user_app_notification"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) IsAdmin() bool { return u.UserRole == "admin" }
