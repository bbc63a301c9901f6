package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type NotificationModel struct {
	NotificationID     uuid.UUID `gorm:"column:notification_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_id"`
	NotificationUserID uuid.UUID `gorm:"column:notification_user_id;type:uuid;not null;index:idx_notifications_user" json:"notification_user_id"`

	NotificationTitle   string         `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationMessage string         `gorm:"column:notification_message;type:text" json:"notification_message"`
	NotificationTags    pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"notification_tags"`

	// Backlink opsional ke tagihan
	NotificationTagihanID *uuid.UUID `gorm:"column:notification_tagihan_id;type:uuid" json:"notification_tagihan_id,omitempty"`

	NotificationRead   bool       `gorm:"column:notification_read;not null;default:false" json:"notification_read"`
	NotificationReadAt *time.Time `gorm:"column:notification_read_at" json:"notification_read_at,omitempty"`

	NotificationCreatedAt time.Time  `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
	NotificationUpdatedAt *time.Time `gorm:"column:notification_updated_at;autoUpdateTime" json:"notification_updated_at,omitempty"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

// Kategori tag yang dipakai dispatcher
const (
	NotificationTagPembayaranDiterima = "pembayaran_diterima"
	NotificationTagPembayaranDitolak  = "pembayaran_ditolak"
	NotificationTagSistem             = "sistem"
)
