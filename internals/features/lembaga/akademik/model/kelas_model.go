package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KelasModel struct {
	KelasID    uuid.UUID `gorm:"column:kelas_id;type:uuid;default:gen_random_uuid();primaryKey" json:"kelas_id"`
	KelasNama  string    `gorm:"column:kelas_nama;type:varchar(100);not null;uniqueIndex:uq_kelas_nama" json:"kelas_nama"`
	KelasLevel int16     `gorm:"column:kelas_level;type:smallint;not null;default:1" json:"kelas_level"`

	KelasCreatedAt time.Time      `gorm:"column:kelas_created_at;autoCreateTime" json:"kelas_created_at"`
	KelasUpdatedAt *time.Time     `gorm:"column:kelas_updated_at;autoUpdateTime" json:"kelas_updated_at,omitempty"`
	KelasDeletedAt gorm.DeletedAt `gorm:"column:kelas_deleted_at;index" json:"kelas_deleted_at,omitempty"`
}

func (KelasModel) TableName() string { return "kelas" }
