package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TahunAjaranModel struct {
	TahunAjaranID   uuid.UUID `gorm:"column:tahun_ajaran_id;type:uuid;default:gen_random_uuid();primaryKey" json:"tahun_ajaran_id"`
	TahunAjaranNama string    `gorm:"column:tahun_ajaran_nama;type:varchar(20);not null;uniqueIndex:uq_tahun_ajaran_nama" json:"tahun_ajaran_nama"` // mis. "2025/2026"

	// Hanya satu tahun ajaran aktif, dijaga di controller
	TahunAjaranAktif bool `gorm:"column:tahun_ajaran_aktif;not null;default:false" json:"tahun_ajaran_aktif"`

	TahunAjaranCreatedAt time.Time      `gorm:"column:tahun_ajaran_created_at;autoCreateTime" json:"tahun_ajaran_created_at"`
	TahunAjaranUpdatedAt *time.Time     `gorm:"column:tahun_ajaran_updated_at;autoUpdateTime" json:"tahun_ajaran_updated_at,omitempty"`
	TahunAjaranDeletedAt gorm.DeletedAt `gorm:"column:tahun_ajaran_deleted_at;index" json:"tahun_ajaran_deleted_at,omitempty"`
}

func (TahunAjaranModel) TableName() string { return "tahun_ajarans" }
