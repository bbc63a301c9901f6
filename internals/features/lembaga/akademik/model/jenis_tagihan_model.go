package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JenisTagihanModel struct {
	JenisTagihanID   uuid.UUID `gorm:"column:jenis_tagihan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"jenis_tagihan_id"`
	JenisTagihanNama string    `gorm:"column:jenis_tagihan_nama;type:varchar(100);not null;uniqueIndex:uq_jenis_tagihan_nama" json:"jenis_tagihan_nama"` // mis. "SPP Bulanan"

	// Nominal default saat generate tagihan (IDR, integer)
	JenisTagihanNominalDefault int64 `gorm:"column:jenis_tagihan_nominal_default;not null;default:0;check:jenis_tagihan_nominal_default >= 0" json:"jenis_tagihan_nominal_default"`

	JenisTagihanDeskripsi *string `gorm:"column:jenis_tagihan_deskripsi;type:text" json:"jenis_tagihan_deskripsi,omitempty"`

	JenisTagihanCreatedAt time.Time      `gorm:"column:jenis_tagihan_created_at;autoCreateTime" json:"jenis_tagihan_created_at"`
	JenisTagihanUpdatedAt *time.Time     `gorm:"column:jenis_tagihan_updated_at;autoUpdateTime" json:"jenis_tagihan_updated_at,omitempty"`
	JenisTagihanDeletedAt gorm.DeletedAt `gorm:"column:jenis_tagihan_deleted_at;index" json:"jenis_tagihan_deleted_at,omitempty"`
}

func (JenisTagihanModel) TableName() string { return "jenis_tagihans" }
