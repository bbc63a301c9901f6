package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TagihanStatus string

const (
	TagihanStatusPending TagihanStatus = "pending"
	TagihanStatusPaid    TagihanStatus = "paid"
	TagihanStatusOverdue TagihanStatus = "overdue"
)

type TagihanModel struct {
	TagihanID uuid.UUID `gorm:"column:tagihan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"tagihan_id"`

	// FK
	TagihanSantriID       uuid.UUID  `gorm:"column:tagihan_santri_id;type:uuid;not null;index:idx_tagihans_santri" json:"tagihan_santri_id"`
	TagihanJenisTagihanID uuid.UUID  `gorm:"column:tagihan_jenis_tagihan_id;type:uuid;not null;index:idx_tagihans_jenis" json:"tagihan_jenis_tagihan_id"`
	TagihanTahunAjaranID  *uuid.UUID `gorm:"column:tagihan_tahun_ajaran_id;type:uuid" json:"tagihan_tahun_ajaran_id,omitempty"`

	// Nominal (IDR, integer — tanpa floating point)
	TagihanNominalIDR int64 `gorm:"column:tagihan_nominal_idr;not null;check:tagihan_nominal_idr >= 0" json:"tagihan_nominal_idr"`

	TagihanJatuhTempo time.Time `gorm:"column:tagihan_jatuh_tempo;type:date;not null" json:"tagihan_jatuh_tempo"`

	// Status = proyeksi dari transaksi terbaru yang tidak rejected:
	// paid iff ada transaksi approved; selain itu pending/overdue.
	TagihanStatus TagihanStatus `gorm:"column:tagihan_status;type:varchar(20);not null;default:pending" json:"tagihan_status"`

	TagihanNote *string `gorm:"column:tagihan_note;type:text" json:"tagihan_note,omitempty"`

	TagihanCreatedAt time.Time      `gorm:"column:tagihan_created_at;autoCreateTime" json:"tagihan_created_at"`
	TagihanUpdatedAt *time.Time     `gorm:"column:tagihan_updated_at;autoUpdateTime" json:"tagihan_updated_at,omitempty"`
	TagihanDeletedAt gorm.DeletedAt `gorm:"column:tagihan_deleted_at;index" json:"tagihan_deleted_at,omitempty"`
}

func (TagihanModel) TableName() string { return "tagihans" }

func (t *TagihanModel) IsPaid() bool { return t.TagihanStatus == TagihanStatusPaid }

func (t *TagihanModel) IsOpen() bool {
	return t.TagihanStatus == TagihanStatusPending || t.TagihanStatus == TagihanStatusOverdue
}
