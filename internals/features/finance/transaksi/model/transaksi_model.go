package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */
/* Selaras dengan ENUM di PostgreSQL: transaksi_status, transaksi_metode */

type TransaksiStatus string
type TransaksiMetode string

const (
	TransaksiStatusPending  TransaksiStatus = "pending"
	TransaksiStatusApproved TransaksiStatus = "approved"
	TransaksiStatusRejected TransaksiStatus = "rejected"
)

const (
	TransaksiMetodeCash     TransaksiMetode = "cash"
	TransaksiMetodeTransfer TransaksiMetode = "transfer"
	TransaksiMetodeGateway  TransaksiMetode = "gateway"
)

/* ===================== Model ===================== */

type TransaksiModel struct {
	TransaksiID uuid.UUID `gorm:"column:transaksi_id;type:uuid;default:gen_random_uuid();primaryKey" json:"transaksi_id"`

	// FK
	TransaksiTagihanID uuid.UUID `gorm:"column:transaksi_tagihan_id;type:uuid;not null;index:idx_transaksis_tagihan" json:"transaksi_tagihan_id"`
	TransaksiSantriID  uuid.UUID `gorm:"column:transaksi_santri_id;type:uuid;not null;index:idx_transaksis_santri" json:"transaksi_santri_id"`

	// Nominal disalin dari tagihan saat dibuat (tidak divalidasi ulang saat ganti status)
	TransaksiNominalIDR int64 `gorm:"column:transaksi_nominal_idr;not null;check:transaksi_nominal_idr >= 0" json:"transaksi_nominal_idr"`

	TransaksiMetode TransaksiMetode `gorm:"column:transaksi_metode;type:varchar(20);not null" json:"transaksi_metode"`
	TransaksiStatus TransaksiStatus `gorm:"column:transaksi_status;type:varchar(20);not null;default:pending" json:"transaksi_status"`

	// Catatan manual / alasan penolakan
	TransaksiNote *string `gorm:"column:transaksi_note;type:text" json:"transaksi_note,omitempty"`

	TransaksiPaidAt *time.Time `gorm:"column:transaksi_paid_at" json:"transaksi_paid_at,omitempty"`

	// Info gateway (nil untuk metode manual)
	TransaksiOrderID    *string `gorm:"column:transaksi_order_id;uniqueIndex:uq_transaksis_order_id" json:"transaksi_order_id,omitempty"`
	TransaksiGatewayRef *string `gorm:"column:transaksi_gateway_ref" json:"transaksi_gateway_ref,omitempty"`

	TransaksiCreatedAt time.Time      `gorm:"column:transaksi_created_at;autoCreateTime" json:"transaksi_created_at"`
	TransaksiUpdatedAt *time.Time     `gorm:"column:transaksi_updated_at;autoUpdateTime" json:"transaksi_updated_at,omitempty"`
	TransaksiDeletedAt gorm.DeletedAt `gorm:"column:transaksi_deleted_at;index" json:"transaksi_deleted_at,omitempty"`
}

func (TransaksiModel) TableName() string { return "transaksis" }

func (t *TransaksiModel) IsPending() bool { return t.TransaksiStatus == TransaksiStatusPending }

func (t *TransaksiModel) IsGateway() bool { return t.TransaksiMetode == TransaksiMetodeGateway }
