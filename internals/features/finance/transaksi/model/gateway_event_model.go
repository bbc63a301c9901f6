package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GatewayEventStatus string

const (
	GatewayEventStatusReceived  GatewayEventStatus = "received"
	GatewayEventStatusProcessed GatewayEventStatus = "processed"
	GatewayEventStatusFailed    GatewayEventStatus = "failed"
)

// Audit log setiap delivery webhook dari payment gateway.
// Unique index (provider, order_id, transaction_status) bikin delivery duplikat
// collapse jadi satu baris.
type TransaksiGatewayEventModel struct {
	TransaksiGatewayEventID uuid.UUID `gorm:"column:transaksi_gateway_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"transaksi_gateway_event_id"`

	TransaksiGatewayEventTransaksiID *uuid.UUID `gorm:"column:transaksi_gateway_event_transaksi_id;type:uuid" json:"transaksi_gateway_event_transaksi_id,omitempty"`

	TransaksiGatewayEventProvider          string `gorm:"column:transaksi_gateway_event_provider;type:varchar(30);not null;uniqueIndex:uq_gw_event_provider_order_status" json:"transaksi_gateway_event_provider"`
	TransaksiGatewayEventOrderID           string `gorm:"column:transaksi_gateway_event_order_id;not null;uniqueIndex:uq_gw_event_provider_order_status" json:"transaksi_gateway_event_order_id"`
	TransaksiGatewayEventTransactionStatus string `gorm:"column:transaksi_gateway_event_transaction_status;type:varchar(30);not null;uniqueIndex:uq_gw_event_provider_order_status" json:"transaksi_gateway_event_transaction_status"`

	TransaksiGatewayEventSignature *string        `gorm:"column:transaksi_gateway_event_signature" json:"transaksi_gateway_event_signature,omitempty"`
	TransaksiGatewayEventPayload   datatypes.JSON `gorm:"column:transaksi_gateway_event_payload;type:jsonb" json:"transaksi_gateway_event_payload,omitempty"`

	TransaksiGatewayEventStatus GatewayEventStatus `gorm:"column:transaksi_gateway_event_status;type:varchar(20);not null;default:received" json:"transaksi_gateway_event_status"`
	TransaksiGatewayEventError  *string            `gorm:"column:transaksi_gateway_event_error" json:"transaksi_gateway_event_error,omitempty"`

	TransaksiGatewayEventCreatedAt   time.Time  `gorm:"column:transaksi_gateway_event_created_at;autoCreateTime" json:"transaksi_gateway_event_created_at"`
	TransaksiGatewayEventProcessedAt *time.Time `gorm:"column:transaksi_gateway_event_processed_at" json:"transaksi_gateway_event_processed_at,omitempty"`
}

func (TransaksiGatewayEventModel) TableName() string { return "transaksi_gateway_events" }
