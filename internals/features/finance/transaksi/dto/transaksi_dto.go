package dto

import (
	"time"

	"github.com/google/uuid"

	tagihanDto "santriku_backend/internals/features/finance/tagihan/dto"
	tagihanModel "santriku_backend/internals/features/finance/tagihan/model"
	m "santriku_backend/internals/features/finance/transaksi/model"
)

/* =============== REQUESTS =============== */

// Santri mencatat pembayaran manual (cash / transfer bank)
type CreateManualTransaksiRequest struct {
	TransaksiTagihanID uuid.UUID `json:"transaksi_tagihan_id" validate:"required"`
	TransaksiMetode    string    `json:"transaksi_metode" validate:"required,oneof=cash transfer"`
	TransaksiNote      *string   `json:"transaksi_note" validate:"omitempty"`
}

// Santri memulai checkout Midtrans
type CheckoutMidtransRequest struct {
	TagihanID uuid.UUID `json:"tagihan_id" validate:"required"`
}

// Admin menolak pembayaran
type RejectTransaksiRequest struct {
	Note string `json:"note" validate:"required,min=3"`
}

/* =============== RESPONSES =============== */

type TransaksiResponse struct {
	TransaksiID         uuid.UUID `json:"transaksi_id"`
	TransaksiTagihanID  uuid.UUID `json:"transaksi_tagihan_id"`
	TransaksiSantriID   uuid.UUID `json:"transaksi_santri_id"`
	TransaksiNominalIDR int64     `json:"transaksi_nominal_idr"`
	TransaksiMetode     string    `json:"transaksi_metode"`
	TransaksiStatus     string    `json:"transaksi_status"`
	TransaksiNote       *string   `json:"transaksi_note,omitempty"`
	TransaksiPaidAt     *string   `json:"transaksi_paid_at,omitempty"`
	TransaksiOrderID    *string   `json:"transaksi_order_id,omitempty"`
	TransaksiGatewayRef *string   `json:"transaksi_gateway_ref,omitempty"`
	TransaksiCreatedAt  string    `json:"transaksi_created_at"`

	// Nested tagihan (diisi saat preload/lookup terpisah)
	Tagihan *tagihanDto.TagihanResponse `json:"tagihan,omitempty"`
}

func FromModel(mo *m.TransaksiModel) TransaksiResponse {
	var paidAt *string
	if mo.TransaksiPaidAt != nil {
		s := mo.TransaksiPaidAt.Format(time.RFC3339)
		paidAt = &s
	}
	return TransaksiResponse{
		TransaksiID:         mo.TransaksiID,
		TransaksiTagihanID:  mo.TransaksiTagihanID,
		TransaksiSantriID:   mo.TransaksiSantriID,
		TransaksiNominalIDR: mo.TransaksiNominalIDR,
		TransaksiMetode:     string(mo.TransaksiMetode),
		TransaksiStatus:     string(mo.TransaksiStatus),
		TransaksiNote:       mo.TransaksiNote,
		TransaksiPaidAt:     paidAt,
		TransaksiOrderID:    mo.TransaksiOrderID,
		TransaksiGatewayRef: mo.TransaksiGatewayRef,
		TransaksiCreatedAt:  mo.TransaksiCreatedAt.Format(time.RFC3339),
	}
}

func FromModelWithTagihan(mo *m.TransaksiModel, tagihan *tagihanModel.TagihanModel) TransaksiResponse {
	resp := FromModel(mo)
	if tagihan != nil {
		t := tagihanDto.FromModel(tagihan)
		resp.Tagihan = &t
	}
	return resp
}

func FromModelList(models []m.TransaksiModel) []TransaksiResponse {
	out := make([]TransaksiResponse, 0, len(models))
	for i := range models {
		out = append(out, FromModel(&models[i]))
	}
	return out
}

/* =============== CHECKOUT RESPONSE =============== */

type CheckoutMidtransResponse struct {
	TransaksiID uuid.UUID `json:"transaksi_id"`
	OrderID     string    `json:"order_id"`
	SnapToken   string    `json:"snap_token"`
	RedirectURL string    `json:"redirect_url"`
}
