package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	tagihanModel "santriku_backend/internals/features/finance/tagihan/model"
	"santriku_backend/internals/features/finance/transaksi/model"
	notifModel "santriku_backend/internals/features/home/notifications/model"
	helper "santriku_backend/internals/helpers"
)

/* =========================================================
   Payment Reconciliation Core

   Satu-satunya jalur mutasi status transaksi + tagihan.
   Tiga trigger: approve admin, reject admin, webhook gateway.
   Semua write per trigger jalan dalam satu unit atomik milik
   Ledger: commit semua atau batal semua.
========================================================= */

type Reconciler struct {
	Ledger            Ledger
	MidtransServerKey string
}

func NewReconciler(ledger Ledger, midtransServerKey string) *Reconciler {
	return &Reconciler{Ledger: ledger, MidtransServerKey: midtransServerKey}
}

/* ======================= APPROVE ======================= */

// ApprovePayment: transaksi pending → approved, tagihan → paid,
// notifikasi ke santri + admin yang meng-approve.
func (r *Reconciler) ApprovePayment(ctx context.Context, actor Actor, transaksiID uuid.UUID) (*model.TransaksiModel, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: hanya admin yang boleh approve pembayaran", ErrForbidden)
	}

	var out *model.TransaksiModel
	err := r.Ledger.WithinTx(ctx, func(tx LedgerTx) error {
		t, err := tx.FindTransaksiByID(transaksiID)
		if err != nil {
			return err
		}
		if !t.IsPending() {
			return fmt.Errorf("%w: transaksi sudah %s", ErrInvalidState, t.TransaksiStatus)
		}
		if t.TransaksiSantriID == uuid.Nil {
			return fmt.Errorf("%w: transaksi tanpa santri", ErrInvalidState)
		}

		tagihan, err := tx.FindTagihanByID(t.TransaksiTagihanID)
		if err != nil {
			if err == ErrNotFound {
				// relasi putus = pelanggaran integritas data, bukan 404 biasa
				return fmt.Errorf("%w: transaksi tanpa tagihan", ErrInvalidState)
			}
			return err
		}

		now := time.Now()
		t.TransaksiStatus = model.TransaksiStatusApproved
		t.TransaksiPaidAt = &now
		if err := tx.SaveTransaksi(t); err != nil {
			return err
		}
		if err := tx.UpdateTagihanStatus(tagihan.TagihanID, tagihanModel.TagihanStatusPaid); err != nil {
			return err
		}

		jenisNama, err := tx.FindJenisTagihanNama(tagihan.TagihanJenisTagihanID)
		if err != nil {
			return err
		}

		nominal := helper.FormatRupiah(t.TransaksiNominalIDR)
		if err := tx.Notify(
			t.TransaksiSantriID,
			"Pembayaran diterima",
			fmt.Sprintf("Pembayaran %s untuk %s telah disetujui.", nominal, jenisNama),
			[]string{notifModel.NotificationTagPembayaranDiterima},
			&tagihan.TagihanID,
		); err != nil {
			return err
		}
		if err := tx.Notify(
			actor.UserID,
			"Pembayaran disetujui",
			fmt.Sprintf("Anda menyetujui pembayaran %s (%s).", nominal, jenisNama),
			[]string{notifModel.NotificationTagPembayaranDiterima},
			&tagihan.TagihanID,
		); err != nil {
			return err
		}

		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

/* ======================= REJECT ======================= */

// RejectPayment: transaksi pending → rejected (alasan disimpan),
// tagihan dibuka kembali jadi pending, notifikasi ke santri.
func (r *Reconciler) RejectPayment(ctx context.Context, actor Actor, transaksiID uuid.UUID, note string) (*model.TransaksiModel, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: hanya admin yang boleh reject pembayaran", ErrForbidden)
	}
	note = strings.TrimSpace(note)
	if note == "" {
		return nil, fmt.Errorf("%w: alasan penolakan wajib diisi", ErrValidation)
	}

	var out *model.TransaksiModel
	err := r.Ledger.WithinTx(ctx, func(tx LedgerTx) error {
		t, err := tx.FindTransaksiByID(transaksiID)
		if err != nil {
			return err
		}
		if !t.IsPending() {
			// approved tidak boleh dibalik lewat reject (koreksi = operasi terpisah)
			return fmt.Errorf("%w: transaksi sudah %s", ErrInvalidState, t.TransaksiStatus)
		}

		tagihan, err := tx.FindTagihanByID(t.TransaksiTagihanID)
		if err != nil {
			if err == ErrNotFound {
				return fmt.Errorf("%w: transaksi tanpa tagihan", ErrInvalidState)
			}
			return err
		}

		t.TransaksiStatus = model.TransaksiStatusRejected
		t.TransaksiNote = &note
		if err := tx.SaveTransaksi(t); err != nil {
			return err
		}
		if err := tx.UpdateTagihanStatus(tagihan.TagihanID, tagihanModel.TagihanStatusPending); err != nil {
			return err
		}

		jenisNama, err := tx.FindJenisTagihanNama(tagihan.TagihanJenisTagihanID)
		if err != nil {
			return err
		}

		if err := tx.Notify(
			t.TransaksiSantriID,
			"Pembayaran ditolak",
			fmt.Sprintf("Pembayaran %s untuk %s ditolak. Alasan: %s",
				helper.FormatRupiah(t.TransaksiNominalIDR), jenisNama, note),
			[]string{notifModel.NotificationTagPembayaranDitolak},
			&tagihan.TagihanID,
		); err != nil {
			return err
		}

		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

/* ======================= WEBHOOK ======================= */

// HandleGatewayNotification memproses satu delivery webhook Midtrans:
// verify signature → resolve tagihan dari order_id → upsert transaksi →
// proyeksikan status tagihan → fan-out notifikasi (hanya saat status
// benar-benar berubah, supaya delivery ulang idempoten).
func (r *Reconciler) HandleGatewayNotification(ctx context.Context, notif MidtransNotification) error {
	// 1) Signature dicek sebelum write apa pun
	if !VerifySignature(notif, r.MidtransServerKey) {
		log.Printf("[WEBHOOK] signature mismatch order_id=%s", notif.OrderID)
		return ErrSignatureInvalid
	}

	// 2) Tagihan id dari order_id
	tagihanID, err := ParseOrderID(notif.OrderID)
	if err != nil {
		log.Printf("[WEBHOOK] order_id tidak bisa di-resolve: %s", notif.OrderID)
		return fmt.Errorf("%w: order_id %s", ErrNotFound, notif.OrderID)
	}

	// 3) Mapping vocabulary gateway → internal
	newStatus, actionable := MapMidtransStatus(notif.TransactionStatus, notif.FraudStatus)

	return r.Ledger.WithinTx(ctx, func(tx LedgerTx) error {
		tagihan, err := tx.FindTagihanByID(tagihanID)
		if err != nil {
			return err
		}

		now := time.Now()

		// 4) Upsert transaksi keyed by tagihan
		t, err := tx.FindTransaksiByTagihanID(tagihan.TagihanID)
		if err != nil {
			return err
		}

		statusChanged := false
		if t == nil {
			// belum ada transaksi → first-webhook upsert
			orderID := notif.OrderID
			t = &model.TransaksiModel{
				TransaksiTagihanID:  tagihan.TagihanID,
				TransaksiSantriID:   tagihan.TagihanSantriID,
				TransaksiNominalIDR: notif.GrossAmountIDR(),
				TransaksiMetode:     model.TransaksiMetodeGateway,
				TransaksiStatus:     model.TransaksiStatusPending,
				TransaksiOrderID:    &orderID,
			}
			if actionable {
				t.TransaksiStatus = newStatus
				statusChanged = true
			}
			if newStatus == model.TransaksiStatusApproved && actionable {
				t.TransaksiPaidAt = &now
			}
			if notif.TransactionID != "" {
				ref := notif.TransactionID
				t.TransaksiGatewayRef = &ref
			}
			if err := tx.CreateTransaksi(t); err != nil {
				return err
			}
		} else if actionable {
			statusChanged = t.TransaksiStatus != newStatus
			t.TransaksiStatus = newStatus
			if newStatus == model.TransaksiStatusApproved {
				t.TransaksiPaidAt = &now
			}
			if notif.TransactionID != "" {
				ref := notif.TransactionID
				t.TransaksiGatewayRef = &ref
			}
			if err := tx.SaveTransaksi(t); err != nil {
				return err
			}
		}

		// 5) Proyeksi status tagihan
		if actionable {
			target := tagihanModel.TagihanStatusPending
			if newStatus == model.TransaksiStatusApproved {
				target = tagihanModel.TagihanStatusPaid
			}
			if tagihan.TagihanStatus != target {
				if err := tx.UpdateTagihanStatus(tagihan.TagihanID, target); err != nil {
					return err
				}
			}
		}

		// 6) Audit log delivery (duplikat collapse di unique index)
		if err := tx.LogGatewayEvent(buildGatewayEvent(t, notif, now)); err != nil {
			return err
		}

		// 7) Fan-out notifikasi hanya saat transisi nyata
		if !actionable || !statusChanged {
			return nil
		}

		nominal := helper.FormatRupiah(t.TransaksiNominalIDR)
		switch newStatus {
		case model.TransaksiStatusApproved:
			if err := tx.Notify(
				t.TransaksiSantriID,
				"Pembayaran berhasil",
				fmt.Sprintf("Pembayaran %s via Midtrans berhasil.", nominal),
				[]string{notifModel.NotificationTagPembayaranDiterima},
				&tagihan.TagihanID,
			); err != nil {
				return err
			}
			if _, err := tx.NotifyAdmins(
				"Pembayaran gateway masuk",
				fmt.Sprintf("Pembayaran %s via Midtrans diterima (order %s).", nominal, notif.OrderID),
				[]string{notifModel.NotificationTagPembayaranDiterima},
				&tagihan.TagihanID,
			); err != nil {
				return err
			}
		case model.TransaksiStatusRejected:
			if err := tx.Notify(
				t.TransaksiSantriID,
				"Pembayaran gagal",
				fmt.Sprintf("Pembayaran %s via Midtrans gagal (%s). Silakan ulangi.", nominal, notif.TransactionStatus),
				[]string{notifModel.NotificationTagPembayaranDitolak},
				&tagihan.TagihanID,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func buildGatewayEvent(t *model.TransaksiModel, notif MidtransNotification, now time.Time) *model.TransaksiGatewayEventModel {
	payloadJSON, _ := json.Marshal(notif)
	sig := notif.SignatureKey
	return &model.TransaksiGatewayEventModel{
		TransaksiGatewayEventTransaksiID:       &t.TransaksiID,
		TransaksiGatewayEventProvider:          "midtrans",
		TransaksiGatewayEventOrderID:           notif.OrderID,
		TransaksiGatewayEventTransactionStatus: notif.TransactionStatus,
		TransaksiGatewayEventSignature:         &sig,
		TransaksiGatewayEventPayload:           datatypes.JSON(payloadJSON),
		TransaksiGatewayEventStatus:            model.GatewayEventStatusProcessed,
		TransaksiGatewayEventProcessedAt:       &now,
	}
}
