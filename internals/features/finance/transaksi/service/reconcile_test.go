package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	tagihanModel "santriku_backend/internals/features/finance/tagihan/model"
	"santriku_backend/internals/features/finance/transaksi/model"
)

const testServerKey = "SB-Mid-server-testkey"

func seedPendingPayment(l *MockLedger) (*tagihanModel.TagihanModel, *model.TransaksiModel) {
	santriID := uuid.New()
	jenisID := uuid.New()
	l.SeedJenisNama(jenisID, "SPP Bulanan")

	tagihan := &tagihanModel.TagihanModel{
		TagihanID:             uuid.New(),
		TagihanSantriID:       santriID,
		TagihanJenisTagihanID: jenisID,
		TagihanNominalIDR:     150000,
		TagihanJatuhTempo:     time.Now().AddDate(0, 1, 0),
		TagihanStatus:         tagihanModel.TagihanStatusPending,
	}
	l.SeedTagihan(tagihan)

	transaksi := &model.TransaksiModel{
		TransaksiID:         uuid.New(),
		TransaksiTagihanID:  tagihan.TagihanID,
		TransaksiSantriID:   santriID,
		TransaksiNominalIDR: 150000,
		TransaksiMetode:     model.TransaksiMetodeTransfer,
		TransaksiStatus:     model.TransaksiStatusPending,
		TransaksiCreatedAt:  time.Now(),
	}
	l.SeedTransaksi(transaksi)
	return tagihan, transaksi
}

func adminActor() Actor  { return Actor{UserID: uuid.New(), Role: "admin"} }
func santriActor() Actor { return Actor{UserID: uuid.New(), Role: "santri"} }

// =============================================================================
// Test: ApprovePayment
// =============================================================================

func TestReconciler_ApprovePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Given pending transaksi When admin approves Then transaksi approved and tagihan paid", func(t *testing.T) {
		ledger := NewMockLedger()
		tagihan, transaksi := seedPendingPayment(ledger)
		r := NewReconciler(ledger, testServerKey)
		admin := adminActor()

		got, err := r.ApprovePayment(ctx, admin, transaksi.TransaksiID)
		if err != nil {
			t.Fatalf("ApprovePayment failed: %v", err)
		}
		if got.TransaksiStatus != model.TransaksiStatusApproved {
			t.Errorf("expected status approved, got %s", got.TransaksiStatus)
		}
		if got.TransaksiPaidAt == nil {
			t.Error("expected paid_at to be set")
		}
		if ledger.State.Tagihans[tagihan.TagihanID].TagihanStatus != tagihanModel.TagihanStatusPaid {
			t.Errorf("expected tagihan paid, got %s", ledger.State.Tagihans[tagihan.TagihanID].TagihanStatus)
		}

		// notifikasi: satu ke santri, satu ke admin yang approve
		if len(ledger.State.Notifications) != 2 {
			t.Fatalf("expected 2 notifications, got %d", len(ledger.State.Notifications))
		}
		if ledger.State.Notifications[0].UserID != transaksi.TransaksiSantriID {
			t.Error("first notification should target santri")
		}
		if ledger.State.Notifications[1].UserID != admin.UserID {
			t.Error("second notification should target approving admin")
		}
		if !strings.Contains(ledger.State.Notifications[0].Message, "SPP Bulanan") {
			t.Errorf("notification should mention jenis tagihan, got %q", ledger.State.Notifications[0].Message)
		}
		if !strings.Contains(ledger.State.Notifications[0].Message, "Rp 150.000") {
			t.Errorf("notification should mention formatted nominal, got %q", ledger.State.Notifications[0].Message)
		}
	})

	t.Run("Given non-admin actor When approve Then ErrForbidden and no writes", func(t *testing.T) {
		ledger := NewMockLedger()
		tagihan, transaksi := seedPendingPayment(ledger)
		r := NewReconciler(ledger, testServerKey)

		_, err := r.ApprovePayment(ctx, santriActor(), transaksi.TransaksiID)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
		if ledger.State.Transaksis[transaksi.TransaksiID].TransaksiStatus != model.TransaksiStatusPending {
			t.Error("transaksi must stay pending")
		}
		if ledger.State.Tagihans[tagihan.TagihanID].TagihanStatus != tagihanModel.TagihanStatusPending {
			t.Error("tagihan must stay pending")
		}
	})

	t.Run("Given already approved transaksi When approve again Then ErrInvalidState", func(t *testing.T) {
		ledger := NewMockLedger()
		_, transaksi := seedPendingPayment(ledger)
		transaksi.TransaksiStatus = model.TransaksiStatusApproved

		r := NewReconciler(ledger, testServerKey)
		_, err := r.ApprovePayment(ctx, adminActor(), transaksi.TransaksiID)
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("Given transaksi whose tagihan no longer exists When approve Then ErrInvalidState and no writes", func(t *testing.T) {
		ledger := NewMockLedger()
		tagihan, transaksi := seedPendingPayment(ledger)
		delete(ledger.State.Tagihans, tagihan.TagihanID)

		r := NewReconciler(ledger, testServerKey)
		_, err := r.ApprovePayment(ctx, adminActor(), transaksi.TransaksiID)
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
		if ledger.State.Transaksis[transaksi.TransaksiID].TransaksiStatus != model.TransaksiStatusPending {
			t.Error("transaksi must stay pending")
		}
		if len(ledger.State.Notifications) != 0 {
			t.Errorf("expected 0 notifications, got %d", len(ledger.State.Notifications))
		}
	})

	t.Run("Given transaksi without santri When approve Then ErrInvalidState", func(t *testing.T) {
		ledger := NewMockLedger()
		_, transaksi := seedPendingPayment(ledger)
		transaksi.TransaksiSantriID = uuid.Nil

		r := NewReconciler(ledger, testServerKey)
		_, err := r.ApprovePayment(ctx, adminActor(), transaksi.TransaksiID)
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("Given unknown transaksi id When approve Then ErrNotFound", func(t *testing.T) {
		ledger := NewMockLedger()
		r := NewReconciler(ledger, testServerKey)

		_, err := r.ApprovePayment(ctx, adminActor(), uuid.New())
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Given notification write fails When approve Then everything rolls back", func(t *testing.T) {
		ledger := NewMockLedger()
		tagihan, transaksi := seedPendingPayment(ledger)
		ledger.FailNotify = true

		r := NewReconciler(ledger, testServerKey)
		_, err := r.ApprovePayment(ctx, adminActor(), transaksi.TransaksiID)
		if err == nil {
			t.Fatal("expected error from failing notification")
		}

		// unit atomik: status transaksi dan tagihan tidak boleh berubah
		if ledger.State.Transaksis[transaksi.TransaksiID].TransaksiStatus != model.TransaksiStatusPending {
			t.Error("transaksi must roll back to pending")
		}
		if ledger.State.Tagihans[tagihan.TagihanID].TagihanStatus != tagihanModel.TagihanStatusPending {
			t.Error("tagihan must roll back to pending")
		}
		if len(ledger.State.Notifications) != 0 {
			t.Errorf("expected 0 notifications after rollback, got %d", len(ledger.State.Notifications))
		}
	})
}

// =============================================================================
// Test: RejectPayment
// =============================================================================

func TestReconciler_RejectPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Given pending transaksi When admin rejects with note Then transaksi rejected and tagihan pending", func(t *testing.T) {
		ledger := NewMockLedger()
		tagihan, transaksi := seedPendingPayment(ledger)
		r := NewReconciler(ledger, testServerKey)

		got, err := r.RejectPayment(ctx, adminActor(), transaksi.TransaksiID, "Bukti transfer tidak terbaca")
		if err != nil {
			t.Fatalf("RejectPayment failed: %v", err)
		}
		if got.TransaksiStatus != model.TransaksiStatusRejected {
			t.Errorf("expected status rejected, got %s", got.TransaksiStatus)
		}
		if got.TransaksiNote == nil || *got.TransaksiNote != "Bukti transfer tidak terbaca" {
			t.Error("rejection note must be stored on the transaksi")
		}
		if ledger.State.Tagihans[tagihan.TagihanID].TagihanStatus != tagihanModel.TagihanStatusPending {
			t.Error("tagihan must reopen as pending")
		}

		if len(ledger.State.Notifications) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(ledger.State.Notifications))
		}
		notif := ledger.State.Notifications[0]
		if notif.UserID != transaksi.TransaksiSantriID {
			t.Error("rejection notification should target santri")
		}
		if !strings.Contains(notif.Message, "Bukti transfer tidak terbaca") {
			t.Errorf("notification should carry the rejection reason, got %q", notif.Message)
		}
	})

	t.Run("Given empty note When reject Then ErrValidation before any write", func(t *testing.T) {
		ledger := NewMockLedger()
		_, transaksi := seedPendingPayment(ledger)
		r := NewReconciler(ledger, testServerKey)

		for _, note := range []string{"", "   ", "\t\n"} {
			_, err := r.RejectPayment(ctx, adminActor(), transaksi.TransaksiID, note)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("note %q: expected ErrValidation, got %v", note, err)
			}
		}
		if ledger.State.Transaksis[transaksi.TransaksiID].TransaksiStatus != model.TransaksiStatusPending {
			t.Error("transaksi must stay pending")
		}
		if len(ledger.State.Notifications) != 0 {
			t.Error("no notification may be written")
		}
	})

	t.Run("Given approved transaksi When reject Then ErrInvalidState", func(t *testing.T) {
		ledger := NewMockLedger()
		_, transaksi := seedPendingPayment(ledger)
		transaksi.TransaksiStatus = model.TransaksiStatusApproved

		r := NewReconciler(ledger, testServerKey)
		_, err := r.RejectPayment(ctx, adminActor(), transaksi.TransaksiID, "terlambat")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("Given transaksi whose tagihan no longer exists When reject Then ErrInvalidState and no writes", func(t *testing.T) {
		ledger := NewMockLedger()
		tagihan, transaksi := seedPendingPayment(ledger)
		delete(ledger.State.Tagihans, tagihan.TagihanID)

		r := NewReconciler(ledger, testServerKey)
		_, err := r.RejectPayment(ctx, adminActor(), transaksi.TransaksiID, "data tidak konsisten")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
		if ledger.State.Transaksis[transaksi.TransaksiID].TransaksiStatus != model.TransaksiStatusPending {
			t.Error("transaksi must stay pending")
		}
		if len(ledger.State.Notifications) != 0 {
			t.Errorf("expected 0 notifications, got %d", len(ledger.State.Notifications))
		}
	})

	t.Run("Given non-admin actor When reject Then ErrForbidden", func(t *testing.T) {
		ledger := NewMockLedger()
		_, transaksi := seedPendingPayment(ledger)
		r := NewReconciler(ledger, testServerKey)

		_, err := r.RejectPayment(ctx, santriActor(), transaksi.TransaksiID, "alasan")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

// =============================================================================
// Test: HandleGatewayNotification
// =============================================================================

func signedNotification(tagihanID uuid.UUID, transactionStatus, grossAmount string) MidtransNotification {
	n := MidtransNotification{
		TransactionStatus: transactionStatus,
		StatusCode:        "200",
		OrderID:           BuildOrderID(tagihanID, time.Unix(1735689600, 0)),
		GrossAmount:       grossAmount,
		PaymentType:       "bank_transfer",
		TransactionID:     "mt-" + uuid.NewString(),
	}
	n.SignatureKey = sha512sum(n.OrderID + n.StatusCode + n.GrossAmount + testServerKey)
	return n
}

func TestReconciler_HandleGatewayNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("Given settlement webhook When processed Then transaksi created approved and tagihan paid", func(t *testing.T) {
		ledger := NewMockLedger()
		tagihan, _ := seedPendingPayment(ledger)
		// mulai tanpa transaksi gateway
		ledger.State.Transaksis = map[uuid.UUID]*model.TransaksiModel{}

		r := NewReconciler(ledger, testServerKey)
		notif := signedNotification(tagihan.TagihanID, "settlement", "150000.00")

		if err := r.HandleGatewayNotification(ctx, notif); err != nil {
			t.Fatalf("HandleGatewayNotification failed: %v", err)
		}

		if len(ledger.State.Transaksis) != 1 {
			t.Fatalf("expected 1 transaksi, got %d", len(ledger.State.Transaksis))
		}
		var created *model.TransaksiModel
		for _, tr := range ledger.State.Transaksis {
			created = tr
		}
		if created.TransaksiStatus != model.TransaksiStatusApproved {
			t.Errorf("expected approved, got %s", created.TransaksiStatus)
		}
		if created.TransaksiMetode != model.TransaksiMetodeGateway {
			t.Errorf("expected metode gateway, got %s", created.TransaksiMetode)
		}
		if created.TransaksiNominalIDR != 150000 {
			t.Errorf("expected nominal 150000, got %d", created.TransaksiNominalIDR)
		}
		if ledger.State.Tagihans[tagihan.TagihanID].TagihanStatus != tagihanModel.TagihanStatusPaid {
			t.Error("tagihan must become paid")
		}

		// fan-out: santri + admin
		if len(ledger.State.Notifications) != 1 {
			t.Errorf("expected 1 santri notification, got %d", len(ledger.State.Notifications))
		}
		if ledger.State.AdminFanouts != 1 {
			t.Errorf("expected 1 admin fan-out, got %d", ledger.State.AdminFanouts)
		}
		if len(ledger.State.Events) != 1 {
			t.Errorf("expected 1 gateway event logged, got %d", len(ledger.State.Events))
		}
	})

	t.Run("Given duplicate settlement delivery When reprocessed Then no extra notifications", func(t *testing.T) {
		ledger := NewMockLedger()
		tagihan, _ := seedPendingPayment(ledger)
		ledger.State.Transaksis = map[uuid.UUID]*model.TransaksiModel{}

		r := NewReconciler(ledger, testServerKey)
		notif := signedNotification(tagihan.TagihanID, "settlement", "150000.00")

		if err := r.HandleGatewayNotification(ctx, notif); err != nil {
			t.Fatalf("first delivery failed: %v", err)
		}
		if err := r.HandleGatewayNotification(ctx, notif); err != nil {
			t.Fatalf("second delivery failed: %v", err)
		}

		// idempoten: delivery ulang tidak menambah notifikasi atau event
		if len(ledger.State.Notifications) != 1 {
			t.Errorf("expected 1 notification after duplicate delivery, got %d", len(ledger.State.Notifications))
		}
		if ledger.State.AdminFanouts != 1 {
			t.Errorf("expected 1 admin fan-out after duplicate delivery, got %d", ledger.State.AdminFanouts)
		}
		if len(ledger.State.Events) != 1 {
			t.Errorf("expected duplicate events to collapse, got %d", len(ledger.State.Events))
		}
		if len(ledger.State.Transaksis) != 1 {
			t.Errorf("expected 1 transaksi, got %d", len(ledger.State.Transaksis))
		}
	})

	t.Run("Given invalid signature When processed Then ErrSignatureInvalid and zero writes", func(t *testing.T) {
		ledger := NewMockLedger()
		tagihan, _ := seedPendingPayment(ledger)
		ledger.State.Transaksis = map[uuid.UUID]*model.TransaksiModel{}

		r := NewReconciler(ledger, testServerKey)
		notif := signedNotification(tagihan.TagihanID, "settlement", "150000.00")
		notif.SignatureKey = "deadbeef"

		err := r.HandleGatewayNotification(ctx, notif)
		if !errors.Is(err, ErrSignatureInvalid) {
			t.Fatalf("expected ErrSignatureInvalid, got %v", err)
		}
		if len(ledger.State.Transaksis) != 0 {
			t.Error("no transaksi may be written")
		}
		if len(ledger.State.Events) != 0 {
			t.Error("no gateway event may be written")
		}
		if ledger.State.Tagihans[tagihan.TagihanID].TagihanStatus != tagihanModel.TagihanStatusPending {
			t.Error("tagihan must stay pending")
		}
	})

	t.Run("Given unresolvable order id When processed Then ErrNotFound", func(t *testing.T) {
		ledger := NewMockLedger()
		r := NewReconciler(ledger, testServerKey)

		notif := MidtransNotification{
			TransactionStatus: "settlement",
			StatusCode:        "200",
			OrderID:           "INV-xyz-123",
			GrossAmount:       "150000.00",
		}
		notif.SignatureKey = sha512sum(notif.OrderID + notif.StatusCode + notif.GrossAmount + testServerKey)

		err := r.HandleGatewayNotification(ctx, notif)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Given expire webhook When processed Then transaksi rejected and santri notified only", func(t *testing.T) {
		ledger := NewMockLedger()
		tagihan, transaksi := seedPendingPayment(ledger)
		transaksi.TransaksiMetode = model.TransaksiMetodeGateway
		orderID := BuildOrderID(tagihan.TagihanID, time.Unix(1735689600, 0))
		transaksi.TransaksiOrderID = &orderID

		r := NewReconciler(ledger, testServerKey)
		notif := signedNotification(tagihan.TagihanID, "expire", "150000.00")

		if err := r.HandleGatewayNotification(ctx, notif); err != nil {
			t.Fatalf("HandleGatewayNotification failed: %v", err)
		}

		if ledger.State.Transaksis[transaksi.TransaksiID].TransaksiStatus != model.TransaksiStatusRejected {
			t.Error("transaksi must become rejected")
		}
		if ledger.State.Tagihans[tagihan.TagihanID].TagihanStatus != tagihanModel.TagihanStatusPending {
			t.Error("tagihan must stay pending")
		}
		if len(ledger.State.Notifications) != 1 {
			t.Errorf("expected 1 notification, got %d", len(ledger.State.Notifications))
		}
		if ledger.State.AdminFanouts != 0 {
			t.Errorf("expected no admin fan-out on failure, got %d", ledger.State.AdminFanouts)
		}
	})

	t.Run("Given pending webhook When processed Then no state change and no notification", func(t *testing.T) {
		ledger := NewMockLedger()
		tagihan, transaksi := seedPendingPayment(ledger)
		transaksi.TransaksiMetode = model.TransaksiMetodeGateway

		r := NewReconciler(ledger, testServerKey)
		notif := signedNotification(tagihan.TagihanID, "pending", "150000.00")

		if err := r.HandleGatewayNotification(ctx, notif); err != nil {
			t.Fatalf("HandleGatewayNotification failed: %v", err)
		}
		if ledger.State.Transaksis[transaksi.TransaksiID].TransaksiStatus != model.TransaksiStatusPending {
			t.Error("transaksi must stay pending")
		}
		if len(ledger.State.Notifications) != 0 {
			t.Errorf("expected no notification on no-op delivery, got %d", len(ledger.State.Notifications))
		}
		// delivery tetap tercatat di audit log
		if len(ledger.State.Events) != 1 {
			t.Errorf("expected 1 gateway event, got %d", len(ledger.State.Events))
		}
	})

	t.Run("Given capture with fraud challenge When processed Then left untouched", func(t *testing.T) {
		ledger := NewMockLedger()
		tagihan, transaksi := seedPendingPayment(ledger)
		transaksi.TransaksiMetode = model.TransaksiMetodeGateway

		r := NewReconciler(ledger, testServerKey)
		notif := signedNotification(tagihan.TagihanID, "capture", "150000.00")
		notif.FraudStatus = "challenge"
		notif.SignatureKey = sha512sum(notif.OrderID + notif.StatusCode + notif.GrossAmount + testServerKey)

		if err := r.HandleGatewayNotification(ctx, notif); err != nil {
			t.Fatalf("HandleGatewayNotification failed: %v", err)
		}
		if ledger.State.Transaksis[transaksi.TransaksiID].TransaksiStatus != model.TransaksiStatusPending {
			t.Error("challenged capture must not change transaksi")
		}
		if len(ledger.State.Notifications) != 0 {
			t.Error("challenged capture must not notify anyone")
		}
	})

	t.Run("Given notification write fails When settlement processed Then whole delivery rolls back", func(t *testing.T) {
		ledger := NewMockLedger()
		tagihan, _ := seedPendingPayment(ledger)
		ledger.State.Transaksis = map[uuid.UUID]*model.TransaksiModel{}
		ledger.FailNotify = true

		r := NewReconciler(ledger, testServerKey)
		notif := signedNotification(tagihan.TagihanID, "settlement", "150000.00")

		if err := r.HandleGatewayNotification(ctx, notif); err == nil {
			t.Fatal("expected error from failing notification")
		}
		if len(ledger.State.Transaksis) != 0 {
			t.Error("transaksi write must roll back")
		}
		if len(ledger.State.Events) != 0 {
			t.Error("gateway event must roll back")
		}
		if ledger.State.Tagihans[tagihan.TagihanID].TagihanStatus != tagihanModel.TagihanStatusPending {
			t.Error("tagihan must stay pending")
		}
	})
}
