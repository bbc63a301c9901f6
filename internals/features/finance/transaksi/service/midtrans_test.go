package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"santriku_backend/internals/features/finance/transaksi/model"
)

func TestBuildParseOrderID(t *testing.T) {
	t.Run("Given generated order id When parsed Then original tagihan id returned", func(t *testing.T) {
		tagihanID := uuid.New()
		orderID := BuildOrderID(tagihanID, time.Unix(1735689600, 0))

		got, err := ParseOrderID(orderID)
		if err != nil {
			t.Fatalf("ParseOrderID failed: %v", err)
		}
		if got != tagihanID {
			t.Errorf("expected %s, got %s", tagihanID, got)
		}
	})

	t.Run("Given foreign order id When parsed Then error", func(t *testing.T) {
		for _, orderID := range []string{
			"",
			"INV-123",
			"TGHN-",
			"TGHN-not-a-uuid-1735689600",
			"TGHN-1735689600",
		} {
			if _, err := ParseOrderID(orderID); err == nil {
				t.Errorf("order id %q: expected error", orderID)
			}
		}
	})
}

func TestVerifySignature(t *testing.T) {
	serverKey := "SB-Mid-server-testkey"
	n := MidtransNotification{
		OrderID:     "TGHN-abc-1",
		StatusCode:  "200",
		GrossAmount: "50000.00",
	}
	n.SignatureKey = sha512sum(n.OrderID + n.StatusCode + n.GrossAmount + serverKey)

	t.Run("Given correct signature Then valid", func(t *testing.T) {
		if !VerifySignature(n, serverKey) {
			t.Error("expected signature to verify")
		}
	})

	t.Run("Given uppercase hex signature Then still valid", func(t *testing.T) {
		upper := n
		upper.SignatureKey = "  " + upperHex(n.SignatureKey) + " "
		// perbandingan dilakukan lowercase + trimmed
		if !VerifySignature(upper, serverKey) {
			t.Error("expected case-insensitive signature to verify")
		}
	})

	t.Run("Given tampered gross_amount Then invalid", func(t *testing.T) {
		tampered := n
		tampered.GrossAmount = "1.00"
		if VerifySignature(tampered, serverKey) {
			t.Error("expected tampered payload to fail verification")
		}
	})

	t.Run("Given wrong server key Then invalid", func(t *testing.T) {
		if VerifySignature(n, "other-key") {
			t.Error("expected wrong key to fail verification")
		}
	})

	t.Run("Given empty signature Then invalid", func(t *testing.T) {
		empty := n
		empty.SignatureKey = ""
		if VerifySignature(empty, serverKey) {
			t.Error("expected empty signature to fail verification")
		}
	})
}

func upperHex(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c >= 'a' && c <= 'f' {
			out[i] = c - 'a' + 'A'
		}
	}
	return string(out)
}

func TestMapMidtransStatus(t *testing.T) {
	cases := []struct {
		ts, fraud  string
		want       model.TransaksiStatus
		actionable bool
	}{
		{"settlement", "", model.TransaksiStatusApproved, true},
		{"capture", "", model.TransaksiStatusApproved, true},
		{"capture", "accept", model.TransaksiStatusApproved, true},
		{"capture", "challenge", model.TransaksiStatusPending, false},
		{"capture", "deny", model.TransaksiStatusRejected, true},
		{"deny", "", model.TransaksiStatusRejected, true},
		{"expire", "", model.TransaksiStatusRejected, true},
		{"cancel", "", model.TransaksiStatusRejected, true},
		{"pending", "", model.TransaksiStatusPending, false},
		{"refund", "", model.TransaksiStatusPending, false},
		{"", "", model.TransaksiStatusPending, false},
	}

	for _, c := range cases {
		got, actionable := MapMidtransStatus(c.ts, c.fraud)
		if got != c.want || actionable != c.actionable {
			t.Errorf("MapMidtransStatus(%q, %q) = (%s, %v), want (%s, %v)",
				c.ts, c.fraud, got, actionable, c.want, c.actionable)
		}
	}
}

func TestGrossAmountIDR(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"50000.00", 50000},
		{"150000.00", 150000},
		{"99.99", 100},
		{"0.00", 0},
		{"bukan-angka", 0},
	}
	for _, c := range cases {
		n := MidtransNotification{GrossAmount: c.in}
		if got := n.GrossAmountIDR(); got != c.want {
			t.Errorf("GrossAmountIDR(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
