package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"santriku_backend/internals/features/finance/transaksi/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

/* =========================================================
   Order ID: "TGHN-<tagihan_id>-<unix>"
========================================================= */

const orderIDPrefix = "TGHN-"

func BuildOrderID(tagihanID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("%s%s-%d", orderIDPrefix, tagihanID, now.Unix())
}

// ParseOrderID membaca tagihan_id dari order_id gateway.
// Segmen timestamp di belakang dibuang; UUID sendiri mengandung '-' jadi
// pemotongan dilakukan dari kanan.
func ParseOrderID(orderID string) (uuid.UUID, error) {
	if !strings.HasPrefix(orderID, orderIDPrefix) {
		return uuid.Nil, errors.New("order_id tanpa prefix TGHN")
	}
	rest := strings.TrimPrefix(orderID, orderIDPrefix)

	idx := strings.LastIndex(rest, "-")
	if idx <= 0 {
		return uuid.Nil, errors.New("order_id tidak memuat timestamp")
	}
	return uuid.Parse(rest[:idx])
}

/* =========================================================
   Webhook payload + signature
========================================================= */

// Payload notifikasi Midtrans (field lain di luar ini aman diabaikan).
type MidtransNotification struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"` // capture, settlement, pending, deny, cancel, expire, ...
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"` // string dari Midtrans, mis. "50000.00"
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"` // accept / challenge / deny
	TransactionID     string `json:"transaction_id"`
	SettlementTime    string `json:"settlement_time"`
}

// VerifySignature — SHA512(order_id + status_code + gross_amount + ServerKey),
// dibandingkan sebagai lowercase hex.
func VerifySignature(n MidtransNotification, serverKey string) bool {
	want := strings.ToLower(strings.TrimSpace(n.SignatureKey))
	if want == "" {
		return false
	}
	raw := n.OrderID + n.StatusCode + n.GrossAmount + serverKey
	return sha512sum(raw) == want
}

func sha512sum(s string) string {
	h := sha512.Sum512([]byte(s))
	return hex.EncodeToString(h[:])
}

// GrossAmountIDR menormalkan "50000.00" → 50000 (integer IDR).
func (n MidtransNotification) GrossAmountIDR() int64 {
	amt, err := strconv.ParseFloat(n.GrossAmount, 64)
	if err != nil {
		return 0
	}
	return int64(amt + 0.5)
}

/* =========================================================
   Status mapping midtrans → internal
========================================================= */

// MapMidtransStatus memetakan vocabulary transaction_status gateway ke status
// internal. ok=false berarti delivery no-op (tidak mengubah apa pun).
func MapMidtransStatus(transactionStatus, fraudStatus string) (model.TransaksiStatus, bool) {
	ts := strings.ToLower(transactionStatus)
	fraud := strings.ToLower(fraudStatus)

	switch ts {
	case "settlement":
		return model.TransaksiStatusApproved, true
	case "capture":
		// kartu kredit: capture sah hanya kalau fraud accept (atau kosong)
		if fraud == "" || fraud == "accept" {
			return model.TransaksiStatusApproved, true
		}
		if fraud == "challenge" {
			return model.TransaksiStatusPending, false
		}
		return model.TransaksiStatusRejected, true
	case "deny", "expire", "cancel":
		return model.TransaksiStatusRejected, true
	default:
		// pending, refund, dll → biarkan state sekarang
		return model.TransaksiStatusPending, false
	}
}

/* =========================================================
   Generate Snap Token (checkout-initiation)
========================================================= */

type CustomerInput struct {
	Name  string
	Email string
}

func GenerateSnapToken(orderID string, amountIDR int64, cust CustomerInput, itemName string) (string, string, error) {
	if amountIDR <= 0 {
		return "", "", errors.New("invalid amount_idr")
	}
	if orderID == "" {
		return "", "", errors.New("order_id is required")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amountIDR,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Email: cust.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       orderID,
				Price:    amountIDR,
				Qty:      1,
				Name:     truncate(itemName, 50),
				Category: "Tagihan",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
