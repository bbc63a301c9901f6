// file: internals/features/finance/transaksi/controller/midtrans_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tagihanModel "santriku_backend/internals/features/finance/tagihan/model"
	dto "santriku_backend/internals/features/finance/transaksi/dto"
	model "santriku_backend/internals/features/finance/transaksi/model"
	svc "santriku_backend/internals/features/finance/transaksi/service"
	helper "santriku_backend/internals/helpers"
)

/* ======================= CHECKOUT MIDTRANS (santri) ======================= */
// POST /api/u/pembayaran/midtrans
func (h *TransaksiController) CheckoutMidtrans(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CheckoutMidtransRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var tagihan tagihanModel.TagihanModel
	if err := h.DB.WithContext(c.Context()).
		First(&tagihan, "tagihan_id = ?", req.TagihanID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if tagihan.TagihanSantriID != userID {
		return fiber.NewError(fiber.StatusForbidden, "Tagihan ini bukan milik Anda")
	}
	if tagihan.IsPaid() {
		return fiber.NewError(fiber.StatusBadRequest, "Tagihan sudah lunas")
	}

	orderID := svc.BuildOrderID(tagihan.TagihanID, time.Now())

	var jenisNama string
	h.DB.WithContext(c.Context()).
		Table("jenis_tagihans").
		Select("jenis_tagihan_nama").
		Where("jenis_tagihan_id = ?", tagihan.TagihanJenisTagihanID).
		Scan(&jenisNama)
	if jenisNama == "" {
		jenisNama = "Tagihan Santri"
	}

	snapToken, redirectURL, err := svc.GenerateSnapToken(
		orderID, tagihan.TagihanNominalIDR, h.santriInfo(c, userID), jenisNama)
	if err != nil {
		log.Printf("[ERROR] Gagal membuat snap token midtrans: %v", err)
		return fiber.NewError(fiber.StatusBadGateway, "Gagal menghubungi payment gateway")
	}

	// Transaksi gateway dicatat pending, status final menunggu webhook
	m := &model.TransaksiModel{
		TransaksiTagihanID:  tagihan.TagihanID,
		TransaksiSantriID:   userID,
		TransaksiNominalIDR: tagihan.TagihanNominalIDR,
		TransaksiMetode:     model.TransaksiMetodeGateway,
		TransaksiStatus:     model.TransaksiStatusPending,
		TransaksiOrderID:    &orderID,
	}
	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan transaksi gateway: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat transaksi")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Checkout berhasil dibuat",
		dto.CheckoutMidtransResponse{
			TransaksiID: m.TransaksiID,
			OrderID:     orderID,
			SnapToken:   snapToken,
			RedirectURL: redirectURL,
		})
}

/* ======================= WEBHOOK MIDTRANS (public) ======================= */
// POST /api/pembayaran/midtrans-callback
// Endpoint ini tidak memakai auth, keamanan via signature_key sha512.
func (h *TransaksiController) MidtransCallback(c *fiber.Ctx) error {
	var notif svc.MidtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Payload tidak valid",
		})
	}

	if err := h.Reconciler.HandleGatewayNotification(c.Context(), notif); err != nil {
		switch {
		case errors.Is(err, svc.ErrSignatureInvalid):
			log.Printf("[WARN] Webhook midtrans ditolak, signature tidak valid (order_id=%s)", notif.OrderID)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Signature tidak valid",
			})
		case errors.Is(err, svc.ErrNotFound):
			log.Printf("[WARN] Webhook midtrans untuk order_id tak dikenal: %s", notif.OrderID)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order tidak ditemukan",
			})
		default:
			// 5xx supaya midtrans retry
			log.Printf("[ERROR] Webhook midtrans gagal diproses (order_id=%s): %v", notif.OrderID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Gagal memproses notifikasi",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Notifikasi diproses",
	})
}
