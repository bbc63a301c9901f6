// file: internals/features/finance/transaksi/controller/transaksi_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	tagihanModel "santriku_backend/internals/features/finance/tagihan/model"
	dto "santriku_backend/internals/features/finance/transaksi/dto"
	model "santriku_backend/internals/features/finance/transaksi/model"
	svc "santriku_backend/internals/features/finance/transaksi/service"
	userModel "santriku_backend/internals/features/users/user/model"
	helper "santriku_backend/internals/helpers"
)

/* =======================================================================
   Controller
======================================================================= */

type TransaksiController struct {
	DB                *gorm.DB
	Validator         *validator.Validate
	Reconciler        *svc.Reconciler
	MidtransServerKey string
}

func NewTransaksiController(db *gorm.DB, midtransServerKey string, useProd bool) *TransaksiController {
	// init midtrans snap client (sekali saja saat bootstrap)
	svc.InitMidtrans(midtransServerKey, useProd)
	return &TransaksiController{
		DB:                db,
		Validator:         validator.New(),
		Reconciler:        svc.NewReconciler(svc.NewGormLedger(db), midtransServerKey),
		MidtransServerKey: midtransServerKey,
	}
}

// actorFromToken membentuk kapabilitas eksplisit untuk reconciliation core.
func actorFromToken(c *fiber.Ctx) (svc.Actor, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return svc.Actor{}, err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return svc.Actor{}, err
	}
	return svc.Actor{UserID: userID, Role: role}, nil
}

// reconcileError memetakan taksonomi error core ke HTTP status.
func reconcileError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, svc.ErrNotFound):
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, svc.ErrValidation):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, svc.ErrInvalidState):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, svc.ErrForbidden):
		return helper.Error(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, svc.ErrSignatureInvalid):
		return helper.Error(c, fiber.StatusForbidden, "Signature tidak valid")
	default:
		log.Printf("[ERROR] reconcile: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
	}
}

/* ======================= MANUAL PAYMENT (santri) ======================= */
// POST /api/u/pembayaran
func (h *TransaksiController) CreateManual(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateManualTransaksiRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var tagihan tagihanModel.TagihanModel
	if err := h.DB.WithContext(c.Context()).
		First(&tagihan, "tagihan_id = ?", req.TransaksiTagihanID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Santri hanya boleh membayar tagihan miliknya
	if tagihan.TagihanSantriID != userID {
		return fiber.NewError(fiber.StatusForbidden, "Tagihan ini bukan milik Anda")
	}
	if !tagihan.IsOpen() {
		return fiber.NewError(fiber.StatusBadRequest, "Tagihan sudah lunas")
	}

	// Satu pembayaran pending per tagihan
	var openCount int64
	if err := h.DB.WithContext(c.Context()).
		Model(&model.TransaksiModel{}).
		Where("transaksi_tagihan_id = ? AND transaksi_status = ?", tagihan.TagihanID, model.TransaksiStatusPending).
		Count(&openCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if openCount > 0 {
		return fiber.NewError(fiber.StatusConflict, "Masih ada pembayaran pending untuk tagihan ini")
	}

	now := time.Now()
	m := &model.TransaksiModel{
		TransaksiTagihanID:  tagihan.TagihanID,
		TransaksiSantriID:   userID,
		TransaksiNominalIDR: tagihan.TagihanNominalIDR, // nominal disalin dari tagihan
		TransaksiMetode:     model.TransaksiMetode(req.TransaksiMetode),
		TransaksiStatus:     model.TransaksiStatusPending,
		TransaksiNote:       req.TransaksiNote,
		TransaksiPaidAt:     &now,
	}
	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat transaksi manual: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat pembayaran")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Pembayaran dicatat, menunggu verifikasi admin",
		dto.FromModelWithTagihan(m, &tagihan))
}

/* ======================= LIST (admin) ======================= */
// GET /api/a/pembayaran?status=&metode=&santri_id=
func (h *TransaksiController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.Context()).Model(&model.TransaksiModel{})
	if v := c.Query("status"); v != "" {
		q = q.Where("transaksi_status = ?", v)
	}
	if v := c.Query("metode"); v != "" {
		q = q.Where("transaksi_metode = ?", v)
	}
	if v := c.Query("santri_id"); v != "" {
		q = q.Where("transaksi_santri_id = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.TransaksiModel
	if err := q.Order("transaksi_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithPagination(c, "OK", dto.FromModelList(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= LIST MINE (santri) ======================= */
// GET /api/u/pembayaran
func (h *TransaksiController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.TransaksiModel
	if err := h.DB.WithContext(c.Context()).
		Where("transaksi_santri_id = ?", userID).
		Order("transaksi_created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModelList(rows))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/pembayaran/:id
func (h *TransaksiController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.TransaksiModel
	if err := h.DB.WithContext(c.Context()).
		First(&m, "transaksi_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Transaksi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// tagihan di-nest hanya kalau lookup-nya berhasil
	var tagihan tagihanModel.TagihanModel
	var nested *tagihanModel.TagihanModel
	if err := h.DB.WithContext(c.Context()).
		First(&tagihan, "tagihan_id = ?", m.TransaksiTagihanID).Error; err == nil {
		nested = &tagihan
	}

	return helper.Success(c, "OK", dto.FromModelWithTagihan(&m, nested))
}

/* ======================= APPROVE / REJECT (admin) ======================= */

// POST /api/a/pembayaran/:id/approve
func (h *TransaksiController) Approve(c *fiber.Ctx) error {
	actor, err := actorFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	t, err := h.Reconciler.ApprovePayment(c.Context(), actor, id)
	if err != nil {
		return reconcileError(c, err)
	}
	return helper.Success(c, "Pembayaran disetujui", dto.FromModel(t))
}

// POST /api/a/pembayaran/:id/reject
func (h *TransaksiController) Reject(c *fiber.Ctx) error {
	actor, err := actorFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.RejectTransaksiRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	// validasi note kosong diserahkan ke core supaya konsisten (fail fast, no writes)

	t, err := h.Reconciler.RejectPayment(c.Context(), actor, id, req.Note)
	if err != nil {
		return reconcileError(c, err)
	}
	return helper.Success(c, "Pembayaran ditolak", dto.FromModel(t))
}

/* ======================= helpers ======================= */

// santriInfo ambil nama+email untuk CustomerDetail midtrans (best-effort).
func (h *TransaksiController) santriInfo(c *fiber.Ctx, userID uuid.UUID) svc.CustomerInput {
	var u userModel.UserModel
	if err := h.DB.WithContext(c.Context()).
		Select("user_name", "user_email").
		First(&u, "user_id = ?", userID).Error; err != nil {
		// fallback: nama dari klaim token, email kosong
		return svc.CustomerInput{Name: helper.GetUserNameFromToken(c)}
	}
	return svc.CustomerInput{Name: u.UserName, Email: u.UserEmail}
}
