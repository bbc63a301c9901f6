package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "santriku_backend/internals/features/finance/tagihan/dto"
	model "santriku_backend/internals/features/finance/tagihan/model"
	akademikModel "santriku_backend/internals/features/lembaga/akademik/model"
	userModel "santriku_backend/internals/features/users/user/model"
	helper "santriku_backend/internals/helpers"
)

type TagihanController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTagihanController(db *gorm.DB) *TagihanController {
	return &TagihanController{DB: db, Validator: validator.New()}
}

/* ======================= CREATE (satu santri) ======================= */
// POST /api/a/tagihan
func (h *TagihanController) Create(c *fiber.Ctx) error {
	var req dto.CreateTagihanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Santri harus ada dan ber-role santri
	var santri userModel.UserModel
	if err := h.DB.WithContext(c.Context()).
		First(&santri, "user_id = ? AND user_role = 'santri'", req.TagihanSantriID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	m := req.ToModel()

	// Nominal 0 → ambil default dari jenis tagihan
	if m.TagihanNominalIDR == 0 {
		var jenis akademikModel.JenisTagihanModel
		if err := h.DB.WithContext(c.Context()).
			First(&jenis, "jenis_tagihan_id = ?", req.TagihanJenisTagihanID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Jenis tagihan tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		m.TagihanNominalIDR = jenis.JenisTagihanNominalDefault
	}

	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat tagihan: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat tagihan")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tagihan berhasil dibuat", dto.FromModel(m))
}

/* ======================= CREATE MASSAL (per kelas) ======================= */
// POST /api/a/tagihan/massal
func (h *TagihanController) CreateMassal(c *fiber.Ctx) error {
	var req dto.CreateTagihanMassalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	nominal := req.TagihanNominalIDR
	if nominal == 0 {
		var jenis akademikModel.JenisTagihanModel
		if err := h.DB.WithContext(c.Context()).
			First(&jenis, "jenis_tagihan_id = ?", req.TagihanJenisTagihanID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Jenis tagihan tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		nominal = jenis.JenisTagihanNominalDefault
	}

	var created int64
	err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var santriIDs []uuid.UUID
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_role = 'santri' AND user_kelas_id = ?", req.TagihanKelasID).
			Pluck("user_id", &santriIDs).Error; err != nil {
			return err
		}
		if len(santriIDs) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Tidak ada santri pada kelas tersebut")
		}

		rows := make([]model.TagihanModel, 0, len(santriIDs))
		for _, sid := range santriIDs {
			rows = append(rows, model.TagihanModel{
				TagihanSantriID:       sid,
				TagihanJenisTagihanID: req.TagihanJenisTagihanID,
				TagihanTahunAjaranID:  req.TagihanTahunAjaranID,
				TagihanNominalIDR:     nominal,
				TagihanJatuhTempo:     *req.TagihanJatuhTempo,
				TagihanStatus:         model.TagihanStatusPending,
				TagihanNote:           req.TagihanNote,
			})
		}
		if err := tx.CreateInBatches(&rows, 500).Error; err != nil {
			return err
		}
		created = int64(len(rows))
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] Gagal generate tagihan massal: %v", err)
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tagihan massal berhasil dibuat", fiber.Map{
		"jumlah_tagihan": created,
	})
}

/* ======================= LIST (admin) ======================= */
// GET /api/a/tagihan?santri_id=&jenis_id=&tahun_id=&status=
func (h *TagihanController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.Context()).Model(&model.TagihanModel{})
	if v := c.Query("santri_id"); v != "" {
		q = q.Where("tagihan_santri_id = ?", v)
	}
	if v := c.Query("jenis_id"); v != "" {
		q = q.Where("tagihan_jenis_tagihan_id = ?", v)
	}
	if v := c.Query("tahun_id"); v != "" {
		q = q.Where("tagihan_tahun_ajaran_id = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("tagihan_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.TagihanModel
	if err := q.Order("tagihan_jatuh_tempo ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithPagination(c, "OK", dto.FromModelList(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= LIST MINE (santri) ======================= */
// GET /api/u/tagihan?status=
func (h *TagihanController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	q := h.DB.WithContext(c.Context()).
		Model(&model.TagihanModel{}).
		Where("tagihan_santri_id = ?", userID)
	if v := c.Query("status"); v != "" {
		q = q.Where("tagihan_status = ?", v)
	}

	var rows []model.TagihanModel
	if err := q.Order("tagihan_jatuh_tempo ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModelList(rows))
}

/* ======================== GET BY ID ======================== */
// GET /api/u/tagihan/:id (owner) | GET /api/a/tagihan/:id (admin)
func (h *TagihanController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.TagihanModel
	if err := h.DB.WithContext(c.Context()).
		First(&row, "tagihan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Santri hanya boleh lihat tagihan miliknya
	role, _ := helper.GetRoleFromToken(c)
	if role != "admin" {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		if row.TagihanSantriID != userID {
			return fiber.NewError(fiber.StatusForbidden, "Tagihan ini bukan milik Anda")
		}
	}

	return helper.Success(c, "OK", dto.FromModel(&row))
}

/* ======================= UPDATE (admin) ======================= */
// PATCH /api/a/tagihan/:id
func (h *TagihanController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.TagihanModel
	if err := h.DB.WithContext(c.Context()).First(&m, "tagihan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateTagihanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyTo(&m)

	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui tagihan")
	}
	return helper.Success(c, "Tagihan berhasil diperbarui", dto.FromModel(&m))
}

/* ======================= DELETE (admin) ======================= */
// DELETE /api/a/tagihan/:id — ditolak kalau sudah ada transaksi yang mereferensikan
func (h *TagihanController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var refCount int64
	if err := h.DB.WithContext(c.Context()).
		Table("transaksis").
		Where("transaksi_tagihan_id = ? AND transaksi_deleted_at IS NULL", id).
		Count(&refCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if refCount > 0 {
		return fiber.NewError(fiber.StatusConflict, "Tagihan sudah memiliki transaksi, tidak bisa dihapus")
	}

	res := h.DB.WithContext(c.Context()).
		Delete(&model.TagihanModel{}, "tagihan_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus tagihan")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
	}
	return helper.Success(c, "Tagihan berhasil dihapus", nil)
}
