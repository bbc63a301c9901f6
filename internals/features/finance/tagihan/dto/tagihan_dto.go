package dto

import (
	"time"

	"github.com/google/uuid"

	m "santriku_backend/internals/features/finance/tagihan/model"
)

/* =============== REQUESTS =============== */

// Create satu tagihan untuk satu santri
type CreateTagihanRequest struct {
	TagihanSantriID       uuid.UUID  `json:"tagihan_santri_id" validate:"required"`
	TagihanJenisTagihanID uuid.UUID  `json:"tagihan_jenis_tagihan_id" validate:"required"`
	TagihanTahunAjaranID  *uuid.UUID `json:"tagihan_tahun_ajaran_id" validate:"omitempty"`

	// 0 → pakai nominal default jenis tagihan
	TagihanNominalIDR int64      `json:"tagihan_nominal_idr" validate:"gte=0"`
	TagihanJatuhTempo *time.Time `json:"tagihan_jatuh_tempo" validate:"required"`
	TagihanNote       *string    `json:"tagihan_note" validate:"omitempty"`
}

func (r CreateTagihanRequest) ToModel() *m.TagihanModel {
	mo := &m.TagihanModel{
		TagihanSantriID:       r.TagihanSantriID,
		TagihanJenisTagihanID: r.TagihanJenisTagihanID,
		TagihanTahunAjaranID:  r.TagihanTahunAjaranID,
		TagihanNominalIDR:     r.TagihanNominalIDR,
		TagihanStatus:         m.TagihanStatusPending,
		TagihanNote:           r.TagihanNote,
	}
	if r.TagihanJatuhTempo != nil {
		mo.TagihanJatuhTempo = *r.TagihanJatuhTempo
	}
	return mo
}

// Create massal: satu tagihan per santri aktif dalam satu kelas
type CreateTagihanMassalRequest struct {
	TagihanKelasID        uuid.UUID  `json:"tagihan_kelas_id" validate:"required"`
	TagihanJenisTagihanID uuid.UUID  `json:"tagihan_jenis_tagihan_id" validate:"required"`
	TagihanTahunAjaranID  *uuid.UUID `json:"tagihan_tahun_ajaran_id" validate:"omitempty"`

	TagihanNominalIDR int64      `json:"tagihan_nominal_idr" validate:"gte=0"`
	TagihanJatuhTempo *time.Time `json:"tagihan_jatuh_tempo" validate:"required"`
	TagihanNote       *string    `json:"tagihan_note" validate:"omitempty"`
}

// Update (partial, admin edit nominal/jatuh tempo/note — status dikelola reconciliation core)
type UpdateTagihanRequest struct {
	TagihanNominalIDR *int64     `json:"tagihan_nominal_idr" validate:"omitempty,gte=0"`
	TagihanJatuhTempo *time.Time `json:"tagihan_jatuh_tempo" validate:"omitempty"`
	TagihanNote       *string    `json:"tagihan_note" validate:"omitempty"`
}

func (r UpdateTagihanRequest) ApplyTo(mo *m.TagihanModel) {
	if r.TagihanNominalIDR != nil {
		mo.TagihanNominalIDR = *r.TagihanNominalIDR
	}
	if r.TagihanJatuhTempo != nil {
		mo.TagihanJatuhTempo = *r.TagihanJatuhTempo
	}
	if r.TagihanNote != nil {
		mo.TagihanNote = r.TagihanNote
	}
}

/* =============== RESPONSES =============== */

type TagihanResponse struct {
	TagihanID             uuid.UUID  `json:"tagihan_id"`
	TagihanSantriID       uuid.UUID  `json:"tagihan_santri_id"`
	TagihanJenisTagihanID uuid.UUID  `json:"tagihan_jenis_tagihan_id"`
	TagihanTahunAjaranID  *uuid.UUID `json:"tagihan_tahun_ajaran_id,omitempty"`
	TagihanNominalIDR     int64      `json:"tagihan_nominal_idr"`
	TagihanJatuhTempo     string     `json:"tagihan_jatuh_tempo"`
	TagihanStatus         string     `json:"tagihan_status"`
	TagihanNote           *string    `json:"tagihan_note,omitempty"`
	TagihanCreatedAt      string     `json:"tagihan_created_at"`
}

func FromModel(mo *m.TagihanModel) TagihanResponse {
	return TagihanResponse{
		TagihanID:             mo.TagihanID,
		TagihanSantriID:       mo.TagihanSantriID,
		TagihanJenisTagihanID: mo.TagihanJenisTagihanID,
		TagihanTahunAjaranID:  mo.TagihanTahunAjaranID,
		TagihanNominalIDR:     mo.TagihanNominalIDR,
		TagihanJatuhTempo:     mo.TagihanJatuhTempo.Format("2006-01-02"),
		TagihanStatus:         string(mo.TagihanStatus),
		TagihanNote:           mo.TagihanNote,
		TagihanCreatedAt:      mo.TagihanCreatedAt.Format(time.RFC3339),
	}
}

func FromModelList(models []m.TagihanModel) []TagihanResponse {
	out := make([]TagihanResponse, 0, len(models))
	for i := range models {
		out = append(out, FromModel(&models[i]))
	}
	return out
}
