package dto

import (
	"github.com/google/uuid"

	m "santriku_backend/internals/features/lembaga/akademik/model"
)

/* =============== KELAS =============== */

type CreateKelasRequest struct {
	KelasNama  string `json:"kelas_nama" validate:"required,min=1,max=100"`
	KelasLevel int16  `json:"kelas_level" validate:"omitempty,min=1,max=12"`
}

func (r CreateKelasRequest) ToModel() *m.KelasModel {
	level := r.KelasLevel
	if level == 0 {
		level = 1
	}
	return &m.KelasModel{KelasNama: r.KelasNama, KelasLevel: level}
}

type UpdateKelasRequest struct {
	KelasNama  *string `json:"kelas_nama" validate:"omitempty,min=1,max=100"`
	KelasLevel *int16  `json:"kelas_level" validate:"omitempty,min=1,max=12"`
}

func (r UpdateKelasRequest) ApplyTo(mo *m.KelasModel) {
	if r.KelasNama != nil {
		mo.KelasNama = *r.KelasNama
	}
	if r.KelasLevel != nil {
		mo.KelasLevel = *r.KelasLevel
	}
}

/* =============== TAHUN AJARAN =============== */

type CreateTahunAjaranRequest struct {
	TahunAjaranNama  string `json:"tahun_ajaran_nama" validate:"required,min=4,max=20"`
	TahunAjaranAktif bool   `json:"tahun_ajaran_aktif"`
}

func (r CreateTahunAjaranRequest) ToModel() *m.TahunAjaranModel {
	return &m.TahunAjaranModel{
		TahunAjaranNama:  r.TahunAjaranNama,
		TahunAjaranAktif: r.TahunAjaranAktif,
	}
}

/* =============== JENIS TAGIHAN =============== */

type CreateJenisTagihanRequest struct {
	JenisTagihanNama           string  `json:"jenis_tagihan_nama" validate:"required,min=1,max=100"`
	JenisTagihanNominalDefault int64   `json:"jenis_tagihan_nominal_default" validate:"gte=0"`
	JenisTagihanDeskripsi      *string `json:"jenis_tagihan_deskripsi" validate:"omitempty"`
}

func (r CreateJenisTagihanRequest) ToModel() *m.JenisTagihanModel {
	return &m.JenisTagihanModel{
		JenisTagihanNama:           r.JenisTagihanNama,
		JenisTagihanNominalDefault: r.JenisTagihanNominalDefault,
		JenisTagihanDeskripsi:      r.JenisTagihanDeskripsi,
	}
}

type UpdateJenisTagihanRequest struct {
	JenisTagihanNama           *string `json:"jenis_tagihan_nama" validate:"omitempty,min=1,max=100"`
	JenisTagihanNominalDefault *int64  `json:"jenis_tagihan_nominal_default" validate:"omitempty,gte=0"`
	JenisTagihanDeskripsi      *string `json:"jenis_tagihan_deskripsi" validate:"omitempty"`
}

func (r UpdateJenisTagihanRequest) ApplyTo(mo *m.JenisTagihanModel) {
	if r.JenisTagihanNama != nil {
		mo.JenisTagihanNama = *r.JenisTagihanNama
	}
	if r.JenisTagihanNominalDefault != nil {
		mo.JenisTagihanNominalDefault = *r.JenisTagihanNominalDefault
	}
	if r.JenisTagihanDeskripsi != nil {
		mo.JenisTagihanDeskripsi = r.JenisTagihanDeskripsi
	}
}

/* =============== QUERY =============== */

type ListAkademikQuery struct {
	Q  *string    `query:"q" validate:"omitempty"`
	ID *uuid.UUID `query:"id" validate:"omitempty"`
}
