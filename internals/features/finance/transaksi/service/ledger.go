package service

import (
	"context"

	"github.com/google/uuid"

	tagihanModel "santriku_backend/internals/features/finance/tagihan/model"
	"santriku_backend/internals/features/finance/transaksi/model"
)

// Actor = kapabilitas pemanggil, dioper eksplisit ke setiap operasi core.
// Core tidak pernah membaca identitas dari session/context global.
type Actor struct {
	UserID uuid.UUID
	Role   string
}

func (a Actor) IsAdmin() bool { return a.Role == "admin" }

// Ledger membungkus unit kerja atomik: semua mutasi di dalam fn commit
// bersama atau batal bersama.
type Ledger interface {
	WithinTx(ctx context.Context, fn func(tx LedgerTx) error) error
}

// LedgerTx = operasi storage + notifikasi dalam satu transaksi.
// Bentuknya mengikuti repository kontrak payment-state (satu interface per
// lifecycle), bukan query ad-hoc di controller.
type LedgerTx interface {
	FindTransaksiByID(id uuid.UUID) (*model.TransaksiModel, error)
	// FindTransaksiByTagihanID mengembalikan transaksi gateway terbaru yang
	// belum dihapus untuk satu tagihan; (nil, nil) kalau belum ada.
	FindTransaksiByTagihanID(tagihanID uuid.UUID) (*model.TransaksiModel, error)
	CreateTransaksi(t *model.TransaksiModel) error
	SaveTransaksi(t *model.TransaksiModel) error

	FindTagihanByID(id uuid.UUID) (*tagihanModel.TagihanModel, error)
	UpdateTagihanStatus(id uuid.UUID, status tagihanModel.TagihanStatus) error

	// Nama jenis tagihan dipakai di pesan notifikasi.
	FindJenisTagihanNama(id uuid.UUID) (string, error)

	Notify(userID uuid.UUID, title, message string, tags []string, tagihanID *uuid.UUID) error
	NotifyAdmins(title, message string, tags []string, tagihanID *uuid.UUID) (int, error)

	LogGatewayEvent(ev *model.TransaksiGatewayEventModel) error
}
