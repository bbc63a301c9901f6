package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	tagihanModel "santriku_backend/internals/features/finance/tagihan/model"
	"santriku_backend/internals/features/finance/transaksi/model"
	notifService "santriku_backend/internals/features/home/notifications/service"
	akademikModel "santriku_backend/internals/features/lembaga/akademik/model"
)

/* =========================================================
   Ledger implementation di atas gorm.DB.Transaction
========================================================= */

type GormLedger struct {
	DB         *gorm.DB
	Dispatcher *notifService.Dispatcher
}

func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{DB: db, Dispatcher: notifService.NewDispatcher()}
}

func (l *GormLedger) WithinTx(ctx context.Context, fn func(tx LedgerTx) error) error {
	return l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormLedgerTx{tx: tx, dispatcher: l.Dispatcher})
	})
}

type gormLedgerTx struct {
	tx         *gorm.DB
	dispatcher *notifService.Dispatcher
}

func (g *gormLedgerTx) FindTransaksiByID(id uuid.UUID) (*model.TransaksiModel, error) {
	var t model.TransaksiModel
	if err := g.tx.First(&t, "transaksi_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (g *gormLedgerTx) FindTransaksiByTagihanID(tagihanID uuid.UUID) (*model.TransaksiModel, error) {
	var t model.TransaksiModel
	err := g.tx.
		Where("transaksi_tagihan_id = ? AND transaksi_metode = ?", tagihanID, model.TransaksiMetodeGateway).
		Order("transaksi_created_at DESC").
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (g *gormLedgerTx) CreateTransaksi(t *model.TransaksiModel) error {
	return g.tx.Create(t).Error
}

func (g *gormLedgerTx) SaveTransaksi(t *model.TransaksiModel) error {
	return g.tx.Save(t).Error
}

func (g *gormLedgerTx) FindTagihanByID(id uuid.UUID) (*tagihanModel.TagihanModel, error) {
	var row tagihanModel.TagihanModel
	if err := g.tx.First(&row, "tagihan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (g *gormLedgerTx) UpdateTagihanStatus(id uuid.UUID, status tagihanModel.TagihanStatus) error {
	res := g.tx.Model(&tagihanModel.TagihanModel{}).
		Where("tagihan_id = ?", id).
		Update("tagihan_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *gormLedgerTx) FindJenisTagihanNama(id uuid.UUID) (string, error) {
	var jenis akademikModel.JenisTagihanModel
	if err := g.tx.Select("jenis_tagihan_nama").
		First(&jenis, "jenis_tagihan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return jenis.JenisTagihanNama, nil
}

func (g *gormLedgerTx) Notify(userID uuid.UUID, title, message string, tags []string, tagihanID *uuid.UUID) error {
	_, err := g.dispatcher.Notify(g.tx, userID, title, message, tags, tagihanID)
	return err
}

func (g *gormLedgerTx) NotifyAdmins(title, message string, tags []string, tagihanID *uuid.UUID) (int, error) {
	return g.dispatcher.NotifyAdmins(g.tx, title, message, tags, tagihanID)
}

// gatewayEventConflict: delivery duplikat collapse di unique index lewat
// DO NOTHING, bukan lewat error — INSERT yang gagal akan meng-abort
// transaksi Postgres dan membuat commit berikutnya ikut gagal.
var gatewayEventConflict = clause.OnConflict{
	Columns: []clause.Column{
		{Name: "transaksi_gateway_event_provider"},
		{Name: "transaksi_gateway_event_order_id"},
		{Name: "transaksi_gateway_event_transaction_status"},
	},
	DoNothing: true,
}

func (g *gormLedgerTx) LogGatewayEvent(ev *model.TransaksiGatewayEventModel) error {
	return g.tx.Clauses(gatewayEventConflict).Create(ev).Error
}
