package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	tagihanModel "santriku_backend/internals/features/finance/tagihan/model"
	"santriku_backend/internals/features/finance/transaksi/model"
)

// Common test errors
var (
	ErrMockNotify  = errors.New("mock notify error")
	ErrMockStorage = errors.New("mock storage error")
)

type mockNotification struct {
	UserID    uuid.UUID
	Title     string
	Message   string
	Tags      []string
	TagihanID *uuid.UUID
}

type mockState struct {
	Transaksis    map[uuid.UUID]*model.TransaksiModel
	Tagihans      map[uuid.UUID]*tagihanModel.TagihanModel
	JenisNama     map[uuid.UUID]string
	Notifications []mockNotification
	AdminFanouts  int
	Events        []*model.TransaksiGatewayEventModel
}

func (s *mockState) clone() *mockState {
	c := &mockState{
		Transaksis:    make(map[uuid.UUID]*model.TransaksiModel, len(s.Transaksis)),
		Tagihans:      make(map[uuid.UUID]*tagihanModel.TagihanModel, len(s.Tagihans)),
		JenisNama:     make(map[uuid.UUID]string, len(s.JenisNama)),
		Notifications: append([]mockNotification(nil), s.Notifications...),
		AdminFanouts:  s.AdminFanouts,
		Events:        append([]*model.TransaksiGatewayEventModel(nil), s.Events...),
	}
	for k, v := range s.Transaksis {
		cp := *v
		c.Transaksis[k] = &cp
	}
	for k, v := range s.Tagihans {
		cp := *v
		c.Tagihans[k] = &cp
	}
	for k, v := range s.JenisNama {
		c.JenisNama[k] = v
	}
	return c
}

// MockLedger implements Ledger against in-memory maps with commit/rollback
// semantics: mutations inside WithinTx land on a staged clone and only
// replace live state when fn returns nil.
type MockLedger struct {
	State *mockState

	// Failure hooks
	FailNotify        bool
	FailSaveTransaksi bool
}

func NewMockLedger() *MockLedger {
	return &MockLedger{
		State: &mockState{
			Transaksis: map[uuid.UUID]*model.TransaksiModel{},
			Tagihans:   map[uuid.UUID]*tagihanModel.TagihanModel{},
			JenisNama:  map[uuid.UUID]string{},
		},
	}
}

func (l *MockLedger) WithinTx(ctx context.Context, fn func(tx LedgerTx) error) error {
	staged := l.State.clone()
	if err := fn(&mockLedgerTx{ledger: l, state: staged}); err != nil {
		return err
	}
	l.State = staged
	return nil
}

// Seed helpers

func (l *MockLedger) SeedTagihan(t *tagihanModel.TagihanModel) {
	l.State.Tagihans[t.TagihanID] = t
}

func (l *MockLedger) SeedTransaksi(t *model.TransaksiModel) {
	l.State.Transaksis[t.TransaksiID] = t
}

func (l *MockLedger) SeedJenisNama(id uuid.UUID, nama string) {
	l.State.JenisNama[id] = nama
}

/* ------------------------- tx ------------------------- */

type mockLedgerTx struct {
	ledger *MockLedger
	state  *mockState
}

func (tx *mockLedgerTx) FindTransaksiByID(id uuid.UUID) (*model.TransaksiModel, error) {
	t, ok := tx.state.Transaksis[id]
	if !ok {
		return nil, ErrNotFound
	}
	return t, nil
}

func (tx *mockLedgerTx) FindTransaksiByTagihanID(tagihanID uuid.UUID) (*model.TransaksiModel, error) {
	var newest *model.TransaksiModel
	for _, t := range tx.state.Transaksis {
		if t.TransaksiTagihanID != tagihanID || !t.IsGateway() {
			continue
		}
		if newest == nil || t.TransaksiCreatedAt.After(newest.TransaksiCreatedAt) {
			newest = t
		}
	}
	return newest, nil
}

func (tx *mockLedgerTx) CreateTransaksi(t *model.TransaksiModel) error {
	if t.TransaksiID == uuid.Nil {
		t.TransaksiID = uuid.New()
	}
	if t.TransaksiCreatedAt.IsZero() {
		t.TransaksiCreatedAt = time.Now()
	}
	tx.state.Transaksis[t.TransaksiID] = t
	return nil
}

func (tx *mockLedgerTx) SaveTransaksi(t *model.TransaksiModel) error {
	if tx.ledger.FailSaveTransaksi {
		return ErrMockStorage
	}
	tx.state.Transaksis[t.TransaksiID] = t
	return nil
}

func (tx *mockLedgerTx) FindTagihanByID(id uuid.UUID) (*tagihanModel.TagihanModel, error) {
	tg, ok := tx.state.Tagihans[id]
	if !ok {
		return nil, ErrNotFound
	}
	return tg, nil
}

func (tx *mockLedgerTx) UpdateTagihanStatus(id uuid.UUID, status tagihanModel.TagihanStatus) error {
	tg, ok := tx.state.Tagihans[id]
	if !ok {
		return ErrNotFound
	}
	tg.TagihanStatus = status
	return nil
}

func (tx *mockLedgerTx) FindJenisTagihanNama(id uuid.UUID) (string, error) {
	if nama, ok := tx.state.JenisNama[id]; ok {
		return nama, nil
	}
	return "Tagihan", nil
}

func (tx *mockLedgerTx) Notify(userID uuid.UUID, title, message string, tags []string, tagihanID *uuid.UUID) error {
	if tx.ledger.FailNotify {
		return ErrMockNotify
	}
	tx.state.Notifications = append(tx.state.Notifications, mockNotification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Tags:      tags,
		TagihanID: tagihanID,
	})
	return nil
}

func (tx *mockLedgerTx) NotifyAdmins(title, message string, tags []string, tagihanID *uuid.UUID) (int, error) {
	if tx.ledger.FailNotify {
		return 0, ErrMockNotify
	}
	tx.state.AdminFanouts++
	return 1, nil
}

func (tx *mockLedgerTx) LogGatewayEvent(ev *model.TransaksiGatewayEventModel) error {
	// duplikat (provider, order_id, transaction_status) collapse seperti
	// unique index di DB
	for _, existing := range tx.state.Events {
		if existing.TransaksiGatewayEventProvider == ev.TransaksiGatewayEventProvider &&
			existing.TransaksiGatewayEventOrderID == ev.TransaksiGatewayEventOrderID &&
			existing.TransaksiGatewayEventTransactionStatus == ev.TransaksiGatewayEventTransactionStatus {
			return nil
		}
	}
	tx.state.Events = append(tx.state.Events, ev)
	return nil
}
