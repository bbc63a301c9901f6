package service

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	notifModel "santriku_backend/internals/features/home/notifications/model"
	userModel "santriku_backend/internals/features/users/user/model"
)

// Dispatcher membuat record notifikasi sebagai side effect transisi pembayaran.
// Selalu dipanggil dengan *gorm.DB transaksi milik pemanggil: kalau insert
// notifikasi gagal, seluruh transisi ikut rollback.
type Dispatcher struct{}

func NewDispatcher() *Dispatcher { return &Dispatcher{} }

// Notify membuat satu notifikasi untuk satu user.
func (d *Dispatcher) Notify(tx *gorm.DB, userID uuid.UUID, title, message string, tags []string, tagihanID *uuid.UUID) (*notifModel.NotificationModel, error) {
	n := &notifModel.NotificationModel{
		NotificationUserID:    userID,
		NotificationTitle:     title,
		NotificationMessage:   message,
		NotificationTags:      pq.StringArray(tags),
		NotificationTagihanID: tagihanID,
	}
	if err := tx.Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

// NotifyAdmins broadcast ke semua admin yang opt-in notifikasi in-app.
func (d *Dispatcher) NotifyAdmins(tx *gorm.DB, title, message string, tags []string, tagihanID *uuid.UUID) (int, error) {
	var adminIDs []uuid.UUID
	if err := tx.Model(&userModel.UserModel{}).
		Where("user_role = ? AND user_app_notification = TRUE", "admin").
		Pluck("user_id", &adminIDs).Error; err != nil {
		return 0, err
	}

	if len(adminIDs) == 0 {
		return 0, nil
	}

	rows := make([]notifModel.NotificationModel, 0, len(adminIDs))
	for _, id := range adminIDs {
		rows = append(rows, notifModel.NotificationModel{
			NotificationUserID:    id,
			NotificationTitle:     title,
			NotificationMessage:   message,
			NotificationTags:      pq.StringArray(tags),
			NotificationTagihanID: tagihanID,
		})
	}
	if err := tx.CreateInBatches(&rows, 100).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}
