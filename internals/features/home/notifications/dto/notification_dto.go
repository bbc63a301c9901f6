package dto

import (
	"time"

	"github.com/google/uuid"

	"santriku_backend/internals/features/home/notifications/model"
)

// ================== RESPONSE ==================
type NotificationResponse struct {
	NotificationID        uuid.UUID  `json:"notification_id"`
	NotificationTitle     string     `json:"notification_title"`
	NotificationMessage   string     `json:"notification_message"`
	NotificationTags      []string   `json:"notification_tags"`
	NotificationTagihanID *uuid.UUID `json:"notification_tagihan_id,omitempty"`
	NotificationRead      bool       `json:"notification_read"`
	NotificationReadAt    *string    `json:"notification_read_at,omitempty"`
	NotificationCreatedAt string     `json:"notification_created_at"`
}

// ================ CONVERSION =================
func ToNotificationResponse(m *model.NotificationModel) *NotificationResponse {
	var readAt *string
	if m.NotificationReadAt != nil {
		s := m.NotificationReadAt.Format(time.RFC3339)
		readAt = &s
	}
	return &NotificationResponse{
		NotificationID:        m.NotificationID,
		NotificationTitle:     m.NotificationTitle,
		NotificationMessage:   m.NotificationMessage,
		NotificationTags:      m.NotificationTags,
		NotificationTagihanID: m.NotificationTagihanID,
		NotificationRead:      m.NotificationRead,
		NotificationReadAt:    readAt,
		NotificationCreatedAt: m.NotificationCreatedAt.Format(time.RFC3339),
	}
}

func ToNotificationResponseList(models []model.NotificationModel) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToNotificationResponse(&models[i]))
	}
	return result
}
