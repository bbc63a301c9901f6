package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"santriku_backend/internals/features/home/notifications/dto"
	"santriku_backend/internals/features/home/notifications/model"
	helper "santriku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// 🟢 GET /api/u/notifikasi?unread=true
func (ctrl *NotificationController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID)
	if c.Query("unread") == "true" {
		q = q.Where("notification_read = FALSE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.NotificationModel
	if err := q.Order("notification_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil notifikasi: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	return helper.SuccessWithPagination(c, "OK", dto.ToNotificationResponseList(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟢 GET /api/u/notifikasi/unread-count
func (ctrl *NotificationController) UnreadCount(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read = FALSE", userID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}
	return helper.Success(c, "OK", fiber.Map{"unread": count})
}

// 🟢 POST /api/u/notifikasi/:id/read
func (ctrl *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	readTime := time.Now()
	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", notifID, userID).
		Updates(map[string]interface{}{
			"notification_read":    true,
			"notification_read_at": readTime,
		})
	if res.Error != nil {
		log.Printf("[ERROR] Gagal mengupdate notifikasi sebagai dibaca: %v", res.Error)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update notifikasi")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}

	return helper.Success(c, "Notifikasi ditandai sebagai dibaca", nil)
}

// 🟢 POST /api/u/notifikasi/read-all
func (ctrl *NotificationController) MarkAllAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	readTime := time.Now()
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read = FALSE", userID).
		Updates(map[string]interface{}{
			"notification_read":    true,
			"notification_read_at": readTime,
		}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update notifikasi")
	}

	return helper.Success(c, "Semua notifikasi ditandai dibaca", nil)
}
