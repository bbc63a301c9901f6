// file: internals/features/home/notifications/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifCtl "santriku_backend/internals/features/home/notifications/controller"
)

func NotificationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := notifCtl.NewNotificationController(db)

	notif := r.Group("/notifikasi")
	notif.Get("/", ctl.ListMine)                // GET  /api/u/notifikasi
	notif.Get("/unread-count", ctl.UnreadCount) // GET  /api/u/notifikasi/unread-count
	notif.Post("/:id/read", ctl.MarkAsRead)     // POST /api/u/notifikasi/:id/read
	notif.Post("/read-all", ctl.MarkAllAsRead)  // POST /api/u/notifikasi/read-all
}
