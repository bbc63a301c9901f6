// file: internals/route/details/home_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifRoute "santriku_backend/internals/features/home/notifications/route"
)

func HomeUserRoutes(r fiber.Router, db *gorm.DB) {
	notifRoute.NotificationUserRoutes(r, db)
}
