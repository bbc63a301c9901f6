// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "santriku_backend/internals/features/users/auth/route"
	userRoute "santriku_backend/internals/features/users/user/route"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)
}

func UserUserRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.UserUserRoutes(r, db)
}

func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(r, db)
}
