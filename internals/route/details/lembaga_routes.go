// file: internals/route/details/lembaga_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	akademikRoute "santriku_backend/internals/features/lembaga/akademik/route"
)

func LembagaUserRoutes(r fiber.Router, db *gorm.DB) {
	akademikRoute.AkademikUserRoutes(r, db)
}

func LembagaAdminRoutes(r fiber.Router, db *gorm.DB) {
	akademikRoute.AkademikAdminRoutes(r, db)
}
