// file: internals/features/finance/tagihan/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tagihanCtl "santriku_backend/internals/features/finance/tagihan/controller"
)

func TagihanUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := tagihanCtl.NewTagihanController(db)

	tagihan := r.Group("/tagihan")
	tagihan.Get("/", ctl.ListMine)   // GET /api/u/tagihan
	tagihan.Get("/:id", ctl.GetByID) // GET /api/u/tagihan/:id (milik sendiri)
}
