// file: internals/features/finance/tagihan/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tagihanCtl "santriku_backend/internals/features/finance/tagihan/controller"
)

func TagihanAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := tagihanCtl.NewTagihanController(db)

	tagihan := r.Group("/tagihan")
	tagihan.Post("/", ctl.Create)             // POST   /api/a/tagihan
	tagihan.Post("/massal", ctl.CreateMassal) // POST /api/a/tagihan/massal
	tagihan.Get("/", ctl.List)                // GET    /api/a/tagihan
	tagihan.Get("/:id", ctl.GetByID)          // GET    /api/a/tagihan/:id
	tagihan.Patch("/:id", ctl.Update)         // PATCH  /api/a/tagihan/:id
	tagihan.Delete("/:id", ctl.Delete)        // DELETE /api/a/tagihan/:id
}
