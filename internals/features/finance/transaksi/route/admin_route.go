// file: internals/features/finance/transaksi/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	transaksiCtl "santriku_backend/internals/features/finance/transaksi/controller"
)

func PembayaranAdminRoutes(r fiber.Router, db *gorm.DB, midtransServerKey string, useProd bool) {
	ctl := transaksiCtl.NewTransaksiController(db, midtransServerKey, useProd)

	pembayaran := r.Group("/pembayaran")
	pembayaran.Get("/", ctl.List)                // GET  /api/a/pembayaran
	pembayaran.Get("/:id", ctl.GetByID)          // GET  /api/a/pembayaran/:id
	pembayaran.Post("/:id/approve", ctl.Approve) // POST /api/a/pembayaran/:id/approve
	pembayaran.Post("/:id/reject", ctl.Reject)   // POST /api/a/pembayaran/:id/reject
}
