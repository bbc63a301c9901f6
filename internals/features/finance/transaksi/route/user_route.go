// file: internals/features/finance/transaksi/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	transaksiCtl "santriku_backend/internals/features/finance/transaksi/controller"
)

func PembayaranUserRoutes(r fiber.Router, db *gorm.DB, midtransServerKey string, useProd bool) {
	ctl := transaksiCtl.NewTransaksiController(db, midtransServerKey, useProd)

	pembayaran := r.Group("/pembayaran")
	pembayaran.Post("/", ctl.CreateManual)             // POST /api/u/pembayaran
	pembayaran.Post("/midtrans", ctl.CheckoutMidtrans) // POST /api/u/pembayaran/midtrans
	pembayaran.Get("/", ctl.ListMine)                  // GET  /api/u/pembayaran
}
