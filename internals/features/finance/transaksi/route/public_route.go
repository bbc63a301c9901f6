// file: internals/features/finance/transaksi/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	transaksiCtl "santriku_backend/internals/features/finance/transaksi/controller"
)

// PembayaranPublicRoutes: webhook midtrans, tanpa JWT (diverifikasi via signature).
func PembayaranPublicRoutes(app *fiber.App, db *gorm.DB, midtransServerKey string, useProd bool) {
	ctl := transaksiCtl.NewTransaksiController(db, midtransServerKey, useProd)

	app.Post("/api/pembayaran/midtrans-callback", ctl.MidtransCallback)
}
