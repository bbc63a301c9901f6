// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tagihanRoute "santriku_backend/internals/features/finance/tagihan/route"
	transaksiRoute "santriku_backend/internals/features/finance/transaksi/route"
)

func FinancePublicRoutes(app *fiber.App, db *gorm.DB, midtransServerKey string, useProd bool) {
	transaksiRoute.PembayaranPublicRoutes(app, db, midtransServerKey, useProd)
}

func FinanceUserRoutes(r fiber.Router, db *gorm.DB, midtransServerKey string, useProd bool) {
	tagihanRoute.TagihanUserRoutes(r, db)
	transaksiRoute.PembayaranUserRoutes(r, db, midtransServerKey, useProd)
}

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB, midtransServerKey string, useProd bool) {
	tagihanRoute.TagihanAdminRoutes(r, db)
	transaksiRoute.PembayaranAdminRoutes(r, db, midtransServerKey, useProd)
}
