// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	configs "santriku_backend/internals/configs"
	constants "santriku_backend/internals/constants"
	authMiddleware "santriku_backend/internals/middlewares/auth"
	routeDetails "santriku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up public webhook...")
	routeDetails.FinancePublicRoutes(app, db, configs.MidtransServerKey, configs.MidtransUseProd)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
	)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manajemen"), constants.RoleAdmin),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserUserRoutes(private, db)
	routeDetails.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Lembaga routes...")
	routeDetails.LembagaUserRoutes(private, db)
	routeDetails.LembagaAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinanceUserRoutes(private, db, configs.MidtransServerKey, configs.MidtransUseProd)
	routeDetails.FinanceAdminRoutes(admin, db, configs.MidtransServerKey, configs.MidtransUseProd)

	log.Println("[INFO] Mounting Home routes...")
	routeDetails.HomeUserRoutes(private, db)
}
