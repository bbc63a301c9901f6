// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtl "santriku_backend/internals/features/users/user/controller"
)

// UserUserRoutes: profil milik sendiri (group /api/u)
func UserUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUserController(db)

	users := r.Group("/users")
	users.Get("/me", ctl.Me)                           // GET  /api/u/users/me
	users.Post("/change-password", ctl.ChangePassword) // POST /api/u/users/change-password
}

// UserAdminRoutes: kelola akun santri/admin (group /api/a)
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUserController(db)

	users := r.Group("/users")
	users.Post("/", ctl.Create)     // POST  /api/a/users
	users.Get("/", ctl.List)        // GET   /api/a/users
	users.Patch("/:id", ctl.Update) // PATCH /api/a/users/:id
}
