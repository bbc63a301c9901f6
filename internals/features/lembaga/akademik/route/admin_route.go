// file: internals/features/lembaga/akademik/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	akademikCtl "santriku_backend/internals/features/lembaga/akademik/controller"
)

func AkademikAdminRoutes(r fiber.Router, db *gorm.DB) {
	kelasCtl := akademikCtl.NewKelasController(db)
	tahunCtl := akademikCtl.NewTahunAjaranController(db)
	jenisCtl := akademikCtl.NewJenisTagihanController(db)

	kelas := r.Group("/kelas")
	kelas.Post("/", kelasCtl.Create)      // POST   /api/a/kelas
	kelas.Get("/", kelasCtl.List)         // GET    /api/a/kelas
	kelas.Patch("/:id", kelasCtl.Update)  // PATCH  /api/a/kelas/:id
	kelas.Delete("/:id", kelasCtl.Delete) // DELETE /api/a/kelas/:id

	tahun := r.Group("/tahun-ajaran")
	tahun.Post("/", tahunCtl.Create)               // POST /api/a/tahun-ajaran
	tahun.Get("/", tahunCtl.List)                  // GET  /api/a/tahun-ajaran
	tahun.Post("/:id/aktifkan", tahunCtl.Aktifkan) // POST /api/a/tahun-ajaran/:id/aktifkan

	jenis := r.Group("/jenis-tagihan")
	jenis.Post("/", jenisCtl.Create)      // POST   /api/a/jenis-tagihan
	jenis.Get("/", jenisCtl.List)         // GET    /api/a/jenis-tagihan
	jenis.Patch("/:id", jenisCtl.Update)  // PATCH  /api/a/jenis-tagihan/:id
	jenis.Delete("/:id", jenisCtl.Delete) // DELETE /api/a/jenis-tagihan/:id
}

// AkademikUserRoutes: santri butuh daftar referensi read-only
func AkademikUserRoutes(r fiber.Router, db *gorm.DB) {
	kelasCtl := akademikCtl.NewKelasController(db)
	tahunCtl := akademikCtl.NewTahunAjaranController(db)
	jenisCtl := akademikCtl.NewJenisTagihanController(db)

	r.Get("/kelas", kelasCtl.List)         // GET /api/u/kelas
	r.Get("/tahun-ajaran", tahunCtl.List)  // GET /api/u/tahun-ajaran
	r.Get("/jenis-tagihan", jenisCtl.List) // GET /api/u/jenis-tagihan
}
