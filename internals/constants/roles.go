package constants

import "fmt"

const (
	RoleAdmin  = "admin"
	RoleSantri = "santri"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlySantriCanAccess = "❌ Hanya santri yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSantri(feature string) string {
	return fmt.Sprintf(ErrOnlySantriCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleSantri,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	SantriOnly = []string{
		RoleSantri,
	}
)
