package constants

import "fmt"

// Role yang dikenal directory operator
const (
	RoleOperator   = "operator"
	RoleSuperadmin = "superadmin"
)

// Template pesan error role
const (
	ErrOnlyOperatorsCanAccess  = "❌ Hanya operator aktif yang boleh mengakses fitur %s."
	ErrOnlySuperadminCanAccess = "❌ Hanya superadmin yang boleh mengakses fitur %s."
)

func RoleErrorOperator(feature string) string {
	return fmt.Sprintf(ErrOnlyOperatorsCanAccess, feature)
}

func RoleErrorSuperadmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperadminCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleOperator,
		RoleSuperadmin,
	}

	SuperadminOnly = []string{
		RoleSuperadmin,
	}
)
