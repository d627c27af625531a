package constants

import "fmt"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyEditorsCanAccess = "❌ Hanya admin atau editor yang boleh mengakses fitur %s."
	ErrNotOwner             = "❌ Anda hanya boleh mengubah %s milik sendiri."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorEditor(feature string) string {
	return fmt.Sprintf(ErrOnlyEditorsCanAccess, feature)
}

func OwnershipError(resource string) string {
	return fmt.Sprintf(ErrNotOwner, resource)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AdminOnly = []string{
		RoleAdmin,
	}

	EditorAndAbove = []string{
		RoleAdmin,
		RoleEditor,
	}
)
