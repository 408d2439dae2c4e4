package constants

// Role claim values carried in the JWT issued by the auth service.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
	RoleTreasurer  = "TREASURER"
	RoleViewer     = "VIEWER"
)

// AdminRoles may mutate budget-planning data.
var AdminRoles = []string{
	RoleSuperAdmin,
	RoleAdmin,
	RoleTreasurer,
}

func IsAdminRole(role string) bool {
	for _, r := range AdminRoles {
		if r == role {
			return true
		}
	}
	return false
}
