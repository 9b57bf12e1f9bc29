package constants

// Role names as stored in users.role
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

var AllowedRoles = []string{RoleStudent, RoleInstructor, RoleAdmin}

func IsValidRole(role string) bool {
	for _, r := range AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Staff = roles yang boleh masuk grup /api/i
var StaffRoles = []string{RoleInstructor, RoleAdmin}
