package authorization

type UserRole string

const (
	RoleStudent UserRole = "STUDENT"
	RoleFaculty UserRole = "FACULTY"
	RoleTech    UserRole = "TECH"
	RoleAdmin   UserRole = "ADMIN"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role may triage tickets.
func (r UserRole) IsStaff() bool {
	return r == RoleTech || r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleTech, RoleAdmin:
		return true
	}
	return false
}

// ParseUserRole returns the role for s, falling back to STUDENT for
// unknown values.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleStudent
}
