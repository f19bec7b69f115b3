package identity

import (
	"fmt"

	"github.com/curricuforge/curricuforge/internal"
)

// Role is the closed set of workspace roles. Approval authority is
// strictly hierarchical: Management outranks Department outranks
// Faculty and Student.
type Role string

const (
	RoleManagement Role = "Management"
	RoleDepartment Role = "Department"
	RoleFaculty    Role = "Faculty"
	RoleStudent    Role = "Student"
)

var allRoles = []Role{RoleManagement, RoleDepartment, RoleFaculty, RoleStudent}

func Roles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleManagement, RoleDepartment, RoleFaculty, RoleStudent:
		return Role(s), nil
	}
	return "", internal.NewValidationError(fmt.Sprintf("unknown role %q", s), internal.ErrCodeInvalidRole)
}

func (r Role) Valid() bool {
	switch r {
	case RoleManagement, RoleDepartment, RoleFaculty, RoleStudent:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Color returns the accent color token the UI renders for the role.
func (r Role) Color() string {
	switch r {
	case RoleManagement:
		return "slate-900"
	case RoleDepartment:
		return "indigo-600"
	case RoleStudent:
		return "emerald-600"
	default:
		return "blue-600"
	}
}
