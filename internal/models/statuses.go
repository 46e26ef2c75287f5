package models

// UserRole is the access level attached to a user account.
type UserRole string

const (
	UserRoleUser      UserRole = "user"
	UserRoleRecruiter UserRole = "recruiter"
	UserRoleAdmin     UserRole = "admin"
)

// ValidUserRole reports whether role is one of the known roles.
func ValidUserRole(role UserRole) bool {
	switch role {
	case UserRoleUser, UserRoleRecruiter, UserRoleAdmin:
		return true
	default:
		return false
	}
}

// ApplicationStatusNew is assigned when the candidate does not supply one.
const ApplicationStatusNew = "new"
