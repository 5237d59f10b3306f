package auth

import "fmt"

// Role is the closed set of user roles the hospital backend issues.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleStaff   Role = "STAFF"
	RolePatient Role = "PATIENT"
)

// ParseRole maps a raw role tag to a Role. Unknown tags are rejected
// rather than passed through, so every downstream switch stays
// exhaustive.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleStaff:
		return RoleStaff, nil
	case RolePatient:
		return RolePatient, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// HomePath returns the landing page for a role after login.
func (r Role) HomePath() string {
	switch r {
	case RoleAdmin:
		return "/admin/staff"
	case RoleStaff:
		return "/staff/me"
	case RolePatient:
		return "/patient/me"
	default:
		return "/auth"
	}
}

// LoginPath returns the proxy login endpoint for a role.
func (r Role) LoginPath() string {
	switch r {
	case RoleAdmin:
		return "/auth/admin/login"
	case RoleStaff:
		return "/auth/staff/login"
	case RolePatient:
		return "/auth/patient/login"
	default:
		return ""
	}
}
