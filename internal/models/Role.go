package models

// Role is the closed set of caller identities. Keeping it a named type
// forces handlers and middleware to match against the constants instead
// of comparing raw claim strings.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), true
	}
	return "", false
}
