package constants

import "strings"

// Role is the closed set of caller roles the pipeline recognizes.
// Parse once at the boundary; never compare raw role strings elsewhere.
type Role int

const (
	RoleUnrecognized Role = iota
	RoleClient
	RoleOperator
	RoleAdmin
)

// ParseRole maps a wire-level role string onto the closed Role set.
// Unknown values map to RoleUnrecognized, never to an error.
func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CLIENT":
		return RoleClient
	case "OPERATOR":
		return RoleOperator
	case "ADMIN":
		return RoleAdmin
	default:
		return RoleUnrecognized
	}
}

func (r Role) String() string {
	switch r {
	case RoleClient:
		return "CLIENT"
	case RoleOperator:
		return "OPERATOR"
	case RoleAdmin:
		return "ADMIN"
	default:
		return "UNRECOGNIZED"
	}
}
