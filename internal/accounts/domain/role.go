package domain

// Role is the fixed account role enumeration. External registrations reuse
// the employee role, so there is no dedicated external value.
type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleStudent  Role = "STUDENT"
	RoleGuest    Role = "GUEST"
)

// AuthorityTable maps roles to the authorities granted to accounts holding
// them. The table is injected into services at construction; authorities are
// derived from the role on demand and never persisted.
type AuthorityTable map[Role][]string

// Authorities returns the authority list for a role, or nil for unknown roles.
func (t AuthorityTable) Authorities(r Role) []string {
	return t[r]
}

// DefaultAuthorities is the standard role to authority mapping.
func DefaultAuthorities() AuthorityTable {
	return AuthorityTable{
		RoleEmployee: {"profile:read", "profile:write", "accounts:read"},
		RoleStudent:  {"profile:read", "profile:write"},
		RoleGuest:    {"profile:read"},
	}
}
