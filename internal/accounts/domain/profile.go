package domain

import "time"

// ProfileKind discriminates the four person-profile variants.
type ProfileKind string

const (
	ProfileEmployee ProfileKind = "employee"
	ProfileStudent  ProfileKind = "student"
	ProfileExternal ProfileKind = "external"
	ProfileGuest    ProfileKind = "guest"
)

// Valid reports whether k is one of the known profile kinds.
func (k ProfileKind) Valid() bool {
	switch k {
	case ProfileEmployee, ProfileStudent, ProfileExternal, ProfileGuest:
		return true
	}
	return false
}

// Role returns the account role granted to users registered against this
// profile kind. Externals are staff-equivalent and reuse the employee role.
func (k ProfileKind) Role() Role {
	switch k {
	case ProfileStudent:
		return RoleStudent
	case ProfileGuest:
		return RoleGuest
	default:
		return RoleEmployee
	}
}

// Profile is a person-type record (employee, student, external or guest)
// owning at most one user. Number is the domain-specific identifying number
// and Email is the address used for one-time code delivery.
type Profile struct {
	ID        string
	Kind      ProfileKind
	Number    string
	Email     string
	UserID    *string // set once a user has been registered against the profile
	CreatedAt time.Time
	UpdatedAt time.Time
}
