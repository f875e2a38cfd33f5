package domain

// ProfileInput is the profile half of a registration request. Email is only
// consulted for guests, who carry their own delivery address; every other
// kind resolves the email from the pre-existing profile record.
type ProfileInput struct {
	Number string
	Email  string
}

// Registration is the transient sign-up aggregate: candidate credentials plus
// at most one populated person-profile variant. It is never persisted as its
// own entity.
type Registration struct {
	Username string
	Password string

	Employee *ProfileInput
	Student  *ProfileInput
	External *ProfileInput
	Guest    *ProfileInput
}

// Resolve returns the populated profile variant. When more than one variant
// is mistakenly populated the fixed precedence employee > student > external
// > guest applies; the first variant carrying a number wins. The boolean is
// false when no variant is populated.
func (r Registration) Resolve() (ProfileKind, ProfileInput, bool) {
	switch {
	case r.Employee != nil && r.Employee.Number != "":
		return ProfileEmployee, *r.Employee, true
	case r.Student != nil && r.Student.Number != "":
		return ProfileStudent, *r.Student, true
	case r.External != nil && r.External.Number != "":
		return ProfileExternal, *r.External, true
	case r.Guest != nil && r.Guest.Number != "":
		return ProfileGuest, *r.Guest, true
	}
	return "", ProfileInput{}, false
}
