package accountsdk

import "time"

// JwtTokenHeader is the response header carrying the bearer token on a
// successful login.
const JwtTokenHeader = "Jwt-Token"

// ErrorResponse is the JSON envelope returned on failed requests.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// ProfilePayload is the person-profile half of a registration request.
// Email is only used for guest sign-ups; other kinds resolve the email from
// the provisioned record.
type ProfilePayload struct {
	Number string `json:"number" validate:"required"`
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
}

// RegisterRequest creates a new account against a person record. Exactly
// one of the profile variants should be set.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8"`

	Employee *ProfilePayload `json:"employee,omitempty"`
	Student  *ProfilePayload `json:"student,omitempty"`
	External *ProfilePayload `json:"external,omitempty"`
	Guest    *ProfilePayload `json:"guest,omitempty"`
}

// RegisterResponse echoes the created account. The account starts locked;
// the verification code was sent to the profile email.
type RegisterResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Locked   bool   `json:"locked"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse describes the authenticated account. The bearer token
// itself travels in the Jwt-Token response header, not the body.
type LoginResponse struct {
	UserID      string   `json:"user_id"`
	Username    string   `json:"username"`
	Role        string   `json:"role"`
	Authorities []string `json:"authorities"`
}

type ForgotPasswordRequest struct {
	Username string `json:"username" validate:"required"`
}

type VerifyForgotPasswordRequest struct {
	Username    string `json:"username" validate:"required"`
	OTP         string `json:"otp" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type VerifyOTPRequest struct {
	Username string `json:"username" validate:"required"`
	OTP      string `json:"otp" validate:"required"`
}

// VerifyOTPResponse reports the unlock outcome. A wrong code is not an
// error at this endpoint, just verified=false.
type VerifyOTPResponse struct {
	Verified bool `json:"verified"`
}

type ForgotUsernameRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyForgotUsernameRequest struct {
	OTP         string `json:"otp" validate:"required"`
	NewUsername string `json:"new_username" validate:"required,min=3,max=64"`
}

// MessageResponse is a generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserRecord is one row of the account listing.
type UserRecord struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Role        string     `json:"role"`
	Locked      bool       `json:"locked"`
	Active      bool       `json:"active"`
	JoinedAt    time.Time  `json:"joined_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

type ListUsersResponse struct {
	Users []UserRecord `json:"users"`
}
