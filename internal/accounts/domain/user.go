package domain

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string  // argon2 encoded
	Role         Role
	OTP          *string // single pending recovery code (nullable, overwritten on each issuance)
	Locked       bool
	Active       bool
	JoinedAt     time.Time
	LastLoginAt  *time.Time // nullable until first login
}
