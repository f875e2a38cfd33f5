package service

import (
	"github.com/aussiebroadwan/campuspass/pkg/cryptox"
)

// OTPLength is the number of characters in a recovery code.
const OTPLength = 10

// OTPEngine issues and checks one-time recovery codes. Codes are uniform
// random alphanumeric strings with no expiry; a code stays valid until it
// is consumed or overwritten by the next issuance.
type OTPEngine struct{}

// Generate returns a fresh recovery code.
func (OTPEngine) Generate() (string, error) {
	return cryptox.GenerateAlphanumeric(OTPLength)
}

// Matches reports whether the submitted code equals the stored one.
// A nil stored code never matches; there is no pending code to consume.
func (OTPEngine) Matches(stored *string, submitted string) bool {
	if stored == nil || submitted == "" {
		return false
	}
	return *stored == submitted
}
