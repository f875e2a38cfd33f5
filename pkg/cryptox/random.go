package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateAlphanumeric creates a cryptographically secure random string of
// uppercase letters and digits. Recovery codes sent to users are generated
// with this so they survive email clients that mangle case.
func GenerateAlphanumeric(length int) (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	if length <= 0 {
		return "", fmt.Errorf("length must be positive, got %d", length)
	}
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("failed to generate random code: %w", err)
		}
		code[i] = charset[n.Int64()]
	}
	return string(code), nil
}
