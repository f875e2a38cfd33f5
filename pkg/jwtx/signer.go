package jwtx

// Signer mints signed access tokens. The concrete implementation chooses
// the algorithm and key formats; callers treat the token as opaque.
type Signer interface {
	// SignAccessToken returns a compact JWS for the given claims.
	SignAccessToken(claims Claims) (string, error)

	// KeyID returns the identifier published in the JWKS for the
	// active signing key.
	KeyID() string
}

// Verifier checks access tokens produced by a Signer.
type Verifier interface {
	// VerifyAccessToken parses and validates the token signature and
	// registered claims, returning the embedded Claims on success.
	VerifyAccessToken(token string) (*Claims, error)
}
