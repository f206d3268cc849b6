package ports

// CredentialHasher hashes and verifies passwords. The domain only ever sees
// the resulting hashes.
type CredentialHasher interface {
	Hash(password string) (string, error)

	// Verify reports whether the password matches the stored hash.
	Verify(hashedPassword, password string) bool
}

// TokenClaims is the identity carried inside an access token.
type TokenClaims struct {
	UserID int64
	Email  string
}

// TokenService issues and validates signed access tokens.
type TokenService interface {
	Issue(claims TokenClaims) (string, error)

	// Parse validates the token signature and expiry and returns the claims.
	// Invalid or expired tokens surface as errs.ErrNotAuthorized.
	Parse(token string) (TokenClaims, error)
}
