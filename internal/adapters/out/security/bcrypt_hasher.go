// Package security implements the credential hashing and token issuing ports.
package security

import (
	"golang.org/x/crypto/bcrypt"

	"lytefood/internal/core/ports"
)

// BcryptHasher hashes passwords with bcrypt at the default cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with bcrypt's default cost.
func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash derives a salted hash from the password.
func (h BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the password matches the stored hash.
func (h BcryptHasher) Verify(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

var _ ports.CredentialHasher = BcryptHasher{}
