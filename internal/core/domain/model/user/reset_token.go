package user

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"lytefood/internal/pkg/errs"
)

// ResetTokenTTL is how long a password reset code stays usable.
const ResetTokenTTL = 15 * time.Minute

const resetCodeDigits = 5

// PasswordResetToken is a short-lived numeric code mailed to a user who
// forgot their password. At most one token per user exists at a time; the
// repository replaces any previous one on save.
type PasswordResetToken struct {
	id        int64
	userID    int64
	code      string
	expiresAt time.Time
}

// NewPasswordResetToken issues a fresh 5-digit code for the user, valid for
// ResetTokenTTL from now.
func NewPasswordResetToken(userID int64, now time.Time) (PasswordResetToken, error) {
	if userID <= 0 {
		return PasswordResetToken{}, errs.NewValueIsInvalidError("user_id")
	}

	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		return PasswordResetToken{}, fmt.Errorf("generate reset code: %w", err)
	}

	return PasswordResetToken{
		userID:    userID,
		code:      fmt.Sprintf("%0*d", resetCodeDigits, n.Int64()),
		expiresAt: now.UTC().Add(ResetTokenTTL),
	}, nil
}

// RestorePasswordResetToken rebuilds a token from persistence.
func RestorePasswordResetToken(id, userID int64, code string, expiresAt time.Time) PasswordResetToken {
	return PasswordResetToken{id: id, userID: userID, code: code, expiresAt: expiresAt}
}

func (t PasswordResetToken) ID() int64 {
	return t.id
}

func (t PasswordResetToken) UserID() int64 {
	return t.userID
}

func (t PasswordResetToken) Code() string {
	return t.code
}

func (t PasswordResetToken) ExpiresAt() time.Time {
	return t.expiresAt
}

// Matches reports whether the presented code equals this token's code and the
// token has not expired at the given instant.
func (t PasswordResetToken) Matches(code string, now time.Time) bool {
	return t.code == code && now.Before(t.expiresAt)
}
