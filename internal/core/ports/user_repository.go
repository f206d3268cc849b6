package ports

import (
	"context"

	"lytefood/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for account aggregates.
type UserRepository interface {
	// Add persists a new user, binding the database-generated id to the
	// aggregate. A duplicate email surfaces as errs.ErrStateConflict.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by identifier.
	Get(ctx context.Context, id int64) (*user.User, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// ReplaceResetToken deletes any existing reset tokens for the token's
	// user and stores the new one.
	ReplaceResetToken(ctx context.Context, token user.PasswordResetToken) error

	// GetResetToken retrieves the stored reset token for a user, if any.
	GetResetToken(ctx context.Context, userID int64) (user.PasswordResetToken, error)

	// DeleteResetTokens removes all reset tokens of a user, typically after
	// a successful reset.
	DeleteResetTokens(ctx context.Context, userID int64) error
}
