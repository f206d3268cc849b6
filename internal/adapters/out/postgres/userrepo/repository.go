package userrepo

import (
	"context"
	"errors"

	"lytefood/internal/core/domain/model/user"
	"lytefood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add inserts the account and binds the generated id to the aggregate.
// A duplicate email surfaces as a state conflict.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewStateConflictErrorWithCause(
				"email already registered", "a free email", err)
		}
		return err
	}

	return aggregate.AttachID(dto.ID)
}

// Update overwrites the account row.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("userId", dto.ID)
	}

	return nil
}

// Get retrieves an account by id.
func (r *GormUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("userId")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves an account by email.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ReplaceResetToken deletes any stored codes for the token's user, then
// inserts the new one. One live code per user at any time.
func (r *GormUserRepository) ReplaceResetToken(ctx context.Context, token user.PasswordResetToken) error {
	err := r.db.WithContext(ctx).
		Delete(&ResetTokenDTO{}, "user_id = ?", token.UserID()).Error
	if err != nil {
		return err
	}

	dto := ResetTokenDTO{
		UserID:    token.UserID(),
		Code:      token.Code(),
		ExpiresAt: token.ExpiresAt(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetResetToken retrieves the stored reset code for a user.
func (r *GormUserRepository) GetResetToken(ctx context.Context, userID int64) (user.PasswordResetToken, error) {
	var dto ResetTokenDTO
	err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.PasswordResetToken{}, errs.NewObjectNotFoundError("userId", userID)
		}
		return user.PasswordResetToken{}, err
	}

	return user.RestorePasswordResetToken(dto.ID, dto.UserID, dto.Code, dto.ExpiresAt), nil
}

// DeleteResetTokens removes all reset codes of a user.
func (r *GormUserRepository) DeleteResetTokens(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Delete(&ResetTokenDTO{}, "user_id = ?", userID).Error
}
