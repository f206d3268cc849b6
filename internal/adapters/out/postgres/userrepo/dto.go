// Package userrepo provides data transfer objects and mapping functions for
// account persistence.
package userrepo

import (
	"time"

	"lytefood/internal/core/domain/model/user"
)

// UserDTO represents the database row for a user account.
type UserDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Email           string `gorm:"uniqueIndex"`
	HashedPassword  string
	FirstName       string
	LastName        string
	PhoneNumber     string
	DeliveryAddress string
	IsActive        bool
	IsLivreur       bool
	IsAdmin         bool
	IsSuperAdmin    bool
}

func (UserDTO) TableName() string {
	return "users"
}

// ResetTokenDTO represents one stored password reset code.
type ResetTokenDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"index"`
	Code      string
	ExpiresAt time.Time
}

func (ResetTokenDTO) TableName() string {
	return "password_reset_tokens"
}

func fromDomain(aggregate *user.User) UserDTO {
	profile := aggregate.Profile()
	roles := aggregate.Roles()

	return UserDTO{
		ID:              aggregate.ID(),
		Email:           aggregate.Email(),
		HashedPassword:  aggregate.HashedPassword(),
		FirstName:       profile.FirstName,
		LastName:        profile.LastName,
		PhoneNumber:     profile.PhoneNumber,
		DeliveryAddress: profile.DeliveryAddress,
		IsActive:        roles.IsActive,
		IsLivreur:       roles.IsLivreur,
		IsAdmin:         roles.IsAdmin,
		IsSuperAdmin:    roles.IsSuperAdmin,
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(user.RestoreUserParams{
		ID:             dto.ID,
		Email:          dto.Email,
		HashedPassword: dto.HashedPassword,
		Profile: user.Profile{
			FirstName:       dto.FirstName,
			LastName:        dto.LastName,
			PhoneNumber:     dto.PhoneNumber,
			DeliveryAddress: dto.DeliveryAddress,
		},
		Roles: user.Roles{
			IsActive:     dto.IsActive,
			IsLivreur:    dto.IsLivreur,
			IsAdmin:      dto.IsAdmin,
			IsSuperAdmin: dto.IsSuperAdmin,
		},
	})
}
