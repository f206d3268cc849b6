package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUsersQueryHandler retrieves the user roster.
type GetUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersQueryHandler creates a handler for the user roster.
func NewGetUsersQueryHandler(db *gorm.DB) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db}
}

// Handle returns every registered user with their role flags.
func (h GetUsersQueryHandler) Handle(ctx context.Context, query GetUsersQuery) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var users []UserResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, email, first_name, last_name, phone_number,
		       delivery_address, is_active, is_livreur, is_admin, is_super_admin
		FROM users
		ORDER BY id
	`).Scan(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}
