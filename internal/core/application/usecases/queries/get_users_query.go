package queries

import (
	"errors"

	"lytefood/internal/pkg/guard"
)

var (
	ErrGetUsersQueryIsNotConstructed = errors.New(
		"GetUsersQuery must be created via NewGetUsersQuery constructor",
	)
)

// GetUsersQuery retrieves the full user roster for administrators.
type GetUsersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates a parameterless roster query.
func NewGetUsersQuery() GetUsersQuery {
	return GetUsersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

// UserResponse is one roster entry. Password hashes are never exposed here.
type UserResponse struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	PhoneNumber     string `json:"phone_number"`
	DeliveryAddress string `json:"delivery_address"`
	IsActive        bool   `json:"is_active"`
	IsLivreur       bool   `json:"is_livreur"`
	IsAdmin         bool   `json:"is_admin"`
	IsSuperAdmin    bool   `json:"is_super_admin"`
}
