package http

import (
	"net/http"
	"strconv"

	"lytefood/internal/core/application/usecases/commands"
	"lytefood/internal/core/application/usecases/queries"
	"lytefood/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// GetDashboardStats handles GET /api/v1/admin/dashboard.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	stats, err := s.handlers.GetDashboardStats.Handle(
		ctx.Request().Context(), queries.NewGetDashboardStatsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

// ListUsers handles GET /api/v1/admin/users for super-admins.
func (s *Server) ListUsers(ctx echo.Context) error {
	users, err := s.handlers.GetUsers.Handle(
		ctx.Request().Context(), queries.NewGetUsersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, users)
}

type createUserRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	PhoneNumber     string `json:"phone_number"`
	DeliveryAddress string `json:"delivery_address"`
	IsActive        bool   `json:"is_active"`
	IsLivreur       bool   `json:"is_livreur"`
	IsAdmin         bool   `json:"is_admin"`
	IsSuperAdmin    bool   `json:"is_super_admin"`
}

// CreateUser handles POST /api/v1/admin/users for super-admins.
func (s *Server) CreateUser(ctx echo.Context) error {
	var req createUserRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateUserCommand(req.Email, req.Password,
		user.Profile{
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			PhoneNumber:     req.PhoneNumber,
			DeliveryAddress: req.DeliveryAddress,
		},
		user.Roles{
			IsActive:     req.IsActive,
			IsLivreur:    req.IsLivreur,
			IsAdmin:      req.IsAdmin,
			IsSuperAdmin: req.IsSuperAdmin,
		})
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.handlers.CreateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: id})
}

type setUserRoleRequest struct {
	Flag  string `json:"flag"`
	Value bool   `json:"value"`
}

// SetUserRole handles PUT /api/v1/admin/users/:id/roles for super-admins.
// The flag is one of "admin", "super_admin", "livreur", "active".
func (s *Server) SetUserRole(ctx echo.Context) error {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		return badRequest(ctx, "invalid user id")
	}

	var req setUserRoleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	account := currentUser(ctx)
	cmd, err := commands.NewSetUserRoleCommand(
		userID, account.ID(), commands.RoleFlag(req.Flag), req.Value)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.SetUserRole.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "roles updated"})
}
