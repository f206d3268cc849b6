package http

import (
	"net/http"

	"lytefood/internal/core/application/usecases/commands"
	"lytefood/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	PhoneNumber     string `json:"phone_number"`
	DeliveryAddress string `json:"delivery_address"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

// Register handles POST /api/v1/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(req.Email, req.Password, user.Profile{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		PhoneNumber:     req.PhoneNumber,
		DeliveryAddress: req.DeliveryAddress,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: id})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAuthenticateUserCommand(req.Email, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	token, err := s.handlers.AuthenticateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// ForgotPassword handles POST /api/v1/auth/forgot-password. The answer is
// the same whether or not the email is registered.
func (s *Server) ForgotPassword(ctx echo.Context) error {
	var req forgotPasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRequestPasswordResetCommand(req.Email)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.RequestPasswordReset.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{
		Message: "if the email is registered, a reset code has been sent",
	})
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

// ResetPassword handles POST /api/v1/auth/reset-password.
func (s *Server) ResetPassword(ctx echo.Context) error {
	var req resetPasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewResetPasswordCommand(req.Email, req.Code, req.NewPassword)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.ResetPassword.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "password updated"})
}

type profileResponse struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	PhoneNumber     string `json:"phone_number"`
	DeliveryAddress string `json:"delivery_address"`
	IsLivreur       bool   `json:"is_livreur"`
	IsAdmin         bool   `json:"is_admin"`
	IsSuperAdmin    bool   `json:"is_super_admin"`
}

// GetProfile handles GET /api/v1/users/me.
func (s *Server) GetProfile(ctx echo.Context) error {
	account := currentUser(ctx)
	profile := account.Profile()

	return ctx.JSON(http.StatusOK, profileResponse{
		ID:              account.ID(),
		Email:           account.Email(),
		FirstName:       profile.FirstName,
		LastName:        profile.LastName,
		PhoneNumber:     profile.PhoneNumber,
		DeliveryAddress: profile.DeliveryAddress,
		IsLivreur:       account.IsLivreur(),
		IsAdmin:         account.IsAdmin(),
		IsSuperAdmin:    account.IsSuperAdmin(),
	})
}

type updateProfileRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	PhoneNumber     *string `json:"phone_number"`
	DeliveryAddress *string `json:"delivery_address"`
	Password        *string `json:"password"`
}

// UpdateProfile handles PUT /api/v1/users/me.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	var req updateProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	account := currentUser(ctx)
	cmd, err := commands.NewUpdateProfileCommand(account.ID(), user.ProfilePatch{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		PhoneNumber:     req.PhoneNumber,
		DeliveryAddress: req.DeliveryAddress,
	}, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.UpdateProfile.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "profile updated"})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
