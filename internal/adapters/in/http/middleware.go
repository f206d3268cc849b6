package http

import (
	"net/http"
	"strings"

	"lytefood/internal/core/application/usecases/commands"
	"lytefood/internal/core/domain/model/user"
	"lytefood/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const currentUserKey = "currentUser"

// AuthMiddleware authenticates requests from the Authorization header and
// loads the account behind the token. Deactivated accounts are refused even
// when their token is still valid.
type AuthMiddleware struct {
	tokens     ports.TokenService
	uowFactory commands.UserUoWFactory
}

// NewAuthMiddleware creates the authentication middleware.
func NewAuthMiddleware(tokens ports.TokenService, uowFactory commands.UserUoWFactory) AuthMiddleware {
	return AuthMiddleware{
		tokens:     tokens,
		uowFactory: uowFactory,
	}
}

// RequireAuth validates the bearer token and stores the loaded user in the
// request context.
func (m AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "missing bearer token",
			})
		}

		claims, err := m.tokens.Parse(token)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "invalid or expired token",
			})
		}

		account, err := m.loadUser(ctx, claims.UserID)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "unknown account",
			})
		}
		if !account.IsActive() {
			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "account deactivated",
			})
		}

		ctx.Set(currentUserKey, account)
		return next(ctx)
	}
}

func (m AuthMiddleware) loadUser(ctx echo.Context, id int64) (*user.User, error) {
	reqCtx := ctx.Request().Context()

	uow := m.uowFactory.Create()
	if err := uow.Begin(reqCtx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(reqCtx)
	}()

	return uow.UserRepository().Get(reqCtx, id)
}

// currentUser returns the account stored by RequireAuth.
func currentUser(ctx echo.Context) *user.User {
	account, _ := ctx.Get(currentUserKey).(*user.User)
	return account
}

// RequireAdmin refuses requests from non-admin accounts. Must run after
// RequireAuth.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		account := currentUser(ctx)
		if account == nil || !account.IsAdmin() {
			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "admin role required",
			})
		}
		return next(ctx)
	}
}

// RequireSuperAdmin refuses requests from accounts without the super-admin
// flag. Must run after RequireAuth.
func RequireSuperAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		account := currentUser(ctx)
		if account == nil || !account.IsSuperAdmin() {
			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "super-admin role required",
			})
		}
		return next(ctx)
	}
}

// RequireLivreur refuses requests from accounts without the livreur flag.
// Must run after RequireAuth.
func RequireLivreur(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		account := currentUser(ctx)
		if account == nil || !account.IsLivreur() {
			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "livreur role required",
			})
		}
		return next(ctx)
	}
}
