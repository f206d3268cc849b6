package commands

import (
	"context"
	"errors"

	"lytefood/internal/core/ports"
	"lytefood/internal/pkg/errs"
)

// AuthenticateUserCommandHandler handles login. Unknown emails, wrong
// passwords, and deactivated accounts all fail the same way so the endpoint
// cannot be used to probe which emails exist.
type AuthenticateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.CredentialHasher
	tokens     ports.TokenService
}

// NewAuthenticateUserCommandHandler creates a handler for logins.
func NewAuthenticateUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.CredentialHasher,
	tokens ports.TokenService,
) AuthenticateUserCommandHandler {
	return AuthenticateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle verifies the credentials and returns a signed access token.
func (h *AuthenticateUserCommandHandler) Handle(ctx context.Context, cmd AuthenticateUserCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", errs.NewNotAuthorizedError("authenticate")
		}
		return "", err
	}

	if !aggregate.IsActive() || !h.hasher.Verify(aggregate.HashedPassword(), cmd.Password()) {
		return "", errs.NewNotAuthorizedError("authenticate")
	}

	return h.tokens.Issue(ports.TokenClaims{
		UserID: aggregate.ID(),
		Email:  aggregate.Email(),
	})
}
