package commands

import (
	"context"
	"errors"
	"time"

	"lytefood/internal/core/ports"
	"lytefood/internal/pkg/errs"
)

// ResetPasswordCommandHandler redeems a reset code. A valid, unexpired code
// replaces the password and burns every outstanding token of the account.
type ResetPasswordCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.CredentialHasher
}

// NewResetPasswordCommandHandler creates a handler for password resets.
func NewResetPasswordCommandHandler(uowFactory UserUoWFactory, hasher ports.CredentialHasher) ResetPasswordCommandHandler {
	return ResetPasswordCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle verifies the code and swaps the password in one transaction.
// Wrong or expired codes surface as errs.ErrNotAuthorized.
func (h *ResetPasswordCommandHandler) Handle(ctx context.Context, cmd ResetPasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	aggregate, err := userRepo.GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewNotAuthorizedError("reset password")
		}
		return err
	}

	token, err := userRepo.GetResetToken(ctx, aggregate.ID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewNotAuthorizedError("reset password")
		}
		return err
	}

	if !token.Matches(cmd.Code(), time.Now().UTC()) {
		return errs.NewNotAuthorizedError("reset password")
	}

	hashed, err := h.hasher.Hash(cmd.NewPassword())
	if err != nil {
		return err
	}
	if err = aggregate.SetHashedPassword(hashed); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = userRepo.DeleteResetTokens(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
