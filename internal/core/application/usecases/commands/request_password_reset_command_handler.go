package commands

import (
	"context"
	"errors"
	"time"

	"lytefood/internal/core/domain/model/user"
	"lytefood/internal/core/ports"
	"lytefood/internal/pkg/errs"
)

// RequestPasswordResetCommandHandler handles forgot-password requests. A
// fresh code replaces any previous one and is handed to the mailer. Unknown
// emails succeed silently so the endpoint cannot be used for enumeration.
type RequestPasswordResetCommandHandler struct {
	uowFactory UserUoWFactory
	mailer     ports.ResetCodeMailer
}

// NewRequestPasswordResetCommandHandler creates a handler for reset requests.
func NewRequestPasswordResetCommandHandler(
	uowFactory UserUoWFactory,
	mailer ports.ResetCodeMailer,
) RequestPasswordResetCommandHandler {
	return RequestPasswordResetCommandHandler{
		uowFactory: uowFactory,
		mailer:     mailer,
	}
}

// Handle issues a reset code for the account and sends it by mail.
func (h *RequestPasswordResetCommandHandler) Handle(ctx context.Context, cmd RequestPasswordResetCommand) error {
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
			return nil
		}
		return err
	}

	token, err := user.NewPasswordResetToken(aggregate.ID(), time.Now())
	if err != nil {
		return err
	}

	if err = userRepo.ReplaceResetToken(ctx, token); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// The mail goes out after the commit; a mail failure must not roll the
	// token back, or the next attempt would race a half-sent state.
	return h.mailer.SendResetCode(ctx, aggregate.Email(), token.Code())
}
