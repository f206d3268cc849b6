package ports

import "context"

// ResetCodeMailer delivers password reset codes to users. The default
// adapter only logs; wiring a real mail provider is a deployment concern.
type ResetCodeMailer interface {
	SendResetCode(ctx context.Context, email, code string) error
}
