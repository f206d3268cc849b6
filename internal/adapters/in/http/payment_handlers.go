package http

import (
	"encoding/json"
	"net/http"

	"lytefood/internal/core/application/usecases/commands"
	"lytefood/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// paymentCallbackRequest mirrors the gateway's callback payload. Field names
// follow the bridge contract, including the French "commande_id".
type paymentCallbackRequest struct {
	TransactionID string      `json:"transaction_id"`
	OrderID       int64       `json:"commande_id"`
	Status        string      `json:"status"`
	Amount        json.Number `json:"amount"`
}

type paymentCallbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PaymentCallback handles POST /api/v1/payments/callback. The claimed status
// is only acted upon after the transaction is re-fetched from the gateway.
func (s *Server) PaymentCallback(ctx echo.Context) error {
	var req paymentCallbackRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	amount := kernel.Zero()
	if req.Amount != "" {
		parsed, err := kernel.NewMoneyFromString(req.Amount.String())
		if err != nil {
			return badRequest(ctx, "invalid amount")
		}
		amount = parsed
	}

	cmd, err := commands.NewConfirmPaymentCommand(req.TransactionID, req.OrderID, req.Status, amount)
	if err != nil {
		return writeError(ctx, err)
	}

	confirmed, err := s.handlers.ConfirmPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	if !confirmed {
		return ctx.JSON(http.StatusOK, paymentCallbackResponse{
			Success: false,
			Message: "payment not approved",
		})
	}

	return ctx.JSON(http.StatusOK, paymentCallbackResponse{
		Success: true,
		Message: "payment confirmed",
	})
}
