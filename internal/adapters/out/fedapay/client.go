// Package fedapay implements the payment gateway port against the FedaPay
// HTTP API. Only the two calls the application needs are covered: fetching a
// transaction for callback verification and requesting a refund.
package fedapay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/ports"
	"lytefood/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// Client talks to the FedaPay REST API with a secret key.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// NewClient creates a gateway client for the given API base URL, e.g.
// "https://sandbox-api.fedapay.com".
func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type transactionPayload struct {
	Reference string      `json:"reference"`
	Status    string      `json:"status"`
	Amount    json.Number `json:"amount"`
}

type transactionEnvelope struct {
	Transaction transactionPayload `json:"transaction"`
}

type refundEnvelope struct {
	Refund transactionPayload `json:"refund"`
}

// VerifyTransaction fetches the transaction from the gateway by its id.
// Callback payloads are checked against this answer, never trusted alone.
func (c *Client) VerifyTransaction(ctx context.Context, transactionID string) (ports.GatewayTransaction, error) {
	if transactionID == "" {
		return ports.GatewayTransaction{}, errs.NewValueIsRequiredError("transactionId")
	}

	url := fmt.Sprintf("%s/v1/transactions/%s", c.baseURL, transactionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.GatewayTransaction{}, err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.GatewayTransaction{}, errs.NewVerificationFailedErrorWithCause(transactionID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.GatewayTransaction{}, errs.NewVerificationFailedErrorWithCause(transactionID,
			fmt.Errorf("gateway answered %d", resp.StatusCode))
	}

	var envelope transactionEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return ports.GatewayTransaction{}, errs.NewVerificationFailedErrorWithCause(transactionID, err)
	}

	amount, err := amountFromNumber(envelope.Transaction.Amount)
	if err != nil {
		return ports.GatewayTransaction{}, errs.NewVerificationFailedErrorWithCause(transactionID, err)
	}

	reference := envelope.Transaction.Reference
	if reference == "" {
		reference = transactionID
	}

	return ports.GatewayTransaction{
		Reference: reference,
		Status:    envelope.Transaction.Status,
		Amount:    amount,
	}, nil
}

// Refund asks the gateway to return the amount of a past transaction.
func (c *Client) Refund(ctx context.Context, transactionRef string, amount kernel.Money) (ports.GatewayRefund, error) {
	if transactionRef == "" {
		return ports.GatewayRefund{}, errs.NewValueIsRequiredError("transactionRef")
	}

	body, err := json.Marshal(map[string]string{"amount": amount.String()})
	if err != nil {
		return ports.GatewayRefund{}, err
	}

	url := fmt.Sprintf("%s/v1/transactions/%s/refunds", c.baseURL, transactionRef)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return ports.GatewayRefund{}, err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.GatewayRefund{}, errs.NewVerificationFailedErrorWithCause(transactionRef, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return ports.GatewayRefund{}, errs.NewVerificationFailedErrorWithCause(transactionRef,
			fmt.Errorf("gateway answered %d", resp.StatusCode))
	}

	var envelope refundEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return ports.GatewayRefund{}, errs.NewVerificationFailedErrorWithCause(transactionRef, err)
	}

	refunded, err := amountFromNumber(envelope.Refund.Amount)
	if err != nil {
		return ports.GatewayRefund{}, errs.NewVerificationFailedErrorWithCause(transactionRef, err)
	}

	reference := envelope.Refund.Reference
	if reference == "" {
		reference = transactionRef
	}

	return ports.GatewayRefund{
		Reference: reference,
		Status:    envelope.Refund.Status,
		Amount:    refunded,
	}, nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")
}

func amountFromNumber(n json.Number) (kernel.Money, error) {
	if n == "" {
		return kernel.Zero(), nil
	}
	return kernel.NewMoneyFromString(n.String())
}

var _ ports.PaymentGateway = (*Client)(nil)
