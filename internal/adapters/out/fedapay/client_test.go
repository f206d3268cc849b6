package fedapay_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"lytefood/internal/adapters/out/fedapay"
	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyTransaction_Approved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/transactions/trx-123", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"transaction": {"reference": "ref-123", "status": "approved", "amount": 2360}}`))
	}))
	defer server.Close()

	client := fedapay.NewClient(server.URL, "sk_test")

	transaction, err := client.VerifyTransaction(context.Background(), "trx-123")

	require.NoError(t, err)
	assert.Equal(t, "ref-123", transaction.Reference)
	assert.Equal(t, "approved", transaction.Status)
	expected, err := kernel.NewMoneyFromString("2360")
	require.NoError(t, err)
	assert.True(t, transaction.Amount.IsEqual(expected))
}

func TestVerifyTransaction_GatewayRejects_ReturnsVerificationFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := fedapay.NewClient(server.URL, "sk_test")

	_, err := client.VerifyTransaction(context.Background(), "trx-missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrVerificationFailed)
}

func TestVerifyTransaction_GatewayUnreachable_ReturnsVerificationFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	client := fedapay.NewClient(server.URL, "sk_test")

	_, err := client.VerifyTransaction(context.Background(), "trx-123")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrVerificationFailed)
}

func TestVerifyTransaction_EmptyID_ReturnsRequired(t *testing.T) {
	client := fedapay.NewClient("http://localhost", "sk_test")

	_, err := client.VerifyTransaction(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRefund_Accepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/transactions/ref-123/refunds", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"refund": {"reference": "rfd-9", "status": "approved", "amount": 2360}}`))
	}))
	defer server.Close()

	client := fedapay.NewClient(server.URL, "sk_test")
	amount, err := kernel.NewMoneyFromString("2360")
	require.NoError(t, err)

	refund, err := client.Refund(context.Background(), "ref-123", amount)

	require.NoError(t, err)
	assert.Equal(t, "rfd-9", refund.Reference)
	assert.Equal(t, "approved", refund.Status)
}

func TestRefund_GatewayError_ReturnsVerificationFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := fedapay.NewClient(server.URL, "sk_test")

	_, err := client.Refund(context.Background(), "ref-123", kernel.Zero())

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrVerificationFailed)
}
