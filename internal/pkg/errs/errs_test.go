package errs_test

import (
	"errors"
	"testing"

	"lytefood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("userId", "123")

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("userId", "123", cause)

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with numeric ID", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("delivery_address")

		assert.Equal(t, "delivery_address", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: delivery_address", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("delivery_address", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: delivery_address (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestNotAuthorizedError(t *testing.T) {
	t.Run("NewNotAuthorizedError", func(t *testing.T) {
		err := errs.NewNotAuthorizedError("cancel order")

		assert.Equal(t, "cancel order", err.Action)
		require.NoError(t, err.Cause)
		assert.Equal(t, "not authorized: cancel order", err.Error())
		assert.Equal(t, errs.ErrNotAuthorized, err.Unwrap())
	})

	t.Run("NewNotAuthorizedErrorWithCause", func(t *testing.T) {
		cause := errors.New("order belongs to another customer")
		err := errs.NewNotAuthorizedErrorWithCause("cancel order", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "not authorized: cancel order (cause: order belongs to another customer)", err.Error())
	})
}

func TestStateConflictError(t *testing.T) {
	t.Run("NewStateConflictError", func(t *testing.T) {
		err := errs.NewStateConflictError("livré", "prêt")

		assert.Equal(t, "livré", err.Current)
		assert.Equal(t, "prêt", err.Required)
		assert.Equal(t, "state conflict: current state is livré, required state is prêt", err.Error())
		assert.Equal(t, errs.ErrStateConflict, err.Unwrap())
	})

	t.Run("sanitizes newlines in current state", func(t *testing.T) {
		err := errs.NewStateConflictError("foo\nbar", "prêt")
		assert.Contains(t, err.Error(), "foo bar")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestConcurrencyConflictError(t *testing.T) {
	err := errs.NewConcurrencyConflictError("order", 42)

	assert.Equal(t, "order", err.ParamName)
	assert.Equal(t, 42, err.ID)
	assert.Equal(t, "concurrent modification: param is: order, ID is: 42", err.Error())
	assert.Equal(t, errs.ErrConcurrencyConflict, err.Unwrap())
}

func TestVerificationFailedError(t *testing.T) {
	t.Run("NewVerificationFailedError", func(t *testing.T) {
		err := errs.NewVerificationFailedError("txn_123")

		assert.Equal(t, "txn_123", err.Reference)
		assert.Equal(t, "external verification failed: txn_123", err.Error())
		assert.Equal(t, errs.ErrVerificationFailed, err.Unwrap())
	})

	t.Run("NewVerificationFailedErrorWithCause", func(t *testing.T) {
		cause := errors.New("gateway returned 503")
		err := errs.NewVerificationFailedErrorWithCause("txn_123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "external verification failed: txn_123 (cause: gateway returned 503)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "not authorized", errs.ErrNotAuthorized.Error())
		assert.Equal(t, "state conflict", errs.ErrStateConflict.Error())
		assert.Equal(t, "concurrent modification", errs.ErrConcurrencyConflict.Error())
		assert.Equal(t, "external verification failed", errs.ErrVerificationFailed.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("userId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("address"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewNotAuthorizedError("assign"), errs.ErrNotAuthorized)
		require.ErrorIs(t, errs.NewStateConflictError("livré", "prêt"), errs.ErrStateConflict)
		require.ErrorIs(t, errs.NewConcurrencyConflictError("order", 1), errs.ErrConcurrencyConflict)
		require.ErrorIs(t, errs.NewVerificationFailedError("txn"), errs.ErrVerificationFailed)
	})
}
