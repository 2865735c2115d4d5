package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"deliveryhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("product", int64(7))

		assert.Equal(t, "product", err.ParamName)
		assert.Equal(t, int64(7), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: product 7", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("customer", "123", cause)

		assert.Equal(t, "customer", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: customer, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("phone", cause)

		assert.Equal(t, "phone", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: phone (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 0, err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("stock", -5, 0, 100, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is stock, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("id_cliente")

		assert.Equal(t, "id_cliente", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: id_cliente", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("courier required for OutForDelivery")
		err := errs.NewValueIsRequiredErrorWithCause("courier", cause)

		assert.Equal(t, "value is required: courier (cause: courier required for OutForDelivery)", err.Error())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("insufficient stock")

		assert.Equal(t, "conflict: insufficient stock", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		err := errs.NewConflictErrorWithCause("customer is referenced", errors.New("fk violation"))

		assert.Equal(t, "conflict: customer is referenced", err.Error())
	})

	t.Run("errors.Is reaches the cause", func(t *testing.T) {
		cause := errors.New("fk violation")
		err := fmt.Errorf("delete customer: %w", errs.NewConflictErrorWithCause("customer is referenced", cause))

		require.ErrorIs(t, err, errs.ErrConflict)
		require.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, errs.NewConflictError("stock"), cause)
	})
}

func TestUnauthorizedError(t *testing.T) {
	err := errs.NewUnauthorizedError("token expired")

	assert.Equal(t, "unauthorized: token expired", err.Error())
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	withCause := errs.NewUnauthorizedErrorWithCause("bad signature", errors.New("hmac mismatch"))
	assert.Equal(t, "unauthorized: bad signature (cause: hmac mismatch)", withCause.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("order", 1), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("age", 150, 0, 120), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("username"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewConflictError("stock"), errs.ErrConflict)
	})

	t.Run("errors.As finds wrapped errors", func(t *testing.T) {
		wrapped := errors.Join(errors.New("first"), errs.NewValueIsRequiredError("name"))

		var target *errs.ValueIsRequiredError
		require.ErrorAs(t, wrapped, &target)
		assert.Equal(t, "name", target.ParamName)
	})
}
