package errs_test

import (
	"errors"
	"testing"

	"dealership/internal/pkg/errs"

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
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
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

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("age", 150, 0, 120)

		assert.Equal(t, "age", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is age, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("username")

		assert.Equal(t, "username", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: username", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("username", cause)

		assert.Equal(t, "username", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: username (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestPaymentError(t *testing.T) {
	t.Run("NewPaymentError", func(t *testing.T) {
		err := errs.NewPaymentError("invalid card number")

		assert.Equal(t, "invalid card number", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t, "payment rejected: invalid card number", err.Error())
		assert.Equal(t, errs.ErrPaymentRejected, err.Unwrap())
	})

	t.Run("NewPaymentErrorWithCause", func(t *testing.T) {
		cause := errors.New("luhn check failed")
		err := errs.NewPaymentErrorWithCause("invalid card number", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "payment rejected: invalid card number (cause: luhn check failed)", err.Error())
	})
}

func TestInventoryError(t *testing.T) {
	err := errs.NewInventoryError("veh-1", 3, 1)

	assert.Equal(t, "veh-1", err.VehicleID)
	assert.Equal(t, 3, err.Requested)
	assert.Equal(t, 1, err.Available)
	assert.Equal(t, "insufficient inventory: vehicle veh-1, requested 3, available 1", err.Error())
	assert.Equal(t, errs.ErrInventoryShortage, err.Unwrap())
}

func TestVehicleUnavailableError(t *testing.T) {
	err := errs.NewVehicleUnavailableError("veh-9")

	assert.Equal(t, "veh-9", err.VehicleID)
	assert.Equal(t, "vehicle unavailable: veh-9", err.Error())
	assert.Equal(t, errs.ErrVehicleUnavailable, err.Unwrap())
}

func TestAuthorizationError(t *testing.T) {
	err := errs.NewAuthorizationError("read order")

	assert.Equal(t, "read order", err.Action)
	assert.Equal(t, "not authorized: read order", err.Error())
	assert.Equal(t, errs.ErrAuthorization, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrCartEmpty)
		require.Error(t, errs.ErrOrderNumberTaken)
		require.Error(t, errs.ErrOrderNumberExhausted)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "cart is empty", errs.ErrCartEmpty.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("userId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("email")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("age", 150, 0, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		paymentErr := errs.NewPaymentError("invalid cvv")
		require.ErrorIs(t, paymentErr, errs.ErrPaymentRejected)

		inventoryErr := errs.NewInventoryError("veh-1", 2, 0)
		require.ErrorIs(t, inventoryErr, errs.ErrInventoryShortage)

		authErr := errs.NewAuthorizationError("list orders")
		require.ErrorIs(t, authErr, errs.ErrAuthorization)
	})
}
