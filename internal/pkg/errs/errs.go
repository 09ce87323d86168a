package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap targets for the typed errors below.
// Callers classify failures with errors.Is against these values.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrPaymentRejected    = errors.New("payment rejected")
	ErrVehicleUnavailable = errors.New("vehicle unavailable")
	ErrInventoryShortage  = errors.New("insufficient inventory")
	ErrAuthorization      = errors.New("not authorized")

	// ErrCartEmpty is returned when checkout finds no items in the user's cart.
	ErrCartEmpty = errors.New("cart is empty")

	// ErrOrderNumberTaken signals that an order insert hit the unique constraint
	// on order_number. It triggers one regeneration cycle in the checkout handler.
	ErrOrderNumberTaken = errors.New("order number already exists")

	// ErrOrderNumberExhausted is returned after the bounded number of order-number
	// generation attempts all collided.
	ErrOrderNumberExhausted = errors.New("order number generation attempts exhausted")
)

// sanitize flattens newlines out of error messages so a single log line
// always holds the whole message.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that an object could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsOutOfRangeError indicates that a value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// PaymentError indicates that the submitted card data failed structural validation.
// It never carries the PAN or CVV, only the reason the card was rejected.
type PaymentError struct {
	Reason string
	Cause  error
}

// NewPaymentError creates a PaymentError without an underlying cause.
func NewPaymentError(reason string) *PaymentError {
	return &PaymentError{Reason: reason}
}

// NewPaymentErrorWithCause creates a PaymentError wrapping an underlying cause.
func NewPaymentErrorWithCause(reason string, cause error) *PaymentError {
	return &PaymentError{Reason: reason, Cause: cause}
}

func (e *PaymentError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrPaymentRejected, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrPaymentRejected, e.Reason))
}

func (e *PaymentError) Unwrap() error {
	return ErrPaymentRejected
}

// VehicleUnavailableError indicates that a cart references a vehicle that no longer
// exists in the catalog.
type VehicleUnavailableError struct {
	VehicleID string
}

// NewVehicleUnavailableError creates a VehicleUnavailableError for the given vehicle.
func NewVehicleUnavailableError(vehicleID string) *VehicleUnavailableError {
	return &VehicleUnavailableError{VehicleID: vehicleID}
}

func (e *VehicleUnavailableError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrVehicleUnavailable, e.VehicleID))
}

func (e *VehicleUnavailableError) Unwrap() error {
	return ErrVehicleUnavailable
}

// InventoryError indicates that a vehicle's stock cannot cover the requested quantity.
// Available always carries the stock level observed at check time so the caller can
// report it back to the shopper.
type InventoryError struct {
	VehicleID string
	Requested int
	Available int
}

// NewInventoryError creates an InventoryError for the given vehicle and quantities.
func NewInventoryError(vehicleID string, requested, available int) *InventoryError {
	return &InventoryError{VehicleID: vehicleID, Requested: requested, Available: available}
}

func (e *InventoryError) Error() string {
	return sanitize(fmt.Sprintf("%s: vehicle %s, requested %d, available %d",
		ErrInventoryShortage, e.VehicleID, e.Requested, e.Available))
}

func (e *InventoryError) Unwrap() error {
	return ErrInventoryShortage
}

// AuthorizationError indicates that the requester is not allowed to perform an action.
type AuthorizationError struct {
	Action string
}

// NewAuthorizationError creates an AuthorizationError for the given action.
func NewAuthorizationError(action string) *AuthorizationError {
	return &AuthorizationError{Action: action}
}

func (e *AuthorizationError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrAuthorization, e.Action))
}

func (e *AuthorizationError) Unwrap() error {
	return ErrAuthorization
}
