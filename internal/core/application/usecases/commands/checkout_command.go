package commands

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// Card numbers carry 13 to 19 digits after separators are stripped.
const (
	minPANDigits = 13
	maxPANDigits = 19
)

// AddressInput carries one address section of a checkout request.
// Field-level validation happens in the domain; the command only requires the
// section to be present.
type AddressInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Street    string
	City      string
	Province  string
	Country   string
	Zip       string
}

// IsZero reports whether the section was omitted entirely.
func (a AddressInput) IsZero() bool {
	return a == AddressInput{}
}

// PaymentInput carries the payment section of a checkout request. The card
// number and CVV only ever live in memory for the duration of the request.
type PaymentInput struct {
	CardNumber string
	CVV        string
	Expiry     string
}

// IsZero reports whether the section was omitted entirely.
func (p PaymentInput) IsZero() bool {
	return p == PaymentInput{}
}

// CheckoutCommand represents a request to convert a user's cart into an order.
// Encapsulates the buyer identity, both address sections and the payment section.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(userID, billing, shipping, payment, false)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout request: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, pricing, orderNumbers)
//	createdOrder, err := handler.Handle(ctx, cmd)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	userID               kernel.UUID
	billing              AddressInput
	shipping             AddressInput
	payment              PaymentInput
	useShippingAsBilling bool

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to run checkout for the given user.
// Validates that the user ID is valid and that the billing, shipping and
// payment sections are all present. Returns an error if any validation fails.
func NewCheckoutCommand(
	userID kernel.UUID,
	billing, shipping AddressInput,
	paymentInput PaymentInput,
	useShippingAsBilling bool,
) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		useShippingAsBilling: useShippingAsBilling,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setUserID(userID),
		checkoutCommand.setBilling(billing),
		checkoutCommand.setShipping(shipping),
		checkoutCommand.setPayment(paymentInput),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCheckoutCommandIsNotConstructed if validation fails.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// UserID returns the buying user's identifier.
func (c CheckoutCommand) UserID() kernel.UUID {
	return c.userID
}

// Billing returns the billing address section.
func (c CheckoutCommand) Billing() AddressInput {
	return c.billing
}

// Shipping returns the shipping address section as submitted.
func (c CheckoutCommand) Shipping() AddressInput {
	return c.shipping
}

// Payment returns the payment section.
func (c CheckoutCommand) Payment() PaymentInput {
	return c.payment
}

// UseShippingAsBilling reports whether the shipping address should be
// replaced with a copy of the billing address.
func (c CheckoutCommand) UseShippingAsBilling() bool {
	return c.useShippingAsBilling
}

func (c *CheckoutCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CheckoutCommand) setBilling(billing AddressInput) error {
	if billing.IsZero() {
		return errs.NewValueIsRequiredError("billingInfo")
	}

	c.billing = billing
	return nil
}

func (c *CheckoutCommand) setShipping(shipping AddressInput) error {
	if shipping.IsZero() {
		return errs.NewValueIsRequiredError("shippingInfo")
	}

	c.shipping = shipping
	return nil
}

func (c *CheckoutCommand) setPayment(input PaymentInput) error {
	if input.IsZero() {
		return errs.NewValueIsRequiredError("paymentInfo")
	}

	// The Luhn check is length-agnostic, so the 13-19 digit bound lives here.
	digits := payment.NormalizePAN(input.CardNumber)
	if len(digits) < minPANDigits || len(digits) > maxPANDigits {
		return errs.NewValueIsOutOfRangeError(
			"cardNumber", len(digits), minPANDigits, maxPANDigits,
		)
	}

	c.payment = input
	return nil
}
