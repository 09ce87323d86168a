package order

import (
	"errors"
	"fmt"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Totals is the price breakdown computed by the pricing engine and frozen on
// the order.
type Totals struct {
	Subtotal    kernel.Money
	TaxAmount   kernel.Money
	TotalAmount kernel.Money
}

// CardSummary is the only card data an order ever carries: the detected brand
// and the last four digits. The full PAN and CVV are never persisted.
type CardSummary struct {
	Brand    payment.Brand
	LastFour string
}

// Order is the financial record produced by a successful checkout. It is the
// aggregate root for the post-purchase lifecycle.
//
// Order follows these invariants:
//   - Subtotal equals the sum of its items' frozen line totals
//   - TotalAmount equals Subtotal plus TaxAmount
//   - Item prices never change after creation, whatever the catalog does later
//   - ProcessedAt, ShippedAt and DeliveredAt are each set at most once
//   - Orders are never deleted; only status, notes and lifecycle timestamps mutate
type Order struct {
	id          kernel.UUID
	orderNumber string
	userID      kernel.UUID
	status      Status
	totals      Totals
	billing     Address
	shipping    Address
	card        CardSummary
	adminNotes  string
	items       []Item

	processedAt *time.Time
	shippedAt   *time.Time
	deliveredAt *time.Time
	createdAt   time.Time

	isConstructed bool
}

// NewOrder creates an Order in Pending status from checkout output.
// It validates identity fields, the address snapshots, the card summary, and
// the consistency of the totals against the item snapshots.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	userID kernel.UUID,
	items []Item,
	totals Totals,
	billing, shipping Address,
	card CardSummary,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setUserID(userID),
		o.setItems(items),
		o.setAddresses(billing, shipping),
		o.setCard(card),
	); err != nil {
		return nil, err
	}

	if err := o.setTotals(totals); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// status, notes and lifecycle timestamps. Totals are trusted as stored and
// not re-checked against the items; the database is the system of record for
// historical orders.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	userID kernel.UUID,
	items []Item,
	totals Totals,
	billing, shipping Address,
	card CardSummary,
	status Status,
	adminNotes string,
	processedAt, shippedAt, deliveredAt *time.Time,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		totals:        totals,
		adminNotes:    adminNotes,
		processedAt:   processedAt,
		shippedAt:     shippedAt,
		deliveredAt:   deliveredAt,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setUserID(userID),
		o.setItems(items),
		o.setAddresses(billing, shipping),
		o.setCard(card),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable unique order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Totals returns the frozen price breakdown.
func (o *Order) Totals() Totals {
	return o.totals
}

// Billing returns the billing snapshot.
func (o *Order) Billing() Address {
	return o.billing
}

// Shipping returns the shipping snapshot.
func (o *Order) Shipping() Address {
	return o.shipping
}

// Card returns the stored card metadata (brand and last four digits only).
func (o *Order) Card() CardSummary {
	return o.card
}

// AdminNotes returns the notes attached by administrative actions.
func (o *Order) AdminNotes() string {
	return o.adminNotes
}

// Items returns a copy of the order's immutable line snapshots.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ProcessedAt returns when the order first entered Processing, if ever.
func (o *Order) ProcessedAt() *time.Time {
	return o.processedAt
}

// ShippedAt returns when the order first entered Shipped, if ever.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// DeliveredAt returns when the order first entered Delivered, if ever.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CreatedAt returns the order creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to newStatus. Any valid status may follow any
// other; no transition table is enforced. Entering Processing, Shipped or
// Delivered stamps the matching timestamp only on the first such transition.
func (o *Order) ChangeStatus(newStatus Status, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	now = now.UTC()

	switch newStatus {
	case Processing:
		if o.processedAt == nil {
			o.processedAt = &now
		}
	case Shipped:
		if o.shippedAt == nil {
			o.shippedAt = &now
		}
	case Delivered:
		if o.deliveredAt == nil {
			o.deliveredAt = &now
		}
	default:
	}

	return nil
}

// AttachAdminNotes records notes from an administrative action.
// Empty input leaves the existing notes untouched.
func (o *Order) AttachAdminNotes(notes string) {
	if notes != "" {
		o.adminNotes = notes
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setAddresses(billing, shipping Address) error {
	if err := billing.Validate(); err != nil {
		return err
	}
	if err := shipping.Validate(); err != nil {
		return err
	}
	o.billing = billing
	o.shipping = shipping
	return nil
}

func (o *Order) setCard(card CardSummary) error {
	if card.Brand == "" {
		return errs.NewValueIsRequiredError("cardType")
	}
	if len(card.LastFour) != 4 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cardLastFour",
			fmt.Errorf("expected 4 digits, got %d characters", len(card.LastFour)),
		)
	}
	o.card = card
	return nil
}

// setTotals checks the pricing invariants before freezing the breakdown:
// the subtotal must equal the sum of the item line totals, and the grand
// total must equal subtotal plus tax.
func (o *Order) setTotals(totals Totals) error {
	sum := kernel.ZeroMoney()
	for _, item := range o.items {
		sum = sum.Add(item.TotalPrice())
	}

	if !totals.Subtotal.IsEqual(sum.Round2()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"subtotal",
			fmt.Errorf("%s does not match item totals %s", totals.Subtotal, sum.Round2()),
		)
	}
	if !totals.TotalAmount.IsEqual(totals.Subtotal.Add(totals.TaxAmount)) {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			fmt.Errorf("%s does not equal subtotal %s plus tax %s",
				totals.TotalAmount, totals.Subtotal, totals.TaxAmount),
		)
	}

	o.totals = totals
	return nil
}
