package commands

import (
	"context"
	"errors"
	"sort"
	"time"

	"dealership/internal/core/domain/model/cart"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/core/domain/model/vehicle"
	"dealership/internal/core/domain/services"
	"dealership/internal/pkg/errs"
)

// CheckoutCommandHandler orchestrates the conversion of a cart into an order.
// Validates the payment card, checks inventory, snapshots prices and persists
// the order, the stock decrements and the cart clear as one transaction.
//
// A collision on the generated order number aborts the whole transaction, so
// the handler retries the complete attempt with a fresh unit of work, up to
// services.MaxOrderNumberAttempts times.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, pricing, orderNumbers)
//	createdOrder, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrCartEmpty):
//	    // nothing to buy
//	case errors.Is(err, errs.ErrInventoryShortage):
//	    // somebody got there first
//	case err != nil:
//	    // validation or infrastructure failure
//	}
type CheckoutCommandHandler struct {
	uowFactory    CheckoutUoWFactory
	cardValidator payment.CardValidator
	pricingEngine services.PricingEngine
	orderNumbers  services.OrderNumberGenerator
	now           func() time.Time
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires a CheckoutUoWFactory for transactional persistence plus the
// pricing and order-number domain services.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	pricingEngine services.PricingEngine,
	orderNumbers services.OrderNumberGenerator,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:    uowFactory,
		cardValidator: payment.NewCardValidator(),
		pricingEngine: pricingEngine,
		orderNumbers:  orderNumbers,
		now:           time.Now,
	}
}

// NewCheckoutCommandHandlerWithClock creates a handler with an injected clock.
func NewCheckoutCommandHandlerWithClock(
	uowFactory CheckoutUoWFactory,
	pricingEngine services.PricingEngine,
	orderNumbers services.OrderNumberGenerator,
	now func() time.Time,
) CheckoutCommandHandler {
	handler := NewCheckoutCommandHandler(uowFactory, pricingEngine, orderNumbers)
	handler.now = now
	return handler
}

// Handle processes the checkout command and returns the created order.
// All validation happens before any mutation: card checks first, then the
// cart and inventory reads inside the transaction, and only when every line
// can be fulfilled does the handler write anything.
func (h CheckoutCommandHandler) Handle(ctx context.Context, command CheckoutCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	panCheck := h.cardValidator.ValidatePAN(command.Payment().CardNumber)
	if !panCheck.Valid {
		return nil, errs.NewPaymentError("invalid card number")
	}
	if !h.cardValidator.ValidateCVV(command.Payment().CVV) {
		return nil, errs.NewPaymentError("invalid cvv")
	}
	if !h.cardValidator.ValidateExpiry(command.Payment().Expiry, h.now()) {
		return nil, errs.NewPaymentError("invalid or expired card")
	}

	billing := toAddress(command.Billing())
	shipping := toAddress(command.Shipping())
	if command.UseShippingAsBilling() {
		shipping = billing
	}
	if err := errors.Join(billing.Validate(), shipping.Validate()); err != nil {
		return nil, err
	}

	cardSummary := order.CardSummary{
		Brand:    panCheck.Brand,
		LastFour: panCheck.LastFour,
	}

	for attempt := 0; attempt < services.MaxOrderNumberAttempts; attempt++ {
		createdOrder, err := h.runAttempt(ctx, command, billing, shipping, cardSummary)
		if errors.Is(err, errs.ErrOrderNumberTaken) {
			continue
		}
		return createdOrder, err
	}

	return nil, errs.ErrOrderNumberExhausted
}

// runAttempt performs one complete checkout transaction. Returning
// errs.ErrOrderNumberTaken tells the caller to retry from scratch; the
// deferred rollback has already discarded this attempt's writes.
func (h CheckoutCommandHandler) runAttempt(
	ctx context.Context,
	command CheckoutCommand,
	billing, shipping order.Address,
	cardSummary order.CardSummary,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userCart, err := uow.CartRepository().GetByUserID(ctx, command.UserID())
	if err != nil {
		return nil, err
	}
	if userCart.IsEmpty() {
		return nil, errs.ErrCartEmpty
	}

	// Fixed processing order: two checkouts sharing vehicles always lock
	// rows in the same sequence, which rules out deadlock between them.
	cartItems := userCart.Items()
	sort.Slice(cartItems, func(i, j int) bool {
		return cartItems[i].VehicleID.String() < cartItems[j].VehicleID.String()
	})

	vehicles, err := h.loadVehicles(ctx, uow, cartItems)
	if err != nil {
		return nil, err
	}

	orderItems := make([]order.Item, 0, len(cartItems))
	for _, cartItem := range cartItems {
		v, ok := vehicles[cartItem.VehicleID]
		if !ok {
			return nil, errs.NewVehicleUnavailableError(cartItem.VehicleID.String())
		}
		if !v.CanFulfill(cartItem.Quantity) {
			return nil, errs.NewInventoryError(v.ID().String(), cartItem.Quantity, v.Quantity())
		}

		item, itemErr := order.NewItem(v.ID(), v.Brand(), v.Model(), v.Year(), cartItem.Quantity, v.Price())
		if itemErr != nil {
			return nil, itemErr
		}
		orderItems = append(orderItems, item)
	}

	totals, err := h.pricingEngine.ComputeTotals(orderItems)
	if err != nil {
		return nil, err
	}

	orderNumber, err := h.orderNumbers.Next()
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()

	// Cheap pre-check; the unique constraint on order_number is still the
	// source of truth when two requests race past it.
	taken, err := orderRepo.OrderNumberExists(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.ErrOrderNumberTaken
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		orderNumber,
		command.UserID(),
		orderItems,
		totals,
		billing, shipping,
		cardSummary,
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	vehicleRepo := uow.VehicleRepository()
	for _, cartItem := range cartItems {
		if err = vehicleRepo.ReserveStock(ctx, cartItem.VehicleID, cartItem.Quantity); err != nil {
			return nil, err
		}
	}

	if err = uow.CartRepository().Clear(ctx, userCart.ID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

func (h CheckoutCommandHandler) loadVehicles(
	ctx context.Context,
	uow CheckoutUoW,
	cartItems []cart.Item,
) (map[kernel.UUID]*vehicle.Vehicle, error) {
	ids := make([]kernel.UUID, 0, len(cartItems))
	for _, cartItem := range cartItems {
		ids = append(ids, cartItem.VehicleID)
	}

	vehicles, err := uow.VehicleRepository().GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*vehicle.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID()] = v
	}
	return byID, nil
}

func toAddress(input AddressInput) order.Address {
	return order.Address{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Street:    input.Street,
		City:      input.City,
		Province:  input.Province,
		Country:   input.Country,
		Zip:       input.Zip,
	}
}
