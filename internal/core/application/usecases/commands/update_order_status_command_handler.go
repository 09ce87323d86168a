package commands

import (
	"context"
	"time"
)

// UpdateOrderStatusCommandHandler handles administrative status transitions.
// Loads the order, applies the transition with its write-once timestamp rules
// and persists the result in one transaction.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.Processing, "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// NewUpdateOrderStatusCommandHandlerWithClock creates a handler with an injected clock.
func NewUpdateOrderStatusCommandHandlerWithClock(
	uowFactory OrderUoWFactory,
	now func() time.Time,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the status update command.
// Any valid status may follow any other; the domain stamps processedAt,
// shippedAt and deliveredAt on the first entry into their states only.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateOrderStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existingOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = existingOrder.ChangeStatus(command.Status(), h.now()); err != nil {
		return err
	}
	existingOrder.AttachAdminNotes(command.AdminNotes())

	if err = orderRepo.Update(ctx, existingOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
