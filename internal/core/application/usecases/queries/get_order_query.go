package queries

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order by id on behalf of a requester.
// A non-admin requester only ever sees their own orders; an order belonging
// to somebody else is reported as not found, not as forbidden, so the query
// leaks nothing about which ids exist.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, requester)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	orderResp, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	requester Requester

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to fetch a single order.
// Validates the order id and the requester identity.
func NewGetOrderQuery(orderID kernel.UUID, requester Requester) (GetOrderQuery, error) {
	orderQuery := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderQuery.setOrderID(orderID),
		orderQuery.setRequester(requester),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return orderQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Requester returns who is asking.
func (q GetOrderQuery) Requester() Requester {
	return q.requester
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setRequester(requester Requester) error {
	if err := requester.Validate(); err != nil {
		return err
	}

	q.requester = requester
	return nil
}
