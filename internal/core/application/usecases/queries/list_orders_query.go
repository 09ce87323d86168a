package queries

import (
	"errors"

	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// ListOrdersQuery retrieves a page of all orders, optionally filtered by
// status. This is the back-office view and is admin-only; the handler rejects
// non-admin requesters.
//
// Example:
//
//	query, err := NewListOrdersQuery(requester, "shipped", 2, 50)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListOrdersQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
//	fmt.Printf("page %d of %d, %d orders total\n",
//	    page.CurrentPage, page.TotalPages, page.TotalOrders)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	requester    Requester
	statusFilter string
	page         int
	limit        int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for the paginated admin order list.
// An empty statusFilter means all statuses; a non-empty one must name a valid
// status. Page and limit fall back to 1 and 20 when not positive.
func NewListOrdersQuery(requester Requester, statusFilter string, page, limit int) (ListOrdersQuery, error) {
	listQuery := ListOrdersQuery{
		page:  page,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}

	if listQuery.page < 1 {
		listQuery.page = defaultPage
	}
	if listQuery.limit < 1 {
		listQuery.limit = defaultLimit
	}

	if err := errors.Join(
		listQuery.setRequester(requester),
		listQuery.setStatusFilter(statusFilter),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Requester returns who is asking.
func (q ListOrdersQuery) Requester() Requester {
	return q.requester
}

// StatusFilter returns the status to filter by, empty meaning all.
func (q ListOrdersQuery) StatusFilter() string {
	return q.statusFilter
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

func (q *ListOrdersQuery) setRequester(requester Requester) error {
	if err := requester.Validate(); err != nil {
		return err
	}

	q.requester = requester
	return nil
}

func (q *ListOrdersQuery) setStatusFilter(statusFilter string) error {
	if statusFilter != "" {
		if _, err := order.StatusFromString(statusFilter); err != nil {
			return err
		}
	}

	q.statusFilter = statusFilter
	return nil
}

// ListOrdersQueryResponse is one page of the admin order list.
type ListOrdersQueryResponse struct {
	Orders      []OrderResponse
	TotalOrders int64
	TotalPages  int
	CurrentPage int
}
