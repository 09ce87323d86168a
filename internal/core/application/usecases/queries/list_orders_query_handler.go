package queries

import (
	"context"

	"dealership/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler serves the paginated admin order list.
// Counts first, then reads one page newest-first, then loads the page's item
// snapshots in a single extra query.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query, _ := NewListOrdersQuery(adminRequester, "", 1, 20)
//
//	page, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrAuthorization) {
//	    // requester is not an admin
//	}
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for the admin order list.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page with pagination metadata.
// TotalPages is zero when there are no matching orders.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}
	if !query.Requester().IsAdmin {
		return ListOrdersQueryResponse{}, errs.NewAuthorizationError("list all orders")
	}

	where := ""
	countArgs := make([]any, 0, 1)
	if query.StatusFilter() != "" {
		where = " WHERE status = ?"
		countArgs = append(countArgs, query.StatusFilter())
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders"+where, countArgs...).
		Scan(&total).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	pageArgs := append(countArgs, query.Limit(), offset)

	var rows []orderRow
	err = h.db.WithContext(ctx).Raw(`
		SELECT`+orderColumns+`
		FROM orders`+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, pageArgs...).Scan(&rows).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	byID := make(map[uuid.UUID]*OrderResponse, len(rows))
	ids := make([]uuid.UUID, 0, len(rows))

	for _, row := range rows {
		response, rowErr := row.toResponse()
		if rowErr != nil {
			return ListOrdersQueryResponse{}, rowErr
		}
		orders = append(orders, response)
		byID[row.ID] = &orders[len(orders)-1]
		ids = append(ids, row.ID)
	}

	if err = attachItems(ctx, h.db, ids, byID); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	totalPages := int(total) / query.Limit()
	if int(total)%query.Limit() != 0 {
		totalPages++
	}

	return ListOrdersQueryResponse{
		Orders:      orders,
		TotalOrders: total,
		TotalPages:  totalPages,
		CurrentPage: query.Page(),
	}, nil
}
