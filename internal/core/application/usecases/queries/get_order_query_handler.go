package queries

import (
	"context"

	"dealership/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler fetches a single order with its item snapshots.
// Ownership filtering happens in the SQL itself: non-admin requesters query
// with an extra user_id predicate, so an order they do not own behaves
// exactly like an order that does not exist.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID, requester)
//
//	orderResp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown id, or somebody else's order
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order with its items.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	sql := `
		SELECT` + orderColumns + `
		FROM orders
		WHERE id = ?`
	args := []any{query.OrderID().Bytes()}

	if !query.Requester().IsAdmin {
		sql += " AND user_id = ?"
		args = append(args, query.Requester().UserID.Bytes())
	}

	var rows []orderRow
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return OrderResponse{}, err
	}
	if len(rows) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	response, err := rows[0].toResponse()
	if err != nil {
		return OrderResponse{}, err
	}

	responses := map[uuid.UUID]*OrderResponse{rows[0].ID: &response}
	if err = attachItems(ctx, h.db, []uuid.UUID{rows[0].ID}, responses); err != nil {
		return OrderResponse{}, err
	}

	return response, nil
}
