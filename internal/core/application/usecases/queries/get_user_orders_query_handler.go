package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler retrieves a user's order history with items,
// newest first. Items for the whole page are loaded in one extra query.
//
// Example:
//
//	handler := NewGetUserOrdersQueryHandler(db)
//	query, _ := NewGetUserOrdersQuery(userID)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load order history: %w", err)
//	}
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the user's orders, newest first.
// A user without orders gets an empty slice, not an error.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT`+orderColumns+`
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(rows))
	byID := make(map[uuid.UUID]*OrderResponse, len(rows))
	ids := make([]uuid.UUID, 0, len(rows))

	for _, row := range rows {
		response, rowErr := row.toResponse()
		if rowErr != nil {
			return nil, rowErr
		}
		responses = append(responses, response)
		byID[row.ID] = &responses[len(responses)-1]
		ids = append(ids, row.ID)
	}

	if err = attachItems(ctx, h.db, ids, byID); err != nil {
		return nil, err
	}

	return responses, nil
}
