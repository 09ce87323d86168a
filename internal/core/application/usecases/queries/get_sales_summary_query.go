package queries

import (
	"errors"
	"time"

	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

var ErrGetSalesSummaryQueryIsNotConstructed = errors.New(
	"GetSalesSummaryQuery must be created via NewGetSalesSummaryQuery constructor",
)

// GetSalesSummaryQuery aggregates sales figures over a half-open time window
// [from, to). Used by the daily report job with a 24 hour window.
type GetSalesSummaryQuery struct { //nolint:recvcheck //using for validation
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetSalesSummaryQuery creates a query for the given reporting window.
// The window must be non-empty and ordered.
func NewGetSalesSummaryQuery(from, to time.Time) (GetSalesSummaryQuery, error) {
	summaryQuery := GetSalesSummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := summaryQuery.setWindow(from, to); err != nil {
		return GetSalesSummaryQuery{}, err
	}

	return summaryQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSalesSummaryQueryIsNotConstructed if validation fails.
func (q GetSalesSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesSummaryQueryIsNotConstructed)
}

// From returns the inclusive start of the reporting window.
func (q GetSalesSummaryQuery) From() time.Time {
	return q.from
}

// To returns the exclusive end of the reporting window.
func (q GetSalesSummaryQuery) To() time.Time {
	return q.to
}

func (q *GetSalesSummaryQuery) setWindow(from, to time.Time) error {
	if from.IsZero() {
		return errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return errs.NewValueIsRequiredError("to")
	}
	if !to.After(from) {
		return errs.NewValueIsInvalidError("to")
	}

	q.from = from
	q.to = to
	return nil
}
