package services

import (
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// HSTRate is the fixed 13% harmonized sales tax applied to every order.
// It is the default rate for NewPricingEngine; the engine itself reads only
// the rate it was constructed with.
var HSTRate = decimal.NewFromFloat(0.13)

// PricingEngine converts a set of order lines into a subtotal, a tax amount
// and a grand total. Line totals are summed at full precision and the
// subtotal is rounded to two decimals only once, at the end; tax is then
// computed on the rounded subtotal.
//
// Example:
//
//	engine := services.NewPricingEngine(services.HSTRate)
//	totals, err := engine.ComputeTotals(items)
type PricingEngine struct {
	taxRate decimal.Decimal
}

// NewPricingEngine creates a PricingEngine with the given tax rate.
func NewPricingEngine(taxRate decimal.Decimal) PricingEngine {
	return PricingEngine{taxRate: taxRate}
}

// ComputeTotals sums the frozen line totals, rounds the subtotal to two
// decimals, applies the tax rate to the rounded subtotal, and adds the two.
// A negative rate cannot produce a money amount and is reported as an error.
func (e PricingEngine) ComputeTotals(items []order.Item) (order.Totals, error) {
	sum := kernel.ZeroMoney()
	for _, item := range items {
		sum = sum.Add(item.TotalPrice())
	}

	subtotal := sum.Round2()
	tax, err := kernel.NewMoney(subtotal.Decimal().Mul(e.taxRate).Round(2))
	if err != nil {
		return order.Totals{}, errs.NewValueIsInvalidErrorWithCause("taxRate", err)
	}

	return order.Totals{
		Subtotal:    subtotal,
		TaxAmount:   tax,
		TotalAmount: subtotal.Add(tax),
	}, nil
}
