// Package services provides domain services that implement business rules
// which don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PricingEngine: computes subtotal, tax and total for a set of order lines
//   - OrderNumberGenerator: produces human-readable candidate order numbers
//
// Domain services are pure: they touch no storage and carry their
// configuration explicitly through their constructors.
package services
