// Package payment contains the card-validation domain logic: Luhn checksum,
// brand detection from PAN prefixes, expiry comparison, and CVV length rules.
// Only structural validation happens here; nothing is ever charged, and the
// full PAN and CVV never leave this package except as brand plus last four digits.
package payment
