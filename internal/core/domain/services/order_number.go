package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// MaxOrderNumberAttempts bounds how many times checkout will regenerate an
// order number after hitting the unique constraint before giving up with
// errs.ErrOrderNumberExhausted.
const MaxOrderNumberAttempts = 10

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// OrderNumberGenerator produces human-readable candidate order numbers of the
// form ORD-XXXXXX-YYYYYY, where XXXXXX is the low six digits of a millisecond
// timestamp and YYYYYY is six random upper-case base-36 characters.
//
// Candidates are not guaranteed unique: the unique constraint on the orders
// table is the source of truth, and a constraint violation triggers another
// call to Next.
type OrderNumberGenerator struct {
	now func() time.Time
}

// NewOrderNumberGenerator creates a generator using the system clock.
func NewOrderNumberGenerator() OrderNumberGenerator {
	return OrderNumberGenerator{now: time.Now}
}

// NewOrderNumberGeneratorWithClock creates a generator with an injected clock.
func NewOrderNumberGeneratorWithClock(now func() time.Time) OrderNumberGenerator {
	return OrderNumberGenerator{now: now}
}

// Next returns one candidate order number.
func (g OrderNumberGenerator) Next() (string, error) {
	millis := g.now().UnixMilli() % 1_000_000

	suffix := make([]byte, 6)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36Alphabet))))
		if err != nil {
			return "", fmt.Errorf("order number randomness: %w", err)
		}
		suffix[i] = base36Alphabet[n.Int64()]
	}

	return fmt.Sprintf("ORD-%06d-%s", millis, suffix), nil
}
