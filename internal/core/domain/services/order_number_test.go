package services_test

import (
	"regexp"
	"testing"
	"time"

	"dealership/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{6}-[0-9A-Z]{6}$`)

func TestOrderNumberGenerator_Next(t *testing.T) {
	t.Run("matches the documented format", func(t *testing.T) {
		gen := services.NewOrderNumberGenerator()

		for range 50 {
			number, err := gen.Next()
			require.NoError(t, err)
			assert.Regexp(t, orderNumberPattern, number)
		}
	})

	t.Run("timestamp segment comes from the clock", func(t *testing.T) {
		fixed := time.UnixMilli(1700000123456)
		gen := services.NewOrderNumberGeneratorWithClock(func() time.Time { return fixed })

		number, err := gen.Next()
		require.NoError(t, err)
		assert.Equal(t, "ORD-123456-", number[:11])
	})

	t.Run("random segment varies between calls", func(t *testing.T) {
		fixed := time.UnixMilli(1700000000000)
		gen := services.NewOrderNumberGeneratorWithClock(func() time.Time { return fixed })

		seen := make(map[string]bool)
		for range 20 {
			number, err := gen.Next()
			require.NoError(t, err)
			seen[number] = true
		}
		// With a fixed clock only the suffix distinguishes candidates;
		// twenty draws from 36^6 colliding down to one value would mean
		// the randomness is broken.
		assert.Greater(t, len(seen), 1)
	})
}
