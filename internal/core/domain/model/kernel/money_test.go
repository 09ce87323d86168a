package kernel_test

import (
	"testing"

	"dealership/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative decimal", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(49999.99))

		require.NoError(t, err)
		assert.Equal(t, "49999.99", m.String())
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromFloat(-0.01))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount")
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse decimal string", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("120000.00")

		require.NoError(t, err)
		assert.Equal(t, "120000.00", m.String())
	})

	t.Run("should fail on garbage input", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("not-a-number")

		require.Error(t, err)
	})

	t.Run("should fail on negative string", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-5.00")

		require.Error(t, err)
	})
}

func TestMoneyArithmetic(t *testing.T) {
	t.Run("Add sums amounts", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("300.00")
		b, _ := kernel.NewMoneyFromString("39.00")

		assert.Equal(t, "339.00", a.Add(b).String())
	})

	t.Run("MulInt multiplies by quantity", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromString("100.00")

		assert.Equal(t, "300.00", price.MulInt(3).String())
	})

	t.Run("Round2 rounds half up", func(t *testing.T) {
		m, _ := kernel.NewMoneyFromString("10.005")

		assert.Equal(t, "10.01", m.Round2().String())
	})

	t.Run("IsEqual compares numerically", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("1.5")
		b, _ := kernel.NewMoneyFromString("1.50")

		assert.True(t, a.IsEqual(b))
	})
}
