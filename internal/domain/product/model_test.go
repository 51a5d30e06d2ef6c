package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

func TestCalculateDiscount(t *testing.T) {
	testCases := []struct {
		name     string
		original int64
		current  int64
		expected int
	}{
		{name: "half_price", original: 20000, current: 10000, expected: 50},
		{name: "quarter_off", original: 20000, current: 15000, expected: 25},
		{name: "rounded", original: 30000, current: 20000, expected: 33},
		{name: "no_discount", original: 20000, current: 20000, expected: 0},
		{name: "price_increase", original: 10000, current: 20000, expected: 0},
		{name: "zero_original", original: 0, current: 10000, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateDiscount(decimal.NewFromInt(tc.original), decimal.NewFromInt(tc.current))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestDiscountPercent(t *testing.T) {
	p := &Product{Price: decimal.NewFromInt(10000)}
	assert.Equal(t, 0, p.DiscountPercent())

	original := decimal.NewFromInt(20000)
	p.OriginalPrice = &original
	assert.Equal(t, 50, p.DiscountPercent())
}

func TestIsAvailable(t *testing.T) {
	p := &Product{ProductStatus: types.ProductStatusPublished, Stock: 5}
	assert.True(t, p.IsAvailable())

	p.Stock = 0
	assert.False(t, p.IsAvailable())

	p.Stock = 5
	p.ProductStatus = types.ProductStatusDraft
	assert.False(t, p.IsAvailable())

	p.ProductStatus = types.ProductStatusArchived
	assert.False(t, p.IsAvailable())
}
