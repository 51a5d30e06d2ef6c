package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, 0, summary.TotalItems)
	assert.True(t, summary.TotalAmount.IsZero())

	summary = Summarize([]Line{
		{Price: decimal.NewFromInt(15000), Quantity: 2},
		{Price: decimal.NewFromInt(40000), Quantity: 1},
	})
	assert.Equal(t, 3, summary.TotalItems)
	assert.True(t, summary.TotalAmount.Equal(decimal.NewFromInt(70000)))
}

func TestCartItemValidate(t *testing.T) {
	item := &CartItem{SessionID: "sess-1", ProductID: "prod_01", Quantity: 1}
	assert.NoError(t, item.Validate())

	item = &CartItem{ProductID: "prod_01", Quantity: 1}
	assert.Error(t, item.Validate())

	item = &CartItem{SessionID: "sess-1", Quantity: 1}
	assert.Error(t, item.Validate())

	item = &CartItem{SessionID: "sess-1", ProductID: "prod_01", Quantity: 0}
	assert.Error(t, item.Validate())
}
