package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	assert.True(t, decimal.RequireFromString("0.30").Equal(LineTotal(0.1, 3)))
	assert.True(t, decimal.RequireFromString("900").Equal(LineTotal(450, 2)))
	assert.True(t, LineTotal(12.5, 0).IsZero())
}

func TestRoundCurrency(t *testing.T) {
	sum := LineTotal(0.1, 3).Add(LineTotal(0.2, 1))
	assert.Equal(t, 0.5, RoundCurrency(sum))

	assert.Equal(t, 10.01, RoundCurrency(decimal.RequireFromString("10.005")))
	assert.Equal(t, 33.33, RoundCurrency(decimal.NewFromInt(100).Div(decimal.NewFromInt(3))))
}
