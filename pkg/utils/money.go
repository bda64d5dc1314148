package utils

import "github.com/shopspring/decimal"

// LineTotal is price * quantity computed in decimal space.
func LineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}

// RoundCurrency rounds half away from zero to 2 decimal places.
func RoundCurrency(amount decimal.Decimal) float64 {
	return amount.Round(2).InexactFloat64()
}
