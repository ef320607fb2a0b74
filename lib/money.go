package lib

import "github.com/shopspring/decimal"

// FormatPrice renders an amount as dollars with 2 decimals, e.g. $4.40
func FormatPrice(amount decimal.Decimal) string {
	return "$" + FormatAmount(amount)
}

// FormatAmount renders an amount with 2 decimals and no currency sign.
// Halves round away from zero.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
