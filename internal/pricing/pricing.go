// Package pricing derives the product count of an order from its subtotal.
// Every product costs the same fixed unit price, so a subtotal is only valid
// when it is a positive multiple of that price.
package pricing

import "github.com/shopspring/decimal"

// UnitPrice is the fixed price of a single product in rupiah.
var UnitPrice = decimal.NewFromInt(13000)

// ValidSubtotal reports whether subtotal is a positive multiple of UnitPrice.
// The check uses exact decimal arithmetic; float modulo would misclassify
// values near a multiple.
func ValidSubtotal(subtotal decimal.Decimal) bool {
	if !subtotal.IsPositive() {
		return false
	}
	return subtotal.Mod(UnitPrice).IsZero()
}

// UnitsFor returns the product count for subtotal. Callers must validate the
// subtotal with ValidSubtotal first; the result for a non-multiple is the
// rounded quotient and carries no meaning.
func UnitsFor(subtotal decimal.Decimal) int64 {
	return subtotal.Div(UnitPrice).Round(0).IntPart()
}
