package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/billsplit/internal/models"
)

// CatalogSubtotal sums the prices of every item on the bill. Unparsable prices count as zero.
func CatalogSubtotal(catalog *models.Catalog) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range catalog.Items() {
		price, _ := ParsePrice(item.Price)
		sum = sum.Add(price)
	}
	return sum
}

// ApplyTax spreads tax and tip over the splits proportionally to each person's subtotal.
// Based on: person_tax = person_subtotal × ((bill_total - bill_subtotal) / bill_subtotal)
// A bill total that does not exceed the subtotal leaves the splits untouched.
func ApplyTax(splits []PersonSplit, billSubtotal, billTotal decimal.Decimal) ([]PersonSplit, error) {
	if billTotal.LessThanOrEqual(billSubtotal) {
		return splits, nil
	}
	if !billSubtotal.IsPositive() {
		return nil, fmt.Errorf("subtotal must be positive")
	}

	rate := billTotal.Sub(billSubtotal).Div(billSubtotal)
	out := make([]PersonSplit, len(splits))
	for i, split := range splits {
		split.Tax = split.Subtotal.Mul(rate).Round(2)
		split.Total = split.Subtotal.Add(split.Base).Add(split.Tax).Round(2)
		out[i] = split
	}
	return out, nil
}
