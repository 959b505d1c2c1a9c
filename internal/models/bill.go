package models

import "github.com/shopspring/decimal"

// Bill represents a restaurant bill whose items are split among people.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string

	// Title is the human-readable name for the bill.
	// Auto-generated from the restaurant or the people when empty.
	Title string

	// Restaurant is the name of the place the bill came from.
	Restaurant string

	// OwnerID is the user who created the bill.
	OwnerID string

	// PayerID is the person who paid the restaurant. Optional.
	PayerID string

	// Items are the line items on the bill, in receipt order.
	Items []Item

	// People are the participants the items are split among.
	People []Person

	// Total is the final amount paid including tax and tip.
	// Zero means the bill carries no tax/tip on top of its items.
	Total decimal.Decimal

	// CreatedAt is the Unix timestamp when the bill was created.
	CreatedAt int64
}

// Item represents a single line on a bill.
type Item struct {
	// ID is the unique identifier for the item, stable across the session.
	ID string

	// Name is the item description (e.g., "Orange Juice").
	Name string

	// Price is the price of the whole line as supplied by the receipt,
	// possibly currency formatted ("$8.00").
	Price string

	// Quantity is the number of identical units on the line.
	Quantity int
}

// Units returns the item quantity, treating unset as a single unit.
func (i Item) Units() int {
	if i.Quantity < 1 {
		return 1
	}
	return i.Quantity
}

// IsMultiUnit reports whether the item is split unit by unit.
func (i Item) IsMultiUnit() bool {
	return i.Units() > 1
}
