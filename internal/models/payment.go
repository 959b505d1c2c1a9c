package models

import "github.com/shopspring/decimal"

// Payment represents money handed from one person to another to settle a bill.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string

	// BillID is the bill this payment settles.
	BillID string

	// FromPersonID is the person who paid (debtor settling up).
	FromPersonID string

	// ToPersonID is the person who received payment (creditor being paid).
	ToPersonID string

	// Amount is the payment amount.
	Amount decimal.Decimal

	// CreatedAt is the Unix timestamp when the payment was recorded.
	CreatedAt int64

	// CreatedBy is the user ID who recorded this payment.
	CreatedBy string

	// Note is an optional description.
	Note string
}
