package calculator

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/billsplit/internal/assignment"
	"github.com/mmynk/billsplit/internal/metrics"
	"github.com/mmynk/billsplit/internal/models"
)

// PersonItem is one item's share for one person.
type PersonItem struct {
	ItemID string
	Name   string
	// Units is the number of units claimed of a multi-unit item, zero otherwise.
	Units  int
	Amount decimal.Decimal // This person's share of the item, rounded to cents
}

// PersonSplit represents one person's calculated share of a bill.
type PersonSplit struct {
	PersonID string
	Name     string

	// Subtotal is the sum of this person's item shares.
	Subtotal decimal.Decimal

	// Base is the person's flat charge, independent of items.
	Base decimal.Decimal

	// Tax is this person's proportional share of tax and tip; zero unless ApplyTax ran.
	Tax decimal.Decimal

	// Total is subtotal + base + tax, rounded to cents.
	Total decimal.Decimal

	Items []PersonItem
}

// PersonTotal returns what a person owes for the items they hold plus their base amount.
func PersonTotal(person models.Person, s assignment.State, catalog *models.Catalog) decimal.Decimal {
	return personSplit(person, s, catalog).Total
}

// Settle computes the split of every person, in the given order.
// People holding nothing still get a split carrying their base amount.
func Settle(people []models.Person, s assignment.State, catalog *models.Catalog) []PersonSplit {
	splits := make([]PersonSplit, 0, len(people))
	for _, p := range people {
		splits = append(splits, personSplit(p, s, catalog))
	}
	return splits
}

func personSplit(person models.Person, s assignment.State, catalog *models.Catalog) PersonSplit {
	split := PersonSplit{
		PersonID: person.ID,
		Name:     person.Name,
		Base:     person.BaseAmount,
	}

	sum := decimal.Zero
	for _, itemID := range s.Holdings(person.ID) {
		share, item := contribution(itemID, person.ID, s, catalog)
		sum = sum.Add(share)
		split.Items = append(split.Items, PersonItem{
			ItemID: itemID,
			Name:   item.Name,
			Units:  s.Claimed(itemID, person.ID),
			Amount: share.Round(2),
		})
	}

	split.Subtotal = sum.Round(2)
	split.Total = sum.Add(person.BaseAmount).Round(2)
	return split
}

// contribution is a person's unrounded share of one held item.
//
// Two rules coexist. A unit claim pays price * claimed / quantity. An item held
// without a claim is divided evenly among its distinct holders.
func contribution(itemID, personID string, s assignment.State, catalog *models.Catalog) (decimal.Decimal, models.Item) {
	item, ok := catalog.Item(itemID)
	if !ok {
		slog.Warn("Held item missing from catalog, contributing zero", "item_id", itemID, "person_id", personID)
		metrics.PriceFallbacks.WithLabelValues("unknown_item").Inc()
		return decimal.Zero, models.Item{ID: itemID}
	}

	price, ok := ParsePrice(item.Price)
	if !ok {
		slog.Warn("Unparsable item price, contributing zero", "item_id", itemID, "price", item.Price)
		metrics.PriceFallbacks.WithLabelValues("bad_price").Inc()
		return decimal.Zero, item
	}

	if claimed := s.Claimed(itemID, personID); claimed > 0 {
		return price.Mul(decimal.NewFromInt(int64(claimed))).Div(decimal.NewFromInt(int64(item.Units()))), item
	}

	holders := s.Info(itemID).Count
	if holders == 0 {
		return decimal.Zero, item
	}
	return price.Div(decimal.NewFromInt(int64(holders))), item
}
