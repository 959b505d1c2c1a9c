package assignment

import (
	"errors"
	"fmt"

	"github.com/mmynk/billsplit/internal/models"
)

// ErrCorruptSnapshot means a persisted snapshot violates a state invariant.
var ErrCorruptSnapshot = errors.New("corrupt assignment snapshot")

// Holding is one person's ordered item list.
type Holding struct {
	PersonID string   `json:"person_id"`
	ItemIDs  []string `json:"item_ids"`
}

// Claim is one person's unit count on a multi-unit item.
type Claim struct {
	ItemID   string `json:"item_id"`
	PersonID string `json:"person_id"`
	Units    int    `json:"units"`
}

// Snapshot is the serializable form of a State.
type Snapshot struct {
	Holdings []Holding `json:"holdings"`
	Claims   []Claim   `json:"claims"`
}

// Snapshot exports the state. Holdings follow first-assignment order, claims
// follow holdings order.
func (s State) Snapshot() Snapshot {
	var snap Snapshot
	for _, person := range s.people {
		items := s.Holdings(person)
		snap.Holdings = append(snap.Holdings, Holding{PersonID: person, ItemIDs: items})
		for _, item := range items {
			if n := s.Claimed(item, person); n > 0 {
				snap.Claims = append(snap.Claims, Claim{ItemID: item, PersonID: person, Units: n})
			}
		}
	}
	return snap
}

// FromSnapshot rebuilds a State and checks every invariant against the catalog:
// known items, no duplicate holdings, positive claims within quantity, and a claim
// for exactly the multi-unit items a person holds.
func FromSnapshot(snap Snapshot, catalog *models.Catalog) (State, error) {
	s := New().clone()
	for _, h := range snap.Holdings {
		if h.PersonID == "" {
			return State{}, fmt.Errorf("%w: holding without person", ErrCorruptSnapshot)
		}
		if _, dup := s.holdings[h.PersonID]; dup {
			return State{}, fmt.Errorf("%w: person %s listed twice", ErrCorruptSnapshot, h.PersonID)
		}
		for _, itemID := range h.ItemIDs {
			if _, ok := catalog.Item(itemID); !ok {
				return State{}, fmt.Errorf("%w: unknown item %s", ErrCorruptSnapshot, itemID)
			}
			if s.Holds(h.PersonID, itemID) {
				return State{}, fmt.Errorf("%w: item %s held twice by %s", ErrCorruptSnapshot, itemID, h.PersonID)
			}
			s.hold(h.PersonID, itemID)
		}
	}

	for _, c := range snap.Claims {
		item, ok := catalog.Item(c.ItemID)
		if !ok {
			return State{}, fmt.Errorf("%w: claim on unknown item %s", ErrCorruptSnapshot, c.ItemID)
		}
		if !item.IsMultiUnit() {
			return State{}, fmt.Errorf("%w: claim on single-unit item %s", ErrCorruptSnapshot, c.ItemID)
		}
		if c.Units <= 0 {
			return State{}, fmt.Errorf("%w: non-positive claim on %s", ErrCorruptSnapshot, c.ItemID)
		}
		if !s.Holds(c.PersonID, c.ItemID) {
			return State{}, fmt.Errorf("%w: claim on %s without holding by %s", ErrCorruptSnapshot, c.ItemID, c.PersonID)
		}
		if s.Claimed(c.ItemID, c.PersonID) > 0 {
			return State{}, fmt.Errorf("%w: duplicate claim on %s by %s", ErrCorruptSnapshot, c.ItemID, c.PersonID)
		}
		if s.ClaimedTotal(c.ItemID)+c.Units > item.Units() {
			return State{}, fmt.Errorf("%w: claims on %s exceed quantity %d", ErrCorruptSnapshot, c.ItemID, item.Units())
		}
		s.addClaim(c.ItemID, c.PersonID, c.Units)
	}

	for _, person := range s.people {
		for _, itemID := range s.holdings[person] {
			item, _ := catalog.Item(itemID)
			if item.IsMultiUnit() && s.Claimed(itemID, person) == 0 {
				return State{}, fmt.Errorf("%w: %s holds multi-unit item %s without a claim", ErrCorruptSnapshot, person, itemID)
			}
		}
	}
	return s, nil
}
