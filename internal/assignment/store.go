package assignment

import (
	"errors"

	"github.com/mmynk/billsplit/internal/models"
)

var (
	// ErrAlreadyAssigned means the target person already holds the item.
	ErrAlreadyAssigned = errors.New("item already assigned to person")
	// ErrNoRemainingQuantity means every unit of a multi-unit item is claimed.
	ErrNoRemainingQuantity = errors.New("no remaining quantity")
	// ErrInvalidQuantity means a confirmed unit count is outside [1, remaining].
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrSameTarget means an item was dropped back onto its current holder.
	ErrSameTarget = errors.New("item dropped on its current holder")
	// ErrInvalidTarget means the drop target is not a person.
	ErrInvalidTarget = errors.New("target is not a person")
	// ErrNotHeld means the source person of a move does not hold the item.
	ErrNotHeld = errors.New("item not held by source person")
)

// QuantityChoice asks the caller how many units of a multi-unit item the person takes.
// Nothing is recorded until ConfirmQuantity is called; dropping the choice leaves
// the state as it was.
type QuantityChoice struct {
	Item   models.Item
	Person models.Person
	// Max is the number of unclaimed units when the choice was issued.
	Max int
}

// Remaining returns the units of an item not yet claimed by anyone.
func (s State) Remaining(item models.Item) int {
	return item.Units() - s.ClaimedTotal(item.ID)
}

// AssignItem assigns a catalog item to a person.
//
// Single-unit items are added to the person's holdings directly. Multi-unit items
// are never assigned here: a QuantityChoice is returned so the caller can ask how
// many units to take and then call ConfirmQuantity.
func (s State) AssignItem(item models.Item, person models.Person) (State, *QuantityChoice, error) {
	if item.IsMultiUnit() {
		remaining := s.Remaining(item)
		if remaining <= 0 {
			return s, nil, ErrNoRemainingQuantity
		}
		return s, &QuantityChoice{Item: item, Person: person, Max: remaining}, nil
	}

	if s.Holds(person.ID, item.ID) {
		return s, nil, ErrAlreadyAssigned
	}
	next := s.clone()
	next.hold(person.ID, item.ID)
	return next, nil, nil
}

// ConfirmQuantity records that a person takes quantity units of an item.
// The remaining count is recomputed against s, so a stale QuantityChoice cannot
// over-claim. A person confirming again on an item they already claimed adds to
// their existing claim.
func (s State) ConfirmQuantity(item models.Item, person models.Person, quantity int) (State, error) {
	if quantity < 1 || quantity > s.Remaining(item) {
		return s, ErrInvalidQuantity
	}
	if !item.IsMultiUnit() && s.Holds(person.ID, item.ID) {
		return s, ErrAlreadyAssigned
	}
	next := s.clone()
	next.hold(person.ID, item.ID)
	if item.IsMultiUnit() {
		next.addClaim(item.ID, person.ID, quantity)
	}
	return next, nil
}

// Reassign moves an item held by one person to another.
// Any unit claim travels with the item and merges into the target's claim.
func (s State) Reassign(item models.Item, from, to models.Person) (State, error) {
	if from.ID == to.ID {
		return s, ErrSameTarget
	}
	if !s.Holds(from.ID, item.ID) {
		return s, ErrNotHeld
	}
	if s.Holds(to.ID, item.ID) {
		return s, ErrAlreadyAssigned
	}
	next := s.clone()
	next.release(from.ID, item.ID)
	next.hold(to.ID, item.ID)
	if units := next.dropClaim(item.ID, from.ID); units > 0 {
		next.addClaim(item.ID, to.ID, units)
	}
	return next, nil
}

// Unassign removes an item from a person along with any unit claim.
// Unassigning something the person does not hold is a no-op.
func (s State) Unassign(person models.Person, item models.Item) State {
	if !s.Holds(person.ID, item.ID) && s.Claimed(item.ID, person.ID) == 0 {
		return s
	}
	next := s.clone()
	next.release(person.ID, item.ID)
	next.dropClaim(item.ID, person.ID)
	return next
}

// DragIntent is a drop reported by the client: an item released over a target.
// Source is set when the item was picked up from a person card rather than
// from the catalog.
type DragIntent struct {
	Item   models.Item
	Source *models.Person
	Target models.Participant
}

// Apply dispatches a drag intent to AssignItem or Reassign.
func Apply(s State, in DragIntent) (State, *QuantityChoice, error) {
	target, ok := models.AsPerson(in.Target)
	if !ok {
		return s, nil, ErrInvalidTarget
	}
	if in.Source != nil {
		next, err := s.Reassign(in.Item, *in.Source, target)
		return next, nil, err
	}
	return s.AssignItem(in.Item, target)
}
