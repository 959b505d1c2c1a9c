// Package assignment maintains which people hold which bill items.
//
// A State records two things:
//   - holdings: person ID -> ordered set of item IDs the person holds
//   - claims: item ID -> person ID -> units claimed of a multi-unit item
//
// A State is a value. Operations never modify their receiver; they return the next State,
// or the receiver itself together with an error when the intent is rejected. Callers keep
// the returned State as the current one before issuing the next intent.
package assignment

import "slices"

// State is the assignment state of one split session. The zero value is an empty session.
type State struct {
	holdings map[string][]string
	people   []string
	claims   map[string]map[string]int
}

// New returns an empty state.
func New() State {
	return State{}
}

// Holds reports whether the person holds the item.
func (s State) Holds(personID, itemID string) bool {
	return slices.Contains(s.holdings[personID], itemID)
}

// Holdings returns the item IDs held by a person in assignment order.
func (s State) Holdings(personID string) []string {
	return slices.Clone(s.holdings[personID])
}

// People returns the IDs of people holding at least one item, in first-assignment order.
func (s State) People() []string {
	return slices.Clone(s.people)
}

// Claimed returns the units of an item claimed by a person, zero when none.
func (s State) Claimed(itemID, personID string) int {
	return s.claims[itemID][personID]
}

// ClaimedTotal returns the units of an item claimed across all people.
func (s State) ClaimedTotal(itemID string) int {
	total := 0
	for _, n := range s.claims[itemID] {
		total += n
	}
	return total
}

// IsEmpty reports whether nothing is assigned.
func (s State) IsEmpty() bool {
	return len(s.people) == 0 && len(s.claims) == 0
}

// clone returns a deep copy safe to mutate.
func (s State) clone() State {
	next := State{
		holdings: make(map[string][]string, len(s.holdings)+1),
		people:   slices.Clone(s.people),
		claims:   make(map[string]map[string]int, len(s.claims)+1),
	}
	for person, items := range s.holdings {
		next.holdings[person] = slices.Clone(items)
	}
	for item, byPerson := range s.claims {
		m := make(map[string]int, len(byPerson)+1)
		for person, n := range byPerson {
			m[person] = n
		}
		next.claims[item] = m
	}
	return next
}

// hold adds the item to the person's holdings if absent.
func (s *State) hold(personID, itemID string) {
	items, ok := s.holdings[personID]
	if !ok {
		s.people = append(s.people, personID)
	}
	if slices.Contains(items, itemID) {
		return
	}
	s.holdings[personID] = append(items, itemID)
}

// release removes the item from the person's holdings. A person left with no
// holdings is dropped entirely.
func (s *State) release(personID, itemID string) {
	items := s.holdings[personID]
	i := slices.Index(items, itemID)
	if i < 0 {
		return
	}
	items = slices.Delete(items, i, i+1)
	if len(items) > 0 {
		s.holdings[personID] = items
		return
	}
	delete(s.holdings, personID)
	if j := slices.Index(s.people, personID); j >= 0 {
		s.people = slices.Delete(s.people, j, j+1)
	}
}

// addClaim increases a person's claim on an item.
func (s *State) addClaim(itemID, personID string, units int) {
	if units <= 0 {
		return
	}
	byPerson, ok := s.claims[itemID]
	if !ok {
		byPerson = make(map[string]int)
		s.claims[itemID] = byPerson
	}
	byPerson[personID] += units
}

// dropClaim removes a person's claim on an item and returns the units it held.
func (s *State) dropClaim(itemID, personID string) int {
	byPerson, ok := s.claims[itemID]
	if !ok {
		return 0
	}
	units := byPerson[personID]
	delete(byPerson, personID)
	if len(byPerson) == 0 {
		delete(s.claims, itemID)
	}
	return units
}
