package models

import "github.com/shopspring/decimal"

// Participant is an entry in the people list of a split session.
// It is either a Person or the AddPersonPlaceholder.
type Participant interface {
	participant()
}

// Person is a participant who can be charged for items.
type Person struct {
	ID   string
	Name string

	// BaseAmount is a flat charge independent of items (e.g., a delivery fee).
	BaseAmount decimal.Decimal
}

func (Person) participant() {}

// AddPersonPlaceholder is the "add person" card of the people list.
type AddPersonPlaceholder struct{}

func (AddPersonPlaceholder) participant() {}

// AsPerson returns the participant as a Person when it is one.
func AsPerson(p Participant) (Person, bool) {
	switch v := p.(type) {
	case Person:
		return v, true
	case *Person:
		if v == nil {
			return Person{}, false
		}
		return *v, true
	default:
		return Person{}, false
	}
}
