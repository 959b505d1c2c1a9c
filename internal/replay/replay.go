// Package replay runs a scripted split session offline: a bill and the list
// of intents a client sent, applied in order.
package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/mmynk/billsplit/internal/assignment"
	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
)

// Intent operations.
const (
	OpDrop     = "drop"
	OpConfirm  = "confirm"
	OpUnassign = "unassign"
)

// Item is a bill line of a script.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity,omitempty"`
}

// Person is a participant of a script.
type Person struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	BaseAmount decimal.Decimal `json:"base_amount"`
}

// Intent is one recorded client action. Op defaults to drop.
//
// A drop moves Item onto Target (or the "add person" card when AddPerson is
// set), from Source when it was picked up from a person. A drop of a
// multi-unit item with Quantity set is confirmed right away.
type Intent struct {
	Op        string `json:"op,omitempty"`
	Item      string `json:"item"`
	Source    string `json:"source,omitempty"`
	Target    string `json:"target,omitempty"`
	AddPerson bool   `json:"add_person,omitempty"`
	Person    string `json:"person,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
}

// Script is a bill with the intents applied to it.
type Script struct {
	Items   []Item          `json:"items"`
	People  []Person        `json:"people"`
	Total   decimal.Decimal `json:"total"`
	Intents []Intent        `json:"intents"`
}

// Step is the outcome of one intent.
type Step struct {
	Intent  Intent
	Outcome string
	// Choice is set when a drop asked for a quantity that the script did not give.
	Choice *assignment.QuantityChoice
}

// Result is the state after every intent ran.
type Result struct {
	Catalog *models.Catalog
	People  []models.Person
	State   assignment.State
	Steps   []Step
	Total   decimal.Decimal
}

// Load decodes a script.
func Load(r io.Reader) (Script, error) {
	var s Script
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Script{}, fmt.Errorf("failed to decode script: %w", err)
	}
	return s, nil
}

// Run applies every intent of the script in order. Rejected intents are
// recorded and skipped, the way a client ignores a refused drop. A reference
// to an unknown item or person aborts the run.
func Run(s Script) (*Result, error) {
	if len(s.Items) == 0 {
		return nil, errors.New("script has no items")
	}

	items := make([]models.Item, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, models.Item{ID: it.ID, Name: it.Name, Price: it.Price, Quantity: it.Quantity})
	}
	people := make([]models.Person, 0, len(s.People))
	byID := make(map[string]models.Person, len(s.People))
	for _, p := range s.People {
		person := models.Person{ID: p.ID, Name: p.Name, BaseAmount: p.BaseAmount}
		people = append(people, person)
		byID[p.ID] = person
	}

	catalog := models.NewCatalog(items)
	if catalog.Len() != len(items) {
		return nil, errors.New("script has duplicate item ids")
	}

	res := &Result{
		Catalog: catalog,
		People:  people,
		State:   assignment.New(),
		Total:   s.Total,
	}

	person := func(id string) (models.Person, error) {
		p, ok := byID[id]
		if !ok {
			return models.Person{}, fmt.Errorf("unknown person %q", id)
		}
		return p, nil
	}

	for i, in := range s.Intents {
		item, ok := res.Catalog.Item(in.Item)
		if !ok {
			return nil, fmt.Errorf("intent %d: unknown item %q", i, in.Item)
		}

		step := Step{Intent: in}
		var err error
		switch in.Op {
		case "", OpDrop:
			err = res.drop(in, item, person, &step)
		case OpConfirm:
			var p models.Person
			if p, err = person(in.Person); err != nil {
				return nil, fmt.Errorf("intent %d: %w", i, err)
			}
			res.State, err = res.State.ConfirmQuantity(item, p, in.Quantity)
		case OpUnassign:
			var p models.Person
			if p, err = person(in.Person); err != nil {
				return nil, fmt.Errorf("intent %d: %w", i, err)
			}
			res.State = res.State.Unassign(p, item)
		default:
			return nil, fmt.Errorf("intent %d: unknown op %q", i, in.Op)
		}

		var lookupErr *lookupError
		if errors.As(err, &lookupErr) {
			return nil, fmt.Errorf("intent %d: %w", i, err)
		}
		switch {
		case err != nil:
			step.Outcome = err.Error()
		case step.Choice != nil:
			step.Outcome = fmt.Sprintf("choose up to %d", step.Choice.Max)
		default:
			step.Outcome = "ok"
		}
		res.Steps = append(res.Steps, step)
	}

	return res, nil
}

type lookupError struct{ err error }

func (e *lookupError) Error() string { return e.err.Error() }
func (e *lookupError) Unwrap() error { return e.err }

func (r *Result) drop(in Intent, item models.Item, person func(string) (models.Person, error), step *Step) error {
	intent := assignment.DragIntent{Item: item}
	if in.Source != "" {
		src, err := person(in.Source)
		if err != nil {
			return &lookupError{err}
		}
		intent.Source = &src
	}
	switch {
	case in.AddPerson:
		intent.Target = models.AddPersonPlaceholder{}
	case in.Target != "":
		target, err := person(in.Target)
		if err != nil {
			return &lookupError{err}
		}
		intent.Target = target
	}

	next, choice, err := assignment.Apply(r.State, intent)
	if err != nil {
		return err
	}
	if choice != nil && in.Quantity > 0 {
		next, err = next.ConfirmQuantity(choice.Item, choice.Person, in.Quantity)
		if err != nil {
			return err
		}
		choice = nil
	}
	r.State = next
	step.Choice = choice
	return nil
}

// Splits settles every person, with tax and tip spread over item subtotals.
func (r *Result) Splits() ([]calculator.PersonSplit, error) {
	splits := calculator.Settle(r.People, r.State, r.Catalog)
	return calculator.ApplyTax(splits, calculator.CatalogSubtotal(r.Catalog), r.Total)
}
