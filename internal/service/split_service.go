package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/billsplit/internal/assignment"
	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/metrics"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage"
	"github.com/mmynk/billsplit/pkg/api"
)

var _ api.SplitServiceHandler = (*SplitService)(nil)

// SplitService implements the Connect SplitService: the drag-and-drop
// assignment session of a bill and its totals.
type SplitService struct {
	store storage.Store
	locks *billLocks
}

// NewSplitService creates a new SplitService with the given storage backend.
func NewSplitService(store storage.Store) *SplitService {
	return &SplitService{store: store, locks: newBillLocks()}
}

// session is a loaded bill with its catalog and assignment state.
type session struct {
	bill    *models.Bill
	catalog *models.Catalog
	state   assignment.State
}

func (s *SplitService) load(ctx context.Context, billID string) (*session, error) {
	bill, err := loadOwnedBill(ctx, s.store, billID)
	if err != nil {
		return nil, err
	}
	catalog := models.NewCatalog(bill.Items)
	state, err := loadState(ctx, s.store, bill, catalog)
	if err != nil {
		return nil, err
	}
	return &session{bill: bill, catalog: catalog, state: state}, nil
}

func (s *SplitService) save(ctx context.Context, billID string, state assignment.State) error {
	if err := s.store.SaveSession(ctx, billID, state.Snapshot()); err != nil {
		slog.Error("Failed to save session", "bill_id", billID, "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
	return nil
}

// Drop applies an item released over a person card or the "add person" card.
func (s *SplitService) Drop(ctx context.Context, req *connect.Request[api.DropRequest]) (*connect.Response[api.DropResponse], error) {
	msg := req.Msg
	unlock := s.locks.lock(msg.BillID)
	defer unlock()

	sess, err := s.load(ctx, msg.BillID)
	if err != nil {
		return nil, err
	}
	item, err := lookupItem(sess.catalog, msg.BillID, msg.ItemID)
	if err != nil {
		return nil, err
	}

	intent := assignment.DragIntent{Item: item}
	if msg.SourcePersonID != "" {
		src, err := lookupPerson(sess.bill, msg.SourcePersonID)
		if err != nil {
			return nil, err
		}
		intent.Source = &src
	}
	switch {
	case msg.AddPerson:
		intent.Target = models.AddPersonPlaceholder{}
	case msg.TargetPersonID != "":
		target, err := lookupPerson(sess.bill, msg.TargetPersonID)
		if err != nil {
			return nil, err
		}
		intent.Target = target
	}

	next, choice, err := assignment.Apply(sess.state, intent)
	op := "assign"
	if intent.Source != nil {
		op = "reassign"
	}

	resp := &api.DropResponse{}
	switch {
	case err != nil && ignoredDrop(err):
		metrics.Intents.WithLabelValues(op, intentOutcome(err)).Inc()
		slog.Debug("Drop ignored", "bill_id", msg.BillID, "item_id", item.ID, "reason", err)
		resp.Reason = err.Error()
		resp.Session = toAPISession(sess.state)
		return connect.NewResponse(resp), nil
	case err != nil:
		metrics.Intents.WithLabelValues(op, intentOutcome(err)).Inc()
		return nil, assignmentError(err)
	case choice != nil:
		metrics.Intents.WithLabelValues(op, "quantity_choice").Inc()
		resp.QuantityChoice = &api.QuantityChoice{
			ItemID:   choice.Item.ID,
			PersonID: choice.Person.ID,
			Max:      choice.Max,
		}
		resp.Session = toAPISession(sess.state)
		return connect.NewResponse(resp), nil
	}

	if err := s.save(ctx, msg.BillID, next); err != nil {
		return nil, err
	}
	metrics.Intents.WithLabelValues(op, intentOutcome(nil)).Inc()
	slog.Info("Drop applied", "bill_id", msg.BillID, "item_id", item.ID, "op", op)

	resp.Applied = true
	resp.Session = toAPISession(next)
	return connect.NewResponse(resp), nil
}

// ConfirmQuantity records the unit count chosen for a multi-unit item.
func (s *SplitService) ConfirmQuantity(ctx context.Context, req *connect.Request[api.ConfirmQuantityRequest]) (*connect.Response[api.ConfirmQuantityResponse], error) {
	msg := req.Msg
	unlock := s.locks.lock(msg.BillID)
	defer unlock()

	sess, err := s.load(ctx, msg.BillID)
	if err != nil {
		return nil, err
	}
	item, err := lookupItem(sess.catalog, msg.BillID, msg.ItemID)
	if err != nil {
		return nil, err
	}
	person, err := lookupPerson(sess.bill, msg.PersonID)
	if err != nil {
		return nil, err
	}

	next, err := sess.state.ConfirmQuantity(item, person, msg.Quantity)
	metrics.Intents.WithLabelValues("confirm", intentOutcome(err)).Inc()
	if err != nil {
		return nil, assignmentError(err)
	}
	if err := s.save(ctx, msg.BillID, next); err != nil {
		return nil, err
	}

	slog.Info("Quantity confirmed",
		"bill_id", msg.BillID,
		"item_id", item.ID,
		"person_id", person.ID,
		"quantity", msg.Quantity,
	)
	return connect.NewResponse(&api.ConfirmQuantityResponse{Session: toAPISession(next)}), nil
}

// Unassign removes an item from a person. Removing something the person does
// not hold succeeds without changes.
func (s *SplitService) Unassign(ctx context.Context, req *connect.Request[api.UnassignRequest]) (*connect.Response[api.UnassignResponse], error) {
	msg := req.Msg
	unlock := s.locks.lock(msg.BillID)
	defer unlock()

	sess, err := s.load(ctx, msg.BillID)
	if err != nil {
		return nil, err
	}
	item, err := lookupItem(sess.catalog, msg.BillID, msg.ItemID)
	if err != nil {
		return nil, err
	}
	person, err := lookupPerson(sess.bill, msg.PersonID)
	if err != nil {
		return nil, err
	}

	next := sess.state.Unassign(person, item)
	metrics.Intents.WithLabelValues("unassign", intentOutcome(nil)).Inc()
	if err := s.save(ctx, msg.BillID, next); err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.UnassignResponse{Session: toAPISession(next)}), nil
}

// GetAssignmentInfo describes who holds one item, or every item in bill order.
func (s *SplitService) GetAssignmentInfo(ctx context.Context, req *connect.Request[api.GetAssignmentInfoRequest]) (*connect.Response[api.GetAssignmentInfoResponse], error) {
	sess, err := s.load(ctx, req.Msg.BillID)
	if err != nil {
		return nil, err
	}

	items := sess.catalog.Items()
	if req.Msg.ItemID != "" {
		item, err := lookupItem(sess.catalog, req.Msg.BillID, req.Msg.ItemID)
		if err != nil {
			return nil, err
		}
		items = []models.Item{item}
	}

	out := make([]api.AssignmentInfo, 0, len(items))
	for _, item := range items {
		out = append(out, toAPIInfo(sess.state, item))
	}
	return connect.NewResponse(&api.GetAssignmentInfoResponse{Items: out}), nil
}

// GetTotals settles the bill: what every person owes with tax and tip spread
// proportionally to their item subtotal.
func (s *SplitService) GetTotals(ctx context.Context, req *connect.Request[api.GetTotalsRequest]) (*connect.Response[api.GetTotalsResponse], error) {
	sess, err := s.load(ctx, req.Msg.BillID)
	if err != nil {
		return nil, err
	}

	splits, err := billSplits(sess.bill, sess.state, sess.catalog)
	if err != nil {
		return nil, err
	}

	subtotal := calculator.CatalogSubtotal(sess.catalog)
	tax := decimal.Max(sess.bill.Total.Sub(subtotal), decimal.Zero)

	var unassigned []string
	for _, item := range sess.catalog.Items() {
		if !sess.state.Info(item.ID).IsAssigned {
			unassigned = append(unassigned, item.ID)
		}
	}

	slog.Debug("Totals computed",
		"bill_id", sess.bill.ID,
		"subtotal", subtotal,
		"tax", tax,
		"unassigned_count", len(unassigned),
	)
	return connect.NewResponse(&api.GetTotalsResponse{
		Splits:            toAPISplits(splits),
		Subtotal:          subtotal.Round(2),
		Tax:               tax.Round(2),
		UnassignedItemIDs: unassigned,
	}), nil
}

// ResetSession clears every assignment of a bill.
func (s *SplitService) ResetSession(ctx context.Context, req *connect.Request[api.ResetSessionRequest]) (*connect.Response[api.ResetSessionResponse], error) {
	unlock := s.locks.lock(req.Msg.BillID)
	defer unlock()

	bill, err := loadOwnedBill(ctx, s.store, req.Msg.BillID)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, bill.ID, assignment.New()); err != nil {
		return nil, err
	}

	metrics.Intents.WithLabelValues("reset", intentOutcome(nil)).Inc()
	slog.Info("Session reset", "bill_id", bill.ID)
	return connect.NewResponse(&api.ResetSessionResponse{}), nil
}
