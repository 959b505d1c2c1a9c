package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/billsplit/internal/assignment"
	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/middleware"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage"
)

var (
	errAuthRequired  = errors.New("authentication required")
	errBillIDMissing = errors.New("bill_id required")
	errNotOwner      = errors.New("bill belongs to another user")
)

// requireUser returns the authenticated user ID from the context.
func requireUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, errAuthRequired)
	}
	return userID, nil
}

// loadOwnedBill fetches a bill and checks it belongs to the caller.
func loadOwnedBill(ctx context.Context, bills storage.BillStore, billID string) (*models.Bill, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if billID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errBillIDMissing)
	}

	bill, err := bills.GetBill(ctx, billID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		slog.Error("Failed to load bill", "bill_id", billID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if bill.OwnerID != userID {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotOwner)
	}
	return bill, nil
}

// loadState rebuilds the assignment state of a bill from its stored snapshot.
func loadState(ctx context.Context, sessions storage.SessionStore, bill *models.Bill, catalog *models.Catalog) (assignment.State, error) {
	snap, err := sessions.GetSession(ctx, bill.ID)
	if err != nil {
		slog.Error("Failed to load session", "bill_id", bill.ID, "error", err)
		return assignment.State{}, connect.NewError(connect.CodeInternal, err)
	}
	state, err := assignment.FromSnapshot(snap, catalog)
	if err != nil {
		slog.Error("Stored session is invalid", "bill_id", bill.ID, "error", err)
		return assignment.State{}, connect.NewError(connect.CodeDataLoss, err)
	}
	return state, nil
}

// billSplits settles every person of the bill and spreads tax and tip on top.
func billSplits(bill *models.Bill, state assignment.State, catalog *models.Catalog) ([]calculator.PersonSplit, error) {
	splits := calculator.Settle(bill.People, state, catalog)
	splits, err := calculator.ApplyTax(splits, calculator.CatalogSubtotal(catalog), bill.Total)
	if err != nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, fmt.Errorf("cannot apply tax: %w", err))
	}
	return splits, nil
}

func findPerson(bill *models.Bill, personID string) (models.Person, bool) {
	for _, p := range bill.People {
		if p.ID == personID {
			return p, true
		}
	}
	return models.Person{}, false
}

// lookupPerson returns a bill person or a NotFound error.
func lookupPerson(bill *models.Bill, personID string) (models.Person, error) {
	if personID == "" {
		return models.Person{}, connect.NewError(connect.CodeInvalidArgument, errors.New("person_id required"))
	}
	p, ok := findPerson(bill, personID)
	if !ok {
		return models.Person{}, connect.NewError(connect.CodeNotFound, fmt.Errorf("person %s is not on bill %s", personID, bill.ID))
	}
	return p, nil
}

// lookupItem returns a catalog item or a NotFound error.
func lookupItem(catalog *models.Catalog, billID, itemID string) (models.Item, error) {
	if itemID == "" {
		return models.Item{}, connect.NewError(connect.CodeInvalidArgument, errors.New("item_id required"))
	}
	item, ok := catalog.Item(itemID)
	if !ok {
		return models.Item{}, connect.NewError(connect.CodeNotFound, fmt.Errorf("item %s is not on bill %s", itemID, billID))
	}
	return item, nil
}
