package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage"
	"github.com/mmynk/billsplit/pkg/api"
)

var _ api.BillServiceHandler = (*BillService)(nil)

// BillService implements the Connect BillService.
type BillService struct {
	store storage.Store
}

// NewBillService creates a new BillService with the given storage backend.
func NewBillService(store storage.Store) *BillService {
	return &BillService{store: store}
}

// validateBill checks a bill before it is stored: named items and people,
// unique IDs, non-negative quantities and a payer that is one of the people.
func validateBill(bill *models.Bill) error {
	if len(bill.Items) == 0 {
		return errors.New("bill needs at least one item")
	}
	if len(bill.People) == 0 {
		return errors.New("bill needs at least one person")
	}
	if bill.Total.IsNegative() {
		return errors.New("total must not be negative")
	}

	itemIDs := make(map[string]bool, len(bill.Items))
	for _, item := range bill.Items {
		if strings.TrimSpace(item.Name) == "" {
			return errors.New("item name required")
		}
		if item.Quantity < 0 {
			return fmt.Errorf("item %q: quantity must not be negative", item.Name)
		}
		if item.ID == "" {
			continue
		}
		if itemIDs[item.ID] {
			return fmt.Errorf("duplicate item id %q", item.ID)
		}
		itemIDs[item.ID] = true
	}

	personIDs := make(map[string]bool, len(bill.People))
	for _, p := range bill.People {
		if strings.TrimSpace(p.Name) == "" {
			return errors.New("person name required")
		}
		if p.BaseAmount.IsNegative() {
			return fmt.Errorf("person %q: base amount must not be negative", p.Name)
		}
		if p.ID == "" {
			continue
		}
		if personIDs[p.ID] {
			return fmt.Errorf("duplicate person id %q", p.ID)
		}
		personIDs[p.ID] = true
	}

	if bill.PayerID != "" && !personIDs[bill.PayerID] {
		return fmt.Errorf("payer_id '%s' must be one of the people", bill.PayerID)
	}
	return nil
}

// addFriends appends the caller's friends to the people of a bill, skipping
// friends already listed.
func (s *BillService) addFriends(ctx context.Context, userID string, bill *models.Bill, friendIDs []string) error {
	if len(friendIDs) == 0 {
		return nil
	}
	friends, err := s.store.ListFriends(ctx, userID)
	if err != nil {
		return connect.NewError(connect.CodeInternal, err)
	}
	byID := make(map[string]*models.Friend, len(friends))
	for _, f := range friends {
		byID[f.ID] = f
	}
	for _, id := range friendIDs {
		f, ok := byID[id]
		if !ok {
			return connect.NewError(connect.CodeNotFound, fmt.Errorf("friend %s not found", id))
		}
		if _, listed := findPerson(bill, f.ID); listed {
			continue
		}
		bill.People = append(bill.People, models.Person{ID: f.ID, Name: f.Name})
	}
	return nil
}

// CreateBill validates and persists a new bill.
func (s *BillService) CreateBill(ctx context.Context, req *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	bill := &models.Bill{
		Title:      strings.TrimSpace(req.Msg.Title),
		Restaurant: strings.TrimSpace(req.Msg.Restaurant),
		OwnerID:    userID,
		PayerID:    req.Msg.PayerID,
		Total:      req.Msg.Total,
	}
	for _, item := range req.Msg.Items {
		bill.Items = append(bill.Items, models.Item{
			ID:       item.ID,
			Name:     strings.TrimSpace(item.Name),
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	for _, p := range req.Msg.People {
		bill.People = append(bill.People, models.Person{
			ID:         p.ID,
			Name:       strings.TrimSpace(p.Name),
			BaseAmount: p.BaseAmount,
		})
	}
	if err := s.addFriends(ctx, userID, bill, req.Msg.FriendIDs); err != nil {
		return nil, err
	}

	if err := validateBill(bill); err != nil {
		slog.Warn("CreateBill validation failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.CreateBill(ctx, bill); err != nil {
		slog.Error("CreateBill failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Bill created",
		"bill_id", bill.ID,
		"items_count", len(bill.Items),
		"people_count", len(bill.People),
	)
	return connect.NewResponse(&api.CreateBillResponse{Bill: toAPIBill(bill)}), nil
}

// GetBill retrieves a bill with its items and people.
func (s *BillService) GetBill(ctx context.Context, req *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error) {
	bill, err := loadOwnedBill(ctx, s.store, req.Msg.BillID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.GetBillResponse{Bill: toAPIBill(bill)}), nil
}

// ListBills returns the caller's bills, newest first, without items and people.
func (s *BillService) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	bills, err := s.store.ListBillsByOwner(ctx, userID)
	if err != nil {
		slog.Error("ListBills failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]api.Bill, 0, len(bills))
	for _, b := range bills {
		out = append(out, toAPIBill(b))
	}
	slog.Info("ListBills successful", "user_id", userID, "count", len(out))
	return connect.NewResponse(&api.ListBillsResponse{Bills: out}), nil
}
