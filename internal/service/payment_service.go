package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage"
	"github.com/mmynk/billsplit/pkg/api"
)

var _ api.PaymentServiceHandler = (*PaymentService)(nil)

// PaymentService implements the Connect PaymentService: settling up a bill
// between its people.
type PaymentService struct {
	store storage.Store
}

// NewPaymentService creates a new PaymentService with the given storage backend.
func NewPaymentService(store storage.Store) *PaymentService {
	return &PaymentService{store: store}
}

// RecordPayment records money handed from one person of a bill to another.
func (s *PaymentService) RecordPayment(ctx context.Context, req *connect.Request[api.RecordPaymentRequest]) (*connect.Response[api.RecordPaymentResponse], error) {
	msg := req.Msg
	bill, err := loadOwnedBill(ctx, s.store, msg.BillID)
	if err != nil {
		return nil, err
	}

	if _, err := lookupPerson(bill, msg.FromPersonID); err != nil {
		return nil, err
	}
	if _, err := lookupPerson(bill, msg.ToPersonID); err != nil {
		return nil, err
	}
	if msg.FromPersonID == msg.ToPersonID {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("payment must be between two different people"))
	}
	if !msg.Amount.IsPositive() {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("amount must be positive"))
	}

	payment := &models.Payment{
		BillID:       bill.ID,
		FromPersonID: msg.FromPersonID,
		ToPersonID:   msg.ToPersonID,
		Amount:       msg.Amount.Round(2),
		CreatedBy:    bill.OwnerID,
		Note:         strings.TrimSpace(msg.Note),
	}
	if err := s.store.CreatePayment(ctx, payment); err != nil {
		slog.Error("RecordPayment failed", "bill_id", bill.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Payment recorded",
		"payment_id", payment.ID,
		"bill_id", bill.ID,
		"from", payment.FromPersonID,
		"to", payment.ToPersonID,
		"amount", payment.Amount,
	)
	return connect.NewResponse(&api.RecordPaymentResponse{Payment: toAPIPayment(payment)}), nil
}

// ListPayments returns the payments of a bill, oldest first.
func (s *PaymentService) ListPayments(ctx context.Context, req *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	bill, err := loadOwnedBill(ctx, s.store, req.Msg.BillID)
	if err != nil {
		return nil, err
	}

	payments, err := s.store.ListPaymentsByBill(ctx, bill.ID)
	if err != nil {
		slog.Error("ListPayments failed", "bill_id", bill.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]api.Payment, 0, len(payments))
	for _, p := range payments {
		out = append(out, toAPIPayment(p))
	}
	return connect.NewResponse(&api.ListPaymentsResponse{Payments: out}), nil
}

// DeletePayment removes a payment recorded on the given bill.
func (s *PaymentService) DeletePayment(ctx context.Context, req *connect.Request[api.DeletePaymentRequest]) (*connect.Response[api.DeletePaymentResponse], error) {
	bill, err := loadOwnedBill(ctx, s.store, req.Msg.BillID)
	if err != nil {
		return nil, err
	}

	payments, err := s.store.ListPaymentsByBill(ctx, bill.ID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	found := false
	for _, p := range payments {
		if p.ID == req.Msg.PaymentID {
			found = true
			break
		}
	}
	if !found {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("payment %s is not on bill %s", req.Msg.PaymentID, bill.ID))
	}

	if err := s.store.DeletePayment(ctx, req.Msg.PaymentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		slog.Error("DeletePayment failed", "payment_id", req.Msg.PaymentID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Payment deleted", "payment_id", req.Msg.PaymentID, "bill_id", bill.ID)
	return connect.NewResponse(&api.DeletePaymentResponse{}), nil
}

// GetBalances nets what every person of a bill owes against what they paid
// and lists the simplified debts left to settle.
func (s *PaymentService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	bill, err := loadOwnedBill(ctx, s.store, req.Msg.BillID)
	if err != nil {
		return nil, err
	}
	if bill.PayerID == "" {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errors.New("bill has no payer"))
	}

	catalog := models.NewCatalog(bill.Items)
	state, err := loadState(ctx, s.store, bill, catalog)
	if err != nil {
		return nil, err
	}
	splits, err := billSplits(bill, state, catalog)
	if err != nil {
		return nil, err
	}

	payments, err := s.store.ListPaymentsByBill(ctx, bill.ID)
	if err != nil {
		slog.Error("GetBalances failed - could not list payments", "bill_id", bill.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	paid := make([]calculator.PaymentForBalance, 0, len(payments))
	for _, p := range payments {
		paid = append(paid, calculator.PaymentForBalance{
			FromPersonID: p.FromPersonID,
			ToPersonID:   p.ToPersonID,
			Amount:       p.Amount,
		})
	}

	balances, debts := calculator.CalculateBalances(
		[]calculator.BillForBalance{{PayerID: bill.PayerID, Splits: splits}},
		paid,
	)

	resp := &api.GetBalancesResponse{
		Balances: make([]api.MemberBalance, 0, len(balances)),
		Debts:    make([]api.DebtEdge, 0, len(debts)),
	}
	for _, b := range balances {
		resp.Balances = append(resp.Balances, api.MemberBalance{
			PersonID:   b.PersonID,
			NetBalance: b.NetBalance.Round(2),
			TotalPaid:  b.TotalPaid.Round(2),
			TotalOwed:  b.TotalOwed.Round(2),
		})
	}
	for _, d := range debts {
		resp.Debts = append(resp.Debts, api.DebtEdge{From: d.From, To: d.To, Amount: d.Amount})
	}

	slog.Info("GetBalances successful",
		"bill_id", bill.ID,
		"payments_count", len(payments),
		"debts_count", len(debts),
	)
	return connect.NewResponse(resp), nil
}
