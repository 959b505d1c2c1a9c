package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/billsplit/pkg/api"
)

// paidDinner is a bill Alice paid: Alice had the pizza, Bob the salad.
func paidDinner(t *testing.T, c testClients) api.Bill {
	t.Helper()
	bill := createBill(t, c, &api.CreateBillRequest{
		Items: []api.Item{
			{ID: "pizza", Name: "Pizza", Price: "$20.00"},
			{ID: "salad", Name: "Salad", Price: "$10.00"},
		},
		People: []api.Person{
			{ID: "alice", Name: "Alice"},
			{ID: "bob", Name: "Bob"},
		},
		PayerID: "alice",
		Total:   dec("33.00"),
	})
	drop(t, c, &api.DropRequest{BillID: bill.ID, ItemID: "pizza", TargetPersonID: "alice"})
	drop(t, c, &api.DropRequest{BillID: bill.ID, ItemID: "salad", TargetPersonID: "bob"})
	return bill
}

func balances(t *testing.T, c testClients, billID string) *api.GetBalancesResponse {
	t.Helper()
	resp, err := c.payments.GetBalances(context.Background(), connect.NewRequest(&api.GetBalancesRequest{BillID: billID}))
	require.NoError(t, err)
	return resp.Msg
}

func TestGetBalances(t *testing.T) {
	c := setupTestServer(t)
	bill := paidDinner(t, c)

	got := balances(t, c, bill.ID)
	require.Len(t, got.Balances, 2)
	assert.Equal(t, "alice", got.Balances[0].PersonID)
	assert.True(t, dec("11").Equal(got.Balances[0].NetBalance))
	assert.Equal(t, "bob", got.Balances[1].PersonID)
	assert.True(t, dec("-11").Equal(got.Balances[1].NetBalance))

	require.Len(t, got.Debts, 1)
	assert.Equal(t, "bob", got.Debts[0].From)
	assert.Equal(t, "alice", got.Debts[0].To)
	assert.True(t, dec("11").Equal(got.Debts[0].Amount))
}

func TestPayments(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	bill := paidDinner(t, c)

	rec, err := c.payments.RecordPayment(ctx, connect.NewRequest(&api.RecordPaymentRequest{
		BillID: bill.ID, FromPersonID: "bob", ToPersonID: "alice", Amount: dec("5"), Note: "cash",
	}))
	require.NoError(t, err)
	assert.NotEmpty(t, rec.Msg.Payment.ID)

	got := balances(t, c, bill.ID)
	require.Len(t, got.Debts, 1)
	assert.True(t, dec("6").Equal(got.Debts[0].Amount))

	list, err := c.payments.ListPayments(ctx, connect.NewRequest(&api.ListPaymentsRequest{BillID: bill.ID}))
	require.NoError(t, err)
	require.Len(t, list.Msg.Payments, 1)
	assert.Equal(t, "cash", list.Msg.Payments[0].Note)

	_, err = c.payments.RecordPayment(ctx, connect.NewRequest(&api.RecordPaymentRequest{
		BillID: bill.ID, FromPersonID: "bob", ToPersonID: "alice", Amount: dec("6"),
	}))
	require.NoError(t, err)
	assert.Empty(t, balances(t, c, bill.ID).Debts)

	_, err = c.payments.DeletePayment(ctx, connect.NewRequest(&api.DeletePaymentRequest{
		BillID: bill.ID, PaymentID: rec.Msg.Payment.ID,
	}))
	require.NoError(t, err)

	got = balances(t, c, bill.ID)
	require.Len(t, got.Debts, 1)
	assert.True(t, dec("5").Equal(got.Debts[0].Amount))

	_, err = c.payments.DeletePayment(ctx, connect.NewRequest(&api.DeletePaymentRequest{
		BillID: bill.ID, PaymentID: rec.Msg.Payment.ID,
	}))
	requireCode(t, connect.CodeNotFound, err)
}

func TestRecordPayment_Validation(t *testing.T) {
	c := setupTestServer(t)
	bill := paidDinner(t, c)

	tests := []struct {
		name string
		req  *api.RecordPaymentRequest
		code connect.Code
	}{
		{
			name: "same person",
			req:  &api.RecordPaymentRequest{BillID: bill.ID, FromPersonID: "bob", ToPersonID: "bob", Amount: dec("1")},
			code: connect.CodeInvalidArgument,
		},
		{
			name: "zero amount",
			req:  &api.RecordPaymentRequest{BillID: bill.ID, FromPersonID: "bob", ToPersonID: "alice"},
			code: connect.CodeInvalidArgument,
		},
		{
			name: "unknown person",
			req:  &api.RecordPaymentRequest{BillID: bill.ID, FromPersonID: "zed", ToPersonID: "alice", Amount: dec("1")},
			code: connect.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.payments.RecordPayment(context.Background(), connect.NewRequest(tt.req))
			requireCode(t, tt.code, err)
		})
	}
}

func TestGetBalances_NoPayer(t *testing.T) {
	c := setupTestServer(t)
	bill := createBill(t, c, dinnerBill())

	_, err := c.payments.GetBalances(context.Background(), connect.NewRequest(&api.GetBalancesRequest{BillID: bill.ID}))
	requireCode(t, connect.CodeFailedPrecondition, err)
}
