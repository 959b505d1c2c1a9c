package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/billsplit/pkg/api"
)

func assignmentInfo(t *testing.T, c testClients, billID, itemID string) api.AssignmentInfo {
	t.Helper()
	resp, err := c.split.GetAssignmentInfo(context.Background(), connect.NewRequest(&api.GetAssignmentInfoRequest{
		BillID: billID, ItemID: itemID,
	}))
	require.NoError(t, err)
	require.Len(t, resp.Msg.Items, 1)
	return resp.Msg.Items[0]
}

func totals(t *testing.T, c testClients, billID string) *api.GetTotalsResponse {
	t.Helper()
	resp, err := c.split.GetTotals(context.Background(), connect.NewRequest(&api.GetTotalsRequest{BillID: billID}))
	require.NoError(t, err)
	return resp.Msg
}

func splitOf(t *testing.T, resp *api.GetTotalsResponse, personID string) api.PersonSplit {
	t.Helper()
	for _, s := range resp.Splits {
		if s.PersonID == personID {
			return s
		}
	}
	require.Failf(t, "missing split", "no split for %s", personID)
	return api.PersonSplit{}
}

func TestDrop_SingleUnit(t *testing.T) {
	c := setupTestServer(t)
	bill := createBill(t, c, dinnerBill())

	resp := drop(t, c, &api.DropRequest{BillID: bill.ID, ItemID: "burger", TargetPersonID: "alice"})
	assert.True(t, resp.Applied)
	require.Len(t, resp.Session.Holdings, 1)
	assert.Equal(t, api.Holding{PersonID: "alice", ItemIDs: []string{"burger"}}, resp.Session.Holdings[0])

	info := assignmentInfo(t, c, bill.ID, "burger")
	assert.True(t, info.IsAssigned)
	assert.Equal(t, 1, info.Count)

	again := drop(t, c, &api.DropRequest{BillID: bill.ID, ItemID: "burger", TargetPersonID: "alice"})
	assert.False(t, again.Applied)
	assert.NotEmpty(t, again.Reason)
	assert.Equal(t, resp.Session, again.Session)
}

func TestDrop_MultiUnitFlow(t *testing.T) {
	c := setupTestServer(t)
	bill := createBill(t, c, dinnerBill())

	resp := drop(t, c, &api.DropRequest{BillID: bill.ID, ItemID: "oj", TargetPersonID: "alice"})
	assert.False(t, resp.Applied)
	require.NotNil(t, resp.QuantityChoice)
	assert.Equal(t, api.QuantityChoice{ItemID: "oj", PersonID: "alice", Max: 3}, *resp.QuantityChoice)
	assert.Empty(t, resp.Session.Holdings, "nothing recorded before confirmation")

	confirm(t, c, bill.ID, "oj", "alice", 2)

	resp = drop(t, c, &api.DropRequest{BillID: bill.ID, ItemID: "oj", TargetPersonID: "bob"})
	require.NotNil(t, resp.QuantityChoice)
	assert.Equal(t, 1, resp.QuantityChoice.Max)

	_, err := c.split.ConfirmQuantity(context.Background(), connect.NewRequest(&api.ConfirmQuantityRequest{
		BillID: bill.ID, ItemID: "oj", PersonID: "bob", Quantity: 2,
	}))
	requireCode(t, connect.CodeInvalidArgument, err)

	confirm(t, c, bill.ID, "oj", "bob", 1)

	info := assignmentInfo(t, c, bill.ID, "oj")
	assert.Equal(t, 2, info.Count)
	assert.True(t, info.IsShared)
	assert.Equal(t, []string{"alice", "bob"}, info.People)
	assert.Equal(t, 0, info.Remaining)

	_, err = c.split.Drop(context.Background(), connect.NewRequest(&api.DropRequest{
		BillID: bill.ID, ItemID: "oj", TargetPersonID: "charlie",
	}))
	requireCode(t, connect.CodeFailedPrecondition, err)

	got := totals(t, c, bill.ID)
	assert.True(t, dec("5.33").Equal(splitOf(t, got, "alice").Total))
	assert.True(t, dec("2.67").Equal(splitOf(t, got, "bob").Total))
	assert.True(t, splitOf(t, got, "charlie").Total.IsZero())
	assert.Equal(t, []string{"burger", "fries"}, got.UnassignedItemIDs)
}

func TestDrop_Reassign(t *testing.T) {
	c := setupTestServer(t)
	bill := createBill(t, c, dinnerBill())
	drop(t, c, &api.DropRequest{BillID: bill.ID, ItemID: "burger", TargetPersonID: "alice"})

	resp := drop(t, c, &api.DropRequest{
		BillID: bill.ID, ItemID: "burger", SourcePersonID: "alice", TargetPersonID: "bob",
	})
	assert.True(t, resp.Applied)
	assert.Equal(t, []string{"bob"}, assignmentInfo(t, c, bill.ID, "burger").People)

	same := drop(t, c, &api.DropRequest{
		BillID: bill.ID, ItemID: "burger", SourcePersonID: "bob", TargetPersonID: "bob",
	})
	assert.False(t, same.Applied)
	assert.NotEmpty(t, same.Reason)

	_, err := c.split.Drop(context.Background(), connect.NewRequest(&api.DropRequest{
		BillID: bill.ID, ItemID: "burger", SourcePersonID: "charlie", TargetPersonID: "alice",
	}))
	requireCode(t, connect.CodeFailedPrecondition, err)
}

func TestDrop_OnAddPersonCard(t *testing.T) {
	c := setupTestServer(t)
	bill := createBill(t, c, dinnerBill())
	drop(t, c, &api.DropRequest{BillID: bill.ID, ItemID: "burger", TargetPersonID: "alice"})

	_, err := c.split.Drop(context.Background(), connect.NewRequest(&api.DropRequest{
		BillID: bill.ID, ItemID: "burger", SourcePersonID: "alice", AddPerson: true,
	}))
	requireCode(t, connect.CodeInvalidArgument, err)

	assert.Equal(t, []string{"alice"}, assignmentInfo(t, c, bill.ID, "burger").People)
}

func TestDrop_Errors(t *testing.T) {
	c := setupTestServer(t)
	bill := createBill(t, c, dinnerBill())

	tests := []struct {
		name string
		req  *api.DropRequest
		code connect.Code
	}{
		{name: "unknown bill", req: &api.DropRequest{BillID: "nope", ItemID: "burger", TargetPersonID: "alice"}, code: connect.CodeNotFound},
		{name: "unknown item", req: &api.DropRequest{BillID: bill.ID, ItemID: "steak", TargetPersonID: "alice"}, code: connect.CodeNotFound},
		{name: "unknown person", req: &api.DropRequest{BillID: bill.ID, ItemID: "burger", TargetPersonID: "dave"}, code: connect.CodeNotFound},
		{name: "no target", req: &api.DropRequest{BillID: bill.ID, ItemID: "burger"}, code: connect.CodeInvalidArgument},
		{name: "no item", req: &api.DropRequest{BillID: bill.ID, TargetPersonID: "alice"}, code: connect.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.split.Drop(context.Background(), connect.NewRequest(tt.req))
			requireCode(t, tt.code, err)
		})
	}
}

func TestUnassign(t *testing.T) {
	c := setupTestServer(t)
	bill := createBill(t, c, dinnerBill())
	drop(t, c, &api.DropRequest{BillID: bill.ID, ItemID: "burger", TargetPersonID: "alice"})
	drop(t, c, &api.DropRequest{BillID: bill.ID, ItemID: "fries", TargetPersonID: "alice"})

	req := &api.UnassignRequest{BillID: bill.ID, PersonID: "alice", ItemID: "burger"}
	once, err := c.split.Unassign(context.Background(), connect.NewRequest(req))
	require.NoError(t, err)
	twice, err := c.split.Unassign(context.Background(), connect.NewRequest(req))
	require.NoError(t, err)

	assert.Equal(t, once.Msg.Session, twice.Msg.Session)
	assert.Equal(t, []api.Holding{{PersonID: "alice", ItemIDs: []string{"fries"}}}, twice.Msg.Session.Holdings)
}

func TestGetTotals_SharedItemAndTax(t *testing.T) {
	c := setupTestServer(t)
	bill := createBill(t, c, &api.CreateBillRequest{
		Items: []api.Item{
			{ID: "pizza", Name: "Pizza", Price: "$20.00"},
			{ID: "salad", Name: "Salad", Price: "$8.00"},
			{ID: "wine", Name: "Wine", Price: "$2.00"},
		},
		People: []api.Person{
			{ID: "alice", Name: "Alice"},
			{ID: "bob", Name: "Bob", BaseAmount: dec("1.50")},
		},
		Total: dec("33.00"),
	})

	drop(t, c, &api.DropRequest{BillID: bill.ID, ItemID: "pizza", TargetPersonID: "alice"})
	drop(t, c, &api.DropRequest{BillID: bill.ID, ItemID: "salad", TargetPersonID: "alice"})
	drop(t, c, &api.DropRequest{BillID: bill.ID, ItemID: "salad", TargetPersonID: "bob"})
	drop(t, c, &api.DropRequest{BillID: bill.ID, ItemID: "wine", TargetPersonID: "bob"})

	got := totals(t, c, bill.ID)
	assert.True(t, dec("30").Equal(got.Subtotal))
	assert.True(t, dec("3").Equal(got.Tax))
	assert.Empty(t, got.UnassignedItemIDs)

	// Alice: pizza 20 + half the salad 4 = 24, tax 2.40.
	alice := splitOf(t, got, "alice")
	assert.True(t, dec("24").Equal(alice.Subtotal))
	assert.True(t, dec("2.4").Equal(alice.Tax))
	assert.True(t, dec("26.4").Equal(alice.Total))

	// Bob: half the salad 4 + wine 2 = 6, tax 0.60, base 1.50.
	bob := splitOf(t, got, "bob")
	assert.True(t, dec("6").Equal(bob.Subtotal))
	assert.True(t, dec("0.6").Equal(bob.Tax))
	assert.True(t, dec("8.1").Equal(bob.Total))
	require.Len(t, bob.Items, 2)
	assert.True(t, dec("4").Equal(bob.Items[0].Amount))
}

func TestGetAssignmentInfo_AllItems(t *testing.T) {
	c := setupTestServer(t)
	bill := createBill(t, c, dinnerBill())
	drop(t, c, &api.DropRequest{BillID: bill.ID, ItemID: "fries", TargetPersonID: "bob"})

	resp, err := c.split.GetAssignmentInfo(context.Background(), connect.NewRequest(&api.GetAssignmentInfoRequest{BillID: bill.ID}))
	require.NoError(t, err)
	require.Len(t, resp.Msg.Items, 3)

	assert.Equal(t, "burger", resp.Msg.Items[0].ItemID)
	assert.False(t, resp.Msg.Items[0].IsAssigned)
	assert.Equal(t, 3, resp.Msg.Items[1].Remaining)
	assert.Equal(t, []string{"bob"}, resp.Msg.Items[2].People)
}

func TestResetSession(t *testing.T) {
	c := setupTestServer(t)
	bill := createBill(t, c, dinnerBill())
	drop(t, c, &api.DropRequest{BillID: bill.ID, ItemID: "burger", TargetPersonID: "alice"})
	confirm(t, c, bill.ID, "oj", "bob", 3)

	_, err := c.split.ResetSession(context.Background(), connect.NewRequest(&api.ResetSessionRequest{BillID: bill.ID}))
	require.NoError(t, err)

	got := totals(t, c, bill.ID)
	assert.Equal(t, []string{"burger", "oj", "fries"}, got.UnassignedItemIDs)
	assert.Equal(t, 3, assignmentInfo(t, c, bill.ID, "oj").Remaining)
}

func TestSplitService_OtherUsersBill(t *testing.T) {
	c := setupTestServer(t)
	bill := createBill(t, c, dinnerBill())

	req := connect.NewRequest(&api.DropRequest{BillID: bill.ID, ItemID: "burger", TargetPersonID: "alice"})
	req.Header().Set(testUserHdr, "someone-else")
	_, err := c.split.Drop(context.Background(), req)
	requireCode(t, connect.CodePermissionDenied, err)
}
