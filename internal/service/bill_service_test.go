package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/billsplit/pkg/api"
)

func TestCreateBill(t *testing.T) {
	c := setupTestServer(t)

	req := dinnerBill()
	req.PayerID = "alice"
	req.Total = dec("30.00")
	bill := createBill(t, c, req)

	assert.NotEmpty(t, bill.ID)
	assert.Contains(t, bill.Title, "Corner Diner")
	assert.Equal(t, "alice", bill.PayerID)
	require.Len(t, bill.Items, 3)
	assert.Equal(t, 1, bill.Items[2].Quantity, "unset quantity is stored as one unit")

	got, err := c.bills.GetBill(context.Background(), connect.NewRequest(&api.GetBillRequest{BillID: bill.ID}))
	require.NoError(t, err)
	assert.Equal(t, bill.Title, got.Msg.Bill.Title)
	assert.True(t, got.Msg.Bill.Total.Equal(dec("30")))

	var names []string
	for _, p := range got.Msg.Bill.People {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, names)

	var itemIDs []string
	for _, item := range got.Msg.Bill.Items {
		itemIDs = append(itemIDs, item.ID)
	}
	assert.Equal(t, []string{"burger", "oj", "fries"}, itemIDs)
}

func TestCreateBill_Validation(t *testing.T) {
	c := setupTestServer(t)

	tests := []struct {
		name   string
		modify func(*api.CreateBillRequest)
	}{
		{
			name:   "no items",
			modify: func(r *api.CreateBillRequest) { r.Items = nil },
		},
		{
			name:   "no people",
			modify: func(r *api.CreateBillRequest) { r.People = nil },
		},
		{
			name:   "duplicate item id",
			modify: func(r *api.CreateBillRequest) { r.Items[1].ID = "burger" },
		},
		{
			name:   "duplicate person id",
			modify: func(r *api.CreateBillRequest) { r.People[1].ID = "alice" },
		},
		{
			name:   "negative quantity",
			modify: func(r *api.CreateBillRequest) { r.Items[0].Quantity = -2 },
		},
		{
			name:   "unnamed item",
			modify: func(r *api.CreateBillRequest) { r.Items[0].Name = "  " },
		},
		{
			name:   "payer not on bill",
			modify: func(r *api.CreateBillRequest) { r.PayerID = "dave" },
		},
		{
			name:   "negative total",
			modify: func(r *api.CreateBillRequest) { r.Total = dec("-1") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dinnerBill()
			tt.modify(req)
			_, err := c.bills.CreateBill(context.Background(), connect.NewRequest(req))
			requireCode(t, connect.CodeInvalidArgument, err)
		})
	}
}

func TestGetBill_Errors(t *testing.T) {
	c := setupTestServer(t)
	bill := createBill(t, c, dinnerBill())

	_, err := c.bills.GetBill(context.Background(), connect.NewRequest(&api.GetBillRequest{BillID: "missing"}))
	requireCode(t, connect.CodeNotFound, err)

	_, err = c.bills.GetBill(context.Background(), connect.NewRequest(&api.GetBillRequest{}))
	requireCode(t, connect.CodeInvalidArgument, err)

	req := connect.NewRequest(&api.GetBillRequest{BillID: bill.ID})
	req.Header().Set(testUserHdr, "someone-else")
	_, err = c.bills.GetBill(context.Background(), req)
	requireCode(t, connect.CodePermissionDenied, err)
}

func TestListBills(t *testing.T) {
	c := setupTestServer(t)

	createBill(t, c, dinnerBill())
	createBill(t, c, dinnerBill())

	resp, err := c.bills.ListBills(context.Background(), connect.NewRequest(&api.ListBillsRequest{}))
	require.NoError(t, err)
	assert.Len(t, resp.Msg.Bills, 2)

	other := connect.NewRequest(&api.ListBillsRequest{})
	other.Header().Set(testUserHdr, "someone-else")
	resp, err = c.bills.ListBills(context.Background(), other)
	require.NoError(t, err)
	assert.Empty(t, resp.Msg.Bills)
}

func TestFriends(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	dana, err := c.friends.AddFriend(ctx, connect.NewRequest(&api.AddFriendRequest{Name: "Dana"}))
	require.NoError(t, err)
	again, err := c.friends.AddFriend(ctx, connect.NewRequest(&api.AddFriendRequest{Name: " Dana "}))
	require.NoError(t, err)
	assert.Equal(t, dana.Msg.Friend.ID, again.Msg.Friend.ID)

	_, err = c.friends.AddFriend(ctx, connect.NewRequest(&api.AddFriendRequest{Name: ""}))
	requireCode(t, connect.CodeInvalidArgument, err)

	_, err = c.friends.AddFriend(ctx, connect.NewRequest(&api.AddFriendRequest{Name: "Ed"}))
	require.NoError(t, err)

	list, err := c.friends.ListFriends(ctx, connect.NewRequest(&api.ListFriendsRequest{}))
	require.NoError(t, err)
	require.Len(t, list.Msg.Friends, 2)
	assert.Equal(t, "Dana", list.Msg.Friends[0].Name)
	assert.Equal(t, "Ed", list.Msg.Friends[1].Name)

	t.Run("friends join a new bill", func(t *testing.T) {
		req := dinnerBill()
		req.FriendIDs = []string{dana.Msg.Friend.ID}
		bill := createBill(t, c, req)

		require.Len(t, bill.People, 4)
		assert.Equal(t, dana.Msg.Friend.ID, bill.People[3].ID)
		assert.Equal(t, "Dana", bill.People[3].Name)
	})

	t.Run("unknown friend", func(t *testing.T) {
		req := dinnerBill()
		req.FriendIDs = []string{"nobody"}
		_, err := c.bills.CreateBill(ctx, connect.NewRequest(req))
		requireCode(t, connect.CodeNotFound, err)
	})

	t.Run("deleted user", func(t *testing.T) {
		req := connect.NewRequest(&api.AddFriendRequest{Name: "Dana"})
		req.Header().Set(testUserHdr, "deleted-user")
		_, err := c.friends.AddFriend(ctx, req)
		requireCode(t, connect.CodeUnauthenticated, err)
	})
}
