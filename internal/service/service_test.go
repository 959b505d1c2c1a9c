package service

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/billsplit/internal/auth"
	"github.com/mmynk/billsplit/internal/middleware"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage/sqlite"
	"github.com/mmynk/billsplit/pkg/api"
)

const (
	testUser    = "user-1"
	testUserHdr = "X-Test-User"
)

// testAuthInterceptor returns a Connect interceptor that sets a test user ID in the context.
// The X-Test-User header overrides the default user.
func testAuthInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			userID := req.Header().Get(testUserHdr)
			if userID == "" {
				userID = testUser
			}
			return next(middleware.WithUser(ctx, userID), req)
		}
	}
}

type testClients struct {
	auth     *api.AuthServiceClient
	bills    *api.BillServiceClient
	split    *api.SplitServiceClient
	friends  *api.FriendServiceClient
	payments *api.PaymentServiceClient
}

// setupTestServer creates a test server with every service over a temp SQLite database.
// AuthService runs behind the real JWT interceptor; the others use testAuthInterceptor.
func setupTestServer(t *testing.T) testClients {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	user := models.NewUser(testUser+"@example.com", "Test User", "")
	user.ID = testUser
	require.NoError(t, store.CreateUser(context.Background(), user))

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
	authSvc := NewAuthService(authenticator, store, jwtManager, slog.Default())

	testAuth := connect.WithInterceptors(testAuthInterceptor(), middleware.LoggingInterceptor())

	mux := http.NewServeMux()
	mux.Handle(api.NewAuthServiceHandler(authSvc,
		connect.WithInterceptors(middleware.OptionalAuth(jwtManager), middleware.LoggingInterceptor())))
	mux.Handle(api.NewBillServiceHandler(NewBillService(store), testAuth))
	mux.Handle(api.NewSplitServiceHandler(NewSplitService(store), testAuth))
	mux.Handle(api.NewFriendServiceHandler(NewFriendService(store), testAuth))
	mux.Handle(api.NewPaymentServiceHandler(NewPaymentService(store), testAuth))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return testClients{
		auth:     api.NewAuthServiceClient(server.Client(), server.URL),
		bills:    api.NewBillServiceClient(server.Client(), server.URL),
		split:    api.NewSplitServiceClient(server.Client(), server.URL),
		friends:  api.NewFriendServiceClient(server.Client(), server.URL),
		payments: api.NewPaymentServiceClient(server.Client(), server.URL),
	}
}

// dinnerBill is a burger, three orange juices and fries for Alice, Bob and Charlie.
func dinnerBill() *api.CreateBillRequest {
	return &api.CreateBillRequest{
		Restaurant: "Corner Diner",
		Items: []api.Item{
			{ID: "burger", Name: "Burger", Price: "$12.00", Quantity: 1},
			{ID: "oj", Name: "Orange Juice", Price: "$8.00", Quantity: 3},
			{ID: "fries", Name: "Fries", Price: "$4.50"},
		},
		People: []api.Person{
			{ID: "alice", Name: "Alice"},
			{ID: "bob", Name: "Bob"},
			{ID: "charlie", Name: "Charlie"},
		},
	}
}

func createBill(t *testing.T, c testClients, req *api.CreateBillRequest) api.Bill {
	t.Helper()
	resp, err := c.bills.CreateBill(context.Background(), connect.NewRequest(req))
	require.NoError(t, err)
	return resp.Msg.Bill
}

func drop(t *testing.T, c testClients, req *api.DropRequest) *api.DropResponse {
	t.Helper()
	resp, err := c.split.Drop(context.Background(), connect.NewRequest(req))
	require.NoError(t, err)
	return resp.Msg
}

func confirm(t *testing.T, c testClients, billID, itemID, personID string, n int) {
	t.Helper()
	_, err := c.split.ConfirmQuantity(context.Background(), connect.NewRequest(&api.ConfirmQuantityRequest{
		BillID: billID, ItemID: itemID, PersonID: personID, Quantity: n,
	}))
	require.NoError(t, err)
}

func requireCode(t *testing.T, want connect.Code, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, want, connect.CodeOf(err), "error: %v", err)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
