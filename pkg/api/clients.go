package api

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{WithJSON()}, opts...)
}

func newClient[Req, Res any](httpClient connect.HTTPClient, baseURL, procedure string, opts []connect.ClientOption) *connect.Client[Req, Res] {
	return connect.NewClient[Req, Res](httpClient, strings.TrimRight(baseURL, "/")+procedure, opts...)
}

// AuthServiceClient calls billsplit.v1.AuthService.
type AuthServiceClient struct {
	register       *connect.Client[RegisterRequest, RegisterResponse]
	login          *connect.Client[LoginRequest, LoginResponse]
	getCurrentUser *connect.Client[GetCurrentUserRequest, GetCurrentUserResponse]
}

// NewAuthServiceClient constructs a client for billsplit.v1.AuthService.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	opts = clientOptions(opts)
	return &AuthServiceClient{
		register:       newClient[RegisterRequest, RegisterResponse](httpClient, baseURL, AuthServiceRegisterProcedure, opts),
		login:          newClient[LoginRequest, LoginResponse](httpClient, baseURL, AuthServiceLoginProcedure, opts),
		getCurrentUser: newClient[GetCurrentUserRequest, GetCurrentUserResponse](httpClient, baseURL, AuthServiceGetCurrentUserProcedure, opts),
	}
}

func (c *AuthServiceClient) Register(ctx context.Context, req *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *AuthServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *AuthServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

// BillServiceClient calls billsplit.v1.BillService.
type BillServiceClient struct {
	createBill *connect.Client[CreateBillRequest, CreateBillResponse]
	getBill    *connect.Client[GetBillRequest, GetBillResponse]
	listBills  *connect.Client[ListBillsRequest, ListBillsResponse]
}

// NewBillServiceClient constructs a client for billsplit.v1.BillService.
func NewBillServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *BillServiceClient {
	opts = clientOptions(opts)
	return &BillServiceClient{
		createBill: newClient[CreateBillRequest, CreateBillResponse](httpClient, baseURL, BillServiceCreateBillProcedure, opts),
		getBill:    newClient[GetBillRequest, GetBillResponse](httpClient, baseURL, BillServiceGetBillProcedure, opts),
		listBills:  newClient[ListBillsRequest, ListBillsResponse](httpClient, baseURL, BillServiceListBillsProcedure, opts),
	}
}

func (c *BillServiceClient) CreateBill(ctx context.Context, req *connect.Request[CreateBillRequest]) (*connect.Response[CreateBillResponse], error) {
	return c.createBill.CallUnary(ctx, req)
}

func (c *BillServiceClient) GetBill(ctx context.Context, req *connect.Request[GetBillRequest]) (*connect.Response[GetBillResponse], error) {
	return c.getBill.CallUnary(ctx, req)
}

func (c *BillServiceClient) ListBills(ctx context.Context, req *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error) {
	return c.listBills.CallUnary(ctx, req)
}

// SplitServiceClient calls billsplit.v1.SplitService.
type SplitServiceClient struct {
	drop              *connect.Client[DropRequest, DropResponse]
	confirmQuantity   *connect.Client[ConfirmQuantityRequest, ConfirmQuantityResponse]
	unassign          *connect.Client[UnassignRequest, UnassignResponse]
	getAssignmentInfo *connect.Client[GetAssignmentInfoRequest, GetAssignmentInfoResponse]
	getTotals         *connect.Client[GetTotalsRequest, GetTotalsResponse]
	resetSession      *connect.Client[ResetSessionRequest, ResetSessionResponse]
}

// NewSplitServiceClient constructs a client for billsplit.v1.SplitService.
func NewSplitServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SplitServiceClient {
	opts = clientOptions(opts)
	return &SplitServiceClient{
		drop:              newClient[DropRequest, DropResponse](httpClient, baseURL, SplitServiceDropProcedure, opts),
		confirmQuantity:   newClient[ConfirmQuantityRequest, ConfirmQuantityResponse](httpClient, baseURL, SplitServiceConfirmQuantityProcedure, opts),
		unassign:          newClient[UnassignRequest, UnassignResponse](httpClient, baseURL, SplitServiceUnassignProcedure, opts),
		getAssignmentInfo: newClient[GetAssignmentInfoRequest, GetAssignmentInfoResponse](httpClient, baseURL, SplitServiceGetAssignmentInfoProcedure, opts),
		getTotals:         newClient[GetTotalsRequest, GetTotalsResponse](httpClient, baseURL, SplitServiceGetTotalsProcedure, opts),
		resetSession:      newClient[ResetSessionRequest, ResetSessionResponse](httpClient, baseURL, SplitServiceResetSessionProcedure, opts),
	}
}

func (c *SplitServiceClient) Drop(ctx context.Context, req *connect.Request[DropRequest]) (*connect.Response[DropResponse], error) {
	return c.drop.CallUnary(ctx, req)
}

func (c *SplitServiceClient) ConfirmQuantity(ctx context.Context, req *connect.Request[ConfirmQuantityRequest]) (*connect.Response[ConfirmQuantityResponse], error) {
	return c.confirmQuantity.CallUnary(ctx, req)
}

func (c *SplitServiceClient) Unassign(ctx context.Context, req *connect.Request[UnassignRequest]) (*connect.Response[UnassignResponse], error) {
	return c.unassign.CallUnary(ctx, req)
}

func (c *SplitServiceClient) GetAssignmentInfo(ctx context.Context, req *connect.Request[GetAssignmentInfoRequest]) (*connect.Response[GetAssignmentInfoResponse], error) {
	return c.getAssignmentInfo.CallUnary(ctx, req)
}

func (c *SplitServiceClient) GetTotals(ctx context.Context, req *connect.Request[GetTotalsRequest]) (*connect.Response[GetTotalsResponse], error) {
	return c.getTotals.CallUnary(ctx, req)
}

func (c *SplitServiceClient) ResetSession(ctx context.Context, req *connect.Request[ResetSessionRequest]) (*connect.Response[ResetSessionResponse], error) {
	return c.resetSession.CallUnary(ctx, req)
}

// FriendServiceClient calls billsplit.v1.FriendService.
type FriendServiceClient struct {
	addFriend   *connect.Client[AddFriendRequest, AddFriendResponse]
	listFriends *connect.Client[ListFriendsRequest, ListFriendsResponse]
}

// NewFriendServiceClient constructs a client for billsplit.v1.FriendService.
func NewFriendServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *FriendServiceClient {
	opts = clientOptions(opts)
	return &FriendServiceClient{
		addFriend:   newClient[AddFriendRequest, AddFriendResponse](httpClient, baseURL, FriendServiceAddFriendProcedure, opts),
		listFriends: newClient[ListFriendsRequest, ListFriendsResponse](httpClient, baseURL, FriendServiceListFriendsProcedure, opts),
	}
}

func (c *FriendServiceClient) AddFriend(ctx context.Context, req *connect.Request[AddFriendRequest]) (*connect.Response[AddFriendResponse], error) {
	return c.addFriend.CallUnary(ctx, req)
}

func (c *FriendServiceClient) ListFriends(ctx context.Context, req *connect.Request[ListFriendsRequest]) (*connect.Response[ListFriendsResponse], error) {
	return c.listFriends.CallUnary(ctx, req)
}

// PaymentServiceClient calls billsplit.v1.PaymentService.
type PaymentServiceClient struct {
	recordPayment *connect.Client[RecordPaymentRequest, RecordPaymentResponse]
	listPayments  *connect.Client[ListPaymentsRequest, ListPaymentsResponse]
	deletePayment *connect.Client[DeletePaymentRequest, DeletePaymentResponse]
	getBalances   *connect.Client[GetBalancesRequest, GetBalancesResponse]
}

// NewPaymentServiceClient constructs a client for billsplit.v1.PaymentService.
func NewPaymentServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *PaymentServiceClient {
	opts = clientOptions(opts)
	return &PaymentServiceClient{
		recordPayment: newClient[RecordPaymentRequest, RecordPaymentResponse](httpClient, baseURL, PaymentServiceRecordPaymentProcedure, opts),
		listPayments:  newClient[ListPaymentsRequest, ListPaymentsResponse](httpClient, baseURL, PaymentServiceListPaymentsProcedure, opts),
		deletePayment: newClient[DeletePaymentRequest, DeletePaymentResponse](httpClient, baseURL, PaymentServiceDeletePaymentProcedure, opts),
		getBalances:   newClient[GetBalancesRequest, GetBalancesResponse](httpClient, baseURL, PaymentServiceGetBalancesProcedure, opts),
	}
}

func (c *PaymentServiceClient) RecordPayment(ctx context.Context, req *connect.Request[RecordPaymentRequest]) (*connect.Response[RecordPaymentResponse], error) {
	return c.recordPayment.CallUnary(ctx, req)
}

func (c *PaymentServiceClient) ListPayments(ctx context.Context, req *connect.Request[ListPaymentsRequest]) (*connect.Response[ListPaymentsResponse], error) {
	return c.listPayments.CallUnary(ctx, req)
}

func (c *PaymentServiceClient) DeletePayment(ctx context.Context, req *connect.Request[DeletePaymentRequest]) (*connect.Response[DeletePaymentResponse], error) {
	return c.deletePayment.CallUnary(ctx, req)
}

func (c *PaymentServiceClient) GetBalances(ctx context.Context, req *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}
