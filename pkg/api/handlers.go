package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// AuthServiceHandler is implemented by the account service.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error)
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error)
}

// BillServiceHandler is implemented by the bill service.
type BillServiceHandler interface {
	CreateBill(context.Context, *connect.Request[CreateBillRequest]) (*connect.Response[CreateBillResponse], error)
	GetBill(context.Context, *connect.Request[GetBillRequest]) (*connect.Response[GetBillResponse], error)
	ListBills(context.Context, *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error)
}

// SplitServiceHandler is implemented by the assignment session service.
type SplitServiceHandler interface {
	Drop(context.Context, *connect.Request[DropRequest]) (*connect.Response[DropResponse], error)
	ConfirmQuantity(context.Context, *connect.Request[ConfirmQuantityRequest]) (*connect.Response[ConfirmQuantityResponse], error)
	Unassign(context.Context, *connect.Request[UnassignRequest]) (*connect.Response[UnassignResponse], error)
	GetAssignmentInfo(context.Context, *connect.Request[GetAssignmentInfoRequest]) (*connect.Response[GetAssignmentInfoResponse], error)
	GetTotals(context.Context, *connect.Request[GetTotalsRequest]) (*connect.Response[GetTotalsResponse], error)
	ResetSession(context.Context, *connect.Request[ResetSessionRequest]) (*connect.Response[ResetSessionResponse], error)
}

// FriendServiceHandler is implemented by the friends service.
type FriendServiceHandler interface {
	AddFriend(context.Context, *connect.Request[AddFriendRequest]) (*connect.Response[AddFriendResponse], error)
	ListFriends(context.Context, *connect.Request[ListFriendsRequest]) (*connect.Response[ListFriendsResponse], error)
}

// PaymentServiceHandler is implemented by the payments service.
type PaymentServiceHandler interface {
	RecordPayment(context.Context, *connect.Request[RecordPaymentRequest]) (*connect.Response[RecordPaymentResponse], error)
	ListPayments(context.Context, *connect.Request[ListPaymentsRequest]) (*connect.Response[ListPaymentsResponse], error)
	DeletePayment(context.Context, *connect.Request[DeletePaymentRequest]) (*connect.Response[DeletePaymentResponse], error)
	GetBalances(context.Context, *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error)
}

func handle[Req, Res any](
	mux *http.ServeMux,
	procedure string,
	fn func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error),
	opts []connect.HandlerOption,
) {
	mux.Handle(procedure, connect.NewUnaryHandler(procedure, fn, opts...))
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{WithJSON()}, opts...)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, AuthServiceRegisterProcedure, svc.Register, opts)
	handle(mux, AuthServiceLoginProcedure, svc.Login, opts)
	handle(mux, AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts)
	return "/" + AuthServiceName + "/", mux
}

// NewBillServiceHandler builds an HTTP handler from the service implementation.
func NewBillServiceHandler(svc BillServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, BillServiceCreateBillProcedure, svc.CreateBill, opts)
	handle(mux, BillServiceGetBillProcedure, svc.GetBill, opts)
	handle(mux, BillServiceListBillsProcedure, svc.ListBills, opts)
	return "/" + BillServiceName + "/", mux
}

// NewSplitServiceHandler builds an HTTP handler from the service implementation.
func NewSplitServiceHandler(svc SplitServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, SplitServiceDropProcedure, svc.Drop, opts)
	handle(mux, SplitServiceConfirmQuantityProcedure, svc.ConfirmQuantity, opts)
	handle(mux, SplitServiceUnassignProcedure, svc.Unassign, opts)
	handle(mux, SplitServiceGetAssignmentInfoProcedure, svc.GetAssignmentInfo, opts)
	handle(mux, SplitServiceGetTotalsProcedure, svc.GetTotals, opts)
	handle(mux, SplitServiceResetSessionProcedure, svc.ResetSession, opts)
	return "/" + SplitServiceName + "/", mux
}

// NewFriendServiceHandler builds an HTTP handler from the service implementation.
func NewFriendServiceHandler(svc FriendServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, FriendServiceAddFriendProcedure, svc.AddFriend, opts)
	handle(mux, FriendServiceListFriendsProcedure, svc.ListFriends, opts)
	return "/" + FriendServiceName + "/", mux
}

// NewPaymentServiceHandler builds an HTTP handler from the service implementation.
func NewPaymentServiceHandler(svc PaymentServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, PaymentServiceRecordPaymentProcedure, svc.RecordPayment, opts)
	handle(mux, PaymentServiceListPaymentsProcedure, svc.ListPayments, opts)
	handle(mux, PaymentServiceDeletePaymentProcedure, svc.DeletePayment, opts)
	handle(mux, PaymentServiceGetBalancesProcedure, svc.GetBalances, opts)
	return "/" + PaymentServiceName + "/", mux
}
