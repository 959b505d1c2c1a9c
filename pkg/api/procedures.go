package api

// Fully-qualified service names.
const (
	AuthServiceName    = "billsplit.v1.AuthService"
	BillServiceName    = "billsplit.v1.BillService"
	SplitServiceName   = "billsplit.v1.SplitService"
	FriendServiceName  = "billsplit.v1.FriendService"
	PaymentServiceName = "billsplit.v1.PaymentService"
)

// Procedure paths, in the form "/<service>/<method>".
const (
	AuthServiceRegisterProcedure       = "/" + AuthServiceName + "/Register"
	AuthServiceLoginProcedure          = "/" + AuthServiceName + "/Login"
	AuthServiceGetCurrentUserProcedure = "/" + AuthServiceName + "/GetCurrentUser"

	BillServiceCreateBillProcedure = "/" + BillServiceName + "/CreateBill"
	BillServiceGetBillProcedure    = "/" + BillServiceName + "/GetBill"
	BillServiceListBillsProcedure  = "/" + BillServiceName + "/ListBills"

	SplitServiceDropProcedure              = "/" + SplitServiceName + "/Drop"
	SplitServiceConfirmQuantityProcedure   = "/" + SplitServiceName + "/ConfirmQuantity"
	SplitServiceUnassignProcedure          = "/" + SplitServiceName + "/Unassign"
	SplitServiceGetAssignmentInfoProcedure = "/" + SplitServiceName + "/GetAssignmentInfo"
	SplitServiceGetTotalsProcedure         = "/" + SplitServiceName + "/GetTotals"
	SplitServiceResetSessionProcedure      = "/" + SplitServiceName + "/ResetSession"

	FriendServiceAddFriendProcedure   = "/" + FriendServiceName + "/AddFriend"
	FriendServiceListFriendsProcedure = "/" + FriendServiceName + "/ListFriends"

	PaymentServiceRecordPaymentProcedure = "/" + PaymentServiceName + "/RecordPayment"
	PaymentServiceListPaymentsProcedure  = "/" + PaymentServiceName + "/ListPayments"
	PaymentServiceDeletePaymentProcedure = "/" + PaymentServiceName + "/DeletePayment"
	PaymentServiceGetBalancesProcedure   = "/" + PaymentServiceName + "/GetBalances"
)
