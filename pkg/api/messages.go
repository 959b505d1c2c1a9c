package api

import "github.com/shopspring/decimal"

// User is an account as returned to clients.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	CreatedAt   int64  `json:"created_at,omitempty"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type RegisterResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User User `json:"user"`
}

// Item is a bill line.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity,omitempty"`
}

// Person is a participant of a bill.
type Person struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	BaseAmount decimal.Decimal `json:"base_amount"`
}

// Bill is a bill with its catalog and people.
type Bill struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Restaurant string          `json:"restaurant,omitempty"`
	PayerID    string          `json:"payer_id,omitempty"`
	Total      decimal.Decimal `json:"total"`
	Items      []Item          `json:"items,omitempty"`
	People     []Person        `json:"people,omitempty"`
	CreatedAt  int64           `json:"created_at"`
}

type CreateBillRequest struct {
	Title      string          `json:"title,omitempty"`
	Restaurant string          `json:"restaurant,omitempty"`
	PayerID    string          `json:"payer_id,omitempty"`
	Total      decimal.Decimal `json:"total"`
	Items      []Item          `json:"items"`
	People     []Person        `json:"people"`
	// FriendIDs adds entries of the caller's friends list as people.
	FriendIDs []string `json:"friend_ids,omitempty"`
}

type CreateBillResponse struct {
	Bill Bill `json:"bill"`
}

type GetBillRequest struct {
	BillID string `json:"bill_id"`
}

type GetBillResponse struct {
	Bill Bill `json:"bill"`
}

type ListBillsRequest struct{}

type ListBillsResponse struct {
	Bills []Bill `json:"bills"`
}

// Holding is the ordered list of items a person holds.
type Holding struct {
	PersonID string   `json:"person_id"`
	ItemIDs  []string `json:"item_ids"`
}

// Claim is a person's unit count on a multi-unit item.
type Claim struct {
	ItemID   string `json:"item_id"`
	PersonID string `json:"person_id"`
	Units    int    `json:"units"`
}

// Session is the assignment state of a bill.
type Session struct {
	Holdings []Holding `json:"holdings"`
	Claims   []Claim   `json:"claims"`
}

// QuantityChoice asks the client how many units of an item the person takes.
// Answer with ConfirmQuantity; ignoring it changes nothing.
type QuantityChoice struct {
	ItemID   string `json:"item_id"`
	PersonID string `json:"person_id"`
	Max      int    `json:"max"`
}

// DropRequest reports an item released over a person card. SourcePersonID is
// set when the item was dragged from a person rather than from the bill.
// AddPerson is set when the drop landed on the "add person" card.
type DropRequest struct {
	BillID         string `json:"bill_id"`
	ItemID         string `json:"item_id"`
	SourcePersonID string `json:"source_person_id,omitempty"`
	TargetPersonID string `json:"target_person_id,omitempty"`
	AddPerson      bool   `json:"add_person,omitempty"`
}

type DropResponse struct {
	// Applied is false when the drop was ignored; Reason says why.
	Applied        bool            `json:"applied"`
	Reason         string          `json:"reason,omitempty"`
	QuantityChoice *QuantityChoice `json:"quantity_choice,omitempty"`
	Session        Session         `json:"session"`
}

type ConfirmQuantityRequest struct {
	BillID   string `json:"bill_id"`
	ItemID   string `json:"item_id"`
	PersonID string `json:"person_id"`
	Quantity int    `json:"quantity"`
}

type ConfirmQuantityResponse struct {
	Session Session `json:"session"`
}

type UnassignRequest struct {
	BillID   string `json:"bill_id"`
	PersonID string `json:"person_id"`
	ItemID   string `json:"item_id"`
}

type UnassignResponse struct {
	Session Session `json:"session"`
}

type GetAssignmentInfoRequest struct {
	BillID string `json:"bill_id"`
	// ItemID selects one item; empty returns every item in bill order.
	ItemID string `json:"item_id,omitempty"`
}

// AssignmentInfo describes who holds an item.
type AssignmentInfo struct {
	ItemID     string   `json:"item_id"`
	People     []string `json:"people"`
	Count      int      `json:"count"`
	IsAssigned bool     `json:"is_assigned"`
	IsShared   bool     `json:"is_shared"`
	// Remaining is the unclaimed units of a multi-unit item; zero otherwise.
	Remaining int `json:"remaining"`
}

type GetAssignmentInfoResponse struct {
	Items []AssignmentInfo `json:"items"`
}

// PersonItem is one item's share for one person.
type PersonItem struct {
	ItemID string          `json:"item_id"`
	Name   string          `json:"name"`
	Units  int             `json:"units,omitempty"`
	Amount decimal.Decimal `json:"amount"`
}

// PersonSplit is one person's share of a bill.
type PersonSplit struct {
	PersonID string          `json:"person_id"`
	Name     string          `json:"name"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Base     decimal.Decimal `json:"base"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	Items    []PersonItem    `json:"items,omitempty"`
}

type GetTotalsRequest struct {
	BillID string `json:"bill_id"`
}

type GetTotalsResponse struct {
	Splits []PersonSplit `json:"splits"`
	// Subtotal is the sum of every item price on the bill.
	Subtotal decimal.Decimal `json:"subtotal"`
	// Tax is the bill total minus the subtotal, when positive.
	Tax decimal.Decimal `json:"tax"`
	// UnassignedItemIDs are items nobody holds yet.
	UnassignedItemIDs []string `json:"unassigned_item_ids,omitempty"`
}

type ResetSessionRequest struct {
	BillID string `json:"bill_id"`
}

type ResetSessionResponse struct{}

// Friend is an entry of the caller's friends list.
type Friend struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

type AddFriendRequest struct {
	Name string `json:"name"`
}

type AddFriendResponse struct {
	Friend Friend `json:"friend"`
}

type ListFriendsRequest struct{}

type ListFriendsResponse struct {
	Friends []Friend `json:"friends"`
}

// Payment is money handed between two people of a bill.
type Payment struct {
	ID           string          `json:"id"`
	BillID       string          `json:"bill_id"`
	FromPersonID string          `json:"from_person_id"`
	ToPersonID   string          `json:"to_person_id"`
	Amount       decimal.Decimal `json:"amount"`
	Note         string          `json:"note,omitempty"`
	CreatedAt    int64           `json:"created_at"`
}

type RecordPaymentRequest struct {
	BillID       string          `json:"bill_id"`
	FromPersonID string          `json:"from_person_id"`
	ToPersonID   string          `json:"to_person_id"`
	Amount       decimal.Decimal `json:"amount"`
	Note         string          `json:"note,omitempty"`
}

type RecordPaymentResponse struct {
	Payment Payment `json:"payment"`
}

type ListPaymentsRequest struct {
	BillID string `json:"bill_id"`
}

type ListPaymentsResponse struct {
	Payments []Payment `json:"payments"`
}

type DeletePaymentRequest struct {
	PaymentID string `json:"payment_id"`
	BillID    string `json:"bill_id"`
}

type DeletePaymentResponse struct{}

// MemberBalance is one person's net position on a bill.
type MemberBalance struct {
	PersonID   string          `json:"person_id"`
	NetBalance decimal.Decimal `json:"net_balance"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
	TotalOwed  decimal.Decimal `json:"total_owed"`
}

// DebtEdge is an outstanding debt between two people.
type DebtEdge struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

type GetBalancesRequest struct {
	BillID string `json:"bill_id"`
}

type GetBalancesResponse struct {
	Balances []MemberBalance `json:"balances"`
	Debts    []DebtEdge      `json:"debts"`
}
