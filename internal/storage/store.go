// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/billsplit/internal/assignment"
	"github.com/mmynk/billsplit/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	BillStore
	SessionStore
	UserStore
	FriendStore
	PaymentStore

	// Close releases any resources held by the store.
	Close() error
}

// BillStore persists bills with their items and people.
type BillStore interface {
	// CreateBill persists a new bill.
	// Empty bill, item and person IDs are populated by the store.
	CreateBill(ctx context.Context, bill *models.Bill) error

	// GetBill retrieves a bill by its ID, with items and people in their original order.
	// Returns an error wrapping ErrNotFound if the bill does not exist.
	GetBill(ctx context.Context, billID string) (*models.Bill, error)

	// ListBillsByOwner returns the bills created by a user, newest first.
	// Items and people are not loaded.
	ListBillsByOwner(ctx context.Context, ownerID string) ([]*models.Bill, error)
}

// SessionStore persists the assignment state of a bill's split session.
type SessionStore interface {
	// GetSession returns the stored snapshot; an empty snapshot if none was saved.
	GetSession(ctx context.Context, billID string) (assignment.Snapshot, error)

	// SaveSession replaces the stored snapshot.
	SaveSession(ctx context.Context, billID string, snap assignment.Snapshot) error
}

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// FriendStore persists each user's friends list.
type FriendStore interface {
	AddFriend(ctx context.Context, friend *models.Friend) error
	ListFriends(ctx context.Context, userID string) ([]*models.Friend, error)
}

// PaymentStore persists payments recorded against bills.
type PaymentStore interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	ListPaymentsByBill(ctx context.Context, billID string) ([]*models.Payment, error)
	DeletePayment(ctx context.Context, paymentID string) error
}
