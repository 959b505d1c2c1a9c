package models

// Friend is a person a user frequently splits bills with.
// Friends seed the people list when a new bill is created.
type Friend struct {
	// ID is the unique identifier for the friend entry (UUID format).
	ID string

	// UserID is the owner of the friends list.
	UserID string

	// Name is the display name used on person cards.
	Name string

	// CreatedAt is the Unix timestamp when the friend was added.
	CreatedAt int64
}
