package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage"
)

// AddFriend adds a friend to a user's list. Adding an existing name is a no-op
// and leaves friend.ID as stored. It returns storage.ErrNotFound when the
// owning user does not exist.
func (s *SQLiteStore) AddFriend(ctx context.Context, friend *models.Friend) error {
	if friend.ID == "" {
		friend.ID = uuid.New().String()
	}
	if friend.CreatedAt == 0 {
		friend.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO friends (id, user_id, name, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (user_id, name) DO NOTHING`,
		friend.ID, friend.UserID, friend.Name, friend.CreatedAt,
	)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("user %s: %w", friend.UserID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to insert friend: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		"SELECT id, created_at FROM friends WHERE user_id = ? AND name = ?",
		friend.UserID, friend.Name,
	).Scan(&friend.ID, &friend.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to read back friend: %w", err)
	}

	return nil
}

// ListFriends returns a user's friends ordered by name.
func (s *SQLiteStore) ListFriends(ctx context.Context, userID string) ([]*models.Friend, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, name, created_at FROM friends WHERE user_id = ? ORDER BY name",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	defer rows.Close()

	var friends []*models.Friend
	for rows.Next() {
		f := &models.Friend{}
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		friends = append(friends, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friends: %w", err)
	}

	return friends, nil
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr *sqlitedriver.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
}
