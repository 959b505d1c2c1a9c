package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/billsplit/internal/assignment"
)

// GetSession loads the assignment snapshot of a bill. Holdings keep their person and
// item order; a bill without a saved session yields an empty snapshot.
// Both tables are read in one transaction so a concurrent SaveSession is seen
// either entirely or not at all.
func (s *SQLiteStore) GetSession(ctx context.Context, billID string) (assignment.Snapshot, error) {
	var snap assignment.Snapshot

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return snap, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT person_id, item_id FROM holdings
		 WHERE bill_id = ? ORDER BY person_pos, item_pos`,
		billID,
	)
	if err != nil {
		return snap, fmt.Errorf("failed to get holdings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var personID, itemID string
		if err := rows.Scan(&personID, &itemID); err != nil {
			return snap, fmt.Errorf("failed to scan holding: %w", err)
		}
		n := len(snap.Holdings)
		if n == 0 || snap.Holdings[n-1].PersonID != personID {
			snap.Holdings = append(snap.Holdings, assignment.Holding{PersonID: personID})
			n++
		}
		snap.Holdings[n-1].ItemIDs = append(snap.Holdings[n-1].ItemIDs, itemID)
	}
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("failed to iterate holdings: %w", err)
	}

	claimRows, err := tx.QueryContext(ctx,
		`SELECT c.item_id, c.person_id, c.units FROM claims c
		 JOIN holdings h ON h.bill_id = c.bill_id AND h.person_id = c.person_id AND h.item_id = c.item_id
		 WHERE c.bill_id = ? ORDER BY h.person_pos, h.item_pos`,
		billID,
	)
	if err != nil {
		return snap, fmt.Errorf("failed to get claims: %w", err)
	}
	defer claimRows.Close()

	for claimRows.Next() {
		var c assignment.Claim
		if err := claimRows.Scan(&c.ItemID, &c.PersonID, &c.Units); err != nil {
			return snap, fmt.Errorf("failed to scan claim: %w", err)
		}
		snap.Claims = append(snap.Claims, c)
	}
	if err := claimRows.Err(); err != nil {
		return snap, fmt.Errorf("failed to iterate claims: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return snap, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return snap, nil
}

// SaveSession replaces the stored assignment snapshot of a bill in one transaction.
func (s *SQLiteStore) SaveSession(ctx context.Context, billID string, snap assignment.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM claims WHERE bill_id = ?", billID); err != nil {
		return fmt.Errorf("failed to clear claims: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM holdings WHERE bill_id = ?", billID); err != nil {
		return fmt.Errorf("failed to clear holdings: %w", err)
	}

	for personPos, h := range snap.Holdings {
		for itemPos, itemID := range h.ItemIDs {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO holdings (bill_id, person_id, item_id, person_pos, item_pos) VALUES (?, ?, ?, ?, ?)",
				billID, h.PersonID, itemID, personPos, itemPos,
			)
			if err != nil {
				return fmt.Errorf("failed to insert holding: %w", err)
			}
		}
	}

	for _, c := range snap.Claims {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO claims (bill_id, item_id, person_id, units) VALUES (?, ?, ?, ?)",
			billID, c.ItemID, c.PersonID, c.Units,
		)
		if err != nil {
			return fmt.Errorf("failed to insert claim: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
