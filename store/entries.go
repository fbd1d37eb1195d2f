// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/raffle-app/models"
)

// InsertEntry persists an entry and sets its generated ID.
func (q *Queries) InsertEntry(ctx context.Context, entry *models.Entry) error {
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO entries (raffle_id, name, email, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, entry.RaffleID, entry.Name, nullString(entry.Email), entry.CreatedAt).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

// FindEntryByID returns the entry only if it belongs to raffleID.
func (q *Queries) FindEntryByID(ctx context.Context, raffleID, entryID int64) (models.Entry, error) {
	var entry models.Entry
	var email sql.NullString

	err := q.db.QueryRowContext(ctx, `
		SELECT id, raffle_id, name, email, created_at
		FROM entries
		WHERE id = $1 AND raffle_id = $2
	`, entryID, raffleID).Scan(&entry.ID, &entry.RaffleID, &entry.Name, &email, &entry.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Entry{}, ErrNotFound
	}
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to get entry: %w", err)
	}

	entry.Email = stringPtr(email)
	return entry, nil
}

// FindEntries returns a raffle's entries, most recent first.
func (q *Queries) FindEntries(ctx context.Context, raffleID int64) ([]models.Entry, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, raffle_id, name, email, created_at
		FROM entries
		WHERE raffle_id = $1
		ORDER BY created_at DESC, id DESC
	`, raffleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		var entry models.Entry
		var email sql.NullString
		if err := rows.Scan(&entry.ID, &entry.RaffleID, &entry.Name, &email, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entry.Email = stringPtr(email)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return entries, nil
}

// ListEntryIDs returns the ids of a raffle's entries in ascending order.
func (q *Queries) ListEntryIDs(ctx context.Context, raffleID int64) ([]int64, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id FROM entries WHERE raffle_id = $1 ORDER BY id
	`, raffleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entry ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan entry id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list entry ids: %w", err)
	}

	return ids, nil
}

// UpdateEntry writes the mutable fields (name, email).
func (q *Queries) UpdateEntry(ctx context.Context, entry models.Entry) error {
	res, err := q.db.ExecContext(ctx, `
		UPDATE entries
		SET name = $1, email = $2
		WHERE id = $3 AND raffle_id = $4
	`, entry.Name, nullString(entry.Email), entry.ID, entry.RaffleID)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}
	return requireAffected(res)
}

func (q *Queries) DeleteEntry(ctx context.Context, raffleID, entryID int64) error {
	res, err := q.db.ExecContext(ctx, `
		DELETE FROM entries WHERE id = $1 AND raffle_id = $2
	`, entryID, raffleID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return requireAffected(res)
}

// DeleteEntriesByRaffle removes every entry of a raffle and returns how many
// were removed.
func (q *Queries) DeleteEntriesByRaffle(ctx context.Context, raffleID int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM entries WHERE raffle_id = $1`, raffleID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n, nil
}
