// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/raffle-app/models"
)

// InsertWinner records the winner of a raffle. A raffle that already has one
// yields ErrDuplicate; the existing row is never overwritten.
func (q *Queries) InsertWinner(ctx context.Context, winner models.WinnerAssignment) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO winners (raffle_id, entry_id, selected_at)
		VALUES ($1, $2, $3)
	`, winner.RaffleID, winner.EntryID, winner.SelectedAt)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to insert winner: %w", err)
	}
	return nil
}

// FindWinner returns the raffle's winning entry and when it was drawn.
func (q *Queries) FindWinner(ctx context.Context, raffleID int64) (models.Winner, error) {
	var winner models.Winner
	var email sql.NullString

	err := q.db.QueryRowContext(ctx, `
		SELECT e.id, e.raffle_id, e.name, e.email, e.created_at, w.selected_at
		FROM winners w
		JOIN entries e ON e.id = w.entry_id
		WHERE w.raffle_id = $1
	`, raffleID).Scan(
		&winner.Entry.ID, &winner.Entry.RaffleID, &winner.Entry.Name,
		&email, &winner.Entry.CreatedAt, &winner.SelectedAt,
	)
	if err == sql.ErrNoRows {
		return models.Winner{}, ErrNotFound
	}
	if err != nil {
		return models.Winner{}, fmt.Errorf("failed to get winner: %w", err)
	}

	winner.Entry.Email = stringPtr(email)
	return winner, nil
}

func (q *Queries) DeleteWinner(ctx context.Context, raffleID int64) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM winners WHERE raffle_id = $1`, raffleID)
	if err != nil {
		return fmt.Errorf("failed to delete winner: %w", err)
	}
	return requireAffected(res)
}

// DeleteWinnerByEntry clears any assignment pointing at entryID and reports
// whether one existed.
func (q *Queries) DeleteWinnerByEntry(ctx context.Context, entryID int64) (bool, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM winners WHERE entry_id = $1`, entryID)
	if err != nil {
		return false, fmt.Errorf("failed to delete winner: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}
