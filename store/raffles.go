// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/raffle-app/models"
)

// InsertRaffle persists a raffle and sets its generated ID.
func (q *Queries) InsertRaffle(ctx context.Context, raffle *models.Raffle) error {
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO raffles (name, description, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, raffle.Name, nullString(raffle.Description), raffle.CreatedAt).Scan(&raffle.ID)
	if err != nil {
		return fmt.Errorf("failed to insert raffle: %w", err)
	}
	return nil
}

const selectRaffleByID = `
		SELECT id, name, description, created_at
		FROM raffles
		WHERE id = $1`

func (q *Queries) FindRaffleByID(ctx context.Context, id int64) (models.Raffle, error) {
	return q.findRaffle(ctx, selectRaffleByID, id)
}

// LockRaffle reads the raffle and, on postgres, holds its row lock until the
// transaction ends. Every mutation under a raffle takes this lock first, so
// writers on one raffle run one at a time on either dialect.
func (q *Queries) LockRaffle(ctx context.Context, id int64) (models.Raffle, error) {
	return q.findRaffle(ctx, selectRaffleByID+q.forUpdate, id)
}

func (q *Queries) findRaffle(ctx context.Context, query string, id int64) (models.Raffle, error) {
	var raffle models.Raffle
	var description sql.NullString

	err := q.db.QueryRowContext(ctx, query, id).Scan(&raffle.ID, &raffle.Name, &description, &raffle.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Raffle{}, ErrNotFound
	}
	if err != nil {
		return models.Raffle{}, fmt.Errorf("failed to get raffle: %w", err)
	}

	raffle.Description = stringPtr(description)
	return raffle, nil
}

// FindRaffles returns all raffles, most recent first.
func (q *Queries) FindRaffles(ctx context.Context) ([]models.Raffle, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, name, description, created_at
		FROM raffles
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list raffles: %w", err)
	}
	defer rows.Close()

	raffles := []models.Raffle{}
	for rows.Next() {
		var raffle models.Raffle
		var description sql.NullString
		if err := rows.Scan(&raffle.ID, &raffle.Name, &description, &raffle.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan raffle: %w", err)
		}
		raffle.Description = stringPtr(description)
		raffles = append(raffles, raffle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list raffles: %w", err)
	}

	return raffles, nil
}

// UpdateRaffle writes the mutable fields (name, description).
func (q *Queries) UpdateRaffle(ctx context.Context, raffle models.Raffle) error {
	res, err := q.db.ExecContext(ctx, `
		UPDATE raffles
		SET name = $1, description = $2
		WHERE id = $3
	`, raffle.Name, nullString(raffle.Description), raffle.ID)
	if err != nil {
		return fmt.Errorf("failed to update raffle: %w", err)
	}
	return requireAffected(res)
}

// DeleteRaffle removes only the raffle row; dependents must already be gone.
func (q *Queries) DeleteRaffle(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM raffles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete raffle: %w", err)
	}
	return requireAffected(res)
}
