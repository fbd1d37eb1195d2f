// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/raffle-app/db"
	"github.com/danielhkuo/raffle-app/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

// Repository is the per-relation data access surface. *Queries implements
// it against either a connection or a transaction.
type Repository interface {
	InsertRaffle(ctx context.Context, raffle *models.Raffle) error
	FindRaffleByID(ctx context.Context, id int64) (models.Raffle, error)
	LockRaffle(ctx context.Context, id int64) (models.Raffle, error)
	FindRaffles(ctx context.Context) ([]models.Raffle, error)
	UpdateRaffle(ctx context.Context, raffle models.Raffle) error
	DeleteRaffle(ctx context.Context, id int64) error

	InsertEntry(ctx context.Context, entry *models.Entry) error
	FindEntryByID(ctx context.Context, raffleID, entryID int64) (models.Entry, error)
	FindEntries(ctx context.Context, raffleID int64) ([]models.Entry, error)
	ListEntryIDs(ctx context.Context, raffleID int64) ([]int64, error)
	UpdateEntry(ctx context.Context, entry models.Entry) error
	DeleteEntry(ctx context.Context, raffleID, entryID int64) error
	DeleteEntriesByRaffle(ctx context.Context, raffleID int64) (int64, error)

	InsertWinner(ctx context.Context, winner models.WinnerAssignment) error
	FindWinner(ctx context.Context, raffleID int64) (models.Winner, error)
	DeleteWinner(ctx context.Context, raffleID int64) error
	DeleteWinnerByEntry(ctx context.Context, entryID int64) (bool, error)
}

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries runs the relation queries against a DBTX.
type Queries struct {
	db DBTX
	// forUpdate is appended to row-locking reads; empty on sqlite, where the
	// single connection already serializes transactions.
	forUpdate string
}

// Store is the entity store. Reads go straight to the pool; multi-step
// writes go through InTx.
type Store struct {
	*Queries
	conn *sql.DB
}

// New creates a store on an open connection pool for the given dialect.
func New(conn *sql.DB, dialect string) *Store {
	return &Store{Queries: &Queries{db: conn, forUpdate: lockClause(dialect)}, conn: conn}
}

func lockClause(dialect string) string {
	if dialect == db.Postgres {
		return " FOR UPDATE"
	}
	return ""
}

// InTx runs fn inside a transaction. The transaction commits only when fn
// returns nil; any error, including a failed commit, leaves no changes behind.
func (s *Store) InTx(ctx context.Context, fn func(Repository) error) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&Queries{db: tx, forUpdate: s.forUpdate}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// isDuplicate reports whether err is a unique or primary key violation in
// either supported dialect.
func isDuplicate(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_ROWID:
			return true
		}
	}

	return false
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
