// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package raffle

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/danielhkuo/raffle-app/draw"
	"github.com/danielhkuo/raffle-app/models"
	"github.com/danielhkuo/raffle-app/store"
)

// Store is the entity store the service runs against. Reads may use the
// embedded Repository directly; every mutation goes through InTx.
type Store interface {
	store.Repository
	InTx(ctx context.Context, fn func(store.Repository) error) error
}

// Service implements raffle and entry management and winner selection.
// It holds no state between calls; the store is the only source of truth.
type Service struct {
	store  Store
	picker draw.Picker
	now    func() time.Time
}

type Option func(*Service)

// WithPicker replaces the random source used by SelectWinner.
func WithPicker(p draw.Picker) Option {
	return func(s *Service) { s.picker = p }
}

// WithClock replaces the timestamp source for created_at and selected_at.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(st Store, opts ...Option) *Service {
	s := &Service{
		store:  st,
		picker: draw.CryptoPicker{},
		now:    func() time.Time { return time.Now() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timestamp is UTC at microsecond precision so the value handed back to the
// caller is exactly what both dialects store.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// RaffleDeletion reports what DeleteRaffle removed.
type RaffleDeletion struct {
	RaffleID       int64
	EntriesDeleted int64
	WinnerCleared  bool
}

// EntryDeletion reports what DeleteEntry removed.
type EntryDeletion struct {
	EntryID       int64
	WinnerCleared bool
}

func (s *Service) CreateRaffle(ctx context.Context, req models.RaffleRequest) (models.Raffle, error) {
	name, err := requiredName("Raffle name", req.Name, "Raffle name is required")
	if err != nil {
		return models.Raffle{}, err
	}
	description, err := optionalDescription(req.Description)
	if err != nil {
		return models.Raffle{}, err
	}

	raffle := models.Raffle{
		Name:        name,
		Description: description,
		CreatedAt:   s.timestamp(),
	}
	if err := s.store.InsertRaffle(ctx, &raffle); err != nil {
		return models.Raffle{}, classify("create raffle", err)
	}

	slog.Info("raffle created", "raffle_id", raffle.ID)
	return raffle, nil
}

// ListRaffles returns every raffle, most recent first.
func (s *Service) ListRaffles(ctx context.Context) ([]models.Raffle, error) {
	raffles, err := s.store.FindRaffles(ctx)
	if err != nil {
		return nil, classify("list raffles", err)
	}
	return raffles, nil
}

func (s *Service) GetRaffle(ctx context.Context, id int64) (models.Raffle, error) {
	if err := validateID("raffle id", id); err != nil {
		return models.Raffle{}, err
	}

	raffle, err := findRaffle(ctx, s.store, id)
	if err != nil {
		return models.Raffle{}, classify("get raffle", err)
	}
	return raffle, nil
}

// UpdateRaffle applies a partial update. Omitted fields keep their value; a
// blank or null description clears it, a blank name is rejected.
func (s *Service) UpdateRaffle(ctx context.Context, id int64, req models.RaffleRequest) (models.Raffle, error) {
	if err := validateID("raffle id", id); err != nil {
		return models.Raffle{}, err
	}
	if !req.Name.Present && !req.Description.Present {
		return models.Raffle{}, invalid("At least one of name or description is required")
	}

	var name string
	if req.Name.Present {
		var err error
		if name, err = requiredName("Raffle name", req.Name, "Raffle name cannot be empty"); err != nil {
			return models.Raffle{}, err
		}
	}
	description, err := optionalDescription(req.Description)
	if err != nil {
		return models.Raffle{}, err
	}

	var updated models.Raffle
	err = s.store.InTx(ctx, func(repo store.Repository) error {
		raffle, err := lockRaffle(ctx, repo, id)
		if err != nil {
			return err
		}

		if req.Name.Present {
			raffle.Name = name
		}
		if req.Description.Present {
			raffle.Description = description
		}

		if err := repo.UpdateRaffle(ctx, raffle); err != nil {
			return err
		}
		updated = raffle
		return nil
	})
	if err != nil {
		return models.Raffle{}, classify("update raffle", err)
	}

	slog.Info("raffle updated", "raffle_id", id)
	return updated, nil
}

// DeleteRaffle removes the raffle's winner, its entries and the raffle in one
// transaction.
func (s *Service) DeleteRaffle(ctx context.Context, id int64) (RaffleDeletion, error) {
	if err := validateID("raffle id", id); err != nil {
		return RaffleDeletion{}, err
	}

	result := RaffleDeletion{RaffleID: id}
	err := s.store.InTx(ctx, func(repo store.Repository) error {
		if _, err := lockRaffle(ctx, repo, id); err != nil {
			return err
		}

		err := repo.DeleteWinner(ctx, id)
		switch {
		case err == nil:
			result.WinnerCleared = true
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		n, err := repo.DeleteEntriesByRaffle(ctx, id)
		if err != nil {
			return err
		}
		result.EntriesDeleted = n

		return repo.DeleteRaffle(ctx, id)
	})
	if err != nil {
		return RaffleDeletion{}, classify("delete raffle", err)
	}

	slog.Info("raffle deleted",
		"raffle_id", id,
		"entries_deleted", result.EntriesDeleted,
		"winner_cleared", result.WinnerCleared,
	)
	return result, nil
}

func (s *Service) CreateEntry(ctx context.Context, raffleID int64, req models.EntryRequest) (models.Entry, error) {
	if err := validateID("raffle id", raffleID); err != nil {
		return models.Entry{}, err
	}
	name, err := requiredName("Entry name", req.Name, "Entry name is required")
	if err != nil {
		return models.Entry{}, err
	}
	email, err := optionalEmail(req.Email)
	if err != nil {
		return models.Entry{}, err
	}

	entry := models.Entry{
		RaffleID:  raffleID,
		Name:      name,
		Email:     email,
		CreatedAt: s.timestamp(),
	}
	err = s.store.InTx(ctx, func(repo store.Repository) error {
		if _, err := lockRaffle(ctx, repo, raffleID); err != nil {
			return err
		}
		return repo.InsertEntry(ctx, &entry)
	})
	if err != nil {
		return models.Entry{}, classify("create entry", err)
	}

	slog.Info("entry created", "raffle_id", raffleID, "entry_id", entry.ID)
	return entry, nil
}

// ListEntries returns a raffle's entries, most recent first.
func (s *Service) ListEntries(ctx context.Context, raffleID int64) ([]models.Entry, error) {
	if err := validateID("raffle id", raffleID); err != nil {
		return nil, err
	}

	if _, err := findRaffle(ctx, s.store, raffleID); err != nil {
		return nil, classify("list entries", err)
	}
	entries, err := s.store.FindEntries(ctx, raffleID)
	if err != nil {
		return nil, classify("list entries", err)
	}
	return entries, nil
}

func (s *Service) GetEntry(ctx context.Context, raffleID, entryID int64) (models.Entry, error) {
	if err := validateIDs(raffleID, entryID); err != nil {
		return models.Entry{}, err
	}

	if _, err := findRaffle(ctx, s.store, raffleID); err != nil {
		return models.Entry{}, classify("get entry", err)
	}
	entry, err := findEntry(ctx, s.store, raffleID, entryID)
	if err != nil {
		return models.Entry{}, classify("get entry", err)
	}
	return entry, nil
}

// UpdateEntry applies a partial update. A null email clears it; a blank or
// non-string email is rejected, as is a blank name.
func (s *Service) UpdateEntry(ctx context.Context, raffleID, entryID int64, req models.EntryRequest) (models.Entry, error) {
	if err := validateIDs(raffleID, entryID); err != nil {
		return models.Entry{}, err
	}
	if !req.Name.Present && !req.Email.Present {
		return models.Entry{}, invalid("At least one of name or email is required")
	}

	var name string
	if req.Name.Present {
		var err error
		if name, err = requiredName("Entry name", req.Name, "Entry name cannot be empty"); err != nil {
			return models.Entry{}, err
		}
	}
	email, err := optionalEmail(req.Email)
	if err != nil {
		return models.Entry{}, err
	}

	var updated models.Entry
	err = s.store.InTx(ctx, func(repo store.Repository) error {
		if _, err := lockRaffle(ctx, repo, raffleID); err != nil {
			return err
		}
		entry, err := findEntry(ctx, repo, raffleID, entryID)
		if err != nil {
			return err
		}

		if req.Name.Present {
			entry.Name = name
		}
		if req.Email.Present {
			entry.Email = email
		}

		if err := repo.UpdateEntry(ctx, entry); err != nil {
			return err
		}
		updated = entry
		return nil
	})
	if err != nil {
		return models.Entry{}, classify("update entry", err)
	}

	slog.Info("entry updated", "raffle_id", raffleID, "entry_id", entryID)
	return updated, nil
}

// DeleteEntry clears the raffle's winner if it points at this entry, then
// removes the entry, in one transaction.
func (s *Service) DeleteEntry(ctx context.Context, raffleID, entryID int64) (EntryDeletion, error) {
	if err := validateIDs(raffleID, entryID); err != nil {
		return EntryDeletion{}, err
	}

	result := EntryDeletion{EntryID: entryID}
	err := s.store.InTx(ctx, func(repo store.Repository) error {
		if _, err := lockRaffle(ctx, repo, raffleID); err != nil {
			return err
		}
		if _, err := findEntry(ctx, repo, raffleID, entryID); err != nil {
			return err
		}

		cleared, err := repo.DeleteWinnerByEntry(ctx, entryID)
		if err != nil {
			return err
		}
		result.WinnerCleared = cleared

		return repo.DeleteEntry(ctx, raffleID, entryID)
	})
	if err != nil {
		return EntryDeletion{}, classify("delete entry", err)
	}

	slog.Info("entry deleted",
		"raffle_id", raffleID,
		"entry_id", entryID,
		"winner_cleared", result.WinnerCleared,
	)
	return result, nil
}

func validateIDs(raffleID, entryID int64) error {
	if err := validateID("raffle id", raffleID); err != nil {
		return err
	}
	return validateID("entry id", entryID)
}

func findRaffle(ctx context.Context, repo store.Repository, id int64) (models.Raffle, error) {
	raffle, err := repo.FindRaffleByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Raffle{}, notFound("Raffle")
	}
	return raffle, err
}

// lockRaffle is findRaffle for use inside InTx. It takes the raffle's row
// lock, so mutations on the same raffle do not interleave.
func lockRaffle(ctx context.Context, repo store.Repository, id int64) (models.Raffle, error) {
	raffle, err := repo.LockRaffle(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Raffle{}, notFound("Raffle")
	}
	return raffle, err
}

func findEntry(ctx context.Context, repo store.Repository, raffleID, entryID int64) (models.Entry, error) {
	entry, err := repo.FindEntryByID(ctx, raffleID, entryID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Entry{}, notFound("Entry")
	}
	return entry, err
}
