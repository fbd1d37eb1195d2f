// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package raffle

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danielhkuo/raffle-app/draw"
	"github.com/danielhkuo/raffle-app/models"
	"github.com/danielhkuo/raffle-app/store"
)

// SelectWinner draws one of the raffle's current entries uniformly at random
// and records it as the winner. A raffle has at most one winner: if one is
// already recorded the call fails with a ConflictError carrying it, and the
// recorded winner is left untouched.
func (s *Service) SelectWinner(ctx context.Context, raffleID int64) (models.Winner, error) {
	if err := validateID("raffle id", raffleID); err != nil {
		return models.Winner{}, err
	}

	var winner models.Winner
	err := s.store.InTx(ctx, func(repo store.Repository) error {
		if _, err := lockRaffle(ctx, repo, raffleID); err != nil {
			return err
		}

		existing, err := repo.FindWinner(ctx, raffleID)
		if err == nil {
			return &ConflictError{Winner: existing}
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		ids, err := repo.ListEntryIDs(ctx, raffleID)
		if err != nil {
			return err
		}
		entryID, err := draw.One(s.picker, ids)
		if errors.Is(err, draw.ErrNoCandidates) {
			return invalid("Raffle has no entries")
		}
		if err != nil {
			return err
		}

		assignment := models.WinnerAssignment{
			RaffleID:   raffleID,
			EntryID:    entryID,
			SelectedAt: s.timestamp(),
		}
		// The raffle lock orders draws on postgres; without it a draw that
		// committed first surfaces here as ErrDuplicate.
		if err := repo.InsertWinner(ctx, assignment); err != nil {
			return err
		}

		entry, err := repo.FindEntryByID(ctx, raffleID, entryID)
		if err != nil {
			return err
		}
		winner = models.Winner{Entry: entry, SelectedAt: assignment.SelectedAt}
		return nil
	})

	if errors.Is(err, store.ErrDuplicate) {
		// Lost the race. The transaction is gone, so read the committed winner.
		existing, ferr := s.store.FindWinner(ctx, raffleID)
		if ferr != nil {
			return models.Winner{}, classify("select winner", errors.Join(err, ferr))
		}
		slog.Info("winner already selected", "raffle_id", raffleID, "entry_id", existing.Entry.ID)
		return models.Winner{}, &ConflictError{Winner: existing}
	}
	if err != nil {
		return models.Winner{}, classify("select winner", err)
	}

	slog.Info("winner selected", "raffle_id", raffleID, "entry_id", winner.Entry.ID)
	return winner, nil
}

// GetWinner returns the raffle's winning entry and when it was drawn.
func (s *Service) GetWinner(ctx context.Context, raffleID int64) (models.Winner, error) {
	if err := validateID("raffle id", raffleID); err != nil {
		return models.Winner{}, err
	}

	if _, err := findRaffle(ctx, s.store, raffleID); err != nil {
		return models.Winner{}, classify("get winner", err)
	}
	winner, err := s.store.FindWinner(ctx, raffleID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Winner{}, notFound("Winner")
	}
	if err != nil {
		return models.Winner{}, classify("get winner", err)
	}
	return winner, nil
}

// ClearWinner removes the raffle's winner and returns the entry id it
// pointed at. The raffle can be drawn again afterwards.
func (s *Service) ClearWinner(ctx context.Context, raffleID int64) (int64, error) {
	if err := validateID("raffle id", raffleID); err != nil {
		return 0, err
	}

	var entryID int64
	err := s.store.InTx(ctx, func(repo store.Repository) error {
		if _, err := lockRaffle(ctx, repo, raffleID); err != nil {
			return err
		}

		winner, err := repo.FindWinner(ctx, raffleID)
		if errors.Is(err, store.ErrNotFound) {
			return notFound("Winner")
		}
		if err != nil {
			return err
		}
		entryID = winner.Entry.ID

		return repo.DeleteWinner(ctx, raffleID)
	})
	if err != nil {
		return 0, classify("clear winner", err)
	}

	slog.Info("winner cleared", "raffle_id", raffleID, "entry_id", entryID)
	return entryID, nil
}
