// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package raffle holds the rules for raffles, entries and winners.

	svc := raffle.NewService(store.New(conn, db.SQLite))
	r, err := svc.CreateRaffle(ctx, models.RaffleRequest{Name: models.String("Spring Gala")})

# Invariants

  - An entry is only created for a raffle that exists.
  - A raffle has at most one winner (winners.raffle_id is the primary key).
  - A winner always points at an entry of the same raffle.
  - Deleting a raffle removes its winner, its entries and the raffle together.
  - Deleting an entry removes the winner that points at it, if any.

Every mutation runs inside Store.InTx: existence checks and writes happen on
the same transaction, and nothing is visible until it commits.

# Winner lifecycle

	NoWinner ──SelectWinner──▶ WinnerSelected ──ClearWinner──▶ NoWinner

SelectWinner on a raffle that already has a winner returns *ConflictError
with that winner. If two draws race, the loser hits the primary key, rolls
back, and gets the same *ConflictError after re-reading the committed row.

# Errors

Every returned error is one of *ValidationError, *NotFoundError,
*ConflictError or *StorageError; KindOf classifies them. Input is validated
before the store is touched, and a missing raffle is reported before a
missing entry.
*/
package raffle
