// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the records, request bodies and response bodies
shared by the store, the raffle core and the HTTP handlers.

# Records

	Raffle           id, name, description, created_at
	Entry            id, raffle_id, name, email, created_at
	WinnerAssignment raffle_id, entry_id, selected_at

JSON field names match the column names exactly. Optional columns
(description, email) are *string and serialize as null when unset.

# Optional members

Request bodies use OptionalString so the core can tell apart a member that
was left out, sent as null, sent as a string, or sent as another JSON type:

	{}                      → Present=false
	{"description": null}   → Present=true, Null=true
	{"description": 5}      → Present=true, Invalid=true
	{"description": " x "}  → Present=true, Value=" x "

# Winner responses

The winning entry is returned under "winner" with the assignment time as a
sibling "selected_at" member, never nested inside the entry:

	{"winner": {"id": 3, "raffle_id": 1, ...}, "selected_at": "..."}

A second draw answers 409 with the same shape plus error and message.
*/
package models
