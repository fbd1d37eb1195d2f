// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package raffle

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/raffle-app/models"
)

// Kind classifies every error returned by Service.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

type kinded interface {
	error
	kind() Kind
}

// KindOf reports the kind of err, looking through wrapping.
func KindOf(err error) Kind {
	var k kinded
	if errors.As(err, &k) {
		return k.kind()
	}
	return KindUnknown
}

// ValidationError is malformed or missing input. Detected before any store
// access.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) kind() Kind    { return KindValidation }

// NotFoundError names the missing resource: Raffle, Entry or Winner.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }
func (e *NotFoundError) kind() Kind    { return KindNotFound }

// ConflictError is returned by SelectWinner when the raffle already has a
// winner. It carries that winner so callers can answer with it.
type ConflictError struct {
	Winner models.Winner
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("winner already selected for raffle %d", e.Winner.Entry.RaffleID)
}
func (e *ConflictError) kind() Kind { return KindConflict }

// StorageError wraps an underlying store failure. No partial state is left
// behind when one is returned from a mutating operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }
func (e *StorageError) kind() Kind    { return KindStorage }

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func notFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// classify passes the service's own error kinds through and wraps anything
// else as a StorageError.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != KindUnknown {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
