// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

var ErrNoCandidates = errors.New("no candidates to draw from")

// Picker returns an index in [0, n).
type Picker interface {
	Intn(n int) (int, error)
}

// CryptoPicker draws from crypto/rand, so every index is equally likely and
// the outcome cannot be predicted from earlier draws.
type CryptoPicker struct{}

func (CryptoPicker) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrNoCandidates
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to draw random index: %w", err)
	}
	return int(v.Int64()), nil
}

// PickerFunc adapts a plain function to Picker.
type PickerFunc func(n int) (int, error)

func (f PickerFunc) Intn(n int) (int, error) { return f(n) }

// One picks a single element of candidates uniformly at random.
func One[T any](p Picker, candidates []T) (T, error) {
	var zero T
	if len(candidates) == 0 {
		return zero, ErrNoCandidates
	}

	i, err := p.Intn(len(candidates))
	if err != nil {
		return zero, err
	}
	if i < 0 || i >= len(candidates) {
		return zero, fmt.Errorf("picker returned index %d outside [0, %d)", i, len(candidates))
	}

	return candidates[i], nil
}
