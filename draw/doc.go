// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package draw selects one candidate uniformly at random.

	id, err := draw.One(draw.CryptoPicker{}, entryIDs)

CryptoPicker uses crypto/rand.Int, which is unbiased for any n. Tests can
substitute a deterministic Picker via PickerFunc:

	first := draw.PickerFunc(func(n int) (int, error) { return 0, nil })

An empty candidate list returns ErrNoCandidates without consulting the picker.
*/
package draw
