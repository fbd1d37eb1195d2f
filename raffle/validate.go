// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package raffle

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/danielhkuo/raffle-app/models"
)

// Length caps, counted in characters after trimming (descriptions are not
// trimmed).
const (
	MaxNameLength        = 200
	MaxEmailLength       = 254
	MaxDescriptionLength = 2000
)

func validateID(field string, id int64) error {
	// Required rejects 0, Min rejects negatives.
	if err := validation.Validate(id, validation.Required, validation.Min(int64(1))); err != nil {
		return invalid("%s must be a positive integer", field)
	}
	return nil
}

// requiredName returns the trimmed name or a ValidationError when the member
// is missing, null, not a string, blank, or longer than MaxNameLength.
func requiredName(field string, v models.OptionalString, message string) (string, error) {
	if !v.Present || v.Null || v.Invalid {
		return "", invalid("%s", message)
	}
	name := strings.TrimSpace(v.Value)
	if err := validation.Validate(name, validation.Required); err != nil {
		return "", invalid("%s", message)
	}
	if err := validation.Validate(name, validation.RuneLength(1, MaxNameLength)); err != nil {
		return "", invalid("%s must be at most %d characters", field, MaxNameLength)
	}
	return name, nil
}

// optionalDescription maps absent, null and blank to nil. A present
// non-string or overlong value is an error.
func optionalDescription(v models.OptionalString) (*string, error) {
	if v.Invalid {
		return nil, invalid("Raffle description must be a string")
	}
	if !v.Present || v.Null || strings.TrimSpace(v.Value) == "" {
		return nil, nil
	}
	if err := validation.Validate(v.Value, validation.RuneLength(0, MaxDescriptionLength)); err != nil {
		return nil, invalid("Raffle description must be at most %d characters", MaxDescriptionLength)
	}
	desc := v.Value
	return &desc, nil
}

// optionalEmail maps absent and null to nil. A present value must be a
// non-blank string of at most MaxEmailLength characters.
func optionalEmail(v models.OptionalString) (*string, error) {
	if !v.Present || v.Null {
		return nil, nil
	}
	if v.Invalid {
		return nil, invalid("Entry email must be a non-empty string")
	}
	email := strings.TrimSpace(v.Value)
	if err := validation.Validate(email, validation.Required); err != nil {
		return nil, invalid("Entry email must be a non-empty string")
	}
	if err := validation.Validate(email, validation.RuneLength(1, MaxEmailLength)); err != nil {
		return nil, invalid("Entry email must be at most %d characters", MaxEmailLength)
	}
	return &email, nil
}
