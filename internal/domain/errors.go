package domain

import "errors"

// ErrMalformedTime is returned when a time-of-day value is missing a field or
// carries an out-of-range hour, minute, or period (e.g. 13:00 AM, 5:60 PM).
// It is never reported as a ValidationResult: malformed input is a caller
// error, not a house-rule violation.
var ErrMalformedTime = errors.New("malformed time")

// ErrValidation is returned when configuration fails a rule check
// (e.g. an unknown strategy, or a window whose start falls after its end).
var ErrValidation = errors.New("validation error")
