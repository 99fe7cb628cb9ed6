package model

import "errors"

// ErrNonPositiveAmount is returned when a record operation receives a zero or
// negative amount.
var ErrNonPositiveAmount = errors.New("amount must be greater than zero")
