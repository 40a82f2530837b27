// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import "errors"

var (
	ErrConfiguration     = errors.New("invalid tally configuration")
	ErrInsufficientVotes = errors.New("too few votes to fill all seats")
	ErrInvalidDeduction  = errors.New("invalid deduction")

	// ErrRoundingIntegrity means the count lost or invented votes. It is a
	// bug, not bad input, and callers must not swallow it.
	ErrRoundingIntegrity = errors.New("rounding integrity violated")
)
