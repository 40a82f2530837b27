// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally counts a ballot.Set under First-Past-the-Post or Single
Transferable Vote.

# Methods

	m, err := tally.ParseMethod("stv")
	result, err := tally.Tally(set, m, 3)

FPTP returns every co-leader and sets Tie when there is more than one.
STV uses the Droop quota, floor(ballots / (seats + 1)) + 1, and returns
winners in the order they were declared.

# Errors

	ErrConfiguration      seats < 1 or an unknown method
	ErrInsufficientVotes  ballots < quota * seats
	ErrInvalidDeduction   bad arguments to DeductProportional
	ErrRoundingIntegrity  votes were lost or invented (a bug)

Running out of transferable ballots is not an error: STV logs a warning
and returns the winners found so far with Incomplete set.
*/
package tally
