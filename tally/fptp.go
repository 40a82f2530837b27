// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"slices"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/models"
)

// FPTP counts first choices only. Every candidate sharing the highest count
// wins, ordered by candidate id, and Tie is set when there is more than one.
func FPTP(set *ballot.Set) models.Result {
	totals := set.Aggregate(ballot.First).FirstTotals()

	best := 0
	for _, n := range totals {
		best = max(best, n)
	}

	var leaders []int
	for id, n := range totals {
		if n == best {
			leaders = append(leaders, id)
		}
	}
	slices.Sort(leaders)

	winners := make([]models.Winner, len(leaders))
	for i, id := range leaders {
		winners[i] = models.Winner{Name: set.Name(id), Votes: best}
	}

	return models.Result{
		Method:  models.MethodFPTP,
		Seats:   1,
		Ballots: set.Len(),
		Winners: winners,
		Tie:     len(winners) > 1,
	}
}
