// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/models"
)

// Quota returns the Droop quota: floor(ballots / (seats + 1)) + 1.
func Quota(ballots, seats int) int {
	return ballots/(seats+1) + 1
}

type phase int

const (
	surplusTransfer phase = iota
	elimination
)

func (p phase) String() string {
	if p == elimination {
		return models.PhaseElimination
	}
	return models.PhaseSurplusTransfer
}

func (p phase) toggle() phase {
	if p == elimination {
		return surplusTransfer
	}
	return elimination
}

// stvCount holds the mutable state of one STV count. The ballot set itself
// is never touched; every step replaces table with a derived one.
type stvCount struct {
	set   *ballot.Set
	seats int
	quota int
	table *ballot.Table

	winners    []models.Winner
	retained   int
	exhausted  int
	incomplete bool
	rounds     []models.Round
}

// STV fills seats by Single Transferable Vote with the Droop quota.
//
// Each round elects every candidate at or above quota, highest total first
// (ties by candidate id). New winners keep exactly the quota: their rows are
// cut back with DeductProportional and the rest flows to next preferences.
// Rounds alternate between surplus transfer and elimination; an elimination
// round, or a surplus round that elected nobody, eliminates every candidate
// tied on the lowest total.
//
// If the ballots run out before every seat is filled, the winners found so
// far are returned with Incomplete set.
func STV(set *ballot.Set, seats int) (models.Result, error) {
	if seats < 1 {
		return models.Result{}, fmt.Errorf("%w: seats must be at least 1, got %d", ErrConfiguration, seats)
	}

	total := set.Len()
	quota := Quota(total, seats)
	if total < quota*seats {
		return models.Result{}, fmt.Errorf("%w: %d ballots cast, need %d (quota %d x %d seats)",
			ErrInsufficientVotes, total, quota*seats, quota, seats)
	}

	c := &stvCount{
		set:   set,
		seats: seats,
		quota: quota,
		table: set.Aggregate(ballot.All),
	}
	if err := c.run(); err != nil {
		return models.Result{}, err
	}

	return models.Result{
		Method:     models.MethodSTV,
		Seats:      seats,
		Ballots:    total,
		Quota:      quota,
		Winners:    c.winners,
		Incomplete: c.incomplete,
		Exhausted:  c.exhausted,
		Rounds:     c.rounds,
	}, nil
}

func (c *stvCount) run() error {
	p := surplusTransfer

	for n := 1; len(c.winners) < c.seats; n++ {
		if c.table.Empty() {
			c.incomplete = true
			slog.Warn("unresolvable count, incomplete set of winners selected",
				"seats", c.seats,
				"winners", len(c.winners),
				"rounds", n-1,
			)
			return nil
		}

		totals := c.table.FirstTotals()
		round := models.Round{Number: n, Phase: p.String(), Totals: c.named(totals)}

		elected := c.elect(totals)
		round.Elected = c.names(elected)

		if len(c.winners) < c.seats {
			if len(elected) > 0 {
				if err := c.transferSurplus(elected); err != nil {
					return err
				}
			}
			if p == elimination || len(elected) == 0 {
				round.Eliminated = c.names(c.eliminate())
			}
		}

		round.Active = c.table.Total()
		round.Retained = c.retained
		round.Exhausted = c.exhausted
		c.rounds = append(c.rounds, round)

		if err := c.checkConservation(round); err != nil {
			return err
		}

		slog.Debug("stv round",
			"round", n,
			"phase", round.Phase,
			"elected", round.Elected,
			"eliminated", round.Eliminated,
			"active", round.Active,
		)

		p = p.toggle()
	}

	return nil
}

// elect declares every candidate at or above quota, never more than the
// seats still open.
func (c *stvCount) elect(totals map[int]int) []int {
	var elected []int
	for _, id := range ballot.Ranked(totals) {
		if totals[id] < c.quota || len(c.winners) == c.seats {
			break
		}
		elected = append(elected, id)
		c.winners = append(c.winners, models.Winner{Name: c.set.Name(id), Votes: totals[id]})
	}
	return elected
}

// transferSurplus cuts each new winner's rows back so the winner keeps the
// quota, then strikes the winners from every ranking so the remaining
// counts pass to next preferences.
func (c *stvCount) transferSurplus(elected []int) error {
	rows := c.table.Rows()
	next := ballot.NewTable(c.table.Width())

	byWinner := make(map[int][]int, len(elected))
	for i, r := range rows {
		if slices.Contains(elected, r.First()) {
			byWinner[r.First()] = append(byWinner[r.First()], i)
			continue
		}
		next.Add(r.Ranking, r.Count)
	}

	struck := make(map[int]bool, len(elected))
	for _, id := range elected {
		idx := byWinner[id]
		counts := make([]int, len(idx))
		for j, i := range idx {
			counts[j] = rows[i].Count
		}

		kept, err := DeductProportional(counts, c.quota)
		if err != nil {
			return fmt.Errorf("transferring surplus of %s: %w", c.set.Name(id), err)
		}
		for j, i := range idx {
			next.Add(rows[i].Ranking, kept[j])
		}

		c.retained += c.quota
		struck[id] = true
	}

	var exhausted int
	c.table, exhausted = next.Without(struck)
	c.exhausted += exhausted
	return nil
}

// eliminate removes every continuing candidate tied on the lowest total.
func (c *stvCount) eliminate() []int {
	totals := c.table.FirstTotals()
	if len(totals) == 0 {
		return nil
	}

	lowest := -1
	for _, n := range totals {
		if lowest < 0 || n < lowest {
			lowest = n
		}
	}

	var losers []int
	struck := make(map[int]bool)
	for id, n := range totals {
		if n == lowest {
			losers = append(losers, id)
			struck[id] = true
		}
	}
	slices.Sort(losers)

	var exhausted int
	c.table, exhausted = c.table.Without(struck)
	c.exhausted += exhausted
	return losers
}

func (c *stvCount) checkConservation(r models.Round) error {
	if got := r.Active + r.Retained + r.Exhausted; got != c.set.Len() {
		return fmt.Errorf("%w: round %d accounts for %d votes (active %d, retained %d, exhausted %d), want %d",
			ErrRoundingIntegrity, r.Number, got, r.Active, r.Retained, r.Exhausted, c.set.Len())
	}
	return nil
}

func (c *stvCount) named(totals map[int]int) map[string]int {
	out := make(map[string]int, len(totals))
	for id, n := range totals {
		out[c.set.Name(id)] = n
	}
	return out
}

func (c *stvCount) names(ids []int) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = c.set.Name(id)
	}
	return out
}
