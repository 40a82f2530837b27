// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballot validates raw ballots and aggregates them into count tables.

# Ballot Sets

Construct accepts the shapes a caller or a decoded JSON document produces:

	set, err := ballot.Construct([][]string{{"Apple", "Orange"}, {"Banana"}}, nil)
	set, err := ballot.Construct([]any{"A", "B", "A"}, []string{"A", "B"})
	set, err := ballot.FromRanked([][]int{{1, 2}, {2}}, nil)

Flat single choices become length-1 ranked ballots. Choices are either all
names or all integer indices. Without a candidate list, names are collected
from the ballots (sorted, so ids are stable) and integer ballots get
placeholder names "candidate_<id>" for ids 0 through the largest seen.

A Set is never mutated after construction. Every failure wraps
ErrValidation.

# Count Tables

Aggregate groups identical rankings into a Table keyed by ranking:

	table := set.Aggregate(ballot.All)   // full ranking, padded with None
	table := set.Aggregate(ballot.First) // first choice only

Table.Total always equals Set.Len for a freshly aggregated table.

# Generation

Generate builds random ballot sets for simulations and fixtures. Each
ballot ranks a random number of distinct candidates in random order:

	rng := rand.New(rand.NewPCG(1, 2))
	set, err := ballot.Generate(ballot.Names(5), 1000, rng)
*/
package ballot
