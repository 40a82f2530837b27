// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"slices"
	"testing"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/models"
)

// Repeat returns n copies of a ranking, for writing fixtures like 5×[A, B]
func Repeat[T any](n int, ranking ...T) [][]T {
	out := make([][]T, n)
	for i := range out {
		out[i] = slices.Clone(ranking)
	}
	return out
}

// Concat joins ballot groups in order
func Concat[T any](groups ...[][]T) [][]T {
	var out [][]T
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// NamedSet builds a ballot set from named ballots or fails the test
func NamedSet(t *testing.T, ballots [][]string, names []string) *ballot.Set {
	t.Helper()

	set, err := ballot.FromNamed(ballots, names)
	if err != nil {
		t.Fatalf("Failed to build ballot set: %v", err)
	}
	return set
}

// RankedSet builds a ballot set from integer ballots or fails the test
func RankedSet(t *testing.T, ballots [][]int, names []string) *ballot.Set {
	t.Helper()

	set, err := ballot.FromRanked(ballots, names)
	if err != nil {
		t.Fatalf("Failed to build ballot set: %v", err)
	}
	return set
}

// AssertWinners checks winners and their vote counts in declaration order
func AssertWinners(t *testing.T, result models.Result, want ...models.Winner) {
	t.Helper()
	if !slices.Equal(result.Winners, want) {
		t.Errorf("Expected winners %+v, got %+v", want, result.Winners)
	}
}

// AssertConserved checks every round accounts for every ballot
func AssertConserved(t *testing.T, result models.Result) {
	t.Helper()
	for _, r := range result.Rounds {
		if got := r.Active + r.Retained + r.Exhausted; got != result.Ballots {
			t.Errorf("Round %d accounts for %d votes (active %d, retained %d, exhausted %d), want %d",
				r.Number, got, r.Active, r.Retained, r.Exhausted, result.Ballots)
		}
	}
}
