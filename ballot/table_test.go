// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func mustRanked(t *testing.T, ballots [][]int, names []string) *Set {
	t.Helper()
	set, err := FromRanked(ballots, names)
	if err != nil {
		t.Fatalf("FromRanked() error = %v", err)
	}
	return set
}

func TestAggregate_All(t *testing.T) {
	set := mustRanked(t, [][]int{{0, 1}, {0, 1}, {1}, {2, 0, 1}, {0, 1}}, []string{"A", "B", "C"})

	table := set.Aggregate(All)

	if table.Width() != 3 {
		t.Errorf("Width() = %d, want 3", table.Width())
	}
	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}
	if table.Total() != set.Len() {
		t.Errorf("Total() = %d, want %d", table.Total(), set.Len())
	}
	if n := table.Count([]int{0, 1}); n != 3 {
		t.Errorf("Count([0 1]) = %d, want 3", n)
	}

	rows := table.Rows()
	want := []Row{
		{Ranking: []int{0, 1, None}, Count: 3},
		{Ranking: []int{1, None, None}, Count: 1},
		{Ranking: []int{2, 0, 1}, Count: 1},
	}
	if len(rows) != len(want) {
		t.Fatalf("Rows() = %v, want %v", rows, want)
	}
	for i := range want {
		if !slices.Equal(rows[i].Ranking, want[i].Ranking) || rows[i].Count != want[i].Count {
			t.Errorf("Rows()[%d] = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestAggregate_First(t *testing.T) {
	set := mustRanked(t, [][]int{{0, 1}, {0, 2}, {1}, {2, 0}}, []string{"A", "B", "C"})

	table := set.Aggregate(First)

	if table.Width() != 1 {
		t.Errorf("Width() = %d, want 1", table.Width())
	}
	if table.Total() != set.Len() {
		t.Errorf("Total() = %d, want %d", table.Total(), set.Len())
	}

	totals := table.FirstTotals()
	want := map[int]int{0: 2, 1: 1, 2: 1}
	for id, n := range want {
		if totals[id] != n {
			t.Errorf("FirstTotals()[%d] = %d, want %d", id, totals[id], n)
		}
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	set, err := Generate(Names(4), 500, rng)
	if err != nil {
		t.Fatal(err)
	}

	ballots := set.Ballots()
	rng.Shuffle(len(ballots), func(i, j int) { ballots[i], ballots[j] = ballots[j], ballots[i] })
	shuffled := mustRanked(t, ballots, set.Candidates())

	for _, m := range []Manner{All, First} {
		if !set.Aggregate(m).Equal(shuffled.Aggregate(m)) {
			t.Errorf("Aggregate(%v) differs after shuffling ballots", m)
		}
	}
}

func TestTable_Without(t *testing.T) {
	table := NewTable(3)
	table.Add([]int{0, 1, 2}, 4)
	table.Add([]int{1, 0}, 2)
	table.Add([]int{0}, 5)
	table.Add([]int{2, 1}, 1)

	next, exhausted := table.Without(map[int]bool{0: true})

	if exhausted != 5 {
		t.Errorf("exhausted = %d, want 5", exhausted)
	}
	// [0 1 2] becomes [1 2], [1 0] becomes [1], [2 1] is untouched
	if n := next.Count([]int{1, 2}); n != 4 {
		t.Errorf("Count([1 2]) = %d, want 4", n)
	}
	if n := next.Count([]int{1}); n != 2 {
		t.Errorf("Count([1]) = %d, want 2", n)
	}
	if n := next.Count([]int{2, 1}); n != 1 {
		t.Errorf("Count([2 1]) = %d, want 1", n)
	}
	if next.Total()+exhausted != table.Total() {
		t.Errorf("Without lost votes: %d + %d != %d", next.Total(), exhausted, table.Total())
	}

	// Merging: striking 2 folds [1 2] into [1]
	merged, _ := next.Without(map[int]bool{2: true})
	if n := merged.Count([]int{1}); n != 7 {
		t.Errorf("Count([1]) after merge = %d, want 7", n)
	}
	if merged.Len() != 1 {
		t.Errorf("Len() after merge = %d, want 1", merged.Len())
	}
}

func TestTable_AddIgnoresNonPositive(t *testing.T) {
	table := NewTable(2)
	table.Add([]int{0}, 0)
	table.Add([]int{1}, -3)

	if !table.Empty() {
		t.Errorf("expected empty table, got %d rows", table.Len())
	}
}

func TestKey_RoundTrip(t *testing.T) {
	key := makeKey([]int{3, 0}, 4)
	if got, want := key.IDs(), []int{3, 0, None, None}; !slices.Equal(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestRanked(t *testing.T) {
	got := Ranked(map[int]int{0: 5, 1: 9, 2: 5, 3: 1})
	want := []int{1, 0, 2, 3}
	if !slices.Equal(got, want) {
		t.Errorf("Ranked() = %v, want %v", got, want)
	}
}

func TestParseManner(t *testing.T) {
	tests := []struct {
		in      string
		want    Manner
		wantErr bool
	}{
		{"all", All, false},
		{"FIRST", First, false},
		{"some", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseManner(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseManner(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseManner(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
