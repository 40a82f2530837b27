// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"slices"
	"strings"
)

// Manner selects how much of each ballot becomes the aggregation key.
type Manner int

const (
	// All keys rows by the full ranking.
	All Manner = iota
	// First keys rows by the first choice only.
	First
)

func (m Manner) String() string {
	switch m {
	case All:
		return "all"
	case First:
		return "first"
	default:
		return fmt.Sprintf("Manner(%d)", int(m))
	}
}

// ParseManner maps "all" or "first" (any case) to a Manner.
func ParseManner(s string) (Manner, error) {
	switch strings.ToLower(s) {
	case "all":
		return All, nil
	case "first":
		return First, nil
	default:
		return 0, fmt.Errorf("%w: unknown aggregation manner %q", ErrValidation, s)
	}
}

// Key is a ranking padded with None to the table width. It is comparable
// and used as a map key.
type Key string

func makeKey(ids []int, width int) Key {
	if len(ids) > width {
		panic(fmt.Sprintf("ballot: ranking of %d choices exceeds table width %d", len(ids), width))
	}
	buf := make([]byte, 0, 4*width)
	for i := range width {
		id := None
		if i < len(ids) {
			id = ids[i]
		}
		buf = binary.BigEndian.AppendUint32(buf, uint32(int32(id)))
	}
	return Key(buf)
}

// IDs decodes the key back into its padded ranking.
func (k Key) IDs() []int {
	ids := make([]int, len(k)/4)
	for i := range ids {
		ids[i] = int(int32(binary.BigEndian.Uint32([]byte(k[4*i : 4*i+4]))))
	}
	return ids
}

// Row is one merged entry of a Table.
type Row struct {
	Ranking []int // padded with None
	Count   int
}

// First returns the row's first choice, or None for an exhausted row.
func (r Row) First() int {
	if len(r.Ranking) == 0 {
		return None
	}
	return r.Ranking[0]
}

// Table maps rankings to ballot counts. Rows with equal rankings are merged
// on insert, and rows never hold a non-positive count.
type Table struct {
	width int
	rows  map[Key]int
}

// NewTable returns an empty table whose keys are width ids long.
func NewTable(width int) *Table {
	return &Table{width: width, rows: make(map[Key]int)}
}

// Aggregate groups the set's ballots into a Table.
func (s *Set) Aggregate(m Manner) *Table {
	width := len(s.names)
	if m == First {
		width = 1
	}

	t := NewTable(width)
	for _, b := range s.ballots {
		if m == First {
			t.Add(b[:1], 1)
		} else {
			t.Add(b, 1)
		}
	}
	return t
}

// Width returns the key length.
func (t *Table) Width() int {
	return t.width
}

// Len returns the number of distinct rankings.
func (t *Table) Len() int {
	return len(t.rows)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// Add merges count ballots with the given ranking. Counts <= 0 are ignored.
// A ranking longer than the table width panics.
func (t *Table) Add(ranking []int, count int) {
	if count <= 0 {
		return
	}
	t.rows[makeKey(ranking, t.width)] += count
}

// Count returns the count stored for a ranking.
func (t *Table) Count(ranking []int) int {
	return t.rows[makeKey(ranking, t.width)]
}

// Total returns the sum of all row counts.
func (t *Table) Total() int {
	total := 0
	for _, n := range t.rows {
		total += n
	}
	return total
}

// Rows returns every row ordered by ranking, so callers that apportion
// across rows behave the same on every run.
func (t *Table) Rows() []Row {
	rows := make([]Row, 0, len(t.rows))
	for k, n := range t.rows {
		rows = append(rows, Row{Ranking: k.IDs(), Count: n})
	}
	slices.SortFunc(rows, func(a, b Row) int {
		return slices.Compare(a.Ranking, b.Ranking)
	})
	return rows
}

// FirstTotals sums counts per first choice.
func (t *Table) FirstTotals() map[int]int {
	totals := make(map[int]int)
	for k, n := range t.rows {
		ids := k.IDs()
		if len(ids) > 0 && ids[0] != None {
			totals[ids[0]] += n
		}
	}
	return totals
}

// Without returns a copy of the table with the given candidates struck from
// every ranking. Later preferences shift left, the tail is padded with None
// and rows that collide are merged. Rows left with no preferences are
// dropped; their total is returned as exhausted.
func (t *Table) Without(removed map[int]bool) (*Table, int) {
	out := NewTable(t.width)
	exhausted := 0

	for k, n := range t.rows {
		ids := k.IDs()
		kept := ids[:0]
		for _, id := range ids {
			if id != None && !removed[id] {
				kept = append(kept, id)
			}
		}
		if len(kept) == 0 {
			exhausted += n
			continue
		}
		out.Add(kept, n)
	}

	return out, exhausted
}

// Equal reports whether both tables hold the same rows.
func (t *Table) Equal(o *Table) bool {
	if t.width != o.width || len(t.rows) != len(o.rows) {
		return false
	}
	for k, n := range t.rows {
		if o.rows[k] != n {
			return false
		}
	}
	return true
}

// compareTotals orders candidates by descending total, then ascending id.
func compareTotals(totals map[int]int) func(a, b int) int {
	return func(a, b int) int {
		if c := cmp.Compare(totals[b], totals[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	}
}

// Ranked returns the candidates in totals ordered by descending total, ties
// broken by ascending id.
func Ranked(totals map[int]int) []int {
	ids := make([]int, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, compareTotals(totals))
	return ids
}
