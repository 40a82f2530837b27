// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// None marks "no further preference" in a ranking key. It is never a valid
// candidate id.
const None = -1

var ErrValidation = errors.New("invalid ballots")

// Set is a validated collection of ranked ballots over a fixed candidate
// universe. Candidate ids index into Candidates.
type Set struct {
	names   []string
	ballots [][]int
}

// Len returns the number of ballots.
func (s *Set) Len() int {
	return len(s.ballots)
}

// NumCandidates returns the size of the candidate universe.
func (s *Set) NumCandidates() int {
	return len(s.names)
}

// Candidates returns a copy of the candidate names, indexed by id.
func (s *Set) Candidates() []string {
	return slices.Clone(s.names)
}

// Name returns the display name for a candidate id.
func (s *Set) Name(id int) string {
	return s.names[id]
}

// Ballots returns a copy of every ballot as candidate ids.
func (s *Set) Ballots() [][]int {
	out := make([][]int, len(s.ballots))
	for i, b := range s.ballots {
		out[i] = slices.Clone(b)
	}
	return out
}

// Names returns placeholder names for count candidates.
func Names(count int) []string {
	names := make([]string, count)
	for i := range names {
		names[i] = placeholderName(i)
	}
	return names
}

func placeholderName(id int) string {
	return fmt.Sprintf("candidate_%d", id)
}

// FromRanked builds a Set from integer ballots. names may be nil.
func FromRanked(ballots [][]int, names []string) (*Set, error) {
	return Construct(ballots, names)
}

// FromNamed builds a Set from ballots that refer to candidates by name.
// names may be nil.
func FromNamed(ballots [][]string, names []string) (*Set, error) {
	return Construct(ballots, names)
}

// Construct validates raw ballots and returns the canonical Set.
//
// raw is one of []string, []int, [][]string, [][]int or []any holding
// scalars or nested sequences. candidates is nil, []string or []any of
// strings.
func Construct(raw any, candidates any) (*Set, error) {
	names, err := parseCandidates(candidates)
	if err != nil {
		return nil, err
	}

	rows, err := normalize(raw)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no ballots", ErrValidation)
	}

	named, err := choiceKind(rows)
	if err != nil {
		return nil, err
	}

	var ballots [][]int
	if named {
		ballots, names, err = resolveNames(rows, names)
	} else {
		ballots, names, err = resolveIndices(rows, names)
	}
	if err != nil {
		return nil, err
	}

	if err := checkBallots(ballots, len(names)); err != nil {
		return nil, err
	}

	return &Set{names: names, ballots: ballots}, nil
}

func parseCandidates(candidates any) ([]string, error) {
	var names []string

	switch v := candidates.(type) {
	case nil:
		return nil, nil
	case []string:
		if v == nil {
			return nil, nil
		}
		names = slices.Clone(v)
	case []any:
		if v == nil {
			return nil, nil
		}
		names = make([]string, len(v))
		for i, c := range v {
			name, ok := c.(string)
			if !ok {
				return nil, fmt.Errorf("%w: candidate %d is %T, not a name", ErrValidation, i, c)
			}
			names[i] = name
		}
	default:
		return nil, fmt.Errorf("%w: unsupported candidate list %T", ErrValidation, candidates)
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty candidate list", ErrValidation)
	}

	seen := make(map[string]bool, len(names))
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: candidate %d has an empty name", ErrValidation, i)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate candidate %q", ErrValidation, name)
		}
		seen[name] = true
	}

	return names, nil
}

// normalize turns every accepted container shape into one ballot per row.
func normalize(raw any) ([][]any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []string:
		rows := make([][]any, len(v))
		for i, c := range v {
			rows[i] = []any{c}
		}
		return rows, nil
	case []int:
		rows := make([][]any, len(v))
		for i, c := range v {
			rows[i] = []any{c}
		}
		return rows, nil
	case [][]string, [][]int:
		return nestedRows(v)
	case []any:
		return mixedRows(v)
	default:
		return nil, fmt.Errorf("%w: unsupported ballot container %T", ErrValidation, raw)
	}
}

func nestedRows(v any) ([][]any, error) {
	var rows [][]any
	switch b := v.(type) {
	case [][]string:
		rows = make([][]any, len(b))
		for i := range b {
			rows[i], _ = sequence(b[i])
		}
	case [][]int:
		rows = make([][]any, len(b))
		for i := range b {
			rows[i], _ = sequence(b[i])
		}
	}
	return rows, nil
}

// mixedRows handles decoded documents, where a ballot list is either all
// scalars (single choices) or all sequences (rankings).
func mixedRows(v []any) ([][]any, error) {
	rows := make([][]any, len(v))
	var flat, ranked bool

	for i, item := range v {
		if seq, ok := sequence(item); ok {
			ranked = true
			rows[i] = seq
		} else {
			flat = true
			rows[i] = []any{item}
		}
		if flat && ranked {
			return nil, fmt.Errorf("%w: ballot %d mixes single choices with rankings", ErrValidation, i)
		}
	}

	return rows, nil
}

func sequence(item any) ([]any, bool) {
	switch s := item.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, c := range s {
			out[i] = c
		}
		return out, true
	case []int:
		out := make([]any, len(s))
		for i, c := range s {
			out[i] = c
		}
		return out, true
	}
	return nil, false
}

// choiceKind reports whether the ballots use names (true) or indices (false).
func choiceKind(rows [][]any) (bool, error) {
	var sawName, sawIndex bool

	for i, row := range rows {
		for _, c := range row {
			if _, ok := c.(string); ok {
				sawName = true
			} else if _, err := index(c); err == nil {
				sawIndex = true
			} else {
				return false, fmt.Errorf("%w: ballot %d: %v", ErrValidation, i, err)
			}
			if sawName && sawIndex {
				return false, fmt.Errorf("%w: ballot %d mixes names and indices", ErrValidation, i)
			}
		}
	}

	return sawName, nil
}

func index(c any) (int, error) {
	switch n := c.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("choice %v is not an integer", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("unsupported choice type %T", c)
	}
}

func resolveNames(rows [][]any, names []string) ([][]int, []string, error) {
	if names == nil {
		distinct := make(map[string]bool)
		for _, row := range rows {
			for _, c := range row {
				distinct[c.(string)] = true
			}
		}
		for name := range distinct {
			names = append(names, name)
		}
		slices.Sort(names)
		if len(names) > 0 && names[0] == "" {
			return nil, nil, fmt.Errorf("%w: empty candidate name in ballots", ErrValidation)
		}
	}

	ids := make(map[string]int, len(names))
	for i, name := range names {
		ids[name] = i
	}

	ballots := make([][]int, len(rows))
	for i, row := range rows {
		b := make([]int, len(row))
		for j, c := range row {
			id, ok := ids[c.(string)]
			if !ok {
				return nil, nil, fmt.Errorf("%w: ballot %d: unknown candidate %q", ErrValidation, i, c)
			}
			b[j] = id
		}
		ballots[i] = b
	}

	return ballots, names, nil
}

func resolveIndices(rows [][]any, names []string) ([][]int, []string, error) {
	largest := None
	ballots := make([][]int, len(rows))

	for i, row := range rows {
		b := make([]int, len(row))
		for j, c := range row {
			id, _ := index(c)
			if id < 0 {
				return nil, nil, fmt.Errorf("%w: ballot %d: choice %d is negative", ErrValidation, i, id)
			}
			largest = max(largest, id)
			b[j] = id
		}
		ballots[i] = b
	}

	if names == nil {
		names = Names(largest + 1)
	}

	return ballots, names, nil
}

func checkBallots(ballots [][]int, n int) error {
	for i, b := range ballots {
		if len(b) == 0 {
			return fmt.Errorf("%w: ballot %d is empty", ErrValidation, i)
		}
		if len(b) > n {
			return fmt.Errorf("%w: ballot %d ranks %d choices but there are %d candidates", ErrValidation, i, len(b), n)
		}

		seen := make(map[int]bool, len(b))
		for _, id := range b {
			if id < 0 || id >= n {
				return fmt.Errorf("%w: ballot %d: choice %d outside [0, %d)", ErrValidation, i, id, n)
			}
			if seen[id] {
				return fmt.Errorf("%w: ballot %d ranks candidate %d twice", ErrValidation, i, id)
			}
			seen[id] = true
		}
	}
	return nil
}
