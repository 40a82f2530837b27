// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"fmt"
	"math/rand/v2"
)

// Generate returns n random ballots over candidates. Each ballot ranks k
// distinct candidates in draw order, with k uniform in [1, len(candidates)].
func Generate(candidates []string, n int, rng *rand.Rand) (*Set, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: cannot generate %d ballots", ErrValidation, n)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates to generate ballots for", ErrValidation)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrValidation)
	}

	ballots := make([][]int, n)
	for i := range ballots {
		k := 1 + rng.IntN(len(candidates))
		// A uniform permutation's prefix is a draw without replacement.
		ballots[i] = rng.Perm(len(candidates))[:k:k]
	}

	return FromRanked(ballots, candidates)
}
