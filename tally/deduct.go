// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"cmp"
	"fmt"
	"math/bits"
	"slices"
)

// DeductProportional takes deficit votes out of counts in proportion to
// each count and returns integer counts summing to exactly sum(counts)-deficit.
//
// Each count is scaled by (sum-deficit)/sum and floored; the units lost to
// flooring go one each to the largest fractional remainders, lower index
// first on ties.
func DeductProportional(counts []int, deficit int) ([]int, error) {
	if deficit < 0 {
		return nil, fmt.Errorf("%w: cannot deduct a negative amount (%d)", ErrInvalidDeduction, deficit)
	}

	sum := 0
	for i, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("%w: count %d is negative (%d)", ErrInvalidDeduction, i, c)
		}
		sum += c
	}
	if deficit > sum {
		return nil, fmt.Errorf("%w: cannot deduct %d from a total of %d", ErrInvalidDeduction, deficit, sum)
	}

	out := make([]int, len(counts))
	target := sum - deficit

	if sum > 0 {
		type share struct {
			index     int
			remainder uint64
		}

		shares := make([]share, len(counts))
		assigned := 0
		for i, c := range counts {
			// c*target <= sum*sum, so the high word is always below sum.
			hi, lo := bits.Mul64(uint64(c), uint64(target))
			q, r := bits.Div64(hi, lo, uint64(sum))
			out[i] = int(q)
			shares[i] = share{index: i, remainder: r}
			assigned += out[i]
		}

		slices.SortStableFunc(shares, func(a, b share) int {
			return cmp.Compare(b.remainder, a.remainder)
		})
		for j := 0; assigned < target && j < len(shares); j++ {
			out[shares[j].index]++
			assigned++
		}
	}

	if err := checkDeduction(counts, out, deficit); err != nil {
		return nil, err
	}

	return out, nil
}

// checkDeduction re-verifies the result independently of how it was built.
func checkDeduction(before, after []int, deficit int) error {
	sumBefore, sumAfter := 0, 0
	for i := range before {
		if after[i] < 0 || after[i] > before[i] {
			return fmt.Errorf("%w: row %d went from %d to %d", ErrRoundingIntegrity, i, before[i], after[i])
		}
		sumBefore += before[i]
		sumAfter += after[i]
	}
	if sumAfter+deficit != sumBefore {
		return fmt.Errorf("%w: difference of %d between original total %d and deducted total %d + %d",
			ErrRoundingIntegrity, sumBefore-(sumAfter+deficit), sumBefore, sumAfter, deficit)
	}
	return nil
}
