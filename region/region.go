// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package region

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/seed"
	"github.com/danielhkuo/quickly-tally/tally"
)

var (
	ErrInvalidRegion   = errors.New("invalid region")
	ErrDuplicateRegion = errors.New("duplicate region name")
)

// Default names used by the generators
const (
	DefaultRegionName  = "MyRegion"
	DefaultCountryName = "MyCountry"
)

// Region is a named electorate.
type Region struct {
	Name       string
	Electorate int
}

func NewRegion(name string, electorate int) (Region, error) {
	if name == "" {
		return Region{}, fmt.Errorf("%w: name is required", ErrInvalidRegion)
	}
	if electorate <= 0 {
		return Region{}, fmt.Errorf("%w: %s has electorate %d", ErrInvalidRegion, name, electorate)
	}
	return Region{Name: name, Electorate: electorate}, nil
}

// GenerateRegion picks an electorate uniformly in [lower, upper].
// An empty name becomes DefaultRegionName.
func GenerateRegion(rng *rand.Rand, lower, upper int, name string) (Region, error) {
	if lower < 1 || upper < lower {
		return Region{}, fmt.Errorf("%w: electorate bounds [%d, %d]", ErrInvalidRegion, lower, upper)
	}
	if name == "" {
		name = DefaultRegionName
	}
	return NewRegion(name, lower+rng.IntN(upper-lower+1))
}

// SimulateVote has every voter in the region cast a random ballot over
// candidates and counts them with m.
func (r Region) SimulateVote(m tally.Method, candidates []string, seats int, rng *rand.Rand) (models.Result, error) {
	set, err := ballot.Generate(candidates, r.Electorate, rng)
	if err != nil {
		return models.Result{}, fmt.Errorf("generating ballots for %s: %w", r.Name, err)
	}

	result, err := tally.Tally(set, m, seats)
	if err != nil {
		return models.Result{}, fmt.Errorf("tallying %s: %w", r.Name, err)
	}

	return result, nil
}

// Country is a set of uniquely named regions.
type Country struct {
	Name    string
	Regions []Region
}

func NewCountry(name string, regions ...Region) (*Country, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: country name is required", ErrInvalidRegion)
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("%w: %s has no regions", ErrInvalidRegion, name)
	}

	seen := make(map[string]bool, len(regions))
	for _, r := range regions {
		if seen[r.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRegion, r.Name)
		}
		seen[r.Name] = true
	}

	return &Country{Name: name, Regions: regions}, nil
}

// GenerateCountry builds n regions named MyRegion1..n.
func GenerateCountry(rng *rand.Rand, n, lower, upper int, name string) (*Country, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: cannot generate %d regions", ErrInvalidRegion, n)
	}
	if name == "" {
		name = DefaultCountryName
	}

	regions := make([]Region, n)
	for i := range regions {
		r, err := GenerateRegion(rng, lower, upper, fmt.Sprintf("%s%d", DefaultRegionName, i+1))
		if err != nil {
			return nil, err
		}
		regions[i] = r
	}

	return NewCountry(name, regions...)
}

// Electorate is the sum of every region's electorate.
func (c *Country) Electorate() int {
	total := 0
	for _, r := range c.Regions {
		total += r.Electorate
	}
	return total
}

// SimulateVote runs a vote in every region and returns results keyed by
// region name. Each region draws from its own source derived from master,
// so a region's result only depends on the master seed and its name.
func (c *Country) SimulateVote(m tally.Method, candidates []string, seats int, master uint64) (map[string]models.Result, error) {
	results := make(map[string]models.Result, len(c.Regions))

	for _, r := range c.Regions {
		result, err := r.SimulateVote(m, candidates, seats, seed.NewRand(master, r.Name))
		if err != nil {
			return nil, err
		}

		slog.Info("region tallied",
			"region", r.Name,
			"electorate", r.Electorate,
			"winners", result.WinnerNames(),
			"tie", result.Tie,
			"incomplete", result.Incomplete,
		)
		results[r.Name] = result
	}

	return results, nil
}
