package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/region"
	"github.com/danielhkuo/quickly-tally/report"
	"github.com/danielhkuo/quickly-tally/seed"
	"github.com/danielhkuo/quickly-tally/tally"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.Seed == 0 {
		cfg.Seed = seed.Fresh()
	}

	rep := models.Report{
		RunID:  seed.NewRunID(),
		Method: cfg.Method.String(),
		Seats:  cfg.Seats,
		Seed:   cfg.Seed,
	}

	if cfg.BallotsFile != "" {
		err = tallyFile(cfg, &rep)
	} else {
		err = simulate(cfg, &rep)
	}
	if err != nil {
		slog.Error("tally failed", "run_id", rep.RunID, "error", err)
		if format, _ := report.ResolveFormat(cfg.Format, os.Stdout); format == report.FormatJSON {
			report.WriteError(os.Stdout, "tally failed", err)
		}
		os.Exit(1)
	}

	if err := report.Write(os.Stdout, rep, cfg.Format); err != nil {
		slog.Error("failed to write report", "error", err)
		os.Exit(1)
	}
}

// simulate generates a country and tallies every region
func simulate(cfg cliparse.Config, rep *models.Report) error {
	country, err := region.GenerateCountry(seed.NewRand(cfg.Seed, region.DefaultCountryName),
		cfg.Regions, cfg.ElectorateLower, cfg.ElectorateUpper, "")
	if err != nil {
		return err
	}

	slog.Info("Simulating vote",
		"run_id", rep.RunID,
		"country", country.Name,
		"regions", len(country.Regions),
		"electorate", country.Electorate(),
		"method", rep.Method,
		"seats", cfg.Seats,
		"seed", cfg.Seed,
	)

	results, err := country.SimulateVote(cfg.Method, cfg.Candidates, cfg.Seats, cfg.Seed)
	if err != nil {
		return err
	}

	rep.Country = country.Name
	rep.Candidates = cfg.Candidates
	for _, r := range country.Regions {
		rep.Regions = append(rep.Regions, models.RegionResult{
			Region:     r.Name,
			Electorate: r.Electorate,
			Result:     results[r.Name],
		})
	}
	return nil
}

// tallyFile counts the ballots in a JSON ballot file
func tallyFile(cfg cliparse.Config, rep *models.Report) error {
	data, err := os.ReadFile(cfg.BallotsFile)
	if err != nil {
		return fmt.Errorf("failed to read ballots: %w", err)
	}

	var doc models.BallotFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", cfg.BallotsFile, err)
	}

	var candidates any
	if doc.Candidates != nil {
		candidates = doc.Candidates
	}
	set, err := ballot.Construct(doc.Ballots, candidates)
	if err != nil {
		return err
	}

	slog.Info("Tallying ballot file",
		"run_id", rep.RunID,
		"file", cfg.BallotsFile,
		"ballots", set.Len(),
		"candidates", set.NumCandidates(),
		"method", rep.Method,
	)

	result, err := tally.Tally(set, cfg.Method, cfg.Seats)
	if err != nil {
		return err
	}

	rep.Candidates = set.Candidates()
	rep.Regions = []models.RegionResult{{
		Region:     filepath.Base(cfg.BallotsFile),
		Electorate: set.Len(),
		Result:     result,
	}}
	return nil
}
