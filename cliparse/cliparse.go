package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/report"
	"github.com/danielhkuo/quickly-tally/tally"
)

type Config struct {
	Method          tally.Method
	Seats           int
	Candidates      []string
	Regions         int
	ElectorateLower int
	ElectorateUpper int
	Seed            uint64
	BallotsFile     string
	Format          string
	EnvFile         string
}

// ParseFlags reads flags, then the environment (including the .env file),
// then defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var method, candidates, seed string

	fs := flag.NewFlagSet("quickly-tally", flag.ContinueOnError)

	// Election
	fs.StringVar(&method, "m", "", "Voting method (fptp or stv)")
	fs.IntVar(&cfg.Seats, "s", 0, "Seats to fill")
	fs.StringVar(&candidates, "c", "", "Candidate count or comma-separated names")

	// Simulation
	fs.IntVar(&cfg.Regions, "r", 0, "Number of regions")
	fs.IntVar(&cfg.ElectorateLower, "lower", 0, "Smallest regional electorate")
	fs.IntVar(&cfg.ElectorateUpper, "upper", 0, "Largest regional electorate")
	fs.StringVar(&seed, "seed", "", "Master random seed (default: random)")

	// Input and output
	fs.StringVar(&cfg.BallotsFile, "ballots", "", "Tally a JSON ballot file instead of simulating")
	fs.StringVar(&cfg.Format, "format", "", "Output format (auto, text or json)")
	fs.StringVar(&cfg.EnvFile, "env", ".env", "Environment file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Existing environment variables win over the file
	if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
	}

	// Fall back to environment variables, then defaults
	if method == "" {
		method = envOr("TALLY_METHOD", "stv")
	}
	m, err := tally.ParseMethod(method)
	if err != nil {
		return Config{}, err
	}
	cfg.Method = m

	if cfg.Seats == 0 {
		if cfg.Seats, err = envInt("TALLY_SEATS", 1); err != nil {
			return Config{}, err
		}
	}
	if cfg.Seats < 1 {
		return Config{}, errors.New("seats must be at least 1")
	}

	if candidates == "" {
		candidates = envOr("TALLY_CANDIDATES", "5")
	}
	if cfg.Candidates, err = parseCandidates(candidates); err != nil {
		return Config{}, err
	}

	if cfg.Regions == 0 {
		if cfg.Regions, err = envInt("TALLY_REGIONS", 5); err != nil {
			return Config{}, err
		}
	}
	if cfg.Regions < 1 {
		return Config{}, errors.New("regions must be at least 1")
	}

	if cfg.ElectorateLower == 0 {
		if cfg.ElectorateLower, err = envInt("TALLY_ELECTORATE_LOWER", 1000); err != nil {
			return Config{}, err
		}
	}
	if cfg.ElectorateUpper == 0 {
		if cfg.ElectorateUpper, err = envInt("TALLY_ELECTORATE_UPPER", 10000); err != nil {
			return Config{}, err
		}
	}
	if cfg.ElectorateLower < 1 || cfg.ElectorateUpper < cfg.ElectorateLower {
		return Config{}, fmt.Errorf("invalid electorate bounds [%d, %d]", cfg.ElectorateLower, cfg.ElectorateUpper)
	}

	if seed == "" {
		seed = os.Getenv("TALLY_SEED")
	}
	if seed != "" {
		if cfg.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return Config{}, errors.New("invalid seed")
		}
	}

	if cfg.BallotsFile == "" {
		cfg.BallotsFile = os.Getenv("TALLY_BALLOTS")
	}

	if cfg.Format == "" {
		cfg.Format = envOr("TALLY_FORMAT", report.FormatAuto)
	}
	switch cfg.Format {
	case report.FormatAuto, report.FormatJSON, report.FormatText:
	default:
		return Config{}, fmt.Errorf("invalid format %q", cfg.Format)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}

// parseCandidates accepts a count ("5") or a list of names ("A,B,C")
func parseCandidates(s string) ([]string, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 {
			return nil, errors.New("candidate count must be at least 1")
		}
		return ballot.Names(n), nil
	}

	names := strings.Split(s, ",")
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errors.New("candidate names must not be empty")
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate candidate %q", name)
		}
		seen[name] = true
		names[i] = name
	}
	return names, nil
}
