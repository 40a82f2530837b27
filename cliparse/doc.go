// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-m        Voting method (fptp or stv)
	-s        Seats to fill
	-c        Candidate count or comma-separated names
	-r        Number of regions
	-lower    Smallest regional electorate
	-upper    Largest regional electorate
	-seed     Master random seed
	-ballots  JSON ballot file to tally instead of simulating
	-format   Output format (auto, text, json)
	-env      Environment file (default .env)

# Environment Variables

Flags fall back to environment variables:

	TALLY_METHOD            → -m       (default stv)
	TALLY_SEATS             → -s       (default 1)
	TALLY_CANDIDATES        → -c       (default 5)
	TALLY_REGIONS           → -r       (default 5)
	TALLY_ELECTORATE_LOWER  → -lower   (default 1000)
	TALLY_ELECTORATE_UPPER  → -upper   (default 10000)
	TALLY_SEED              → -seed    (default random)
	TALLY_BALLOTS           → -ballots
	TALLY_FORMAT            → -format  (default auto)

The environment file is loaded first but never overrides variables that
are already set. CLI flags take precedence over both.

# Validation

ParseFlags returns an error if:

  - the method is not fptp or stv
  - seats or regions are below 1
  - the electorate bounds are not 1 <= lower <= upper
  - candidate names are empty or repeated
  - the seed is not an unsigned integer
*/
package cliparse
