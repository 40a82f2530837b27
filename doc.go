// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the quickly-tally command.

quickly-tally counts ballots under First-Past-the-Post (FPTP) or Single
Transferable Vote (STV). It either simulates an election across a randomly
generated country or tallies a JSON ballot file.

# Simulating

	go run . -m stv -s 2 -c 6 -r 3 -seed 42

Each region gets a random electorate between -lower and -upper, and every
voter ranks a random prefix of a random ordering of the candidates. The
same seed always produces the same report (apart from the run ID).

# Tallying a File

	go run . -ballots election.json -m stv -s 2

The file holds optional candidate names and the ballots:

	{
	  "candidates": ["Apple", "Banana", "Orange"],
	  "ballots": [["Apple", "Orange"], ["Banana"], ["Orange", "Apple"]]
	}

Ballots may also be single choices ("ballots": ["Apple", "Banana"]) or
integer candidate indices.

# Output

Reports are printed as a table on a terminal and as JSON otherwise; use
-format to force either. Logs go to stderr via log/slog.

# Architecture

  - ballot: validation, aggregation into count tables, random generation
  - tally: FPTP, STV and proportional deduction
  - models: result and report types
  - region: region and country simulation
  - seed: reproducible per-region random sources and run IDs
  - report: JSON and text rendering
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
