// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the result and report types shared by the tally
engine, the simulator and the CLI.

# Result Types

  - Winner: name, n_votes held at declaration
  - Result: ordered winners, tie flag, STV quota, incomplete flag, round trace
  - Round: one STV round (phase, per-candidate totals, elected, eliminated)

# Simulation Types

  - RegionResult: one region's electorate and result
  - Report: a whole simulation run, stamped with a run ID and seed
  - BallotFile: the JSON ballot document read by the CLI
  - ErrorResponse: error payload written by the CLI in JSON mode

# Constants

Voting methods:

	MethodFPTP = "fptp"
	MethodSTV  = "stv"

STV phases:

	PhaseSurplusTransfer = "surplus_transfer"
	PhaseElimination     = "elimination"
*/
package models
