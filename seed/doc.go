// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed derives reproducible random sources for simulations.

# Derived Sources

Every region in a simulated country gets its own stream, keyed by the run's
master seed and the region name:

	rng := seed.NewRand(master, "MyRegion1")

Derive uses HMAC-SHA256, so the stream for a region does not depend on how
many other regions exist or the order they are tallied in.

# Run IDs

NewRunID stamps each report with a UUID:

	report.RunID = seed.NewRunID()
*/
package seed
