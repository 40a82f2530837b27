// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package region simulates elections across the regions of a country,
// generating a random electorate per region and tallying each one.
package region
