// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report renders simulation and tally results.

# Formats

	FormatJSON  indented JSON of models.Report
	FormatText  one table row per region, counts with thousands separators
	FormatAuto  text when writing to a terminal, JSON otherwise

Example:

	if err := report.Write(os.Stdout, rep, cfg.Format); err != nil {
		slog.Error("failed to write report", "error", err)
	}

Unknown formats return ErrUnknownFormat.
*/
package report
