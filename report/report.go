// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/quickly-tally/models"
)

// Output formats
const (
	FormatAuto = "auto"
	FormatJSON = "json"
	FormatText = "text"
)

var ErrUnknownFormat = errors.New("unknown output format")

// WriteJSON writes v as indented JSON
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// WriteError writes a JSON error payload
func WriteError(w io.Writer, kind string, err error) error {
	return WriteJSON(w, models.ErrorResponse{
		Error:   kind,
		Message: err.Error(),
	})
}

// ResolveFormat turns FormatAuto into text for terminals and JSON otherwise.
func ResolveFormat(format string, w io.Writer) (string, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatText:
		return FormatText, nil
	case FormatAuto, "":
		if isTerminal(w) {
			return FormatText, nil
		}
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Write renders rep in the requested format
func Write(w io.Writer, rep models.Report, format string) error {
	format, err := ResolveFormat(format, w)
	if err != nil {
		return err
	}
	if format == FormatText {
		return WriteText(w, rep)
	}
	return WriteJSON(w, rep)
}

var (
	headerColor = color.New(color.Bold)
	warnColor   = color.New(color.FgYellow)
)

// WriteText renders rep as a table with one line per region. The header and
// any region needing attention are colored when color output is enabled.
func WriteText(w io.Writer, rep models.Report) error {
	headerColor.Fprintf(w, "Run %s (seed %d)\n", rep.RunID, rep.Seed)
	if rep.Country != "" {
		fmt.Fprintf(w, "%s: ", rep.Country)
	}
	fmt.Fprintf(w, "%s, %d seat(s), %d candidate(s)\n\n", rep.Method, rep.Seats, len(rep.Candidates))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "REGION\tBALLOTS\tQUOTA\tWINNERS\tNOTES")
	for _, rr := range rep.Regions {
		quota := "-"
		if rr.Result.Quota > 0 {
			quota = humanize.Comma(int64(rr.Result.Quota))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			rr.Region,
			humanize.Comma(int64(rr.Electorate)),
			quota,
			formatWinners(rr.Result.Winners),
			notes(rr.Result),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, rr := range rep.Regions {
		if rr.Result.Incomplete {
			warnColor.Fprintf(w, "\n%s: ballots ran out before every seat was filled\n", rr.Region)
		}
	}
	return nil
}

func formatWinners(winners []models.Winner) string {
	if len(winners) == 0 {
		return "-"
	}
	parts := make([]string, len(winners))
	for i, wn := range winners {
		parts[i] = fmt.Sprintf("%s (%s)", wn.Name, humanize.Comma(int64(wn.Votes)))
	}
	return strings.Join(parts, ", ")
}

func notes(r models.Result) string {
	var n []string
	if r.Tie {
		n = append(n, "tie")
	}
	if r.Incomplete {
		n = append(n, fmt.Sprintf("incomplete: %d of %d seats", len(r.Winners), r.Seats))
	}
	if r.Exhausted > 0 {
		n = append(n, humanize.Comma(int64(r.Exhausted))+" exhausted")
	}
	return strings.Join(n, "; ")
}
