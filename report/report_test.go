// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/danielhkuo/quickly-tally/models"
)

func init() {
	color.NoColor = true
}

func testReport() models.Report {
	return models.Report{
		RunID:      "run-1",
		Country:    "MyCountry",
		Method:     models.MethodSTV,
		Seats:      2,
		Seed:       42,
		Candidates: []string{"A", "B", "C"},
		Regions: []models.RegionResult{
			{
				Region:     "MyRegion1",
				Electorate: 12345,
				Result: models.Result{
					Method:  models.MethodSTV,
					Seats:   2,
					Ballots: 12345,
					Quota:   4116,
					Winners: []models.Winner{{Name: "A", Votes: 5001}, {Name: "C", Votes: 4116}},
				},
			},
			{
				Region:     "MyRegion2",
				Electorate: 10,
				Result: models.Result{
					Method:     models.MethodSTV,
					Seats:      2,
					Ballots:    10,
					Quota:      4,
					Incomplete: true,
					Exhausted:  6,
					Winners:    []models.Winner{{Name: "B", Votes: 4}},
				},
			},
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, testReport()); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var decoded models.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.RunID != "run-1" || len(decoded.Regions) != 2 {
		t.Errorf("Unexpected decoded report: %+v", decoded)
	}
	if !strings.Contains(buf.String(), `"n_votes": 5001`) {
		t.Errorf("Expected n_votes field in output, got %s", buf.String())
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, testReport()); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Run run-1 (seed 42)",
		"MyCountry: stv, 2 seat(s), 3 candidate(s)",
		"12,345",
		"A (5,001), C (4,116)",
		"incomplete: 1 of 2 seats",
		"6 exhausted",
		"MyRegion2: ballots ran out before every seat was filled",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"json", FormatJSON},
		{"TEXT", FormatText},
		// A buffer is never a terminal
		{"auto", FormatJSON},
		{"", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ResolveFormat(tt.in, &bytes.Buffer{})
			if err != nil {
				t.Fatalf("ResolveFormat(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ResolveFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ResolveFormat("xml", &bytes.Buffer{}); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testReport(), FormatText); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Run run-1") {
		t.Errorf("Expected text output, got %s", buf.String())
	}

	buf.Reset()
	if err := Write(&buf, testReport(), FormatAuto); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("Expected JSON output for a non-terminal writer, got %s", buf.String())
	}
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteError(&buf, "tally failed", errors.New("boom")); err != nil {
		t.Fatal(err)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(buf.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error != "tally failed" || resp.Message != "boom" {
		t.Errorf("Unexpected error response: %+v", resp)
	}
}
