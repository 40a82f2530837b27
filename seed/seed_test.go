// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"testing"

	"github.com/google/uuid"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name   string
		master uint64
		label  string
	}{
		{"standard", 42, "MyRegion1"},
		{"empty label", 7, ""},
		{"zero master", 0, "MyRegion2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a1, a2 := Derive(tt.master, tt.label)

			// Should be deterministic
			b1, b2 := Derive(tt.master, tt.label)
			if a1 != b1 || a2 != b2 {
				t.Error("Derive() is not deterministic")
			}

			// Different labels should produce different seeds
			c1, c2 := Derive(tt.master, tt.label+"x")
			if a1 == c1 && a2 == c2 {
				t.Error("Derive() produced same seeds for different labels")
			}

			// Different masters should produce different seeds
			d1, d2 := Derive(tt.master+1, tt.label)
			if a1 == d1 && a2 == d2 {
				t.Error("Derive() produced same seeds for different masters")
			}
		})
	}
}

func TestNewRand_Reproducible(t *testing.T) {
	r1 := NewRand(99, "region")
	r2 := NewRand(99, "region")

	for i := 0; i < 10; i++ {
		a, b := r1.Uint64(), r2.Uint64()
		if a != b {
			t.Fatalf("draw %d differs: %d vs %d", i, a, b)
		}
	}
}

func TestNewRunID(t *testing.T) {
	id1 := NewRunID()
	id2 := NewRunID()

	if _, err := uuid.Parse(id1); err != nil {
		t.Errorf("NewRunID() = %q is not a UUID: %v", id1, err)
	}
	if id1 == id2 {
		t.Error("NewRunID() produced duplicate IDs (extremely unlikely)")
	}
}
