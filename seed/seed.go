// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Derive creates a deterministic pair of PCG seed words for label.
// Uses HMAC keyed by the master seed, so different labels get independent
// streams and the same label always gets the same one.
func Derive(master uint64, label string) (uint64, uint64) {
	key := binary.BigEndian.AppendUint64(nil, master)
	h := hmac.New(sha256.New, key)
	h.Write([]byte(label))
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8]), binary.BigEndian.Uint64(sum[8:16])
}

// NewRand returns a random source seeded from master and label
func NewRand(master uint64, label string) *rand.Rand {
	s1, s2 := Derive(master, label)
	return rand.New(rand.NewPCG(s1, s2))
}

// Fresh returns a master seed for runs that did not ask for one
func Fresh() uint64 {
	return rand.Uint64()
}

// NewRunID creates a unique identifier for one simulation run
func NewRunID() string {
	return uuid.NewString()
}
