// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/models"
)

// Method is a supported counting rule.
type Method int

const (
	MethodFPTP Method = iota + 1
	MethodSTV
)

func (m Method) String() string {
	switch m {
	case MethodFPTP:
		return models.MethodFPTP
	case MethodSTV:
		return models.MethodSTV
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "fptp" or "stv" (any case) to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case models.MethodFPTP:
		return MethodFPTP, nil
	case models.MethodSTV:
		return MethodSTV, nil
	default:
		return 0, fmt.Errorf("%w: invalid voting method %q, valid methods are %q, %q",
			ErrConfiguration, s, models.MethodFPTP, models.MethodSTV)
	}
}

// Tally counts set with the given method. seats is ignored by FPTP.
func Tally(set *ballot.Set, m Method, seats int) (models.Result, error) {
	switch m {
	case MethodFPTP:
		return FPTP(set), nil
	case MethodSTV:
		return STV(set, seats)
	default:
		return models.Result{}, fmt.Errorf("%w: unsupported method %v", ErrConfiguration, m)
	}
}
