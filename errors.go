// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInsufficientFunds is returned when the summed effective value of
	// every candidate coin cannot cover the target. Retrying with the
	// same inputs cannot succeed.
	ErrInsufficientFunds = errors.New("insufficient funds available to " +
		"cover the target")

	// ErrNoSolutionFound is returned when sufficient funds exist but a
	// strategy exhausted its search bound without producing a selection
	// that satisfies the change constraints. The caller may retry with
	// relaxed change bounds or a higher iteration cap.
	ErrNoSolutionFound = errors.New("no solution found within the " +
		"selection constraints")

	// ErrInvalidOptions is returned when the selection options are
	// malformed. It is reported before any search begins.
	ErrInvalidOptions = errors.New("invalid selection options")

	// ErrMalformedCoin is returned when a candidate coin violates the
	// engine's preconditions, such as carrying a negative value.
	ErrMalformedCoin = errors.New("malformed candidate coin")

	// ErrNoStrategies is returned when a selector is created without any
	// selection strategy to run.
	ErrNoStrategies = errors.New("no selection strategies configured")
)

// StrategyFailures is the aggregate failure returned by the Selector when
// every attempted strategy failed for a reason other than invalid input. It
// enumerates the per-strategy failure reasons and unwraps to
// ErrNoSolutionFound so callers can match the failure class with errors.Is.
type StrategyFailures struct {
	// Failures maps a strategy name to the error it reported.
	Failures map[string]error
}

// Error returns a human-readable description of every per-strategy failure,
// in deterministic (name-sorted) order.
func (e *StrategyFailures) Error() string {
	names := make([]string, 0, len(e.Failures))
	for name := range e.Failures {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("all strategies failed: ")
	for i, name := range names {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%s: %v", name, e.Failures[name])
	}

	return sb.String()
}

// Unwrap marks the aggregate as a no-solution class failure.
func (e *StrategyFailures) Unwrap() error {
	return ErrNoSolutionFound
}

// A compile-time assertion to ensure StrategyFailures implements the error
// interface.
var _ error = (*StrategyFailures)(nil)
