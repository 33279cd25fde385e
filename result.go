// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/coinselect/unit"
)

// Result is the outcome of a successful selection. It is produced fresh per
// call and never mutated afterwards.
type Result struct {
	// Coins holds the indices of the selected coins in the caller's
	// slice, in ascending order.
	Coins []int

	// TotalValue is the summed value of the selected coins.
	TotalValue btcutil.Amount

	// Change is the value returned to the spender as a change output, or
	// zero when the excess was small enough to absorb into fees or was
	// directed elsewhere by the excess strategy.
	Change btcutil.Amount

	// Waste is the metric the selection was ranked by. Lower is better.
	Waste btcutil.Amount

	// Strategy names the strategy that produced the result.
	Strategy string
}

// buildResult validates a candidate subset against the selection invariants
// and assembles the final Result, deciding the change amount and scoring the
// selection. It returns an error wrapping ErrNoSolutionFound when the subset
// cannot satisfy the target or its excess is neither a valid change amount
// nor small enough to absorb into fees.
func buildResult(coins []Coin, o *Options, selected []int,
	strategy string) (*Result, error) {

	var (
		total  btcutil.Amount
		weight unit.WeightUnit
	)
	for _, idx := range selected {
		total += coins[idx].Value
		weight += coins[idx].Weight
	}

	excess := total - o.TargetValue - selectionFee(o, weight, false)
	if excess < 0 {
		return nil, fmt.Errorf("%w: selection short of target by %v",
			ErrNoSolutionFound, -excess)
	}

	var change btcutil.Amount
	if o.ExcessStrategy == ExcessToChange {
		// See whether the excess survives the extra change output fee
		// and clears the change bounds.
		c := total - o.TargetValue - selectionFee(o, weight, true)
		withinBounds := c >= o.Change.Min &&
			(o.Change.Max == 0 || c <= o.Change.Max)

		switch {
		case withinBounds:
			change = c

		// Not a valid change amount: only acceptable when the excess
		// is small enough to overpay as fees.
		case excess > o.changelessTolerance():
			return nil, fmt.Errorf("%w: excess %v is below the "+
				"change floor but too large to absorb into "+
				"fees", ErrNoSolutionFound, excess)
		}
	}

	indices := make([]int, len(selected))
	copy(indices, selected)
	sort.Ints(indices)

	return &Result{
		Coins:      indices,
		TotalValue: total,
		Change:     change,
		Waste:      Waste(o, total, weight, change),
		Strategy:   strategy,
	}, nil
}
