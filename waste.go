// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/coinselect/unit"
)

// selectionFee returns the fee a transaction pays for the given total input
// weight, optionally including the change output, honoring the absolute fee
// floor.
func selectionFee(o *Options, inputWeight unit.WeightUnit,
	withChange bool) btcutil.Amount {

	weight := o.BaseWeight + inputWeight
	if withChange {
		weight += o.ChangeWeight
	}

	fee := o.FeeRate.FeeForWeightRoundUp(weight)
	if fee < o.MinAbsoluteFee {
		fee = o.MinAbsoluteFee
	}

	return fee
}

// timingCost prices the opportunity cost of spending the given input weight
// now instead of at the long-term fee rate. It is negative when fees are
// currently below the long-term expectation, i.e. spending now is a bargain.
func timingCost(o *Options, inputWeight unit.WeightUnit) btcutil.Amount {
	return o.FeeRate.FeeForWeight(inputWeight) -
		o.longTermRate().FeeForWeight(inputWeight)
}

// Waste scores a candidate selection with the given total value, total input
// weight and change amount. Lower is better. The metric combines:
//
//   - the timing cost of spending the selected inputs now instead of at the
//     long-term fee rate, and
//   - the cost of the excess: the full change cost (creating the change
//     output now plus spending it later) when change is produced, otherwise
//     the excess itself, which is overpaid as fees.
//
// A selection with zero excess and no change has the theoretical minimum
// waste for its coin composition. The metric ranks otherwise-valid results;
// it never decides feasibility.
func Waste(o *Options, totalValue btcutil.Amount, inputWeight unit.WeightUnit,
	change btcutil.Amount) btcutil.Amount {

	cost := timingCost(o, inputWeight)

	if change > 0 {
		return cost + o.ChangeCost
	}

	excess := totalValue - o.TargetValue -
		selectionFee(o, inputWeight, false)
	if excess < 0 {
		excess = 0
	}

	return cost + excess
}
