// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import "sort"

// LowestLarger minimizes transaction complexity by spending a single coin
// when one suffices: among the coins whose effective value covers the target
// plus fees, it picks the one with the smallest such value, i.e. the
// tightest fit with the least wasted change. It falls through to other
// strategies when no single coin suffices.
type LowestLarger struct{}

// NewLowestLarger returns a LowestLarger strategy.
func NewLowestLarger() *LowestLarger {
	return &LowestLarger{}
}

// Name returns the strategy identifier.
func (*LowestLarger) Name() string {
	return NameLowestLarger
}

// SelectCoins picks the smallest single coin covering the target plus fees
// whose excess is valid. It reports ErrNoSolutionFound when no single coin
// yields a valid selection and ErrInsufficientFunds when even all coins
// together cannot cover the target.
func (l *LowestLarger) SelectCoins(coins []Coin,
	o *Options) (*Result, error) {

	if err := o.Validate(); err != nil {
		return nil, err
	}

	cands := profitableCandidates(coins, o)

	// Ascending effective value, so the first sufficient candidate is
	// the tightest fit.
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].eff < cands[j].eff
	})

	targetReq := o.TargetValue + o.baseFee()

	for _, cand := range cands {
		if cand.eff < targetReq {
			continue
		}

		// The tightest fit may still be rejected when its excess is
		// below the change floor yet too large for fees; in that case
		// a looser fit may clear the floor, so keep walking up.
		res, err := buildResult(
			coins, o, []int{cand.idx}, NameLowestLarger,
		)
		if err == nil {
			return res, nil
		}
	}

	if sumEffectiveValue(coins, o.FeeRate) < o.TargetValue {
		return nil, ErrInsufficientFunds
	}

	return nil, ErrNoSolutionFound
}

// A compile-time assertion to ensure LowestLarger implements the Strategy
// interface.
var _ Strategy = (*LowestLarger)(nil)
