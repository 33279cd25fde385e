// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"math"
	"sort"

	"github.com/btcsuite/btcd/btcutil"
)

// FIFO selects coins oldest-first, independent of value optimality. The
// deterministic, auditable spend order makes it suitable for consolidation
// and for wallets that must spend coins in the order they were received.
type FIFO struct{}

// NewFIFO returns a FIFO strategy.
func NewFIFO() *FIFO {
	return &FIFO{}
}

// Name returns the strategy identifier.
func (*FIFO) Name() string {
	return NameFIFO
}

// SelectCoins accumulates coins in ascending creation order until the
// target plus fees is covered. Coins without a creation sequence are
// treated as younger than any sequenced coin and are consumed last, in
// input order.
func (f *FIFO) SelectCoins(coins []Coin, o *Options) (*Result, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	cands := profitableCandidates(coins, o)

	seqOf := func(c candidate) uint64 {
		seq := coins[c.idx].CreationSequence.UnwrapOr(math.MaxUint32)
		return uint64(seq)
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return seqOf(cands[i]) < seqOf(cands[j])
	})

	if sumEffectiveValue(coins, o.FeeRate) < o.TargetValue {
		return nil, ErrInsufficientFunds
	}

	targetReq := o.TargetValue + o.baseFee()

	var acc btcutil.Amount
	selected := make([]int, 0, len(cands))

	for _, cand := range cands {
		acc += cand.eff
		selected = append(selected, cand.idx)

		if acc < targetReq {
			continue
		}

		// Keep accumulating past bare sufficiency while the excess
		// sits below the change floor yet above the fee-absorbable
		// window.
		res, err := buildResult(coins, o, selected, NameFIFO)
		if err == nil {
			return res, nil
		}
	}

	return nil, ErrNoSolutionFound
}

// A compile-time assertion to ensure FIFO implements the Strategy interface.
var _ Strategy = (*FIFO)(nil)
