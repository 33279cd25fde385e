// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/coinselect/unit"
)

// defaultMaxLeastChangeTries bounds the number of search tree nodes a
// least-change run may visit.
const defaultMaxLeastChangeTries = 1_000_000

// LeastChange minimizes the leftover change magnitude: it searches the
// include/exclude tree over candidates sorted by descending effective value
// and keeps the selection with the smallest change above the configured
// floor, breaking ties by input count. It is cheaper than a full
// branch-and-bound run because feasible nodes terminate their branch
// immediately, yet it finds tighter fits than plain greedy accumulation.
type LeastChange struct {
	// MaxTries bounds the number of nodes visited before the search
	// settles for the best selection found so far.
	MaxTries uint32
}

// NewLeastChange returns a LeastChange strategy with the default node cap.
func NewLeastChange() *LeastChange {
	return &LeastChange{MaxTries: defaultMaxLeastChangeTries}
}

// Name returns the strategy identifier.
func (*LeastChange) Name() string {
	return NameLeastChange
}

// lcFrame is a suspended search position in the least-change tree.
type lcFrame struct {
	depth    int
	acc      btcutil.Amount
	weight   unit.WeightUnit
	selected []int
}

// lcBest tracks the best selection seen: smallest change, then fewest
// coins.
type lcBest struct {
	selected []int
	change   btcutil.Amount
	count    int
}

// SelectCoins runs the least-change search. The target it accumulates
// towards includes the change floor and the change output fee, so every
// feasible node yields a selection whose excess survives as a valid change
// output.
func (l *LeastChange) SelectCoins(coins []Coin, o *Options) (*Result, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	cands := profitableCandidates(coins, o)
	sortCandidatesDesc(cands)
	suffix := suffixSums(cands)

	if suffix[0] < o.TargetValue {
		return nil, ErrInsufficientFunds
	}

	// Accumulate past the change floor and the change output fee so the
	// leftover is always a creatable change amount.
	target := o.TargetValue + o.Change.Min + o.baseFee() +
		o.FeeRate.FeeForWeightRoundUp(o.ChangeWeight)

	// Funds cover the target but not the change floor on top of it, so no
	// selection this strategy can produce is feasible.
	if suffix[0] < target {
		return nil, ErrNoSolutionFound
	}

	var best *lcBest

	tries := l.MaxTries
	stack := make([]lcFrame, 0, 64)
	stack = append(stack, lcFrame{})

	for len(stack) > 0 && tries > 0 {
		tries--

		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if fr.depth >= len(cands) {
			continue
		}

		// Bound: even taking every remaining coin cannot reach the
		// target.
		if fr.acc+suffix[fr.depth] < target {
			continue
		}

		// Exclude branch.
		stack = append(stack, lcFrame{
			depth:    fr.depth + 1,
			acc:      fr.acc,
			weight:   fr.weight,
			selected: fr.selected,
		})

		// Include branch.
		cand := cands[fr.depth]
		acc := fr.acc + cand.eff

		selected := make([]int, len(fr.selected)+1)
		copy(selected, fr.selected)
		selected[len(fr.selected)] = cand.idx

		if acc >= target {
			change := acc - target
			count := len(selected)

			update := best == nil || change < best.change ||
				(change == best.change && count < best.count)
			if update {
				best = &lcBest{
					selected: selected,
					change:   change,
					count:    count,
				}
			}

			continue
		}

		stack = append(stack, lcFrame{
			depth:    fr.depth + 1,
			acc:      acc,
			weight:   fr.weight + cand.weight,
			selected: selected,
		})
	}

	if best == nil {
		return nil, ErrNoSolutionFound
	}

	return buildResult(coins, o, best.selected, NameLeastChange)
}

// A compile-time assertion to ensure LeastChange implements the Strategy
// interface.
var _ Strategy = (*LeastChange)(nil)
