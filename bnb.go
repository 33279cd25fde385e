// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/coinselect/unit"
)

// defaultMaxBnBTries bounds the number of search tree nodes a single
// branch-and-bound run may visit, guaranteeing termination on large coin
// sets.
const defaultMaxBnBTries = 1_000_000

// BranchAndBound searches for a subset of coins whose effective values sum
// as close as possible to the target plus fees, preferring matches that
// avoid a change output entirely. It performs a depth-first search over the
// binary include/exclude decision tree with two prunes: a subtree is
// abandoned when even taking every remaining coin cannot reach the target,
// and when the running sum already overshoots the changeless match window.
//
// The search is implemented with an explicit frame stack rather than
// recursion so the node cap bounds the work precisely and deep coin sets
// cannot exhaust the call stack.
type BranchAndBound struct {
	// MaxTries bounds the number of nodes visited before the search
	// reports no solution.
	MaxTries uint32
}

// NewBranchAndBound returns a BranchAndBound strategy with the default node
// cap.
func NewBranchAndBound() *BranchAndBound {
	return &BranchAndBound{MaxTries: defaultMaxBnBTries}
}

// Name returns the strategy identifier.
func (*BranchAndBound) Name() string {
	return NameBnB
}

// bnbFrame is a suspended search position: the next decision depth, the
// accumulated effective value and weight, and the selection so far.
type bnbFrame struct {
	depth    int
	acc      btcutil.Amount
	weight   unit.WeightUnit
	selected []int
}

// bnbLeaf is the best feasible leaf seen so far.
type bnbLeaf struct {
	selected []int
	waste    btcutil.Amount
}

// SelectCoins runs the branch-and-bound search. It only returns a solution
// whose excess fits inside the changeless match window; when the node cap
// is exhausted or the tree is drained without such a match, it reports
// ErrNoSolutionFound rather than a partial result.
func (b *BranchAndBound) SelectCoins(coins []Coin,
	o *Options) (*Result, error) {

	if err := o.Validate(); err != nil {
		return nil, err
	}

	cands := profitableCandidates(coins, o)
	sortCandidatesDesc(cands)
	suffix := suffixSums(cands)

	if suffix[0] < o.TargetValue {
		return nil, ErrInsufficientFunds
	}

	targetForMatch := o.TargetValue + o.baseFee()
	upperBound := targetForMatch + o.changelessTolerance()

	if suffix[0] < targetForMatch {
		return nil, ErrNoSolutionFound
	}

	var best *bnbLeaf

	tries := b.MaxTries
	stack := make([]bnbFrame, 0, 64)
	stack = append(stack, bnbFrame{})

	for len(stack) > 0 && tries > 0 {
		tries--

		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// A feasible leaf: the accumulated effective value landed in
		// the match window. Supersets can only overshoot further, so
		// the branch ends here either way.
		if fr.acc >= targetForMatch {
			if fr.acc <= upperBound {
				leafWaste := timingCost(o, fr.weight) +
					(fr.acc - targetForMatch)
				best = betterLeaf(best, &bnbLeaf{
					selected: fr.selected,
					waste:    leafWaste,
				})
			}
			continue
		}

		if fr.depth >= len(cands) {
			continue
		}

		// Bound: even taking every remaining coin cannot reach the
		// target.
		if fr.acc+suffix[fr.depth] < targetForMatch {
			continue
		}

		// Push the exclude branch first so the include branch is
		// explored first.
		stack = append(stack, bnbFrame{
			depth:    fr.depth + 1,
			acc:      fr.acc,
			weight:   fr.weight,
			selected: fr.selected,
		})

		cand := cands[fr.depth]
		acc := fr.acc + cand.eff

		// Including this coin overshoots past any useful match, and
		// every deeper inclusion only makes it worse.
		if acc > upperBound {
			continue
		}

		selected := make([]int, len(fr.selected)+1)
		copy(selected, fr.selected)
		selected[len(fr.selected)] = cand.idx

		stack = append(stack, bnbFrame{
			depth:    fr.depth + 1,
			acc:      acc,
			weight:   fr.weight + cand.weight,
			selected: selected,
		})
	}

	if best == nil {
		return nil, ErrNoSolutionFound
	}

	return buildResult(coins, o, best.selected, NameBnB)
}

// betterLeaf returns the preferred of two feasible leaves: lower waste wins,
// then fewer coins (a smaller future spend cost), then the lexicographically
// earlier coin ordering for determinism.
func betterLeaf(current, next *bnbLeaf) *bnbLeaf {
	if current == nil {
		return next
	}
	if next.waste != current.waste {
		if next.waste < current.waste {
			return next
		}
		return current
	}
	if len(next.selected) != len(current.selected) {
		if len(next.selected) < len(current.selected) {
			return next
		}
		return current
	}
	for i := range next.selected {
		if next.selected[i] != current.selected[i] {
			if next.selected[i] < current.selected[i] {
				return next
			}
			return current
		}
	}

	return current
}

// A compile-time assertion to ensure BranchAndBound implements the Strategy
// interface.
var _ Strategy = (*BranchAndBound)(nil)
