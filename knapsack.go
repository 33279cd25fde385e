// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"math/rand"

	"github.com/btcsuite/btcd/btcutil"
)

// defaultKnapsackPasses is the number of randomized restarts a knapsack run
// performs before settling on the best selection found.
const defaultKnapsackPasses = 256

// Knapsack approximates the subset-sum search with randomized restarts. Each
// pass shuffles the candidate order and greedily accumulates coins while the
// running sum stays below the allowed ceiling, dropping a coin again
// whenever adding it would overshoot. The best (lowest-waste) feasible
// selection across all passes wins. The strategy trades exactness for
// coverage on inputs where branch-and-bound cannot converge to a tight
// match.
type Knapsack struct {
	// Passes is the number of randomized restarts.
	Passes int

	prng *rand.Rand
}

// NewKnapsack returns a Knapsack strategy drawing randomness from the given
// source. The source must not be shared with concurrently running
// strategies; identical inputs and an identically seeded source reproduce
// identical selections.
func NewKnapsack(prng *rand.Rand) *Knapsack {
	return &Knapsack{
		Passes: defaultKnapsackPasses,
		prng:   prng,
	}
}

// Name returns the strategy identifier.
func (*Knapsack) Name() string {
	return NameKnapsack
}

// SelectCoins runs the randomized passes and returns the best feasible
// selection found.
func (k *Knapsack) SelectCoins(coins []Coin, o *Options) (*Result, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	cands := profitableCandidates(coins, o)

	if sumEffectiveValue(coins, o.FeeRate) < o.TargetValue {
		return nil, ErrInsufficientFunds
	}

	targetReq := o.TargetValue + o.baseFee()

	// The accumulation ceiling leaves room for a minimal change output on
	// top of the changeless window, so a pass can land on either side.
	ceiling := targetReq + o.Change.Min + o.changelessTolerance() +
		o.FeeRate.FeeForWeightRoundUp(o.ChangeWeight)

	var best *Result

	perm := make([]int, len(cands))
	for i := range perm {
		perm[i] = i
	}
	selected := make([]int, 0, len(cands))

	for pass := 0; pass < k.Passes; pass++ {
		k.prng.Shuffle(len(perm), func(i, j int) {
			perm[i], perm[j] = perm[j], perm[i]
		})

		var acc btcutil.Amount
		selected = selected[:0]
		taken := make(map[int]struct{}, len(cands))

		for _, ci := range perm {
			cand := cands[ci]

			// Overshooting past the ceiling: drop this coin and
			// keep scanning for a smaller one.
			if acc+cand.eff > ceiling {
				continue
			}

			acc += cand.eff
			selected = append(selected, cand.idx)
			taken[ci] = struct{}{}

			if acc >= targetReq {
				break
			}
		}

		// No tight fit under the ceiling exists in this order. Lift the
		// ceiling and finish the accumulation, accepting a change-heavy
		// selection over none at all.
		if acc < targetReq {
			for _, ci := range perm {
				if _, ok := taken[ci]; ok {
					continue
				}

				acc += cands[ci].eff
				selected = append(selected, cands[ci].idx)

				if acc >= targetReq {
					break
				}
			}
		}

		if acc < targetReq {
			continue
		}

		res, err := buildResult(coins, o, selected, NameKnapsack)
		if err != nil {
			continue
		}
		if best == nil || lessResult(res, best) {
			best = res
		}
	}

	if best == nil {
		return nil, ErrNoSolutionFound
	}

	return best, nil
}

// A compile-time assertion to ensure Knapsack implements the Strategy
// interface.
var _ Strategy = (*Knapsack)(nil)
