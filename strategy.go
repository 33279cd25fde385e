// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"math/rand"
	"sort"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/coinselect/unit"
)

// Strategy is the interface implemented by every selection algorithm. The
// strategy set is closed: the Selector dispatches over the implementations
// in this package rather than open-ended plugins, so that each algorithm
// stays auditable.
type Strategy interface {
	// Name returns a short, stable identifier for the strategy, used in
	// failure reports and logs.
	Name() string

	// SelectCoins runs the strategy over the given candidate coins and
	// options. It returns a feasible Result or an error classifying the
	// failure: ErrInsufficientFunds when the coins cannot cover the
	// target at all, ErrNoSolutionFound when they can but the strategy
	// found no selection within its constraints and search bound.
	SelectCoins(coins []Coin, opts *Options) (*Result, error)
}

// Strategy names as reported by Name, used as keys in aggregate failures.
const (
	NameBnB          = "bnb"
	NameKnapsack     = "knapsack"
	NameSRD          = "srd"
	NameLowestLarger = "lowestlarger"
	NameFIFO         = "fifo"
	NameLeastChange  = "leastchange"
)

// DefaultStrategies returns the full strategy set. The seed feeds the
// randomized strategies: each receives its own rand source derived from it,
// so the returned strategies are safe to run concurrently and reproduce the
// same selections for the same seed.
func DefaultStrategies(seed int64) []Strategy {
	prng := rand.New(rand.NewSource(seed))

	return []Strategy{
		NewBranchAndBound(),
		NewLowestLarger(),
		NewLeastChange(),
		NewFIFO(),
		NewKnapsack(rand.New(rand.NewSource(prng.Int63()))),
		NewSingleRandomDraw(rand.New(rand.NewSource(prng.Int63()))),
	}
}

// candidate is a coin netted of its own spend fee, remembering its position
// in the caller's slice.
type candidate struct {
	idx    int
	eff    btcutil.Amount
	weight unit.WeightUnit
}

// profitableCandidates nets every coin of its spend fee at the current fee
// rate and drops the unprofitable ones: a coin whose effective value is not
// positive can never help reach a target.
func profitableCandidates(coins []Coin, o *Options) []candidate {
	cands := make([]candidate, 0, len(coins))
	for i := range coins {
		ev := coins[i].EffectiveValue(o.FeeRate)
		if ev <= 0 {
			continue
		}

		cands = append(cands, candidate{
			idx:    i,
			eff:    ev,
			weight: coins[i].Weight,
		})
	}

	return cands
}

// sortCandidatesDesc orders candidates by descending effective value, ties
// resolved by input order for determinism.
func sortCandidatesDesc(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].eff > cands[j].eff
	})
}

// suffixSums returns, for each depth, the summed effective value of the
// candidates at and after that depth. It is the best-case bound used to
// prune subtrees that cannot reach a target.
func suffixSums(cands []candidate) []btcutil.Amount {
	sums := make([]btcutil.Amount, len(cands)+1)
	for i := len(cands) - 1; i >= 0; i-- {
		sums[i] = sums[i+1] + cands[i].eff
	}

	return sums
}
