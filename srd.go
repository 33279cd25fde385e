// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"math/rand"

	"github.com/btcsuite/btcd/btcutil"
)

// SingleRandomDraw is the baseline randomized strategy: shuffle the
// candidates, accumulate them in shuffled order until the running sum covers
// the target plus fees, and stop. There is no backtracking, so the result
// almost always carries a change output. Drawing coins at random prevents
// the creation of ever smaller coins over time and leaks nothing about the
// wallet's coin composition.
type SingleRandomDraw struct {
	prng *rand.Rand
}

// NewSingleRandomDraw returns a SingleRandomDraw strategy drawing randomness
// from the given source. The source must not be shared with concurrently
// running strategies; identical inputs and an identically seeded source
// reproduce identical selections.
func NewSingleRandomDraw(prng *rand.Rand) *SingleRandomDraw {
	return &SingleRandomDraw{prng: prng}
}

// Name returns the strategy identifier.
func (*SingleRandomDraw) Name() string {
	return NameSRD
}

// SelectCoins draws coins in a random order until the target plus fees is
// covered and the excess is valid, i.e. either a change amount above the
// configured floor or small enough to absorb into fees. It fails only when
// the candidates cannot cover the target at all.
func (s *SingleRandomDraw) SelectCoins(coins []Coin,
	o *Options) (*Result, error) {

	if err := o.Validate(); err != nil {
		return nil, err
	}

	cands := profitableCandidates(coins, o)

	if sumEffectiveValue(coins, o.FeeRate) < o.TargetValue {
		return nil, ErrInsufficientFunds
	}

	s.prng.Shuffle(len(cands), func(i, j int) {
		cands[i], cands[j] = cands[j], cands[i]
	})

	targetReq := o.TargetValue + o.baseFee()

	var acc btcutil.Amount
	selected := make([]int, 0, len(cands))

	for _, cand := range cands {
		acc += cand.eff
		selected = append(selected, cand.idx)

		if acc < targetReq {
			continue
		}

		// The draw may land in the dead zone where the excess is
		// below the change floor yet too large for fees. Keep drawing
		// until the selection clears it.
		res, err := buildResult(coins, o, selected, NameSRD)
		if err == nil {
			return res, nil
		}
	}

	return nil, ErrNoSolutionFound
}

// A compile-time assertion to ensure SingleRandomDraw implements the
// Strategy interface.
var _ Strategy = (*SingleRandomDraw)(nil)
