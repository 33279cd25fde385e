// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/coinselect/unit"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// Coin represents a spendable output which is available for coin selection.
// The engine only ever reads coins; it never mutates or persists them.
// Results refer to coins by their index in the slice handed to the strategy,
// so the caller is free to attach whatever identity it needs.
type Coin struct {
	// Value is the amount carried by the coin, in the smallest unit.
	Value btcutil.Amount

	// Weight is the full cost of spending the coin as a transaction
	// input, in weight units. For a segwit input this includes the
	// witness discount.
	Weight unit.WeightUnit

	// InputCount is the number of inputs required to spend the coin.
	// This is 1 for a plain UTXO and larger for grouped outputs that
	// must be swept together.
	InputCount int

	// CreationSequence is a monotonic creation order used by the FIFO
	// strategy. Coins without a sequence are treated as younger than any
	// sequenced coin.
	CreationSequence fn.Option[uint32]
}

// EffectiveValue returns the coin's value minus the fee required to spend it
// at the given rate. The result is negative when the coin costs more to
// spend than it is worth.
func (c *Coin) EffectiveValue(rate unit.SatPerKWeight) btcutil.Amount {
	return c.Value - rate.FeeForWeightRoundUp(c.Weight)
}

// validate checks the coin against the engine's preconditions.
func (c *Coin) validate() error {
	if c.Value < 0 {
		return fmt.Errorf("%w: negative value %v", ErrMalformedCoin,
			c.Value)
	}
	if c.InputCount < 0 {
		return fmt.Errorf("%w: negative input count %d",
			ErrMalformedCoin, c.InputCount)
	}

	return nil
}

// validateCoins checks every candidate coin, reporting the index of the
// first malformed one.
func validateCoins(coins []Coin) error {
	for i := range coins {
		if err := coins[i].validate(); err != nil {
			return fmt.Errorf("coin %d: %w", i, err)
		}
	}

	return nil
}

// sumEffectiveValue returns the sum of the positive effective values of the
// given coins. Coins that cost more to spend than they are worth contribute
// nothing, since including them can never help reach a target.
func sumEffectiveValue(coins []Coin, rate unit.SatPerKWeight) btcutil.Amount {
	var total btcutil.Amount
	for i := range coins {
		if ev := coins[i].EffectiveValue(rate); ev > 0 {
			total += ev
		}
	}

	return total
}
