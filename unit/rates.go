// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unit

import (
	"fmt"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
)

// SatPerVByte represents a fee rate in sat/vbyte.
type SatPerVByte btcutil.Amount

// FeePerKWeight converts the current fee rate from sat/vb to sat/kw.
func (s SatPerVByte) FeePerKWeight() SatPerKWeight {
	return SatPerKWeight(s * 1000 / blockchain.WitnessScaleFactor)
}

// String returns a human-readable string of the fee rate.
func (s SatPerVByte) String() string {
	return fmt.Sprintf("%v sat/vb", int64(s))
}

// SatPerKWeight represents a fee rate in sat/kw. This is the canonical rate
// unit of the selection engine: every fee estimate is a multiplication of a
// SatPerKWeight rate by a WeightUnit size.
type SatPerKWeight btcutil.Amount

// NewSatPerKWeight creates a new fee rate in sat/kw from a total fee paid
// for a given weight.
func NewSatPerKWeight(fee btcutil.Amount, wu WeightUnit) SatPerKWeight {
	if wu == 0 {
		return 0
	}
	return SatPerKWeight(fee.MulF64(1000 / float64(wu)))
}

// FeeForWeight calculates the fee resulting from this fee rate and the given
// weight in weight units (wu). The resulting fee is rounded down.
func (s SatPerKWeight) FeeForWeight(wu WeightUnit) btcutil.Amount {
	return btcutil.Amount(s) * btcutil.Amount(wu) / 1000
}

// FeeForWeightRoundUp calculates the fee resulting from this fee rate and
// the given weight in weight units (wu), rounding up to the nearest satoshi.
// Fee estimates made ahead of selecting inputs use this variant so the
// estimate never undershoots the fee actually required.
func (s SatPerKWeight) FeeForWeightRoundUp(wu WeightUnit) btcutil.Amount {
	return (btcutil.Amount(s)*btcutil.Amount(wu) + 999) / 1000
}

// FeePerVByte converts the current fee rate from sat/kw to sat/vb.
func (s SatPerKWeight) FeePerVByte() SatPerVByte {
	return SatPerVByte(s * blockchain.WitnessScaleFactor / 1000)
}

// String returns a human-readable string of the fee rate.
func (s SatPerKWeight) String() string {
	return fmt.Sprintf("%v sat/kw", int64(s))
}
