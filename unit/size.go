// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package unit provides the transaction size and fee rate units used by the
// coin selection engine. All sizes are carried internally in weight units
// (wu) and all fee rates in satoshis per kilo-weight-unit (sat/kw), so that
// fee math stays in integer satoshis.
package unit

import (
	"fmt"

	"github.com/btcsuite/btcd/blockchain"
)

// WeightUnit expresses a transaction size in weight units. One weight unit
// is 1/4_000_000 of the max block size. The weight of a transaction is
// calculated as `Base tx size * 3 + Total tx size`, where the base size
// excludes witness data.
type WeightUnit uint64

// VBytes converts a size expressed in virtual bytes to weight units. One
// virtual byte is four weight units.
func VBytes(vb uint64) WeightUnit {
	return WeightUnit(vb * blockchain.WitnessScaleFactor)
}

// ToVBytes returns the size in virtual bytes, rounding up any fractional
// part as consensus rules do.
func (w WeightUnit) ToVBytes() uint64 {
	return (uint64(w) + blockchain.WitnessScaleFactor - 1) /
		blockchain.WitnessScaleFactor
}

// String returns the string representation of the weight unit.
func (w WeightUnit) String() string {
	return fmt.Sprintf("%d wu", uint64(w))
}

// VByte expresses a transaction size in virtual bytes.
type VByte uint64

// ToWeight converts the size to weight units.
func (v VByte) ToWeight() WeightUnit {
	return WeightUnit(uint64(v) * blockchain.WitnessScaleFactor)
}

// String returns the string representation of the virtual byte.
func (v VByte) String() string {
	return fmt.Sprintf("%d vb", uint64(v))
}
