// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"github.com/btcsuite/btcd/btcutil"
)

// testFeeRate is the fee rate the tests run at. At 1000 sat/kw the fee of a
// weight is the weight itself in satoshis, which keeps the arithmetic in the
// test cases readable.
const testFeeRate = 1000

// testCoinWeight is the spend weight every test coin carries, so a test
// coin's effective value is its value minus 100 satoshis.
const testCoinWeight = 100

// testOptions returns a baseline options value for a target, with a 40 wu
// transaction skeleton, a 30 wu change output and a 1000 satoshi change
// floor. The changeless tolerance works out to 230 satoshis.
func testOptions(target btcutil.Amount) *Options {
	return &Options{
		TargetValue:     target,
		FeeRate:         testFeeRate,
		BaseWeight:      40,
		ChangeWeight:    30,
		ChangeCost:      100,
		AvgInputWeight:  200,
		AvgOutputWeight: 30,
		Change:          ChangeBounds{Min: 1000},
	}
}

// testCoins builds plain single-input coins of the given values, all with
// the standard test weight.
func testCoins(values ...btcutil.Amount) []Coin {
	coins := make([]Coin, len(values))
	for i, v := range values {
		coins[i] = Coin{
			Value:      v,
			Weight:     testCoinWeight,
			InputCount: 1,
		}
	}

	return coins
}
