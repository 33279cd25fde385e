// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcwallet/wallet/txrules"
	"github.com/btcsuite/btcwallet/wallet/txsizes"
	"github.com/btcsuite/coinselect/unit"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/require"
)

// TestOptionsValidate checks the option preconditions rejected before any
// search begins.
func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		mutate func(o *Options)
		valid  bool
	}{
		{
			name:   "baseline",
			mutate: func(o *Options) {},
			valid:  true,
		},
		{
			name:   "zero target",
			mutate: func(o *Options) { o.TargetValue = 0 },
		},
		{
			name:   "negative target",
			mutate: func(o *Options) { o.TargetValue = -1 },
		},
		{
			name:   "negative fee rate",
			mutate: func(o *Options) { o.FeeRate = -1 },
		},
		{
			name: "negative long term fee rate",
			mutate: func(o *Options) {
				o.LongTermFeeRate = fn.Some(
					unit.SatPerKWeight(-1),
				)
			},
		},
		{
			name:   "negative min absolute fee",
			mutate: func(o *Options) { o.MinAbsoluteFee = -1 },
		},
		{
			name:   "negative change cost",
			mutate: func(o *Options) { o.ChangeCost = -1 },
		},
		{
			name:   "negative change min",
			mutate: func(o *Options) { o.Change.Min = -1 },
		},
		{
			name: "change min above max",
			mutate: func(o *Options) {
				o.Change = ChangeBounds{Min: 500, Max: 100}
			},
		},
		{
			name: "change max unbounded",
			mutate: func(o *Options) {
				o.Change = ChangeBounds{Min: 500, Max: 0}
			},
			valid: true,
		},
		{
			name: "unknown excess strategy",
			mutate: func(o *Options) {
				o.ExcessStrategy = ExcessStrategy(99)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			o := testOptions(50_000)
			tc.mutate(o)

			err := o.Validate()
			if tc.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

// TestBaseFee checks the skeleton fee and the absolute fee floor.
func TestBaseFee(t *testing.T) {
	t.Parallel()

	o := testOptions(50_000)
	require.Equal(t, btcutil.Amount(40), o.baseFee())

	o.MinAbsoluteFee = 500
	require.Equal(t, btcutil.Amount(500), o.baseFee())
}

// TestChangelessTolerance checks that an explicit change maximum overrides
// the derived extra-input-plus-output window.
func TestChangelessTolerance(t *testing.T) {
	t.Parallel()

	o := testOptions(50_000)
	require.Equal(t, btcutil.Amount(230), o.changelessTolerance())

	o.Change.Max = 5_000
	require.Equal(t, btcutil.Amount(5_000), o.changelessTolerance())
}

// TestLongTermRate checks the long-term fee rate fallback.
func TestLongTermRate(t *testing.T) {
	t.Parallel()

	o := testOptions(50_000)
	require.Equal(t, o.FeeRate, o.longTermRate())

	o.LongTermFeeRate = fn.Some(unit.SatPerKWeight(250))
	require.Equal(t, unit.SatPerKWeight(250), o.longTermRate())
}

// TestPresetOptions sanity checks the script-class presets.
func TestPresetOptions(t *testing.T) {
	t.Parallel()

	for _, preset := range []struct {
		name       string
		opts       *Options
		scriptSize int
	}{
		{
			name:       "p2wpkh",
			opts:       P2WPKHOptions(100_000, 2500),
			scriptSize: txsizes.P2WPKHPkScriptSize,
		},
		{
			name:       "p2tr",
			opts:       P2TROptions(100_000, 2500),
			scriptSize: txsizes.P2TRPkScriptSize,
		},
	} {
		t.Run(preset.name, func(t *testing.T) {
			t.Parallel()

			o := preset.opts
			require.NoError(t, o.Validate())
			require.EqualValues(t, 100_000, o.TargetValue)

			// The change cost must cover creating the change output
			// now and spending it later.
			wantCost := o.FeeRate.FeeForWeightRoundUp(
				o.AvgOutputWeight,
			) + o.FeeRate.FeeForWeightRoundUp(o.AvgInputWeight)
			require.Equal(t, wantCost, o.ChangeCost)

			wantDust := txrules.GetDustThreshold(
				preset.scriptSize,
				txrules.DefaultRelayFeePerKb,
			)
			require.Equal(t, wantDust, o.Change.Min)
		})
	}
}
