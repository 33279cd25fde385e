// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcwallet/wallet/txrules"
	"github.com/btcsuite/btcwallet/wallet/txsizes"
	"github.com/btcsuite/coinselect/unit"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// ExcessStrategy describes what a strategy does with the excess value of a
// selection, i.e. the amount by which the selected coins exceed the target
// plus fees.
type ExcessStrategy uint8

const (
	// ExcessToChange returns the excess to the spender as a change
	// output, provided it clears the configured change bounds. This is
	// the default.
	ExcessToChange ExcessStrategy = iota

	// ExcessToFee burns the excess as additional transaction fee.
	ExcessToFee

	// ExcessToRecipient adds the excess to the payment amount.
	ExcessToRecipient
)

// String returns a human-readable name of the excess strategy.
func (e ExcessStrategy) String() string {
	switch e {
	case ExcessToChange:
		return "to_change"
	case ExcessToFee:
		return "to_fee"
	case ExcessToRecipient:
		return "to_recipient"
	default:
		return fmt.Sprintf("unknown<%d>", uint8(e))
	}
}

// ChangeBounds bounds the acceptable change amount of a selection.
type ChangeBounds struct {
	// Min is the smallest change amount worth creating an output for.
	// Excess below this bound cannot become change; it must instead be
	// small enough to absorb into fees, otherwise the selection is
	// rejected.
	Min btcutil.Amount

	// Max is the largest acceptable change amount. It doubles as the
	// overshoot window for changeless matches in the branch-and-bound
	// search. A value of zero means unbounded change, in which case the
	// changeless window falls back to the cost of one extra input plus
	// one extra output.
	Max btcutil.Amount
}

// Options bundles the parameters of a single selection call. An Options
// value is immutable for the duration of the call; strategies only read it.
type Options struct {
	// TargetValue is the payment amount the selected coins must cover,
	// fees excluded. It must be positive.
	TargetValue btcutil.Amount

	// FeeRate is the fee rate the transaction will pay now.
	FeeRate unit.SatPerKWeight

	// LongTermFeeRate is the fee rate expected in the long run. It prices
	// the opportunity cost of spending a coin now instead of later: when
	// unset, the current fee rate is assumed and the timing component of
	// the waste metric vanishes.
	LongTermFeeRate fn.Option[unit.SatPerKWeight]

	// MinAbsoluteFee is the fee floor the transaction must pay regardless
	// of its size.
	MinAbsoluteFee btcutil.Amount

	// BaseWeight is the weight of the transaction skeleton without any
	// of the selected inputs or the change output: version, locktime,
	// counts and the payment outputs.
	BaseWeight unit.WeightUnit

	// ChangeWeight is the weight added by creating the change output.
	ChangeWeight unit.WeightUnit

	// ChangeCost is the full cost of a change output: the fee to create
	// it now plus the expected fee to spend it later. It is the amount
	// the waste metric charges for selections that produce change.
	ChangeCost btcutil.Amount

	// AvgInputWeight is the weight of a typical input, used to size the
	// changeless match window.
	AvgInputWeight unit.WeightUnit

	// AvgOutputWeight is the weight of a typical output, used to size
	// the changeless match window.
	AvgOutputWeight unit.WeightUnit

	// Change bounds the acceptable change amount.
	Change ChangeBounds

	// ExcessStrategy describes what happens to the excess value of the
	// final selection.
	ExcessStrategy ExcessStrategy
}

// Validate checks the options for violations that must be rejected before
// any search begins. All violations wrap ErrInvalidOptions.
func (o *Options) Validate() error {
	if o.TargetValue <= 0 {
		return fmt.Errorf("%w: target value must be positive, got %v",
			ErrInvalidOptions, o.TargetValue)
	}
	if o.FeeRate < 0 {
		return fmt.Errorf("%w: negative fee rate %v",
			ErrInvalidOptions, o.FeeRate)
	}
	if o.MinAbsoluteFee < 0 {
		return fmt.Errorf("%w: negative min absolute fee %v",
			ErrInvalidOptions, o.MinAbsoluteFee)
	}
	if o.ChangeCost < 0 {
		return fmt.Errorf("%w: negative change cost %v",
			ErrInvalidOptions, o.ChangeCost)
	}
	if o.Change.Min < 0 || o.Change.Max < 0 {
		return fmt.Errorf("%w: negative change bounds %v/%v",
			ErrInvalidOptions, o.Change.Min, o.Change.Max)
	}
	if o.Change.Max > 0 && o.Change.Min > o.Change.Max {
		return fmt.Errorf("%w: change bounds min %v exceeds max %v",
			ErrInvalidOptions, o.Change.Min, o.Change.Max)
	}
	if o.ExcessStrategy > ExcessToRecipient {
		return fmt.Errorf("%w: unknown excess strategy %d",
			ErrInvalidOptions, o.ExcessStrategy)
	}
	if rate := o.LongTermFeeRate.UnwrapOr(0); rate < 0 {
		return fmt.Errorf("%w: negative long term fee rate %v",
			ErrInvalidOptions, rate)
	}

	return nil
}

// baseFee returns the fee charged for the transaction skeleton, honoring the
// absolute fee floor.
func (o *Options) baseFee() btcutil.Amount {
	fee := o.FeeRate.FeeForWeightRoundUp(o.BaseWeight)
	if fee < o.MinAbsoluteFee {
		fee = o.MinAbsoluteFee
	}

	return fee
}

// longTermRate returns the long-term fee rate, defaulting to the current
// rate when the caller did not provide one.
func (o *Options) longTermRate() unit.SatPerKWeight {
	return o.LongTermFeeRate.UnwrapOr(o.FeeRate)
}

// changelessTolerance returns the largest excess that may be absorbed into
// fees instead of becoming a change output. When an explicit change maximum
// is configured it bounds the window; otherwise the window is the cost of
// one extra input plus one extra output, which is the point where creating
// and later spending a change output becomes cheaper than overpaying.
func (o *Options) changelessTolerance() btcutil.Amount {
	if o.Change.Max > 0 {
		return o.Change.Max
	}

	return o.FeeRate.FeeForWeightRoundUp(o.AvgInputWeight) +
		o.FeeRate.FeeForWeightRoundUp(o.AvgOutputWeight)
}

// txOverheadVBytes is the virtual size of the transaction skeleton used by
// the option presets: version, segwit marker and flag, input and output
// counts, and locktime.
const txOverheadVBytes = 11

// p2trKeySpendWitnessWeight is the weight of a taproot key-spend witness:
// one item count byte, one length byte and a 64-byte signature.
const p2trKeySpendWitnessWeight = 66

// P2WPKHOptions returns selection options preconfigured for a wallet
// spending native segwit (P2WPKH) coins and paying change to a P2WPKH
// output. The change floor is the dust threshold for such an output at the
// default relay fee rate.
func P2WPKHOptions(target btcutil.Amount,
	feeRate unit.SatPerKWeight) *Options {

	inputWeight := unit.WeightUnit(
		txsizes.RedeemP2WPKHInputSize*4 +
			txsizes.RedeemP2WPKHInputWitnessWeight,
	)
	outputWeight := unit.VBytes(uint64(8 + 1 + txsizes.P2WPKHPkScriptSize))

	return presetOptions(
		target, feeRate, inputWeight, outputWeight,
		txsizes.P2WPKHPkScriptSize,
	)
}

// P2TROptions returns selection options preconfigured for a wallet spending
// taproot (P2TR) coins via key spend and paying change to a P2TR output.
func P2TROptions(target btcutil.Amount,
	feeRate unit.SatPerKWeight) *Options {

	inputWeight := unit.WeightUnit(
		txsizes.RedeemP2WPKHInputSize*4 + p2trKeySpendWitnessWeight,
	)
	outputWeight := unit.VBytes(uint64(8 + 1 + txsizes.P2TRPkScriptSize))

	return presetOptions(
		target, feeRate, inputWeight, outputWeight,
		txsizes.P2TRPkScriptSize,
	)
}

// presetOptions assembles an Options value from per-script-class sizes.
func presetOptions(target btcutil.Amount, feeRate unit.SatPerKWeight,
	inputWeight, outputWeight unit.WeightUnit,
	changeScriptSize int) *Options {

	return &Options{
		TargetValue:  target,
		FeeRate:      feeRate,
		BaseWeight:   unit.VBytes(txOverheadVBytes),
		ChangeWeight: outputWeight,
		ChangeCost: feeRate.FeeForWeightRoundUp(outputWeight) +
			feeRate.FeeForWeightRoundUp(inputWeight),
		AvgInputWeight:  inputWeight,
		AvgOutputWeight: outputWeight,
		Change: ChangeBounds{
			Min: txrules.GetDustThreshold(
				changeScriptSize,
				txrules.DefaultRelayFeePerKb,
			),
		},
		ExcessStrategy: ExcessToChange,
	}
}
