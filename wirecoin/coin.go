// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wirecoin adapts bitcoin wire transaction outputs to the coin
// model of the selection engine. The adapter derives each coin's spend
// weight from its output script, so callers can feed wallet UTXOs to the
// engine without sizing inputs themselves.
package wirecoin

import (
	"sort"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcwallet/wallet/txsizes"
	"github.com/btcsuite/coinselect"
	"github.com/btcsuite/coinselect/unit"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// UTXO is a spendable wallet output together with the metadata the
// selection engine consumes.
type UTXO struct {
	// OutPoint identifies the output being spent.
	OutPoint wire.OutPoint

	// Output is the transaction output itself. Its script decides the
	// spend weight of the derived coin.
	Output wire.TxOut

	// Height is the block height the output confirmed at. Outputs are
	// ordered oldest-first by height when deriving FIFO sequences; a
	// zero or negative height marks an unconfirmed output without an
	// age.
	Height int32
}

// FromTxOut derives a selection coin from a wire transaction output. The
// coin's weight is the best-case virtual size of spending the output,
// scaled to weight units, matching how the wallet estimates input fees.
func FromTxOut(out *wire.TxOut) coinselect.Coin {
	vsize := txsizes.GetMinInputVirtualSize(out.PkScript)

	return coinselect.Coin{
		Value:      btcutil.Amount(out.Value),
		Weight:     unit.VBytes(uint64(vsize)),
		InputCount: 1,
	}
}

// FromUTXOs derives selection coins from wallet outputs, attaching a FIFO
// creation sequence by confirmation height: the lowest (oldest) height maps
// to sequence zero. Unconfirmed outputs receive no sequence and are spent
// after every confirmed output. The returned slice is index-aligned with
// the input, so selection results refer back to the caller's outputs
// directly.
func FromUTXOs(utxos []UTXO) []coinselect.Coin {
	// Rank the confirmed outputs by height without disturbing the input
	// order.
	order := make([]int, 0, len(utxos))
	for i := range utxos {
		if utxos[i].Height > 0 {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return utxos[order[i]].Height < utxos[order[j]].Height
	})

	seqs := make(map[int]uint32, len(order))
	for rank, idx := range order {
		seqs[idx] = uint32(rank)
	}

	coins := make([]coinselect.Coin, len(utxos))
	for i := range utxos {
		coins[i] = FromTxOut(&utxos[i].Output)

		if seq, ok := seqs[i]; ok {
			coins[i].CreationSequence = fn.Some(seq)
		}
	}

	return coins
}
