// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/require"
)

// TestLeastChangeMinimizesChange checks that the search finds the subset
// with the smallest change clearing the floor, preferring fewer coins on
// ties.
func TestLeastChangeMinimizesChange(t *testing.T) {
	t.Parallel()

	coins := knapsackTestCoins()
	o := testOptions(25_000)

	res, err := NewLeastChange().SelectCoins(coins, o)
	require.NoError(t, err)

	// The minimum valid total is a pair summing 27_000: any smaller
	// total leaves change below the 1000 sat floor, any triple
	// overshoots far more.
	require.Len(t, res.Coins, 2)
	require.Equal(t, btcutil.Amount(27_000), res.TotalValue)
	require.Equal(t, btcutil.Amount(27_000-25_000-270), res.Change)
	require.Equal(t, o.ChangeCost, res.Waste)
	require.Equal(t, NameLeastChange, res.Strategy)
}

// TestLeastChangeDeterministic checks that reruns reproduce the selection
// exactly.
func TestLeastChangeDeterministic(t *testing.T) {
	t.Parallel()

	coins := knapsackTestCoins()
	o := testOptions(25_000)

	lc := NewLeastChange()
	res1, err := lc.SelectCoins(coins, o)
	require.NoError(t, err)

	res2, err := lc.SelectCoins(coins, o)
	require.NoError(t, err)

	require.Equal(t, res1, res2)
}

// TestLeastChangeFloorUnreachable checks the classification when funds
// cover the target but not the change floor on top of it.
func TestLeastChangeFloorUnreachable(t *testing.T) {
	t.Parallel()

	coins := testCoins(120_000)
	o := testOptions(50_000)
	o.Change.Min = 80_000

	_, err := NewLeastChange().SelectCoins(coins, o)
	require.ErrorIs(t, err, ErrNoSolutionFound)
	require.NotErrorIs(t, err, ErrInsufficientFunds)
}

// TestLeastChangeInsufficientFunds checks the insufficiency classification.
func TestLeastChangeInsufficientFunds(t *testing.T) {
	t.Parallel()

	coins := testCoins(10_000, 20_000)
	o := testOptions(50_000)

	_, err := NewLeastChange().SelectCoins(coins, o)
	require.ErrorIs(t, err, ErrInsufficientFunds)
}
