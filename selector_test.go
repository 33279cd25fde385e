// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"context"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/require"
)

// TestNewSelector checks the selector construction preconditions.
func TestNewSelector(t *testing.T) {
	t.Parallel()

	_, err := NewSelector(nil)
	require.ErrorIs(t, err, ErrNoStrategies)

	_, err = NewSelector(&Config{})
	require.ErrorIs(t, err, ErrNoStrategies)

	_, err = NewSelector(&Config{
		Strategies: DefaultStrategies(1),
		Policy:     Policy(99),
	})
	require.ErrorIs(t, err, ErrInvalidOptions)
}

// TestSelectorMinimizeWaste checks that the default policy returns the
// lowest-waste result across the strategy set and that no individual
// strategy beats it.
func TestSelectorMinimizeWaste(t *testing.T) {
	t.Parallel()

	// The exact-match pair exists, so the best waste is zero and the
	// deterministic tie-break settles on branch-and-bound.
	coins := testCoins(2_000, 50_000, 5_000, 30_000, 10_000)
	o := testOptions(79_760)

	res, err := Select(context.Background(), coins, o, 42)
	require.NoError(t, err)

	require.Equal(t, btcutil.Amount(0), res.Waste)
	require.Equal(t, NameBnB, res.Strategy)
	require.Equal(t, []int{1, 3}, res.Coins)

	// No individual strategy may do better than the selector's pick.
	for _, strategy := range DefaultStrategies(42) {
		sres, serr := strategy.SelectCoins(coins, o)
		if serr != nil {
			continue
		}
		require.GreaterOrEqual(t, sres.Waste, res.Waste)
	}
}

// TestSelectorFirstSuccess checks that the first-success policy honors the
// configured order even when a later strategy would waste less.
func TestSelectorFirstSuccess(t *testing.T) {
	t.Parallel()

	coins := testCoins(2_000, 50_000, 5_000, 30_000, 10_000)
	o := testOptions(79_760)

	selector, err := NewSelector(&Config{
		Strategies: []Strategy{NewFIFO(), NewBranchAndBound()},
		Policy:     PolicyFirstSuccess,
	})
	require.NoError(t, err)

	res, err := selector.Select(context.Background(), coins, o)
	require.NoError(t, err)

	// FIFO succeeds with change, so branch-and-bound's changeless match
	// is never consulted.
	require.Equal(t, NameFIFO, res.Strategy)
	require.Greater(t, res.Waste, btcutil.Amount(0))
}

// TestSelectorConcurrent checks that the concurrent path returns the same
// result as the sequential one for an identical seed.
func TestSelectorConcurrent(t *testing.T) {
	t.Parallel()

	coins := knapsackTestCoins()
	o := testOptions(25_000)

	sequential, err := NewSelector(&Config{
		Strategies: DefaultStrategies(42),
	})
	require.NoError(t, err)

	concurrent, err := NewSelector(&Config{
		Strategies: DefaultStrategies(42),
		Concurrent: true,
	})
	require.NoError(t, err)

	res1, err := sequential.Select(context.Background(), coins, o)
	require.NoError(t, err)

	res2, err := concurrent.Select(context.Background(), coins, o)
	require.NoError(t, err)

	require.Equal(t, res1, res2)
}

// TestSelectorInsufficientFunds checks that uniform insufficiency across
// the strategy set folds into the plain insufficiency error.
func TestSelectorInsufficientFunds(t *testing.T) {
	t.Parallel()

	coins := testCoins(10_000, 20_000)
	o := testOptions(50_000)

	_, err := Select(context.Background(), coins, o, 1)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	require.NotErrorIs(t, err, ErrNoSolutionFound)
}

// TestSelectorNoMatch checks the aggregate failure when funds suffice but
// no strategy can satisfy the change constraints.
func TestSelectorNoMatch(t *testing.T) {
	t.Parallel()

	// A single coin whose excess lands below an extreme change floor.
	coins := testCoins(120_000)
	o := testOptions(50_000)
	o.Change.Min = 80_000

	_, err := Select(context.Background(), coins, o, 1)
	require.ErrorIs(t, err, ErrNoSolutionFound)

	var agg *StrategyFailures
	require.ErrorAs(t, err, &agg)
	require.Len(t, agg.Failures, 6)
}

// TestSelectorInputValidation checks that malformed inputs short-circuit
// before any strategy runs.
func TestSelectorInputValidation(t *testing.T) {
	t.Parallel()

	coins := testCoins(50_000)

	_, err := Select(context.Background(), coins, testOptions(0), 1)
	require.ErrorIs(t, err, ErrInvalidOptions)

	bad := testCoins(50_000, -5)
	_, err = Select(context.Background(), bad, testOptions(10_000), 1)
	require.ErrorIs(t, err, ErrMalformedCoin)
}

// TestSelectorContextCancelled checks the boundary-only cancellation.
func TestSelectorContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	coins := testCoins(50_000)
	_, err := Select(ctx, coins, testOptions(10_000), 1)
	require.ErrorIs(t, err, context.Canceled)
}

// TestSelectorSeedReproducible checks that the package-level entry point is
// fully reproducible for a fixed seed.
func TestSelectorSeedReproducible(t *testing.T) {
	t.Parallel()

	coins := knapsackTestCoins()
	o := testOptions(25_000)

	res1, err := Select(context.Background(), coins, o, 99)
	require.NoError(t, err)

	res2, err := Select(context.Background(), coins, o, 99)
	require.NoError(t, err)

	require.Equal(t, res1, res2)
}
