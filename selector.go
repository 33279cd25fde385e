// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"context"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sync/errgroup"
)

// Policy describes how the Selector compares the results of multiple
// successful strategies.
type Policy uint8

const (
	// PolicyMinimizeWaste runs every configured strategy and returns the
	// feasible result with the lowest waste. This is the default.
	PolicyMinimizeWaste Policy = iota

	// PolicyFirstSuccess returns the first feasible result in configured
	// strategy order, skipping the remaining strategies.
	PolicyFirstSuccess
)

// String returns a human-readable name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyMinimizeWaste:
		return "minimize_waste"
	case PolicyFirstSuccess:
		return "first_success"
	default:
		return fmt.Sprintf("unknown<%d>", uint8(p))
	}
}

// Config bundles the knobs of a Selector.
type Config struct {
	// Strategies is the ordered set of strategies to attempt. It must
	// not be empty. The randomized strategies must not share a rand
	// source when Concurrent is set.
	Strategies []Strategy

	// Policy describes how results of multiple successful strategies are
	// compared.
	Policy Policy

	// Concurrent runs the strategies in parallel, one goroutine per
	// strategy, under PolicyMinimizeWaste. The strategies share only the
	// read-only inputs, so no locking is involved. It has no effect
	// under PolicyFirstSuccess, which is inherently ordered.
	Concurrent bool
}

// Selector runs a configured set of strategies against the same inputs and
// returns the best feasible selection according to its policy.
type Selector struct {
	cfg Config
}

// NewSelector returns a Selector for the given config.
func NewSelector(cfg *Config) (*Selector, error) {
	if cfg == nil || len(cfg.Strategies) == 0 {
		return nil, ErrNoStrategies
	}
	if cfg.Policy > PolicyFirstSuccess {
		return nil, fmt.Errorf("%w: unknown policy %d",
			ErrInvalidOptions, cfg.Policy)
	}

	return &Selector{cfg: *cfg}, nil
}

// Select validates the inputs and runs the configured strategies over them.
// Invalid options or malformed coins short-circuit before any strategy
// runs. When every strategy fails, the failures are folded into a single
// error: ErrInsufficientFunds when every strategy reported insufficiency,
// otherwise a StrategyFailures aggregate that unwraps to
// ErrNoSolutionFound.
//
// Cancellation is honored at strategy boundaries only: a strategy that has
// started always runs to its own iteration bound, as partial selections are
// meaningless.
func (s *Selector) Select(ctx context.Context, coins []Coin,
	opts *Options) (*Result, error) {

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := validateCoins(coins); err != nil {
		return nil, err
	}

	if s.cfg.Policy == PolicyFirstSuccess {
		return s.selectFirst(ctx, coins, opts)
	}

	return s.selectMinWaste(ctx, coins, opts)
}

// selectFirst attempts the strategies in configured order and returns the
// first feasible result.
func (s *Selector) selectFirst(ctx context.Context, coins []Coin,
	opts *Options) (*Result, error) {

	failures := make(map[string]error, len(s.cfg.Strategies))

	for _, strategy := range s.cfg.Strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := strategy.SelectCoins(coins, opts)
		if err != nil {
			log.Debugf("Strategy %s failed: %v", strategy.Name(),
				err)
			failures[strategy.Name()] = err
			continue
		}

		log.Debugf("Strategy %s selected %d coins, change=%v, "+
			"waste=%v", strategy.Name(), len(res.Coins),
			res.Change, res.Waste)

		return res, nil
	}

	return nil, foldFailures(failures)
}

// selectMinWaste runs every strategy, sequentially or concurrently, and
// returns the lowest-waste feasible result.
func (s *Selector) selectMinWaste(ctx context.Context, coins []Coin,
	opts *Options) (*Result, error) {

	results := make([]*Result, len(s.cfg.Strategies))
	errs := make([]error, len(s.cfg.Strategies))

	if s.cfg.Concurrent {
		var g errgroup.Group
		for i, strategy := range s.cfg.Strategies {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			g.Go(func() error {
				results[i], errs[i] = strategy.SelectCoins(
					coins, opts,
				)
				return nil
			})
		}

		// The goroutines report their outcomes through the slices,
		// so the only thing to wait for is completion.
		_ = g.Wait()
	} else {
		for i, strategy := range s.cfg.Strategies {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			results[i], errs[i] = strategy.SelectCoins(coins, opts)
		}
	}

	var best *Result
	failures := make(map[string]error, len(s.cfg.Strategies))

	for i, strategy := range s.cfg.Strategies {
		if errs[i] != nil {
			log.Debugf("Strategy %s failed: %v", strategy.Name(),
				errs[i])
			failures[strategy.Name()] = errs[i]
			continue
		}

		res := results[i]
		log.Debugf("Strategy %s selected %d coins, change=%v, "+
			"waste=%v", strategy.Name(), len(res.Coins),
			res.Change, res.Waste)

		if best == nil || lessResult(res, best) {
			best = res
		}
	}

	if best == nil {
		return nil, foldFailures(failures)
	}

	log.Tracef("Best selection: %s", spew.Sdump(best))

	return best, nil
}

// lessResult reports whether a is a strictly better selection than b: lower
// waste wins, then the smaller change amount, then fewer coins, then the
// strategy name as a deterministic last resort.
func lessResult(a, b *Result) bool {
	if a.Waste != b.Waste {
		return a.Waste < b.Waste
	}
	if a.Change != b.Change {
		return a.Change < b.Change
	}
	if len(a.Coins) != len(b.Coins) {
		return len(a.Coins) < len(b.Coins)
	}

	return a.Strategy < b.Strategy
}

// foldFailures collapses the per-strategy failures into the single error
// the Selector reports. All-insufficient failures mean the coins simply
// cannot cover the target; any other mix is a no-solution class aggregate.
func foldFailures(failures map[string]error) error {
	allInsufficient := len(failures) > 0
	for _, err := range failures {
		if !errors.Is(err, ErrInsufficientFunds) {
			allInsufficient = false
			break
		}
	}

	if allInsufficient {
		return ErrInsufficientFunds
	}

	return &StrategyFailures{Failures: failures}
}

// Select runs the default strategy set over the given coins with the
// minimize-waste policy. The seed feeds the randomized strategies; fixing
// it reproduces the selection exactly.
func Select(ctx context.Context, coins []Coin, opts *Options,
	seed int64) (*Result, error) {

	selector, err := NewSelector(&Config{
		Strategies: DefaultStrategies(seed),
	})
	if err != nil {
		return nil, err
	}

	return selector.Select(ctx, coins, opts)
}
