// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coinselect implements a blockchain-agnostic coin selection engine.
//
// Given a read-only list of candidate coins and a set of selection options,
// the engine decides which coins to spend and how much change, if any, to
// create in order to cover a payment target plus fees. Several selection
// strategies are provided (branch-and-bound, randomized knapsack, single
// random draw, lowest-larger, FIFO and least-change) and a Selector that
// runs a configured subset of them, ranking every feasible result with a
// shared waste metric.
//
// The engine performs no I/O: coin persistence, fee rate sourcing and
// transaction assembly belong to the caller. All strategies are pure
// computations over immutable inputs and are safe for concurrent use, as
// long as the randomized strategies are given their own rand source.
package coinselect
