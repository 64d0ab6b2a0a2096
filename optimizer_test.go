// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package bsidh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// bruteForceCost exhaustively tries every binary split tree over the window
// [start, start+length) and returns its minimal cost, the same recurrence
// optimize's dynamic program minimizes without memoization. cXMul, cXEval
// and cXIsog are indexed directly by position, matching every call site in
// this file (all built with an identity idx).
func bruteForceCost(cXMul, cXEval, cXIsog []int64, start, length int) int64 {
	if length == 1 {
		return cXIsog[start]
	}

	best := int64(-1)

	for b := 1; b < length; b++ {
		left := bruteForceCost(cXMul, cXEval, cXIsog, start, b)
		right := bruteForceCost(cXMul, cXEval, cXIsog, start+b, length-b)

		var evalCost int64
		for i := start; i < start+b; i++ {
			evalCost += cXEval[i]
		}

		var mulCost int64
		for i := start + b; i < start+length; i++ {
			mulCost += cXMul[i]
		}

		c := left + right + evalCost + mulCost
		if best == -1 || c < best {
			best = c
		}
	}

	return best
}

// strategyCost replays a strategy (the way evaluate would walk it) to
// recover its total cost under the same recurrence, so optimize's output
// can be checked against bruteForceCost without assuming anything about
// split's internal representation beyond the pre-order format evaluate
// itself depends on.
func strategyCost(cXMul, cXEval, cXIsog []int64, strategy []int, start, length int) int64 {
	if length == 1 {
		return cXIsog[start]
	}

	b := strategy[0]
	leftLen := b
	rightLen := length - b
	leftSplits := leftLen - 1

	leftStrategy := strategy[1 : 1+leftSplits]
	rightStrategy := strategy[1+leftSplits:]

	left := strategyCost(cXMul, cXEval, cXIsog, leftStrategy, start, leftLen)
	right := strategyCost(cXMul, cXEval, cXIsog, rightStrategy, start+b, rightLen)

	var evalCost int64
	for i := start; i < start+b; i++ {
		evalCost += cXEval[i]
	}

	var mulCost int64
	for i := start + b; i < start+length; i++ {
		mulCost += cXMul[i]
	}

	return left + right + evalCost + mulCost
}

func TestOptimizeMatchesBruteForce(t *testing.T) {
	identity := func(prime int) int { return prime }

	for n := 1; n <= 7; n++ {
		primes := make([]int, n)
		cXMul := make([]int64, n)
		cXEval := make([]int64, n)
		cXIsog := make([]int64, n)

		for i := 0; i < n; i++ {
			primes[i] = i
			cXMul[i] = int64(2*i + 3)
			cXEval[i] = int64(3*i + 1)
			cXIsog[i] = int64(5*i + 7)
		}

		strategy, cost := optimize(primes, identity, cXMul, cXEval, cXIsog, nil)

		want := bruteForceCost(cXMul, cXEval, cXIsog, 0, n)
		require.Equal(t, want, cost, "n=%d: optimize cost mismatch", n)

		if n > 1 {
			require.Len(t, strategy, n-1)
			got := strategyCost(cXMul, cXEval, cXIsog, strategy, 0, n)
			require.Equal(t, want, got, "n=%d: replayed strategy cost mismatch", n)
		} else {
			require.Empty(t, strategy)
		}
	}
}

func TestOptimizeEmpty(t *testing.T) {
	strategy, cost := optimize(nil, func(int) int { return 0 }, nil, nil, nil, nil)
	require.Empty(t, strategy)
	require.Zero(t, cost)
}

func TestOptimizeSingleton(t *testing.T) {
	strategy, cost := optimize([]int{3}, func(int) int { return 0 }, []int64{9}, []int64{9}, []int64{42}, nil)
	require.Empty(t, strategy)
	require.Equal(t, int64(42), cost)
}

func TestOptimizeMeasureRescales(t *testing.T) {
	identity := func(prime int) int { return prime }
	primes := []int{0, 1, 2}
	cXMul := []int64{3, 5, 7}
	cXEval := []int64{2, 4, 6}
	cXIsog := []int64{11, 13, 17}

	_, plain := optimize(primes, identity, cXMul, cXEval, cXIsog, nil)
	_, doubled := optimize(primes, identity, cXMul, cXEval, cXIsog, func(c int64) int64 { return 2 * c })

	require.Equal(t, 2*plain, doubled)
}
