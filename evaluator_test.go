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

	"github.com/bytemare/bsidh/internal/provider"
	"github.com/bytemare/bsidh/internal/refcurve"
	"github.com/bytemare/bsidh/internal/reftvelu"
)

func toyCurveAndFormula(t *testing.T, name reftvelu.Name) (*refcurve.Curve, *reftvelu.Formula) {
	t.Helper()

	c := refcurve.New()
	f := reftvelu.New(name, c.Field(), c.L(), 2)

	return c, f
}

func toyKernel(c *refcurve.Curve) provider.Point {
	return provider.Point{X: c.Field().FromInt(20, 0), Z: c.Field().One()}
}

// toyIdx returns the prime->position mapping into c.L() that strategy.go's
// buildIndexer builds for a live Strategy; tests drive evaluate/optimize
// with the same mapping the production code path uses.
func toyIdx(c *refcurve.Curve) func(int) int {
	return func(p int) int { return indexOf(c.L(), p) }
}

func TestEvaluateSingleLeaf(t *testing.T) {
	c, f := toyCurveAndFormula(t, reftvelu.Tvelu)
	cc := c.BaseCurve()
	kernel := toyKernel(c)

	newCurve, aux := evaluate(f, c, false, true, [3]provider.Point{kernel, kernel, kernel}, cc, kernel, []int{3}, toyIdx(c), nil)

	require.False(t, c.Field().IsZero(newCurve.A24))
	require.Len(t, aux, 3)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	c, f := toyCurveAndFormula(t, reftvelu.Tvelu)
	cc := c.BaseCurve()
	kernel := toyKernel(c)
	aux := [3]provider.Point{toyKernel(c), toyKernel(c), toyKernel(c)}

	strategy, _ := optimize(c.Lp(), toyIdx(c), c.CXMul(), f.CXEval(), f.CXIsog(), nil)

	c1, f1 := toyCurveAndFormula(t, reftvelu.Tvelu)
	curve1, aux1 := evaluate(f1, c1, false, true, aux, cc, kernel, c.Lp(), toyIdx(c1), strategy)

	c2, f2 := toyCurveAndFormula(t, reftvelu.Tvelu)
	curve2, aux2 := evaluate(f2, c2, false, true, aux, cc, kernel, c.Lp(), toyIdx(c2), strategy)

	require.True(t, c.Field().Equal(curve1.A24, curve2.A24))
	require.True(t, c.Field().Equal(curve1.C24, curve2.C24))

	for i := range aux1 {
		require.True(t, c.Field().Equal(aux1[i].X, aux2[i].X))
		require.True(t, c.Field().Equal(aux1[i].Z, aux2[i].Z))
	}
}

func TestEvaluateSkipsAuxWhenDisabled(t *testing.T) {
	c, f := toyCurveAndFormula(t, reftvelu.Tvelu)
	cc := c.BaseCurve()
	kernel := toyKernel(c)
	aux := [3]provider.Point{toyKernel(c), toyKernel(c), toyKernel(c)}

	_, gotAux := evaluate(f, c, false, false, aux, cc, kernel, []int{3}, toyIdx(c), nil)

	for i := range aux {
		require.True(t, c.Field().Equal(aux[i].X, gotAux[i].X))
		require.True(t, c.Field().Equal(aux[i].Z, gotAux[i].Z))
	}
}

func TestEvaluateMultiStepMatchesStepByStep(t *testing.T) {
	c, f := toyCurveAndFormula(t, reftvelu.Tvelu)
	cc := c.BaseCurve()
	kernel := toyKernel(c)

	l := c.Lp() // [3, 5]
	strategy, _ := optimize(l, toyIdx(c), c.CXMul(), f.CXEval(), f.CXIsog(), nil)

	curve, _ := evaluate(f, c, false, false, [3]provider.Point{}, cc, kernel, l, toyIdx(c), strategy)

	require.False(t, c.Field().IsZero(curve.A24))
	require.False(t, c.Field().IsZero(curve.C24))

	// Step by step: the only strategy for [3, 5] is [1], so the walk reduces
	// the kernel by 5, builds the degree-3 isogeny, pushes the original
	// kernel through it, then builds the degree-5 isogeny from that image.
	require.Equal(t, []int{1}, strategy)

	idx := toyIdx(c)
	reduced := c.XMul(kernel, cc, idx(5))
	mid, pushed := evaluate(f, c, false, true, [3]provider.Point{kernel, kernel, kernel}, cc, reduced, []int{3}, idx, nil)
	want, _ := evaluate(f, c, false, false, [3]provider.Point{}, mid, pushed[0], []int{5}, idx, nil)

	require.True(t, c.Field().Equal(want.A24, curve.A24))
	require.True(t, c.Field().Equal(want.C24, curve.C24))
}

// TestEvaluateLmSideUsesIdxForPosition exercises the Lm side of L(), whose
// positions start after all of Lp's: evaluate must resolve its Formula/Curve
// position arguments via idx (prime 7 -> position len(Lp) in this toy L())
// rather than treat Lm's own slice offsets as absolute positions, or it
// would look up Lp's cost/shape data for Lm's primes.
func TestEvaluateLmSideUsesIdxForPosition(t *testing.T) {
	c, f := toyCurveAndFormula(t, reftvelu.Tvelu)
	cc := c.BaseCurve()
	kernel := toyKernel(c)

	lm := c.Lm() // [7], at L()[len(Lp):]

	curve, _ := evaluate(f, c, false, false, [3]provider.Point{}, cc, kernel, lm, toyIdx(c), nil)

	require.False(t, c.Field().IsZero(curve.A24))
}

// TestEvaluateSveluPushesThroughCurveConstants exercises the push-through
// branch usesIndexSelector leaves false for svelu: XEval must there receive
// the pre-swap curve constants, not the position index, per evaluate's
// push-through contract. reftvelu's placeholder XEval only consults its arg
// when the kernel-derived mixing constant is zero, so the kernel here is
// deliberately chosen (X = -Z) to force that branch; the two backends'
// results diverging is the observable signal that the selector is actually
// driving which argument gets passed.
func TestEvaluateSveluPushesThroughCurveConstants(t *testing.T) {
	c, fSvelu := toyCurveAndFormula(t, reftvelu.Svelu)
	_, fTvelu := toyCurveAndFormula(t, reftvelu.Tvelu)

	cc := c.BaseCurve()
	fp2 := c.Field()
	kernel := provider.Point{X: fp2.Neg(fp2.One()), Z: fp2.One()}
	aux := [3]provider.Point{toyKernel(c), toyKernel(c), toyKernel(c)}

	l := c.Lm() // [7]

	_, auxSvelu := evaluate(fSvelu, c, false, true, aux, cc, kernel, l, toyIdx(c), nil)
	_, auxTvelu := evaluate(fTvelu, c, false, true, aux, cc, kernel, l, toyIdx(c), nil)

	require.False(t, c.Field().Equal(auxSvelu[0].X, auxTvelu[0].X),
		"svelu's curve-constants push-through should diverge from tvelu's index push-through")
}

func TestUsesIndexSelector(t *testing.T) {
	require.True(t, usesIndexSelector("svelu", 4, 10))
	require.False(t, usesIndexSelector("svelu", 11, 10))
	require.True(t, usesIndexSelector("tvelu", 11, 10))
	require.True(t, usesIndexSelector("hvelu", 5, 10))
	require.False(t, usesIndexSelector("hvelu", 15, 10))
}

func indexOf(l []int, prime int) int {
	for i, p := range l {
		if p == prime {
			return i
		}
	}

	return -1
}
