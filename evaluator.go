// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package bsidh

import (
	"math"

	"github.com/bytemare/bsidh/internal/field"
	"github.com/bytemare/bsidh/internal/provider"
)

// frame is one pending kernel reduction, awaiting either a further split or
// (once its window has shrunk to one prime) the construction of a leaf
// isogeny. Every point still on the stack is pushed through a leaf isogeny
// built elsewhere, exactly like the auxiliary points are.
type frame struct {
	point  provider.Point
	start  int
	length int
}

// usesIndexSelector reports whether the degree-l step at this point in the
// walk pushes points through XEval by position index rather than by the
// pre-isogeny curve constants: true for tvelu (which has no optimized path),
// for hvelu at or below its HybridBound, and for any degree-4 step (handled
// as a pair of degree-2 isogenies, which the optimized construction does not
// cover). Factored out because the strategy evaluator checks it once per
// leaf and reuses it for both push-throughs: the pending stack points and
// the auxiliary points.
func usesIndexSelector(name string, l, hybridBound int) bool {
	if l == 4 {
		return true
	}

	switch name {
	case "tvelu":
		return true
	case "hvelu":
		return l <= hybridBound
	default: // svelu
		return false
	}
}

// evaluate walks a strategy over the factor list l, building the codomain
// curve of the isogeny whose kernel is generated by kernel, and (if evalAux)
// pushing the three auxiliary points through the same walk.
//
// f and c are the isogeny-formula and elliptic-curve back-ends the walk is
// built from. At every step of a non-tvelu back-end, SetParametersVelu is
// called once before Kps: with the formula's SJList/SIList entries when
// tuned, otherwise with (b, c) derived from the degree ((0, 0) for degree 4
// or less).
// l is SIDp or SIDm, the exponent-expanded traversal order for the Lp or Lm
// side (§3): each prime repeated by its Ep/Em multiplicity, so a window of
// l may revisit the same prime value several times in a row. idx maps a
// prime value to its position in the owning Curve's combined L(), since
// every Curve/Formula position argument (XMul/Kps/XIsog/XEval/CXMul/CXIsog/
// CXEval/SJList/SIList) indexes into that canonical, non-expanded list, and
// l's own position no longer tracks it once primes repeat.
func evaluate(
	f provider.Formula,
	c provider.Curve,
	tuned bool,
	evalAux bool,
	aux [3]provider.Point,
	curve provider.CurveConstants,
	kernel provider.Point,
	l []int,
	idx func(prime int) int,
	strategy []int,
) (provider.CurveConstants, [3]provider.Point) {
	n := len(l)
	if n == 0 {
		return curve, aux
	}

	stack := []frame{{point: kernel, start: 0, length: n}}
	pos := 0

	sJList := f.SJList()
	sIList := f.SIList()

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.length == 1 {
			degree := l[top.start]
			abs := idx(degree)
			selector := usesIndexSelector(f.Name(), degree, f.HybridBound())

			if f.Name() != "tvelu" {
				bParam, cParam := 0, 0
				if tuned {
					bParam, cParam = sJList[abs], sIList[abs]
				} else if degree > 4 {
					bParam = int(math.Sqrt(float64(degree-1))) / 2
					cParam = (degree - 1) / (4 * bParam)
				}

				f.SetParametersVelu(bParam, cParam, abs)
			}

			f.Kps(top.point, curve, abs)
			oldCurve := curve

			// A degree-4 step is built from two chained degree-2 isogenies
			// in a production back-end, from the kernel point's own
			// coordinates rather than the curve's: cswap the point's X/Z
			// into the curve-constant slots before XIsog, exactly where
			// the original's cswap(ramifications[-1], E_i, L[pos]==4) sits,
			// so XIsog is handed the point's coordinates whenever
			// degree==4. The swap runs on copies (fp2.Copy), never on
			// curve's or top.point's own big.Int storage, since condSwapInt
			// mutates in place and curve/top.point are read again below.
			var bit uint
			if degree == 4 {
				bit = 1
			}

			fp2 := c.Field()
			swapCurve := provider.CurveConstants{A24: fp2.Copy(curve.A24), C24: fp2.Copy(curve.C24)}
			swapPoint := provider.Point{X: fp2.Copy(top.point.X), Z: fp2.Copy(top.point.Z)}

			field.CondSwap(&swapPoint.X, &swapCurve.A24, bit)
			field.CondSwap(&swapPoint.Z, &swapCurve.C24, bit)

			newCurve := f.XIsog(swapCurve, abs)

			// The push-through argument: selector steps (tvelu, hvelu at or
			// below HybridBound, or any degree-4 step) evaluate by index; every
			// other step evaluates against the pre-swap curve (oldCurve, not
			// the isogeny's own codomain), per the evaluator's push-through
			// contract.
			var xevalArg any
			if selector {
				xevalArg = abs
			} else {
				xevalArg = oldCurve
			}

			curve = newCurve

			if evalAux {
				for i := range aux {
					aux[i] = f.XEval(aux[i], xevalArg)
				}
			}

			for i := range stack {
				stack[i].point = f.XEval(stack[i].point, xevalArg)
			}

			continue
		}

		b := strategy[pos]
		pos++

		reduced := top.point
		for i := top.start + b; i < top.start+top.length; i++ {
			reduced = c.XMul(reduced, curve, idx(l[i]))
		}

		// Right sub-window first onto the stack (unreduced: it still needs
		// to be pushed through the left sub-window's isogenies before its
		// own reduction continues), then left, so left pops and runs first.
		stack = append(stack, frame{point: top.point, start: top.start + b, length: top.length - b})
		stack = append(stack, frame{point: reduced, start: top.start, length: b})
	}

	return curve, aux
}
