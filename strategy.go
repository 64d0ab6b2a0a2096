// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package bsidh

import (
	"math/big"

	"github.com/bytemare/bsidh/internal"
	"github.com/bytemare/bsidh/internal/provider"
)

// Strategy is a B-SIDH session: the optimal isogeny-walk strategies for a
// curve's p+1 and p-1 factor lists, the fixed public torsion basis they walk
// from, and the per-side secret/public state a key exchange accumulates.
//
// A Strategy owns its memoization and session state exclusively; unlike the
// teacher's sync.Once-guarded package-level group backends (appropriate
// there because curve parameters are immutable and globally shared), a
// Strategy's pushed-basis fields are mutable per-instance session state, so
// distinct Strategy values are independent and safe to use from separate
// goroutines concurrently.
type Strategy struct {
	params Parameters

	basisA basis
	basisB basis

	// sidP/sidM are the exponent-expanded traversal orders SIDp/SIDm: each
	// prime in Lp/Lm repeated by its Ep/Em multiplicity, per §3. idx maps a
	// prime value back to its canonical position in Curve.L(), the index
	// every Curve/Formula position argument is relative to; it is shared by
	// every repeat of a prime, so the expansion above never touches it.
	sidP []int
	sidM []int
	idx  func(prime int) int

	stratP []int
	stratM []int

	skA       *big.Int
	haveKeyA  bool
	pushedA   provider.CurveConstants
	pushedAuxA [3]provider.Point

	skB       *big.Int
	haveKeyB  bool
	pushedB   provider.CurveConstants
	pushedAuxB [3]provider.Point
}

// New builds a Strategy for params: it loads the prime's public torsion
// basis from Parameters.DataDir/gen/<Prime>, and loads the matching strategy
// file if one exists, computing and persisting it via optimize otherwise.
func New(params Parameters) (*Strategy, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	fp2 := params.Curve.Field()

	basisA, basisB, err := loadGeneratorFile(params.dataDir(), params.Prime, fp2)
	if err != nil {
		return nil, err
	}

	baseCurve := params.Curve.BaseCurve()

	basisA, err = deriveBasis(params.Curve, baseCurve, basisA)
	if err != nil {
		return nil, err
	}

	basisB, err = deriveBasis(params.Curve, baseCurve, basisB)
	if err != nil {
		return nil, err
	}

	idx := buildIndexer(params.Curve)
	sidP := expandSID(params.Curve.Lp(), params.Curve.Ep())
	sidM := expandSID(params.Curve.Lm(), params.Curve.Em())

	stratP, stratM, err := loadOrComputeStrategies(params, sidP, sidM, idx)
	if err != nil {
		return nil, err
	}

	return &Strategy{
		params: params,
		basisA: basisA,
		basisB: basisB,
		sidP:   sidP,
		sidM:   sidM,
		idx:    idx,
		stratP: stratP,
		stratM: stratM,
	}, nil
}

// buildIndexer returns a function mapping a prime value to its position in
// curve.L(), the canonical ordering every Curve/Formula position argument
// (XMul/Kps/XIsog/XEval/CXMul/CXIsog/CXEval/SJList/SIList) is relative to.
func buildIndexer(curve provider.Curve) func(prime int) int {
	fullL := curve.L()
	index := make(map[int]int, len(fullL))

	for i, prime := range fullL {
		index[prime] = i
	}

	return func(prime int) int { return index[prime] }
}

// expandSID repeats each prime in primes by its corresponding multiplicity
// in exponents, building the exact traversal order SIDp/SIDm name in §3 (a
// prime whose p±1 exponent is e contributes e consecutive degree-l isogeny
// steps, not one).
func expandSID(primes, exponents []int) []int {
	sid := make([]int, 0, len(primes))

	for i, p := range primes {
		for j := 0; j < exponents[i]; j++ {
			sid = append(sid, p)
		}
	}

	return sid
}

// Parameters returns the configuration this Strategy was built from.
func (s *Strategy) Parameters() Parameters {
	return s.params
}

func loadOrComputeStrategies(params Parameters, sidP, sidM []int, idx func(prime int) int) (stratP, stratM []int, err error) {
	path := strategyFilePath(params.dataDir(), params.Prime, params.Formula.Name(), params.Tuned)

	if stratP, stratM, err = loadStrategyFile(path); err == nil {
		if len(stratP) != expectedSplits(len(sidP)) || len(stratM) != expectedSplits(len(sidM)) {
			return nil, nil, ErrLengthMismatch
		}

		return stratP, stratM, nil
	}

	cXMul := params.Curve.CXMul()
	cXEval := params.Formula.CXEval()
	cXIsog := params.Formula.CXIsog()
	measure := params.Curve.Measure

	stratP, _ = optimize(sidP, idx, cXMul, cXEval, cXIsog, measure)
	stratM, _ = optimize(sidM, idx, cXMul, cXEval, cXIsog, measure)

	if err := saveStrategyFile(path, stratP, stratM); err != nil {
		return nil, nil, err
	}

	return stratP, stratM, nil
}

// expectedSplits gives the number of internal split decisions a strategy
// over n primes carries: a pre-order binary split tree with n leaves has
// n-1 internal nodes, 0 for n<=1.
func expectedSplits(n int) int {
	if n <= 1 {
		return 0
	}

	return n - 1
}

// RandomScalarA returns a fresh secret scalar bounded by the order of the
// p+1-side subgroup KeygenA walks: the product of Lp's primes raised to
// their Ep multiplicity, i.e. primeProduct(sidP).
func (s *Strategy) RandomScalarA() *big.Int {
	return randomScalarBelow(primeProduct(s.sidP))
}

// RandomScalarB is RandomScalarA's p-1-side counterpart.
func (s *Strategy) RandomScalarB() *big.Int {
	return randomScalarBelow(primeProduct(s.sidM))
}

// primeProduct multiplies primes together, giving the order of the subgroup
// a side's (possibly exponent-expanded) factor list generates.
func primeProduct(primes []int) *big.Int {
	prod := big.NewInt(1)
	for _, p := range primes {
		prod.Mul(prod, big.NewInt(int64(p)))
	}

	return prod
}

func randomScalarBelow(bound *big.Int) *big.Int {
	if bound.Sign() <= 0 {
		return big.NewInt(0)
	}

	nBytes := (bound.BitLen() + 7) / 8
	if nBytes == 0 {
		nBytes = 1
	}

	for {
		k := new(big.Int).SetBytes(internal.RandomBytes(nBytes))
		k.Mod(k, bound)

		if k.Sign() != 0 {
			return k
		}
	}
}

// KeygenA derives the public key for secret sk: the codomain curve of the
// p+1-side isogeny walk whose kernel is P + [sk]Q on party A's basis,
// together with party B's basis (P, Q, P-Q) pushed through the walk for the
// peer to use in DeriveB.
func (s *Strategy) KeygenA(sk *big.Int) (PublicKey, error) {
	curve := s.params.Curve.BaseCurve()

	kernel := s.params.Curve.Ladder3pt(sk, s.basisA.P, s.basisA.Q, s.basisA.PmQ, curve)
	aux := [3]provider.Point{s.basisB.P, s.basisB.Q, s.basisB.PmQ}

	newCurve, newAux := evaluate(
		s.params.Formula, s.params.Curve, s.params.Tuned,
		true, aux, curve, kernel, s.sidP, s.idx, s.stratP,
	)

	s.skA = sk
	s.haveKeyA = true
	s.pushedA = newCurve
	s.pushedAuxA = newAux

	return PublicKey{Curve: newCurve, Aux: newAux}, nil
}

// KeygenB is KeygenA's p-1-side counterpart.
func (s *Strategy) KeygenB(sk *big.Int) (PublicKey, error) {
	curve := s.params.Curve.BaseCurve()

	kernel := s.params.Curve.Ladder3pt(sk, s.basisB.P, s.basisB.Q, s.basisB.PmQ, curve)
	aux := [3]provider.Point{s.basisA.P, s.basisA.Q, s.basisA.PmQ}

	newCurve, newAux := evaluate(
		s.params.Formula, s.params.Curve, s.params.Tuned,
		true, aux, curve, kernel, s.sidM, s.idx, s.stratM,
	)

	s.skB = sk
	s.haveKeyB = true
	s.pushedB = newCurve
	s.pushedAuxB = newAux

	return PublicKey{Curve: newCurve, Aux: newAux}, nil
}

// DeriveA combines this side's secret (fixed by the most recent KeygenA
// call) with peer's p-1-side public key into a final curve, whose (A24, C24)
// constants SharedSecret hashes into a session key.
func (s *Strategy) DeriveA(peer PublicKey) ([]byte, error) {
	if !s.haveKeyA {
		return nil, ErrDeriveBeforeKeygen
	}

	if !s.params.Curve.IsSupersingular(peer.Curve) {
		return nil, ErrNonSupersingular
	}

	kernel := s.params.Curve.Ladder3pt(s.skA, peer.Aux[0], peer.Aux[1], peer.Aux[2], peer.Curve)

	var noAux [3]provider.Point

	finalCurve, _ := evaluate(
		s.params.Formula, s.params.Curve, s.params.Tuned,
		false, noAux, peer.Curve, kernel, s.sidP, s.idx, s.stratP,
	)

	return s.SharedSecret(finalCurve), nil
}

// DeriveB is DeriveA's p-1-side counterpart.
func (s *Strategy) DeriveB(peer PublicKey) ([]byte, error) {
	if !s.haveKeyB {
		return nil, ErrDeriveBeforeKeygen
	}

	if !s.params.Curve.IsSupersingular(peer.Curve) {
		return nil, ErrNonSupersingular
	}

	kernel := s.params.Curve.Ladder3pt(s.skB, peer.Aux[0], peer.Aux[1], peer.Aux[2], peer.Curve)

	var noAux [3]provider.Point

	finalCurve, _ := evaluate(
		s.params.Formula, s.params.Curve, s.params.Tuned,
		false, noAux, peer.Curve, kernel, s.sidM, s.idx, s.stratM,
	)

	return s.SharedSecret(finalCurve), nil
}
