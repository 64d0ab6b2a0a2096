// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package bsidh

import (
	"errors"

	"github.com/bytemare/bsidh/internal"
)

var (
	// ErrGeneratorFileNotFound is returned when a prime's generator file
	// cannot be read from Parameters.DataDir.
	ErrGeneratorFileNotFound = internal.ParameterError("generator file not found")

	// ErrNonSupersingular is returned when a peer-supplied curve fails the
	// supersingularity check DeriveA/DeriveB run before touching it.
	ErrNonSupersingular = internal.ParameterError("peer curve is not supersingular")

	// ErrLengthMismatch is returned when a strategy loaded from disk does
	// not have n-1 entries for its side's factor list of n primes.
	ErrLengthMismatch = internal.ParameterError("strategy length does not match factor list")

	// ErrDeriveBeforeKeygen is returned by DeriveA/DeriveB when called on a
	// Strategy that has not yet run the matching KeygenA/KeygenB.
	ErrDeriveBeforeKeygen = internal.ParameterError("derive called before keygen")

	// ErrStrategyWrite is returned when a computed strategy cannot be
	// persisted to Parameters.DataDir.
	ErrStrategyWrite = internal.ParameterError("failed to write strategy file")

	// ErrUnsupportedBasisDerivation is returned when a generator file omits
	// x(P-Q) and the configured Curve does not implement
	// provider.BasisDeriver to reconstruct it.
	ErrUnsupportedBasisDerivation = internal.ParameterError("curve cannot derive x(P-Q) from x(P), x(Q) alone")

	errMalformedGeneratorFile = errors.New("malformed generator file")
	errMalformedStrategyFile  = errors.New("malformed strategy file")

	internalNilCurve   = internal.ParameterError("parameters: nil Curve")
	internalNilFormula = internal.ParameterError("parameters: nil Formula")
	internalEmptyPrime = internal.ParameterError("parameters: empty Prime identifier")
)
