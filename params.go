// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package bsidh

import (
	"fmt"

	"github.com/bytemare/bsidh/internal/provider"
)

const defaultDataDir = "data"

// Parameters identifies the components of a Strategy: a named prime, the
// elliptic-curve and isogeny-formula back-ends it is built over, and whether
// the "tuned" (suitable/svelu-hvelu) optimization parameters are in effect.
//
// This mirrors the teacher's Ciphersuite/Parameters join pattern (group +
// hash + MHF), adapted to (curve + formula + tuning).
type Parameters struct {
	// Prime names the parameter set; it selects the generator and strategy
	// files under DataDir.
	Prime string

	// Curve supplies x-only elliptic-curve arithmetic.
	Curve provider.Curve

	// Formula supplies one isogeny-construction back-end.
	Formula provider.Formula

	// Tuned selects the "suitable" (svelu/hvelu) strategy file variant over
	// the "classical" one.
	Tuned bool

	// DataDir is the root directory generator and strategy files are read
	// from and written to. Defaults to "data".
	DataDir string
}

// String joins the ciphersuite-identifying parts of p, in the teacher's
// Parameters.String idiom.
func (p Parameters) String() string {
	variant := "classical"
	if p.Tuned {
		variant = "suitable"
	}

	formulaName := "<nil>"
	if p.Formula != nil {
		formulaName = p.Formula.Name()
	}

	return fmt.Sprintf("bsidh-%s-%s-%s", p.Prime, formulaName, variant)
}

func (p Parameters) dataDir() string {
	if p.DataDir == "" {
		return defaultDataDir
	}

	return p.DataDir
}

func (p Parameters) validate() error {
	if p.Curve == nil {
		return internalNilCurve
	}

	if p.Formula == nil {
		return internalNilFormula
	}

	if p.Prime == "" {
		return internalEmptyPrime
	}

	return nil
}
