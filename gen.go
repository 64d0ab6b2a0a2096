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
	"os"
	"path/filepath"
	"strings"

	"github.com/bytemare/bsidh/internal/field"
	"github.com/bytemare/bsidh/internal/provider"
)

// basis is a fixed public three-point torsion basis (P, Q, P-Q). A Strategy
// holds one per party: KeygenA/DeriveA walk basisA, KeygenB/DeriveB walk
// basisB, mirroring the two independent (PA,QA,PA-QA)/(PB,QB,PB-QB) triples
// §3 names as session state.
type basis struct {
	P, Q, PmQ provider.Point
}

// loadGeneratorFile reads data/gen/<prime> under dir: two whitespace-
// separated hex pairs per line, x(P) then x(Q), line one for party A and
// line two for party B. x(P-Q) is not stored; it is reconstructed
// deterministically by deriveBasis once the curve's starting constants are
// known, so the file only ever carries the two independent coordinates per
// side.
func loadGeneratorFile(dir, prime string, fp2 field.Fp2) (basisA, basisB basis, err error) {
	path := filepath.Join(dir, "gen", prime)

	data, err := os.ReadFile(path)
	if err != nil {
		return basis{}, basis{}, fmt.Errorf("%w: %s", ErrGeneratorFileNotFound, err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		return basis{}, basis{}, fmt.Errorf("%w: expected 2 lines, got %d", errMalformedGeneratorFile, len(lines))
	}

	basisA, err = parseGeneratorLine(lines[0], fp2, "A")
	if err != nil {
		return basis{}, basis{}, err
	}

	basisB, err = parseGeneratorLine(lines[1], fp2, "B")
	if err != nil {
		return basis{}, basis{}, err
	}

	return basisA, basisB, nil
}

func parseGeneratorLine(line string, fp2 field.Fp2, side string) (basis, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return basis{}, fmt.Errorf("%w: side %s: expected 2 fields, got %d", errMalformedGeneratorFile, side, len(fields))
	}

	xp, err := fp2.DecodeHex(fields[0])
	if err != nil {
		return basis{}, fmt.Errorf("%w: side %s: x(P): %s", errMalformedGeneratorFile, side, err)
	}

	xq, err := fp2.DecodeHex(fields[1])
	if err != nil {
		return basis{}, fmt.Errorf("%w: side %s: x(Q): %s", errMalformedGeneratorFile, side, err)
	}

	return basis{
		P: provider.Point{X: xp, Z: fp2.One()},
		Q: provider.Point{X: xq, Z: fp2.One()},
	}, nil
}

// writeGeneratorFile persists the A and B bases in the format
// loadGeneratorFile reads, creating data/gen under dir if needed.
func writeGeneratorFile(dir, prime string, fp2 field.Fp2, basisA, basisB basis) error {
	genDir := filepath.Join(dir, "gen")
	if err := os.MkdirAll(genDir, 0o755); err != nil {
		return fmt.Errorf("%w: %s", ErrStrategyWrite, err)
	}

	line := func(b basis) string {
		return fp2.EncodeHex(b.P.X) + " " + fp2.EncodeHex(b.Q.X)
	}

	content := line(basisA) + "\n" + line(basisB) + "\n"

	if err := os.WriteFile(filepath.Join(genDir, prime), []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: %s", ErrStrategyWrite, err)
	}

	return nil
}

// deriveBasis fills in b.PmQ from b.P and b.Q, using the optional
// provider.BasisDeriver capability of c. Curves that cannot recover a
// y-coordinate from x alone must not implement BasisDeriver; callers get
// ErrUnsupportedBasisDerivation and must supply a generator file format of
// their own (outside the scope of this reference loader).
func deriveBasis(c provider.Curve, cc provider.CurveConstants, b basis) (basis, error) {
	deriver, ok := c.(provider.BasisDeriver)
	if !ok {
		return basis{}, ErrUnsupportedBasisDerivation
	}

	pmq, err := deriver.DifferenceX(b.P, b.Q, cc)
	if err != nil {
		return basis{}, fmt.Errorf("%w: %s", errMalformedGeneratorFile, err)
	}

	b.PmQ = pmq

	return b, nil
}
