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
)

func TestGeneratorFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c := refcurve.New()
	fp2 := c.Field()

	basisA := basis{
		P: provider.Point{X: fp2.FromInt(20, 0), Z: fp2.One()},
		Q: provider.Point{X: fp2.FromInt(23, 0), Z: fp2.One()},
	}
	basisB := basis{
		P: provider.Point{X: fp2.FromInt(31, 0), Z: fp2.One()},
		Q: provider.Point{X: fp2.FromInt(35, 0), Z: fp2.One()},
	}

	require.NoError(t, writeGeneratorFile(dir, "419", fp2, basisA, basisB))

	gotA, gotB, err := loadGeneratorFile(dir, "419", fp2)
	require.NoError(t, err)
	require.True(t, fp2.Equal(gotA.P.X, basisA.P.X))
	require.True(t, fp2.Equal(gotA.Q.X, basisA.Q.X))
	require.True(t, fp2.Equal(gotB.P.X, basisB.P.X))
	require.True(t, fp2.Equal(gotB.Q.X, basisB.Q.X))
}

func TestLoadGeneratorFileNotFound(t *testing.T) {
	dir := t.TempDir()
	c := refcurve.New()

	_, _, err := loadGeneratorFile(dir, "419", c.Field())
	require.ErrorIs(t, err, ErrGeneratorFileNotFound)
}

func TestDeriveBasisFillsPmQ(t *testing.T) {
	dir := t.TempDir()
	c := refcurve.New()
	fp2 := c.Field()
	cc := c.BaseCurve()

	basisA := basis{
		P: provider.Point{X: fp2.FromInt(20, 0), Z: fp2.One()},
		Q: provider.Point{X: fp2.FromInt(23, 0), Z: fp2.One()},
	}
	basisB := basis{
		P: provider.Point{X: fp2.FromInt(31, 0), Z: fp2.One()},
		Q: provider.Point{X: fp2.FromInt(35, 0), Z: fp2.One()},
	}

	require.NoError(t, writeGeneratorFile(dir, "419", fp2, basisA, basisB))

	gotA, _, err := loadGeneratorFile(dir, "419", fp2)
	require.NoError(t, err)

	full, err := deriveBasis(c, cc, gotA)
	require.NoError(t, err)

	// T - 2T = -T, x(-T) = x(T) = 20 on a Montgomery curve.
	require.True(t, fp2.Equal(full.PmQ.X, fp2.FromInt(20, 0)))
}

type noBasisDeriver struct {
	provider.Curve
}

func TestDeriveBasisUnsupported(t *testing.T) {
	c := refcurve.New()
	fp2 := c.Field()

	b := basis{
		P: provider.Point{X: fp2.FromInt(20, 0), Z: fp2.One()},
		Q: provider.Point{X: fp2.FromInt(23, 0), Z: fp2.One()},
	}

	_, err := deriveBasis(noBasisDeriver{Curve: c}, c.BaseCurve(), b)
	require.ErrorIs(t, err, ErrUnsupportedBasisDerivation)
}
