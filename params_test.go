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

	"github.com/bytemare/bsidh/internal/refcurve"
	"github.com/bytemare/bsidh/internal/reftvelu"
)

func TestParametersValidate(t *testing.T) {
	c := refcurve.New()
	f := reftvelu.New(reftvelu.Tvelu, c.Field(), c.L(), 2)

	require.ErrorIs(t, (Parameters{}).validate(), internalNilCurve)
	require.ErrorIs(t, (Parameters{Curve: c}).validate(), internalNilFormula)
	require.ErrorIs(t, (Parameters{Curve: c, Formula: f}).validate(), internalEmptyPrime)
	require.NoError(t, (Parameters{Curve: c, Formula: f, Prime: "419"}).validate())
}

func TestParametersDataDirDefault(t *testing.T) {
	require.Equal(t, defaultDataDir, (Parameters{}).dataDir())
	require.Equal(t, "custom", (Parameters{DataDir: "custom"}).dataDir())
}

func TestParametersString(t *testing.T) {
	c := refcurve.New()
	f := reftvelu.New(reftvelu.Svelu, c.Field(), c.L(), 2)

	p := Parameters{Prime: "419", Curve: c, Formula: f, Tuned: true}
	require.Equal(t, "bsidh-419-svelu-suitable", p.String())

	p.Tuned = false
	require.Equal(t, "bsidh-419-svelu-classical", p.String())
}
