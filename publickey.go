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

	"github.com/bytemare/bsidh/encoding"
	"github.com/bytemare/bsidh/internal/field"
	"github.com/bytemare/bsidh/internal/provider"
)

// PublicKey is what KeygenA/KeygenB export and DeriveA/DeriveB consume: the
// codomain curve of a session's isogeny walk, together with the peer's
// torsion basis pushed through it.
type PublicKey struct {
	Curve provider.CurveConstants
	Aux   [3]provider.Point
}

// wireKey is PublicKey's flat, hex-string representation, stable across
// JSON, Gob and MessagePack regardless of how each encoder treats *big.Int.
type wireKey struct {
	A24, C24 string
	X0, Z0   string
	X1, Z1   string
	X2, Z2   string
}

func (pk PublicKey) toWire(fp2 field.Fp2) wireKey {
	return wireKey{
		A24: fp2.EncodeHex(pk.Curve.A24),
		C24: fp2.EncodeHex(pk.Curve.C24),
		X0:  fp2.EncodeHex(pk.Aux[0].X),
		Z0:  fp2.EncodeHex(pk.Aux[0].Z),
		X1:  fp2.EncodeHex(pk.Aux[1].X),
		Z1:  fp2.EncodeHex(pk.Aux[1].Z),
		X2:  fp2.EncodeHex(pk.Aux[2].X),
		Z2:  fp2.EncodeHex(pk.Aux[2].Z),
	}
}

func fromWire(w wireKey, fp2 field.Fp2) (PublicKey, error) {
	var pk PublicKey

	targets := []struct {
		name string
		dst  *field.Elt2
		src  string
	}{
		{"A24", &pk.Curve.A24, w.A24},
		{"C24", &pk.Curve.C24, w.C24},
		{"X0", &pk.Aux[0].X, w.X0},
		{"Z0", &pk.Aux[0].Z, w.Z0},
		{"X1", &pk.Aux[1].X, w.X1},
		{"Z1", &pk.Aux[1].Z, w.Z1},
		{"X2", &pk.Aux[2].X, w.X2},
		{"Z2", &pk.Aux[2].Z, w.Z2},
	}

	for _, t := range targets {
		e, err := fp2.DecodeHex(t.src)
		if err != nil {
			return PublicKey{}, fmt.Errorf("public key: field %s: %w", t.name, err)
		}

		*t.dst = e
	}

	return pk, nil
}

// Encode serializes pk in the given wire encoding. fp2 must be the same
// quadratic extension the key's coordinates were computed in.
func (pk PublicKey) Encode(fp2 field.Fp2, enc encoding.Encoding) ([]byte, error) {
	return enc.Encode(pk.toWire(fp2))
}

// DecodePublicKey parses the encoding Encode produces.
func DecodePublicKey(fp2 field.Fp2, enc encoding.Encoding, data []byte) (PublicKey, error) {
	var w wireKey

	if _, err := enc.Decode(data, &w); err != nil {
		return PublicKey{}, fmt.Errorf("public key: %w", err)
	}

	return fromWire(w, fp2)
}
