// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package bsidh

import (
	"github.com/bytemare/bsidh/hash"
	"github.com/bytemare/bsidh/internal/provider"
	"github.com/bytemare/bsidh/utils"
)

// sharedSecretSize is the session key length DeriveA/DeriveB extract; 64
// bytes matches SHAKE256's minimum output size for its claimed 256-bit
// security level.
const sharedSecretSize = 64

// SharedSecret extracts a fixed-length session key from a curve's (A24, C24)
// constants by hashing their raw byte encodings through SHAKE256. No
// canonical curve invariant (such as the j-invariant) is computed first, so
// two projectively equal or isomorphic curves given as different (A24, C24)
// pairs yield different keys. Hashing gives a fixed-size key regardless of
// the prime's bit length, mirroring the teacher's hash package's XOF-based
// extract pattern.
func (s *Strategy) SharedSecret(cc provider.CurveConstants) []byte {
	encoded := utils.Concatenate(0,
		cc.A24.A.Bytes(), cc.A24.B.Bytes(),
		cc.C24.A.Bytes(), cc.C24.B.Bytes(),
	)

	return hash.SHAKE256.Get().Hash(sharedSecretSize, encoded)
}
