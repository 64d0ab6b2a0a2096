// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package bsidh computes and evaluates optimal isogeny-walk strategies for a
// B-SIDH key agreement.
//
// Given a curve's smooth-degree factor list, optimize (see optimizer.go)
// finds the split sequence minimizing the combined cost of scalar
// multiplications and isogeny evaluations needed to walk the full-degree
// isogeny one prime at a time. evaluate (see evaluator.go) walks that
// sequence against a concrete kernel point, building the codomain curve and
// pushing a set of auxiliary points through it.
//
// Strategy ties both to a session: RandomScalarA/RandomScalarB pick a secret
// scalar, KeygenA/KeygenB build a public key from it, and DeriveA/DeriveB
// combine a local secret with a peer's public key into a final curve and,
// by hashing its (A24, C24) constants, a session key.
//
// Finite-field arithmetic, elliptic-curve primitives and isogeny-formula
// back-ends are not implemented here: they are consumed through the
// internal/provider interfaces. Package internal/refcurve and
// internal/reftvelu ship reference implementations of those interfaces so
// this module's own test suite is self-contained; they are not meant for
// production use.
package bsidh
