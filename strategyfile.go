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
	"strconv"
	"strings"
)

// strategyFilePath names data/strategies/bsidh-<prime>-<formula>-<variant>,
// variant being "classical" or "suitable" depending on tuned.
func strategyFilePath(dir, prime, formula string, tuned bool) string {
	variant := "classical"
	if tuned {
		variant = "suitable"
	}

	name := fmt.Sprintf("bsidh-%s-%s-%s", prime, formula, variant)

	return filepath.Join(dir, "strategies", name)
}

// loadStrategyFile reads a two-line file of whitespace-separated decimal
// integers: the Lp-side strategy on the first line, the Lm-side strategy on
// the second.
func loadStrategyFile(path string) (stratP, stratM []int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 2 {
		return nil, nil, fmt.Errorf("%w: expected 2 lines, got %d", errMalformedStrategyFile, len(lines))
	}

	stratP, err = parseIntLine(lines[0])
	if err != nil {
		return nil, nil, err
	}

	stratM, err = parseIntLine(lines[1])
	if err != nil {
		return nil, nil, err
	}

	return stratP, stratM, nil
}

// saveStrategyFile writes the format loadStrategyFile reads, creating
// data/strategies under dir if needed.
func saveStrategyFile(path string, stratP, stratM []int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %s", ErrStrategyWrite, err)
	}

	content := formatIntLine(stratP) + "\n" + formatIntLine(stratM) + "\n"

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: %s", ErrStrategyWrite, err)
	}

	return nil
}

func parseIntLine(line string) ([]int, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return []int{}, nil
	}

	parts := strings.Fields(line)
	out := make([]int, len(parts))

	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errMalformedStrategyFile, err)
		}

		out[i] = v
	}

	return out, nil
}

func formatIntLine(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, " ")
}
