// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package validation provides input validation for user-supplied values.
//
// The search target is validated once here, at the program boundary, and
// never re-validated downstream: the circuit builders assume an in-range
// target and would otherwise silently produce a malformed oracle.
package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxValue returns the largest searchable integer for a register of
// numQubits qubits: 2^N - 1.
func MaxValue(numQubits int) uint64 {
	return (uint64(1) << numQubits) - 1
}

// ValidateTarget checks that target lies in [0, 2^N-1] for the given
// register size.
//
// Example:
//
//	if err := validation.ValidateTarget(target, qubits); err != nil {
//	    return fmt.Errorf("invalid target: %w", err)
//	}
//	// Safe to build the oracle
func ValidateTarget(target uint64, numQubits int) error {
	if numQubits < 1 {
		return fmt.Errorf("register needs at least one qubit, got %d", numQubits)
	}
	if numQubits >= 64 {
		return fmt.Errorf("register size %d exceeds 63 qubits", numQubits)
	}
	if max := MaxValue(numQubits); target > max {
		return fmt.Errorf("value %d out of range: must be between 0 and %d", target, max)
	}
	return nil
}

// ParseTarget normalizes and validates raw user input as a search target.
// Returns the parsed value if it is a base-10 integer within range.
//
// Use this at the prompt/flag boundary:
//
//	target, err := validation.ParseTarget(line, qubits)
//	if err != nil {
//	    return err
//	}
func ParseTarget(raw string, numQubits int) (uint64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("no value entered")
	}

	target, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", trimmed)
	}
	if err := ValidateTarget(target, numQubits); err != nil {
		return 0, err
	}
	return target, nil
}
