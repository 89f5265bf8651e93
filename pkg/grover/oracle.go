// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package grover builds and drives Grover's quantum search algorithm over
// the circuit model in pkg/quantum.
//
// The package has three parts, mirroring the structure of the algorithm
// itself: the oracle (marks the searched-for basis state with a phase
// flip), the diffuser (inversion about the mean, amplifying the marked
// amplitude), and the search driver (superposition, iteration, measurement,
// and submission to a quantum.Backend).
package grover

import (
	"fmt"

	"github.com/AleutianAI/qsearch/pkg/quantum"
)

// Oracle appends gates to c that flip the sign of exactly the basis state
// encoding target, leaving every other amplitude untouched. No measurement
// is performed; the oracle is a pure, deterministic circuit transformation.
//
// Construction: qubits whose target bit is 0 are NOT-flipped so the target
// pattern maps onto all-ones, then an N-ary controlled phase flip is
// applied (Hadamard on the last qubit, multi-controlled NOT from the rest,
// Hadamard again), and the initial flips are undone.
//
// The target must fit in len(qubits) bits; callers validate ranges once at
// the entry point so a malformed oracle can never be built.
func Oracle(c *quantum.Circuit, qubits []int, target uint64) error {
	if len(qubits) == 0 {
		return fmt.Errorf("oracle needs a non-empty register")
	}
	encoding, err := quantum.EncodeTarget(target, len(qubits))
	if err != nil {
		return fmt.Errorf("oracle: %w", err)
	}

	if err := flipZeroBits(c, qubits, encoding); err != nil {
		return err
	}
	if err := phaseFlipAllOnes(c, qubits); err != nil {
		return err
	}
	return flipZeroBits(c, qubits, encoding)
}

// flipZeroBits applies X to every qubit whose bit in the MSB-first encoding
// is '0'. Applying it twice is the identity, which is how the oracle
// restores the basis mapping after the phase flip.
func flipZeroBits(c *quantum.Circuit, qubits []int, encoding string) error {
	for i, bit := range encoding {
		if bit != '0' {
			continue
		}
		if err := c.X(qubits[i]); err != nil {
			return err
		}
	}
	return nil
}

// phaseFlipAllOnes appends the standard N-ary controlled phase flip: the
// amplitude of the all-ones basis state changes sign and no other state is
// affected. H on the last qubit turns the multi-controlled NOT into a
// multi-controlled Z. With a single qubit the control list is empty and
// the construction degenerates to H·X·H = Z, which is still correct.
func phaseFlipAllOnes(c *quantum.Circuit, qubits []int) error {
	last := qubits[len(qubits)-1]
	if err := c.H(last); err != nil {
		return err
	}
	if err := c.MCX(qubits[:len(qubits)-1], last); err != nil {
		return err
	}
	return c.H(last)
}
