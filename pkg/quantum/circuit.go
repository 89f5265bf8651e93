// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package quantum provides a gate-level quantum circuit model and an exact
// statevector simulation backend.
//
// The package is deliberately small: circuits are append-only sequences of
// gates over a fixed-size qubit register, and the only execution path is
// exact statevector simulation followed by multinomial sampling of the
// measured distribution. That is all a textbook algorithm demonstration
// needs, and keeping the model flat makes the gate stream easy to inspect
// in tests.
//
// # Bit Convention
//
// Qubit 0 carries the most significant bit of any integer encoded into the
// register. A measurement outcome string s therefore satisfies s[i] ==
// measured value of qubit i, and the outcome string for the basis state
// encoding integer t is t's zero-padded binary representation, MSB first.
// EncodeTarget and DecodeOutcome are the two halves of that mapping.
package quantum

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxQubits caps the register size. The statevector holds 2^N complex128
// amplitudes, so 20 qubits is already 16 MiB of state.
const MaxQubits = 20

// GateKind identifies the operation a Gate performs.
type GateKind int

const (
	// GateH is the single-qubit Hadamard gate.
	GateH GateKind = iota

	// GateX is the single-qubit Pauli-X (NOT) gate.
	GateX

	// GateMCX is a multi-controlled NOT: the target qubit is flipped
	// when every control qubit reads 1.
	GateMCX

	// GateMeasure records a measurement of one qubit into a classical slot.
	GateMeasure
)

// String returns the QASM-style mnemonic for the gate kind.
func (k GateKind) String() string {
	switch k {
	case GateH:
		return "h"
	case GateX:
		return "x"
	case GateMCX:
		return "mcx"
	case GateMeasure:
		return "measure"
	default:
		return "unknown"
	}
}

// Gate is one operation in a circuit's gate stream.
//
// Controls is nil for single-qubit gates. Slot is only meaningful for
// GateMeasure and names the classical output slot receiving the result.
type Gate struct {
	Kind     GateKind
	Target   int
	Controls []int
	Slot     int
}

// Circuit is an ordered, append-only sequence of gates over a fixed-size
// qubit register plus an equal number of classical output slots.
//
// A Circuit is not safe for concurrent mutation; it is owned by a single
// builder until submitted to a Backend, after which it must be treated as
// immutable (see Backend.Run).
type Circuit struct {
	numQubits int
	gates     []Gate
}

// NewCircuit creates a circuit over numQubits qubits and the same number of
// classical slots. The register size is fixed for the circuit's lifetime.
func NewCircuit(numQubits int) (*Circuit, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("circuit needs at least one qubit, got %d", numQubits)
	}
	if numQubits > MaxQubits {
		return nil, fmt.Errorf("circuit size %d exceeds the %d-qubit simulation cap", numQubits, MaxQubits)
	}
	return &Circuit{numQubits: numQubits}, nil
}

// NumQubits returns the fixed register size.
func (c *Circuit) NumQubits() int {
	return c.numQubits
}

// Qubits returns the register as an ordered slice of qubit indices 0..N-1.
// Builders take this slice rather than reaching into the circuit, so no
// global register state exists.
func (c *Circuit) Qubits() []int {
	qubits := make([]int, c.numQubits)
	for i := range qubits {
		qubits[i] = i
	}
	return qubits
}

// Gates returns the gate stream in application order. The returned slice is
// a copy; mutating it does not affect the circuit.
func (c *Circuit) Gates() []Gate {
	gates := make([]Gate, len(c.gates))
	copy(gates, c.gates)
	return gates
}

// Len returns the number of appended gates.
func (c *Circuit) Len() int {
	return len(c.gates)
}

func (c *Circuit) checkQubit(q int) error {
	if q < 0 || q >= c.numQubits {
		return fmt.Errorf("qubit %d out of range [0, %d)", q, c.numQubits)
	}
	return nil
}

// H appends a Hadamard gate on the given qubit.
func (c *Circuit) H(qubit int) error {
	if err := c.checkQubit(qubit); err != nil {
		return err
	}
	c.gates = append(c.gates, Gate{Kind: GateH, Target: qubit})
	return nil
}

// X appends a Pauli-X (NOT) gate on the given qubit.
func (c *Circuit) X(qubit int) error {
	if err := c.checkQubit(qubit); err != nil {
		return err
	}
	c.gates = append(c.gates, Gate{Kind: GateX, Target: qubit})
	return nil
}

// MCX appends a multi-controlled NOT with the given control qubits and
// target qubit. An empty control list degenerates to a plain X.
func (c *Circuit) MCX(controls []int, target int) error {
	if err := c.checkQubit(target); err != nil {
		return err
	}
	for _, ctrl := range controls {
		if err := c.checkQubit(ctrl); err != nil {
			return err
		}
		if ctrl == target {
			return fmt.Errorf("qubit %d cannot control itself", target)
		}
	}
	ctrls := make([]int, len(controls))
	copy(ctrls, controls)
	c.gates = append(c.gates, Gate{Kind: GateMCX, Target: target, Controls: ctrls})
	return nil
}

// Measure appends a measurement of the given qubit into the classical slot
// of the same index.
func (c *Circuit) Measure(qubit int) error {
	if err := c.checkQubit(qubit); err != nil {
		return err
	}
	c.gates = append(c.gates, Gate{Kind: GateMeasure, Target: qubit, Slot: qubit})
	return nil
}

// MeasureAll appends a measurement of every qubit into its matching slot.
func (c *Circuit) MeasureAll() error {
	for q := 0; q < c.numQubits; q++ {
		if err := c.Measure(q); err != nil {
			return err
		}
	}
	return nil
}

// String renders the gate stream one mnemonic per line, for logs and test
// failure output.
func (c *Circuit) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "qubits %d\n", c.numQubits)
	for _, g := range c.gates {
		switch g.Kind {
		case GateMCX:
			fmt.Fprintf(&sb, "mcx %v -> q[%d]\n", g.Controls, g.Target)
		case GateMeasure:
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d]\n", g.Target, g.Slot)
		default:
			fmt.Fprintf(&sb, "%s q[%d]\n", g.Kind, g.Target)
		}
	}
	return sb.String()
}

// EncodeTarget returns the numQubits-wide binary encoding of target, MSB
// first. Character i of the result is the value qubit i must hold for the
// register to encode target.
func EncodeTarget(target uint64, numQubits int) (string, error) {
	if numQubits < 1 || numQubits > MaxQubits {
		return "", fmt.Errorf("qubit count %d out of range [1, %d]", numQubits, MaxQubits)
	}
	if target >= 1<<numQubits {
		return "", fmt.Errorf("target %d does not fit in %d bits", target, numQubits)
	}
	return fmt.Sprintf("%0*b", numQubits, target), nil
}

// DecodeOutcome parses a measurement outcome string back into the integer
// it encodes. It is the inverse of EncodeTarget.
func DecodeOutcome(outcome string) (uint64, error) {
	v, err := strconv.ParseUint(outcome, 2, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed outcome %q: %w", outcome, err)
	}
	return v, nil
}

// basisOutcome renders statevector basis index b as an outcome string.
// Qubit q occupies statevector bit (1 << q), while outcome position q is
// character q of the string, so the index bits are read low-to-high into
// string positions left-to-right.
func basisOutcome(b, numQubits int) string {
	buf := make([]byte, numQubits)
	for q := 0; q < numQubits; q++ {
		if b&(1<<q) != 0 {
			buf[q] = '1'
		} else {
			buf[q] = '0'
		}
	}
	return string(buf)
}
