// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package quantum

import (
	"fmt"
	"math"
	"math/cmplx"
)

// StateVector is an exact amplitude-level simulation of a qubit register.
//
// The vector holds 2^N complex amplitudes indexed by basis state, where
// qubit q occupies bit (1 << q) of the index. A fresh StateVector starts in
// |0...0⟩. Gate application is exact; no approximation or noise modeling is
// performed anywhere in this package.
type StateVector struct {
	numQubits int
	amps      []complex128
}

// NewStateVector creates a statevector for numQubits qubits initialized to
// the |0...0⟩ basis state.
func NewStateVector(numQubits int) (*StateVector, error) {
	if numQubits < 1 || numQubits > MaxQubits {
		return nil, fmt.Errorf("qubit count %d out of range [1, %d]", numQubits, MaxQubits)
	}
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &StateVector{numQubits: numQubits, amps: amps}, nil
}

// NumQubits returns the register size.
func (s *StateVector) NumQubits() int {
	return s.numQubits
}

// Amplitudes returns a copy of the current amplitude vector.
func (s *StateVector) Amplitudes() []complex128 {
	amps := make([]complex128, len(s.amps))
	copy(amps, s.amps)
	return amps
}

// SetAmplitudes overwrites the amplitude vector. The input must have
// exactly 2^N entries. Used by tests that drive builders against arbitrary
// prepared states; normalization is the caller's concern.
func (s *StateVector) SetAmplitudes(amps []complex128) error {
	if len(amps) != len(s.amps) {
		return fmt.Errorf("amplitude vector has %d entries, want %d", len(amps), len(s.amps))
	}
	copy(s.amps, amps)
	return nil
}

// Clone returns an independent copy of the statevector.
func (s *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(s.amps))
	copy(amps, s.amps)
	return &StateVector{numQubits: s.numQubits, amps: amps}
}

func (s *StateVector) checkQubit(q int) error {
	if q < 0 || q >= s.numQubits {
		return fmt.Errorf("qubit %d out of range [0, %d)", q, s.numQubits)
	}
	return nil
}

// ApplyH applies the Hadamard gate to the given qubit.
func (s *StateVector) ApplyH(qubit int) error {
	if err := s.checkQubit(qubit); err != nil {
		return err
	}
	factor := complex(1/math.Sqrt2, 0)
	bit := 1 << qubit
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.amps[i], s.amps[j]
			s.amps[i] = factor * (a0 + a1)
			s.amps[j] = factor * (a0 - a1)
		}
	}
	return nil
}

// ApplyX applies the Pauli-X (NOT) gate to the given qubit, swapping the
// amplitudes of every |...0...⟩ / |...1...⟩ pair.
func (s *StateVector) ApplyX(qubit int) error {
	if err := s.checkQubit(qubit); err != nil {
		return err
	}
	bit := 1 << qubit
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
	return nil
}

// ApplyMCX applies a multi-controlled NOT: the target bit is flipped in
// every basis state whose control bits all read 1. With an empty control
// list it degenerates to ApplyX.
func (s *StateVector) ApplyMCX(controls []int, target int) error {
	if err := s.checkQubit(target); err != nil {
		return err
	}
	ctrlMask := 0
	for _, ctrl := range controls {
		if err := s.checkQubit(ctrl); err != nil {
			return err
		}
		if ctrl == target {
			return fmt.Errorf("qubit %d cannot control itself", target)
		}
		ctrlMask |= 1 << ctrl
	}
	tBit := 1 << target
	for i := range s.amps {
		if i&ctrlMask == ctrlMask && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
	return nil
}

// ApplyGate dispatches a circuit gate onto the statevector. Measurement
// gates are ignored here; sampling the final distribution is the backend's
// job (see SamplingBackend).
func (s *StateVector) ApplyGate(g Gate) error {
	switch g.Kind {
	case GateH:
		return s.ApplyH(g.Target)
	case GateX:
		return s.ApplyX(g.Target)
	case GateMCX:
		return s.ApplyMCX(g.Controls, g.Target)
	case GateMeasure:
		return nil
	default:
		return fmt.Errorf("unknown gate kind %d", g.Kind)
	}
}

// Probability returns the measurement probability of the given basis state.
func (s *StateVector) Probability(basis int) (float64, error) {
	if basis < 0 || basis >= len(s.amps) {
		return 0, fmt.Errorf("basis state %d out of range [0, %d)", basis, len(s.amps))
	}
	a := s.amps[basis]
	return real(a * cmplx.Conj(a)), nil
}

// Probabilities returns the full measurement distribution over basis
// states. The entries sum to 1 for any normalized state.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.amps))
	for i, a := range s.amps {
		probs[i] = real(a * cmplx.Conj(a))
	}
	return probs
}
