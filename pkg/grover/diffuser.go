// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package grover

import (
	"fmt"

	"github.com/AleutianAI/qsearch/pkg/quantum"
)

// Diffuser appends gates to c implementing inversion about the mean over
// the full register: every amplitude a becomes 2·mean − a, up to an
// unobservable global phase. Combined with the oracle's phase flip,
// repeated application concentrates probability mass on the marked state.
//
// Construction: Hadamard on every qubit moves into the uniform-superposition
// basis, X on every qubit maps the all-zeros state (the dominant component
// of the mean) onto all-ones, the same N-ary controlled phase flip used by
// the oracle negates exactly that state, and both layers are undone.
//
// The transform is self-inverse: appending it twice with no intervening
// oracle restores the original amplitude vector.
func Diffuser(c *quantum.Circuit, qubits []int) error {
	if len(qubits) == 0 {
		return fmt.Errorf("diffuser needs a non-empty register")
	}

	if err := applyToAll(c.H, qubits); err != nil {
		return err
	}
	if err := applyToAll(c.X, qubits); err != nil {
		return err
	}
	if err := phaseFlipAllOnes(c, qubits); err != nil {
		return err
	}
	if err := applyToAll(c.X, qubits); err != nil {
		return err
	}
	return applyToAll(c.H, qubits)
}

func applyToAll(gate func(int) error, qubits []int) error {
	for _, q := range qubits {
		if err := gate(q); err != nil {
			return err
		}
	}
	return nil
}
