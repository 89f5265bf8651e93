// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package quantum

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Backend executes a finished circuit for a number of independent trials
// (shots) and reports how often each measurement outcome was observed.
//
// The contract, for any implementation:
//
//   - Run is a single blocking call returning a complete result set; no
//     streaming, no partial results.
//   - The returned Counts sum exactly to shots.
//   - The circuit is read, never mutated, and the caller must not mutate
//     it while Run is in flight.
//
// Anything satisfying this contract is substitutable, which keeps callers
// testable against a deterministic simulator.
type Backend interface {
	Run(ctx context.Context, c *Circuit, shots int) (Counts, error)
}

// SamplingBackend executes circuits by exact statevector simulation and
// then samples the final measured distribution once per shot.
//
// Measurement gates must terminate the circuit; this backend supports
// terminal measurement only, which is all the search driver emits.
type SamplingBackend struct {
	rng *rand.Rand
}

// NewSamplingBackend creates a backend seeded from the wall clock.
func NewSamplingBackend() *SamplingBackend {
	return &SamplingBackend{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededSamplingBackend creates a backend with a fixed seed, for
// reproducible runs and tests.
func NewSeededSamplingBackend(seed int64) *SamplingBackend {
	return &SamplingBackend{rng: rand.New(rand.NewSource(seed))}
}

// Run simulates the circuit exactly and samples shots outcomes from the
// final distribution. The returned Counts always sum to shots.
//
// Mid-circuit gates appearing after a measurement are rejected rather than
// silently mis-simulated.
func (b *SamplingBackend) Run(ctx context.Context, c *Circuit, shots int) (Counts, error) {
	if c == nil {
		return nil, fmt.Errorf("nil circuit")
	}
	if shots < 1 {
		return nil, fmt.Errorf("shot count must be positive, got %d", shots)
	}

	state, err := NewStateVector(c.NumQubits())
	if err != nil {
		return nil, err
	}

	measured := make([]bool, c.NumQubits())
	seenMeasure := false
	for _, g := range c.Gates() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if g.Kind == GateMeasure {
			seenMeasure = true
			measured[g.Target] = true
			continue
		}
		if seenMeasure {
			return nil, fmt.Errorf("gate %s after measurement: only terminal measurement is supported", g.Kind)
		}
		if err := state.ApplyGate(g); err != nil {
			return nil, err
		}
	}
	for q, ok := range measured {
		if !ok {
			return nil, fmt.Errorf("qubit %d is never measured", q)
		}
	}

	counts := make(Counts)
	probs := state.Probabilities()
	for i := 0; i < shots; i++ {
		basis := b.sample(probs)
		counts[basisOutcome(basis, c.NumQubits())]++
	}
	return counts, nil
}

// sample draws one basis state from the distribution. Floating point
// round-off can leave the cumulative sum fractionally short of 1, so the
// final state absorbs any remainder; every shot lands somewhere and the
// shot total stays exact.
func (b *SamplingBackend) sample(probs []float64) int {
	r := b.rng.Float64()
	cumulative := 0.0
	for i, p := range probs {
		cumulative += p
		if r < cumulative {
			return i
		}
	}
	return len(probs) - 1
}
