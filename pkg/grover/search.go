// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package grover

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/AleutianAI/qsearch/pkg/logging"
	"github.com/AleutianAI/qsearch/pkg/quantum"
)

// ErrTargetOutOfRange reports a search target that does not fit the
// register. The range is validated once here, at the driver boundary;
// the builders downstream never re-check it.
var ErrTargetOutOfRange = errors.New("target value out of range")

// Result is the outcome of one completed search.
type Result struct {
	// RunID uniquely identifies this search run in logs and output.
	RunID string `json:"run_id"`

	// Target is the integer that was searched for.
	Target uint64 `json:"target"`

	// Expected is the outcome string encoding Target; a successful run
	// concentrates most shots on it.
	Expected string `json:"expected"`

	// Qubits is the register size N; the search space is 2^N states.
	Qubits int `json:"qubits"`

	// Iterations is the number of (oracle, diffuser) pairs applied,
	// floor(sqrt(2^N)).
	Iterations int `json:"iterations"`

	// Shots is the number of simulated measurement trials requested.
	Shots int `json:"shots"`

	// Counts maps each observed outcome to its frequency. Sums to Shots.
	Counts quantum.Counts `json:"counts"`

	// Elapsed is the wall time of the backend call.
	Elapsed time.Duration `json:"elapsed_ns"`
}

// Searcher composes the oracle and diffuser builders into full search runs
// against an injected simulation backend.
type Searcher struct {
	backend quantum.Backend
	logger  *logging.Logger
}

// NewSearcher creates a search driver over the given backend. A nil logger
// falls back to the package default.
func NewSearcher(backend quantum.Backend, logger *logging.Logger) (*Searcher, error) {
	if backend == nil {
		return nil, fmt.Errorf("searcher needs a backend")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Searcher{backend: backend, logger: logger}, nil
}

// Iterations returns the number of (oracle, diffuser) pairs applied for a
// register of numQubits qubits: floor(sqrt(2^N)).
//
// The count truncates rather than rounds. For small registers it agrees
// with the usual round(pi/4 * sqrt(2^N)) iteration count.
func Iterations(numQubits int) int {
	return int(math.Sqrt(float64(uint64(1) << numQubits)))
}

// BuildCircuit constructs the complete search circuit for target on a
// numQubits register: uniform superposition, Iterations(numQubits) pairs of
// (oracle, diffuser) each built fresh against the same target and register,
// and a terminal measurement of every qubit.
func BuildCircuit(target uint64, numQubits int) (*quantum.Circuit, error) {
	if numQubits >= 1 && numQubits <= quantum.MaxQubits && target >= uint64(1)<<numQubits {
		return nil, fmt.Errorf("%w: %d does not fit in %d qubits (max %d)",
			ErrTargetOutOfRange, target, numQubits, (uint64(1)<<numQubits)-1)
	}
	c, err := quantum.NewCircuit(numQubits)
	if err != nil {
		return nil, err
	}

	qubits := c.Qubits()
	if err := applyToAll(c.H, qubits); err != nil {
		return nil, err
	}
	iters := Iterations(numQubits)
	for it := 0; it < iters; it++ {
		if err := Oracle(c, qubits, target); err != nil {
			return nil, err
		}
		if err := Diffuser(c, qubits); err != nil {
			return nil, err
		}
	}
	if err := c.MeasureAll(); err != nil {
		return nil, err
	}
	return c, nil
}

// Run executes one complete search: build the circuit, submit it to the
// backend for shots trials, and aggregate the reported counts.
//
// The backend call is a single blocking submission; a backend failure
// propagates directly with no retry.
func (s *Searcher) Run(ctx context.Context, target uint64, numQubits, shots int) (*Result, error) {
	if shots < 1 {
		return nil, fmt.Errorf("shot count must be positive, got %d", shots)
	}

	circuit, err := BuildCircuit(target, numQubits)
	if err != nil {
		return nil, err
	}
	expected, err := quantum.EncodeTarget(target, numQubits)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	iterations := Iterations(numQubits)
	s.logger.Debug("submitting search circuit",
		"run_id", runID,
		"target", target,
		"qubits", numQubits,
		"iterations", iterations,
		"gates", circuit.Len(),
		"shots", shots)

	start := time.Now()
	counts, err := s.backend.Run(ctx, circuit, shots)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("backend run failed: %w", err)
	}
	if total := counts.Total(); total != shots {
		return nil, fmt.Errorf("backend reported %d outcomes for %d shots", total, shots)
	}

	top, topCount := counts.Top()
	s.logger.Info("search complete",
		"run_id", runID,
		"target", target,
		"expected", expected,
		"top_outcome", top,
		"top_count", topCount,
		"elapsed", elapsed)

	return &Result{
		RunID:      runID,
		Target:     target,
		Expected:   expected,
		Qubits:     numQubits,
		Iterations: iterations,
		Shots:      shots,
		Counts:     counts,
		Elapsed:    elapsed,
	}, nil
}
