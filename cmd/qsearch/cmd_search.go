// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/qsearch/cmd/qsearch/config"
	"github.com/AleutianAI/qsearch/pkg/grover"
	"github.com/AleutianAI/qsearch/pkg/quantum"
	"github.com/AleutianAI/qsearch/pkg/ux"
	"github.com/AleutianAI/qsearch/pkg/validation"
)

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

// runSearchCommand executes one Grover search and displays the result.
//
// The target comes from the positional argument when given, otherwise from
// an interactive prompt. Search parameters resolve flag-over-config. Any
// failure (malformed input, out-of-range target, backend error) prints a
// clear message and exits with code 1; there is no retry.
func runSearchCommand(cmd *cobra.Command, args []string) {
	params := resolveSearchParams(cmd)

	target, err := resolveTarget(cmd, args, params.qubits, os.Stdin)
	if err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}

	backend := newBackend(params)
	searcher, err := grover.NewSearcher(backend, appLogger)
	if err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}

	var result *grover.Result
	spin := ux.NewSpinner(fmt.Sprintf("Simulating %d shots over %d qubits...", params.shots, params.qubits))
	if !searchJSONOutput && ux.ShouldShowProgress() {
		spin.Start()
	}
	result, err = searcher.Run(context.Background(), target, params.qubits, params.shots)
	spin.Stop()
	if err != nil {
		ux.Error(fmt.Sprintf("Search failed: %v", err))
		os.Exit(1)
	}

	if searchJSONOutput {
		printJSONResult(result)
		return
	}
	printResult(result)
}

// searchParams are the resolved knobs for one search run.
type searchParams struct {
	qubits int
	shots  int
	seed   *int64
}

// resolveSearchParams merges CLI flags over the loaded config file.
// A flag only wins when it was set explicitly on the command line.
func resolveSearchParams(cmd *cobra.Command) searchParams {
	params := searchParams{
		qubits: config.Global.Search.Qubits,
		shots:  config.Global.Search.Shots,
		seed:   config.Global.Search.Seed,
	}
	if cmd.Flags().Changed("qubits") {
		params.qubits = searchQubits
	}
	if cmd.Flags().Changed("shots") {
		params.shots = searchShots
	}
	if cmd.Flags().Changed("seed") {
		seed := searchSeed
		params.seed = &seed
	}
	return params
}

// newBackend picks the sampling backend, seeded when reproducibility was
// requested.
func newBackend(params searchParams) quantum.Backend {
	if params.seed != nil {
		return quantum.NewSeededSamplingBackend(*params.seed)
	}
	return quantum.NewSamplingBackend()
}

// resolveTarget returns the search target from the positional argument or,
// when absent, from an interactive prompt on in. Input is validated once
// here; nothing downstream re-checks the range.
func resolveTarget(cmd *cobra.Command, args []string, qubits int, in io.Reader) (uint64, error) {
	if len(args) > 0 {
		return validation.ParseTarget(args[0], qubits)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Enter a number to search for (between 0 and %d): ", validation.MaxValue(qubits))
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}
	return validation.ParseTarget(line, qubits)
}

// printResult renders the human-facing result: the classic one-line
// summary, the outcome histogram, and a verdict comparing the most
// frequent outcome against the target's encoding.
func printResult(result *grover.Result) {
	fmt.Printf("Result of Grover's search for %d: %s\n", result.Target, result.Counts)

	ux.PrintHistogram(result.Counts, result.Expected)

	top, topCount := result.Counts.Top()
	if top == result.Expected {
		ux.Success(fmt.Sprintf("Outcome %s matches target %d (%d of %d shots, %d iterations, %s)",
			top, result.Target, topCount, result.Shots, result.Iterations, result.Elapsed.Round(time.Millisecond)))
	} else {
		ux.Warning(fmt.Sprintf("Most frequent outcome %s does not match target encoding %s",
			top, result.Expected))
	}
}

// printJSONResult writes the result as indented JSON to stdout.
func printJSONResult(result *grover.Result) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		ux.Error(fmt.Sprintf("Failed to encode result: %v", err))
		os.Exit(1)
	}
	fmt.Println(string(data))
}
