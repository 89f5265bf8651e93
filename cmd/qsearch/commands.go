// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/qsearch/cmd/qsearch/config"
	"github.com/AleutianAI/qsearch/pkg/logging"
	"github.com/AleutianAI/qsearch/pkg/ux"
)

// --- Global Command Variables ---
var (
	searchShots      int    // Number of simulated measurement trials
	searchQubits     int    // Register size N (search space is 2^N)
	searchSeed       int64  // Fixed RNG seed for reproducible runs
	searchJSONOutput bool   // Output the result as JSON
	personalityLevel string // UX personality level (full/standard/minimal/machine)

	// appLogger is configured in the root PersistentPreRun and shared by
	// all commands.
	appLogger *logging.Logger

	rootCmd = &cobra.Command{
		Use:   "qsearch",
		Short: "A cli demonstrating Grover's quantum search on a simulated register",
		Long: `qsearch builds the textbook Grover search circuit for a target
integer, simulates it exactly on a statevector backend, and reports
how often each measurement outcome was observed.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize UX personality from flag or environment
			if personalityLevel != "" {
				ux.SetPersonalityLevel(ux.ParsePersonalityLevel(personalityLevel))
			} else {
				ux.InitPersonality()
			}

			if err := config.Load(); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
				os.Exit(1)
			}

			appLogger = logging.New(logging.Config{
				Level:   parseLogLevel(config.Global.Logging.Level),
				LogDir:  config.Global.Logging.Dir,
				Service: "cli",
			})
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appLogger != nil {
				_ = appLogger.Close()
			}
		},
	}

	searchCmd = &cobra.Command{
		Use:   "search [number]",
		Short: "Run one Grover search for the given number",
		Long: `Runs one complete Grover search: the target state is phase-marked by
the oracle, amplified by floor(sqrt(2^N)) diffuser iterations, and the
final register is measured for the configured number of shots.

With no argument the target is read from an interactive prompt.

Examples:
  qsearch search 5             # Search for 5 in the default 3-qubit space
  qsearch search               # Prompt for the target interactively
  qsearch search 5 --json      # Machine-readable result
  qsearch search 5 --seed 42   # Reproducible sampling`,
		Args: cobra.MaximumNArgs(1),
		Run:  runSearchCommand, // Defined in cmd_search.go
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the qsearch version",
		Run:   runVersionCommand, // Defined in cmd_version.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&personalityLevel, "personality", "",
		"Output personality: full, standard, minimal, or machine")

	searchCmd.Flags().IntVar(&searchShots, "shots", 0,
		"Number of simulated trials (default from config, normally 1024)")
	searchCmd.Flags().IntVar(&searchQubits, "qubits", 0,
		"Register size in qubits (default from config, normally 3)")
	searchCmd.Flags().Int64Var(&searchSeed, "seed", 0,
		"Fixed RNG seed for reproducible sampling")
	searchCmd.Flags().BoolVar(&searchJSONOutput, "json", false,
		"Output the result as JSON for scripting")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(versionCmd)
}

// parseLogLevel maps a config level string onto a logging.Level,
// defaulting to Info for anything unrecognized.
func parseLogLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}
