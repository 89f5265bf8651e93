// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/qsearch/pkg/ux"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func runVersionCommand(cmd *cobra.Command, args []string) {
	if ux.GetPersonality().Level == ux.PersonalityMachine {
		fmt.Printf("VERSION: %s\n", version)
		return
	}
	fmt.Printf("qsearch %s (%s %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
