// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"fmt"
	"strings"

	"github.com/AleutianAI/qsearch/pkg/quantum"
)

// defaultHistogramWidth is the bar length of the most frequent outcome.
const defaultHistogramWidth = 40

// RenderHistogram renders measurement counts as a horizontal bar chart,
// one row per observed outcome in ascending bit-string order. The outcome
// named by highlight (normally the search target's encoding) gets the
// bright bar style. A non-positive width falls back to the default.
//
// Example output:
//
//	000 ▏█ 12 (1.2%)
//	101 ▏████████████████████████████████████████ 964 (94.1%)
func RenderHistogram(counts quantum.Counts, highlight string, width int) string {
	if len(counts) == 0 {
		return ""
	}
	if width <= 0 {
		width = defaultHistogramWidth
	}

	_, maxCount := counts.Top()
	total := counts.Total()

	var sb strings.Builder
	for _, outcome := range counts.Outcomes() {
		n := counts[outcome]
		barLen := 0
		if maxCount > 0 {
			barLen = n * width / maxCount
		}
		if barLen == 0 && n > 0 {
			barLen = 1
		}
		bar := strings.Repeat("█", barLen)

		style := Styles.Bar
		label := Styles.Muted.Render(outcome)
		if outcome == highlight {
			style = Styles.BarHighlight
			label = Styles.Highlight.Render(outcome)
		}

		pct := 100 * float64(n) / float64(total)
		fmt.Fprintf(&sb, "%s %s%s %d (%.1f%%)\n",
			label, Styles.Muted.Render("▏"), style.Render(bar), n, pct)
	}
	return sb.String()
}

// PrintHistogram writes the histogram to stdout, respecting personality.
// Machine mode emits one "COUNT: outcome n" line per observed outcome
// instead of drawing bars.
func PrintHistogram(counts quantum.Counts, highlight string) {
	if GetPersonality().Level == PersonalityMachine {
		for _, outcome := range counts.Outcomes() {
			fmt.Printf("COUNT: %s %d\n", outcome, counts[outcome])
		}
		return
	}
	fmt.Print(RenderHistogram(counts, highlight, defaultHistogramWidth))
}
