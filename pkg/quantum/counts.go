// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package quantum

import (
	"fmt"
	"sort"
	"strings"
)

// Counts maps each observed measurement outcome (an N-bit string, see the
// package bit convention) to the number of shots that produced it. Outcomes
// that were never observed carry no key.
type Counts map[string]int

// Total returns the sum of all counts. For any backend honoring the
// Backend contract this equals the requested shot count exactly.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Top returns the most frequent outcome and its count. Ties break toward
// the lexicographically smaller outcome so the result is deterministic.
// Returns ("", 0) for empty counts.
func (c Counts) Top() (string, int) {
	best, bestN := "", 0
	for outcome, n := range c {
		if n > bestN || (n == bestN && best != "" && outcome < best) {
			best, bestN = outcome, n
		}
	}
	return best, bestN
}

// Probability returns the observed frequency of outcome as a fraction of
// the total shots. Returns 0 for empty counts.
func (c Counts) Probability(outcome string) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c[outcome]) / float64(total)
}

// Outcomes returns all observed outcomes in ascending bit-string order.
func (c Counts) Outcomes() []string {
	outcomes := make([]string, 0, len(c))
	for outcome := range c {
		outcomes = append(outcomes, outcome)
	}
	sort.Strings(outcomes)
	return outcomes
}

// String renders counts as {"000": 12, "101": 980, ...} with outcomes in
// ascending order, matching what the result line prints.
func (c Counts) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, outcome := range c.Outcomes() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q: %d", outcome, c[outcome])
	}
	sb.WriteByte('}')
	return sb.String()
}
