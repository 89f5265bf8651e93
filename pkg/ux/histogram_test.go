// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/qsearch/pkg/quantum"
)

func TestRenderHistogramEmpty(t *testing.T) {
	assert.Empty(t, RenderHistogram(quantum.Counts{}, "", 40))
	assert.Empty(t, RenderHistogram(nil, "101", 40))
}

func TestRenderHistogramRowsAndOrder(t *testing.T) {
	counts := quantum.Counts{"101": 964, "000": 12, "111": 48}
	out := RenderHistogram(counts, "101", 40)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	// Rows come out in ascending bit-string order.
	assert.Contains(t, lines[0], "000")
	assert.Contains(t, lines[1], "101")
	assert.Contains(t, lines[2], "111")

	// Each row carries its count and percentage.
	assert.Contains(t, lines[0], "12 (1.2%)")
	assert.Contains(t, lines[1], "964 (94.1%)")
	assert.Contains(t, lines[2], "48 (4.7%)")
}

func TestRenderHistogramBarLengths(t *testing.T) {
	counts := quantum.Counts{"0": 100, "1": 50}
	out := RenderHistogram(counts, "", 40)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, 40, strings.Count(lines[0], "█"))
	assert.Equal(t, 20, strings.Count(lines[1], "█"))
}

func TestRenderHistogramMinimumBar(t *testing.T) {
	// A tiny nonzero count still draws a single-cell bar so the row is
	// visibly distinct from an unobserved outcome.
	counts := quantum.Counts{"0": 1000, "1": 1}
	out := RenderHistogram(counts, "", 40)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 1, strings.Count(lines[1], "█"))
}

func TestRenderHistogramDefaultWidth(t *testing.T) {
	counts := quantum.Counts{"0": 10}
	out := RenderHistogram(counts, "", 0)
	assert.Equal(t, defaultHistogramWidth, strings.Count(out, "█"))
}
