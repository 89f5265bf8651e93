// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePersonalityLevel(t *testing.T) {
	tests := []struct {
		input string
		want  PersonalityLevel
	}{
		{"full", PersonalityFull},
		{"f", PersonalityFull},
		{"FULL", PersonalityFull},
		{"standard", PersonalityStandard},
		{"std", PersonalityStandard},
		{"minimal", PersonalityMinimal},
		{"min", PersonalityMinimal},
		{"machine", PersonalityMachine},
		{"quiet", PersonalityMachine},
		{"", PersonalityStandard},
		{"bogus", PersonalityStandard},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePersonalityLevel(tt.input), "input %q", tt.input)
	}
}

func TestSetPersonalityLevel(t *testing.T) {
	original := GetPersonality().Level
	defer SetPersonalityLevel(original)

	SetPersonalityLevel(PersonalityMachine)
	assert.Equal(t, PersonalityMachine, GetPersonality().Level)
	assert.False(t, ShouldShowProgress())

	SetPersonalityLevel(PersonalityFull)
	assert.Equal(t, PersonalityFull, GetPersonality().Level)
	assert.True(t, ShouldShowProgress())
}

func TestInitPersonalityEnvOverride(t *testing.T) {
	original := GetPersonality().Level
	defer SetPersonalityLevel(original)

	t.Setenv("QSEARCH_PERSONALITY", "minimal")
	InitPersonality()
	assert.Equal(t, PersonalityMinimal, GetPersonality().Level)
}
