package validation

import (
	"testing"
)

func TestMaxValue(t *testing.T) {
	tests := []struct {
		numQubits int
		want      uint64
	}{
		{1, 1},
		{3, 7},
		{10, 1023},
		{20, 1048575},
	}

	for _, tt := range tests {
		if got := MaxValue(tt.numQubits); got != tt.want {
			t.Errorf("MaxValue(%d) = %d, want %d", tt.numQubits, got, tt.want)
		}
	}
}

func TestValidateTarget(t *testing.T) {
	tests := []struct {
		name      string
		target    uint64
		numQubits int
		wantErr   bool
	}{
		// Valid targets
		{"zero", 0, 3, false},
		{"middle", 5, 3, false},
		{"max value", 7, 3, false},
		{"single qubit", 1, 1, false},
		{"wide register", 1000, 10, false},

		// Invalid targets
		{"one past max", 8, 3, true},
		{"far past max", 100, 3, true},
		{"zero qubits", 0, 0, true},
		{"negative qubits", 0, -1, true},
		{"register too wide", 0, 64, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTarget(tt.target, tt.numQubits)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTarget(%d, %d) error = %v, wantErr %v", tt.target, tt.numQubits, err, tt.wantErr)
			}
		})
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    uint64
		wantErr bool
	}{
		// Valid input
		{"plain", "5", 5, false},
		{"zero", "0", 0, false},
		{"max", "7", 7, false},
		{"leading whitespace", "  5", 5, false},
		{"trailing newline", "5\n", 5, false},
		{"windows newline", "3\r\n", 3, false},

		// Invalid input
		{"empty", "", 0, true},
		{"whitespace only", "   \n", 0, true},
		{"not a number", "five", 0, true},
		{"decimal", "5.0", 0, true},
		{"negative", "-1", 0, true},
		{"hex", "0x5", 0, true},
		{"out of range", "8", 0, true},
		{"injection attempt", "5; rm -rf /", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTarget(tt.raw, 3)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTarget(%q, 3) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTarget(%q, 3) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}
