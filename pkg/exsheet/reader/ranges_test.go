package reader

import (
	"errors"
	"testing"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected Range
		str      string
	}{
		{"A1:E1", Range{C1: 1, R1: 1, C2: 5, R2: 1}, "A1:E1"},
		{"$A$1:$D$10", Range{C1: 1, R1: 1, C2: 4, R2: 10}, "A1:D10"},
		{"'Sheet 1'!B2:C3", Range{C1: 2, R1: 2, C2: 3, R2: 3}, "B2:C3"},
		{"E3:A1", Range{C1: 1, R1: 1, C2: 5, R2: 3}, "A1:E3"},
		{"C4", Range{C1: 3, R1: 4, C2: 3, R2: 4}, "C4:C4"},
		{" AA1:AB2 ", Range{C1: 27, R1: 1, C2: 28, R2: 2}, "AA1:AB2"},
	}

	for _, tt := range tests {
		result, err := ParseRange(tt.input)
		if err != nil {
			t.Errorf("ParseRange(%q) failed: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseRange(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
		if result.String() != tt.str {
			t.Errorf("ParseRange(%q).String() = %q, expected %q", tt.input, result.String(), tt.str)
		}
	}
}

func TestParseRangeInvalid(t *testing.T) {
	for _, input := range []string{"", "A1:B2:C3", "1A:B2", "A1:?"} {
		if _, err := ParseRange(input); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("ParseRange(%q) error = %v, expected ErrInvalidRange", input, err)
		}
	}
}
