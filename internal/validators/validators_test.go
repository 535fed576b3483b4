package validators

import (
	"math"
	"testing"
)

func TestNonZero(t *testing.T) {
	zero := 0.0
	nan := math.NaN()
	value := 5.5

	testCases := []struct {
		Name     string
		Value    *float64
		Expected bool
	}{
		{Name: "Nil is absent #1", Value: nil, Expected: false},
		{Name: "Zero is absent #2", Value: &zero, Expected: false},
		{Name: "NaN is absent #3", Value: &nan, Expected: false},
		{Name: "Non-zero is present #4", Value: &value, Expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if NonZero(tc.Value) != tc.Expected {
				t.Errorf("Expected %v for %v", tc.Expected, tc.Value)
			}
		})
	}
}

func TestParseLeadingNumber(t *testing.T) {
	testCases := []struct {
		Name     string
		Input    string
		Expected float64
		IsNaN    bool
	}{
		{Name: "Plain number #1", Input: "3.50", Expected: 3.5},
		{Name: "Number with trailing text #2", Input: "3.50 Packaging fee", Expected: 3.5},
		{Name: "Negative prefix #3", Input: "-2.5x", Expected: -2.5},
		{Name: "Exponent #4", Input: "12e2", Expected: 1200},
		{Name: "Dangling exponent dropped #5", Input: "12e", Expected: 12},
		{Name: "Leading whitespace #6", Input: "  7 days", Expected: 7},
		{Name: "Zero #7", Input: "0", Expected: 0},
		{Name: "No numeric prefix #8", Input: "Packaging fee", IsNaN: true},
		{Name: "Empty string #9", Input: "", IsNaN: true},
		{Name: "Lone minus #10", Input: "-", IsNaN: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			value := ParseLeadingNumber(tc.Input)
			if tc.IsNaN {
				if !math.IsNaN(value) {
					t.Errorf("Expected NaN, got: %v", value)
				}
				return
			}
			if value != tc.Expected {
				t.Errorf("Expected %v, got: %v", tc.Expected, value)
			}
		})
	}
}

func TestNumericLabel(t *testing.T) {
	testCases := []struct {
		Name     string
		Label    string
		Expected bool
	}{
		{Name: "Numeric label #1", Label: "3.50 Packaging fee", Expected: true},
		{Name: "Zero label #2", Label: "0 Packaging fee", Expected: false},
		{Name: "Plain text label #3", Label: "Packaging fee", Expected: false},
		{Name: "Empty label #4", Label: "", Expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if NumericLabel(tc.Label) != tc.Expected {
				t.Errorf("Expected %v for %q", tc.Expected, tc.Label)
			}
		})
	}
}
