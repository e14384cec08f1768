package payroll

import (
	"math"
	"strings"
	"testing"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "R$ 0,00"},
		{15.5, "R$ 15,50"},
		{2500, "R$ 2.500,00"},
		{1234.56, "R$ 1.234,56"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := FormatBRL(tt.input)
			if result != tt.expected {
				t.Errorf("FormatBRL(%v) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseMoneyBR(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"1.234,56", 1234.56},
		{"2500", 2500},
		{"2500,00", 2500},
		{"R$ 15,50", 15.5},
		{"  1.000.000,99  ", 1000000.99},
		{"", 0},
		{"abc", 0},
		{"12,34,56", 0}, // two decimal separators is not a number
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseMoneyBR(tt.input)
			if result != tt.expected {
				t.Errorf("ParseMoneyBR(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMoneyRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 15.5, 2500.00, 1234.56} {
		s := FormatBRL(v)
		back := ParseMoneyBR(s)
		if math.Abs(back-v) > 1e-9 {
			t.Errorf("ParseMoneyBR(FormatBRL(%v)) = %v via %q", v, back, s)
		}
		if !strings.HasPrefix(s, "R$") {
			t.Errorf("FormatBRL(%v) = %q, missing currency prefix", v, s)
		}
	}
}
