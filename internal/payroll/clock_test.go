package payroll

import (
	"fmt"
	"testing"
)

func TestMinutesFromClock(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"00:00", 0, true},
		{"07:30", 450, true},
		{"23:59", 1439, true},
		{"7:05", 425, true},
		{"", 0, false},
		{"0730", 0, false},
		{"ab:cd", 0, false},
		{"07:xx", 0, false},
		{"07:30:00", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, ok := MinutesFromClock(tt.input)
			if ok != tt.ok {
				t.Fatalf("MinutesFromClock(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && result != tt.expected {
				t.Errorf("MinutesFromClock(%q) = %d, want %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestClockFromCompact(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"0730", "07:30", true},
		{"0000", "00:00", true},
		{"2359", "23:59", true},
		{"2500", "", false}, // hour 25 invalid
		{"0960", "", false}, // minute 60 invalid
		{"099", "", false},  // not 4 digits
		{"07300", "", false},
		{"07a0", "", false},
		{"", "", false},
		{"  ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, ok := ClockFromCompact(tt.input)
			if ok != tt.ok {
				t.Fatalf("ClockFromCompact(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if result != tt.expected {
				t.Errorf("ClockFromCompact(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestScheduleFromCompact(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"0800", 480, true},
		{"0430", 270, true},
		{"2500", 1500, true}, // schedule hours are unbounded
		{"9959", 5999, true},
		{"0860", 0, false}, // minute 60 still invalid
		{"080", 0, false},
		{"", 0, false},
		{"08:00", 480, true}, // non-digits stripped before parsing
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, ok := ScheduleFromCompact(tt.input)
			if ok != tt.ok {
				t.Fatalf("ScheduleFromCompact(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && result != tt.expected {
				t.Errorf("ScheduleFromCompact(%q) = %d, want %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatClockMinutes(t *testing.T) {
	tests := []struct {
		name     string
		input    *int
		expected string
	}{
		{"nil", nil, NoValue},
		{"zero", intPtr(0), "0:00"},
		{"morning", intPtr(450), "7:30"},
		{"eight hours", intPtr(480), "8:00"},
		{"over a day", intPtr(1500), "25:00"}, // cumulative totals exceed 24h
		{"monthly total", intPtr(13200), "220:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatClockMinutes(tt.input)
			if result != tt.expected {
				t.Errorf("FormatClockMinutes = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestFormatBank(t *testing.T) {
	tests := []struct {
		name     string
		input    *int
		expected string
	}{
		{"nil", nil, NoValue},
		{"zero", intPtr(0), "+0:00"},
		{"surplus", intPtr(90), "+1:30"},
		{"deficit", intPtr(-480), "-8:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatBank(tt.input)
			if result != tt.expected {
				t.Errorf("FormatBank = %q, want %q", result, tt.expected)
			}
		})
	}
}

// Formatting below one day round-trips exactly through the HH:MM parser.
// At 1440 minutes and above the hour part overflows a clock and the
// round-trip is out of contract.
func TestClockRoundTrip(t *testing.T) {
	for _, m := range []int{0, 1, 59, 60, 450, 480, 719, 720, 1439} {
		t.Run(fmt.Sprintf("%d", m), func(t *testing.T) {
			v := m
			s := FormatClockMinutes(&v)
			back, ok := MinutesFromClock(s)
			if !ok {
				t.Fatalf("MinutesFromClock(%q) failed", s)
			}
			if back != m {
				t.Errorf("round trip %d -> %q -> %d", m, s, back)
			}
		})
	}
}

func TestCompactFromMinutes(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{480, "0800"},
		{450, "0730"},
		{0, "0000"},
	}

	for _, tt := range tests {
		result := CompactFromMinutes(tt.input)
		if result != tt.expected {
			t.Errorf("CompactFromMinutes(%d) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}
