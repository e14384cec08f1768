package payroll

import (
	"math"
	"testing"
	"time"
)

func TestWeekStartOf(t *testing.T) {
	monday := time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC) // Monday Jan 1, 2024

	tests := []struct {
		name  string
		input time.Time
	}{
		{"Monday", monday},
		{"Wednesday", monday.AddDate(0, 0, 2)},
		{"Saturday", monday.AddDate(0, 0, 5)},
		{"Sunday", monday.AddDate(0, 0, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WeekStartOf(tt.input)
			if result.Weekday() != time.Monday {
				t.Errorf("WeekStartOf(%v) weekday = %v, want Monday", tt.input, result.Weekday())
			}
			if result.Format(DateFormat) != "2024-01-01" {
				t.Errorf("WeekStartOf(%v) = %v, want 2024-01-01", tt.input, result)
			}
			if result.Hour() != 0 || result.Minute() != 0 {
				t.Errorf("WeekStartOf should drop the time of day, got %v", result)
			}
		})
	}
}

func weekEntries(weekStart time.Time, byOffset map[int]DayEntry) map[string]DayEntry {
	m := make(map[string]DayEntry, len(byOffset))
	for off, e := range byOffset {
		m[weekStart.AddDate(0, 0, off).Format(DateFormat)] = e
	}
	return m
}

func TestCalcWeek(t *testing.T) {
	weekStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := weekEntries(weekStart, map[int]DayEntry{
		0: fullDay(480),
		1: fullDay(540),
		2: {DayType: DayOff},
		3: {DayType: DayAbsent},
		4: {DayType: DayMedicalLeave},
		// offsets 5 and 6 missing: synthesized as empty normal days
	})

	totals := CalcWeek(salaried(), entries, weekStart)

	if totals.WorkedMin != 480+540+480 {
		t.Errorf("WorkedMin = %d, want 1500", totals.WorkedMin)
	}
	// Banks: 0 + 60 + (absence -480) + 0 = -420.
	if totals.BankMin != -420 {
		t.Errorf("BankMin = %d, want -420", totals.BankMin)
	}
	if totals.Offs != 1 || totals.Absences != 1 || totals.MedicalLeaves != 1 {
		t.Errorf("counts = offs %d, absences %d, medical %d; want 1 each",
			totals.Offs, totals.Absences, totals.MedicalLeaves)
	}
	if totals.Incomplete != 2 {
		t.Errorf("Incomplete = %d, want 2 for the missing days", totals.Incomplete)
	}
	if totals.WeekEnd.Format(DateFormat) != "2024-01-07" {
		t.Errorf("WeekEnd = %v, want 2024-01-07", totals.WeekEnd)
	}
	if totals.Pay != 0 {
		t.Errorf("salaried week Pay = %v, want 0", totals.Pay)
	}
}

func TestCalcWeekHourlyPay(t *testing.T) {
	weekStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := weekEntries(weekStart, map[int]DayEntry{
		0: fullDay(480),
		1: fullDay(450),
		2: {DayType: DayMedicalLeave}, // credited schedule is paid
	})

	totals := CalcWeek(hourly(20), entries, weekStart)

	// Accumulated day by day: 480/60*20 + 450/60*20 + 480/60*20.
	want := 160.0 + 150.0 + 160.0
	if math.Abs(totals.Pay-want) > 1e-9 {
		t.Errorf("Pay = %v, want %v", totals.Pay, want)
	}
	// Hourly banks never go negative, so the short Tuesday contributes 0.
	if totals.BankMin != 0 {
		t.Errorf("BankMin = %d, want 0", totals.BankMin)
	}
}

func TestCalcWeekHourlyAbsenceNoPenalty(t *testing.T) {
	weekStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := weekEntries(weekStart, map[int]DayEntry{
		0: {DayType: DayAbsent},
	})

	totals := CalcWeek(hourly(20), entries, weekStart)
	if totals.BankMin != 0 {
		t.Errorf("hourly absence BankMin = %d, want 0", totals.BankMin)
	}

	totals = CalcWeek(salaried(), entries, weekStart)
	if totals.BankMin != -480 {
		t.Errorf("salaried absence BankMin = %d, want -480", totals.BankMin)
	}
}
