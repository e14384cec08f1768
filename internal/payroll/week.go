package payroll

import "time"

// DateFormat keys range entry maps: ISO calendar dates.
const DateFormat = "2006-01-02"

// WeekTotals is the aggregate of one Monday-to-Sunday window.
type WeekTotals struct {
	WeekStart time.Time
	WeekEnd   time.Time

	WorkedMin int
	BankMin   int

	Absences      int
	Offs          int
	Incomplete    int
	MedicalLeaves int

	// Pay is accumulated day by day from paid minutes, hourly employees
	// only. The per-day accumulation rounds differently from the monthly
	// single-shot division; the two are intentionally separate.
	Pay float64
}

// WeekStartOf returns the Monday of the week containing t, at the same
// date with the time of day dropped.
func WeekStartOf(t time.Time) time.Time {
	day := t.Weekday()
	diff := int(day) - int(time.Monday)
	if day == time.Sunday {
		diff = 6
	}
	d := t.AddDate(0, 0, -diff)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// CalcWeek folds the seven days starting at weekStart, reading entries from a
// map keyed by ISO date. Days with no entry are treated as empty NORMAL days,
// which classify as incomplete.
//
// Unlike the monthly fold there is no weekly base to recompute a bank
// against, so the weekly bank is the sum of per-day signed banks, absence
// penalties included.
func CalcWeek(emp EmployeeConfig, entries map[string]DayEntry, weekStart time.Time) WeekTotals {
	t := WeekTotals{
		WeekStart: weekStart,
		WeekEnd:   weekStart.AddDate(0, 0, 6),
	}

	for i := 0; i < 7; i++ {
		key := weekStart.AddDate(0, 0, i).Format(DateFormat)
		entry, ok := entries[key]
		if !ok {
			entry = DayEntry{DayType: DayNormal}
		}

		c := CalcDay(entry, emp)
		switch c.Status {
		case StatusOff:
			t.Offs++
			continue
		case StatusAbsent:
			t.Absences++
			if c.BankMin != nil {
				t.BankMin += *c.BankMin
			}
			continue
		case StatusIncomplete:
			t.Incomplete++
			continue
		}
		if entry.DayType == DayMedicalLeave {
			t.MedicalLeaves++
		}
		if c.WorkedMin != nil {
			t.WorkedMin += *c.WorkedMin
		}
		if c.BankMin != nil {
			t.BankMin += *c.BankMin
		}
		if emp.PayType == PayHourly {
			t.Pay += float64(c.PaidMin) / 60 * emp.HourlyRate
		}
	}

	return t
}
