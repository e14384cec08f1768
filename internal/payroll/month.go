package payroll

// MonthTotals is the aggregate of a month of day entries for one employee.
type MonthTotals struct {
	WorkedMin   int
	BaseMin     int
	OvertimeMin int
	BankMin     int // floored at 0 for hourly employees

	Absences      int
	Offs          int
	Incomplete    int
	MedicalLeaves int

	Pay             float64
	PayFromHours    float64
	PayFromOvertime float64
}

// CalcMonth folds a month of entries, keyed by day of month, into totals and
// a pay estimate. Only entries actually present are folded; missing days are
// not synthesized.
//
// The monthly bank is recomputed from the monthly total against the monthly
// base, not summed from per-day banks. An absence therefore shows up as
// missing worked minutes rather than a second explicit deduction.
func CalcMonth(emp EmployeeConfig, entries map[int]DayEntry) MonthTotals {
	base := emp.MonthlyBaseMin
	if base <= 0 {
		base = DefaultMonthlyBaseMin
	}

	t := MonthTotals{BaseMin: base}

	for _, entry := range entries {
		c := CalcDay(entry, emp)
		switch c.Status {
		case StatusOff:
			t.Offs++
			continue
		case StatusAbsent:
			t.Absences++
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
	}

	bank := t.WorkedMin - base
	if emp.PayType == PayHourly {
		bank = max(bank, 0)
	}
	t.BankMin = bank
	t.OvertimeMin = max(t.WorkedMin-base, 0)

	t.PayFromHours = float64(t.WorkedMin) / 60 * emp.HourlyRate
	t.PayFromOvertime = float64(t.OvertimeMin) / 60 * emp.HourlyRate

	if emp.PayType == PayHourly {
		// Overtime minutes are a subset of worked minutes, so they are
		// already inside PayFromHours.
		t.Pay = t.PayFromHours
	} else {
		t.Pay = emp.MonthlySalary + t.PayFromOvertime
	}

	return t
}
