// Package report renders the printable monthly timesheet: a header with
// company, store and period, the employee's pay block, month totals, one row
// per calendar day, and signature lines.
package report

import (
	"strings"

	"github.com/pontopro/internal/payroll"
	"github.com/pontopro/internal/timesheet"
)

// Row is one rendered day line of the sheet.
type Row struct {
	Day        string
	Type       string
	ClockIn    string
	BreakStart string
	BreakEnd   string
	ClockOut   string
	Schedule   string
	Worked     string
	Bank       string
	Notes      string
}

var columns = []string{"Dia", "Tipo", "Entrada", "Int Ini", "Int Fim", "Saída", "Jornada", "Trab", "Banco", "Obs"}

// BuildRows renders all 31 day cells of a month view into display rows.
func BuildRows(view *timesheet.MonthView) []Row {
	rows := make([]Row, 0, len(view.Days))
	for _, cell := range view.Days {
		sched := payroll.EffectiveSchedule(cell.Entry, view.Employee.Config())
		r := Row{
			Day:        cell.Date[len(cell.Date)-2:],
			Type:       cell.Entry.DayType.Label(),
			ClockIn:    clockCell(cell.Row.ClockIn),
			ClockOut:   clockCell(cell.Row.ClockOut),
			Schedule:   payroll.FormatClockMinutes(&sched),
			Worked:     payroll.FormatClockMinutes(cell.Result.WorkedMin),
			Bank:       payroll.FormatBank(cell.Result.BankMin),
			Notes:      cell.Row.Notes,
			BreakStart: clockCell(cell.Row.BreakStart),
			BreakEnd:   clockCell(cell.Row.BreakEnd),
		}
		if cell.Entry.SkipBreak {
			r.BreakStart = payroll.NoValue
			r.BreakEnd = payroll.NoValue
		}
		rows = append(rows, r)
	}
	return rows
}

// clockCell shows the parsed HH:MM for a stored compact time, or blank when
// nothing valid was typed.
func clockCell(compact string) string {
	hhmm, ok := payroll.ClockFromCompact(strings.ReplaceAll(compact, ":", ""))
	if !ok {
		return ""
	}
	return hhmm
}

// payTypeLabel is the pay description printed on the sheet.
func payTypeLabel(e payroll.EmployeeConfig) string {
	if e.PayType == payroll.PayHourly {
		return "Por hora"
	}
	return "Salário fixo"
}
