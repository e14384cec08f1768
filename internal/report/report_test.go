package report

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/pontopro/internal/storage"
	"github.com/pontopro/internal/timesheet"
)

func testMonthView(t *testing.T) *timesheet.MonthView {
	t.Helper()
	db, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	emp := &storage.Employee{
		Name:             "João Pereira",
		Role:             "Açougueiro",
		StoreID:          "LOJA1_TAMBAU",
		PayType:          "SALARY",
		MonthlySalary:    3000,
		HourlyRate:       20,
		DailyScheduleMin: 480,
		MonthlyBaseMin:   13200,
	}
	if err := db.CreateEmployee(emp); err != nil {
		t.Fatalf("creating employee: %v", err)
	}

	svc := timesheet.New(db)
	rows := []storage.DayRow{
		{EmployeeID: emp.ID, Date: "2024-03-01", DayType: "NORMAL", ClockIn: "0700", BreakStart: "1100", BreakEnd: "1300", ClockOut: "1900", Notes: "estoque"},
		{EmployeeID: emp.ID, Date: "2024-03-02", DayType: "OFF"},
		{EmployeeID: emp.ID, Date: "2024-03-03", DayType: "NORMAL", ClockIn: "0700", ClockOut: "1500", SkipBreak: true},
	}
	for _, row := range rows {
		if err := svc.SaveEntry(row); err != nil {
			t.Fatalf("saving entry: %v", err)
		}
	}

	view, err := svc.MonthView(emp, "2024-03")
	if err != nil {
		t.Fatalf("MonthView: %v", err)
	}
	return view
}

func TestBuildRows(t *testing.T) {
	rows := BuildRows(testMonthView(t))

	if len(rows) != 31 {
		t.Fatalf("rows = %d, want 31", len(rows))
	}

	day1 := rows[0]
	if day1.ClockIn != "07:00" || day1.ClockOut != "19:00" {
		t.Errorf("day 1 clocks = %q/%q, want 07:00/19:00", day1.ClockIn, day1.ClockOut)
	}
	if day1.Worked != "10:00" {
		t.Errorf("day 1 worked = %q, want 10:00", day1.Worked)
	}
	if day1.Bank != "+2:00" {
		t.Errorf("day 1 bank = %q, want +2:00", day1.Bank)
	}
	if day1.Notes != "estoque" {
		t.Errorf("day 1 notes = %q", day1.Notes)
	}

	day2 := rows[1]
	if day2.Type != "Folga" {
		t.Errorf("day 2 type = %q, want Folga", day2.Type)
	}

	// skipBreak renders the break columns as the no-value marker.
	day3 := rows[2]
	if day3.BreakStart != "—" || day3.BreakEnd != "—" {
		t.Errorf("day 3 breaks = %q/%q, want em dashes", day3.BreakStart, day3.BreakEnd)
	}

	// A day with nothing logged renders blank clocks, not zeros.
	day4 := rows[3]
	if day4.ClockIn != "" || day4.Worked != "—" {
		t.Errorf("day 4 = clockIn %q, worked %q; want blank and no-value", day4.ClockIn, day4.Worked)
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, testMonthView(t), "Casa de Carnes Bom Jesus", "Loja 1 - Tambaú"); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not look like a PDF")
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, testMonthView(t), "Casa de Carnes Bom Jesus", "Loja 1 - Tambaú"); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}
	// xlsx is a zip container
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Error("output does not look like a zip-based workbook")
	}
}
