// Package timesheet glues storage to the calculation engine. It owns the
// period result cache; the engine itself stays pure.
package timesheet

import (
	"fmt"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pontopro/internal/logger"
	"github.com/pontopro/internal/payroll"
	"github.com/pontopro/internal/storage"
)

// PeriodKey identifies one cached employee period.
type PeriodKey struct {
	EmployeeID string
	Start      string
	End        string
}

type Service struct {
	db    *storage.Database
	cache *lru.Cache[PeriodKey, map[string]storage.DayRow]
}

func New(db *storage.Database) *Service {
	// 64 periods covers a month and a week per employee for a staff far
	// larger than the stores have.
	cache, _ := lru.New[PeriodKey, map[string]storage.DayRow](64)
	return &Service{db: db, cache: cache}
}

func (s *Service) rangeEntries(employeeID, start, end string) (map[string]storage.DayRow, error) {
	key := PeriodKey{EmployeeID: employeeID, Start: start, End: end}
	if entries, ok := s.cache.Get(key); ok {
		logger.Log.Debug().Str("employee", employeeID).Str("start", start).Msg("period cache hit")
		return entries, nil
	}
	entries, err := s.db.GetRangeEntries(employeeID, start, end)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, entries)
	return entries, nil
}

// SaveEntry writes one day entry and invalidates every cached period that
// contains its date.
func (s *Service) SaveEntry(row storage.DayRow) error {
	if err := s.db.UpsertEntry(row); err != nil {
		return err
	}
	s.invalidate(row.EmployeeID, row.Date)
	return nil
}

// RemoveEntry soft-deletes one day entry and invalidates its periods.
func (s *Service) RemoveEntry(employeeID, date string) error {
	if err := s.db.DeleteEntry(employeeID, date); err != nil {
		return err
	}
	s.invalidate(employeeID, date)
	return nil
}

func (s *Service) invalidate(employeeID, date string) {
	for _, key := range s.cache.Keys() {
		if key.EmployeeID == employeeID && key.Start <= date && date <= key.End {
			s.cache.Remove(key)
			logger.Log.Debug().Str("start", key.Start).Str("end", key.End).Msg("period cache invalidated")
		}
	}
}

// DayCell is one rendered day: the stored row (or a default for days with
// nothing logged) plus the computed result.
type DayCell struct {
	Date   string
	Day    int
	Row    storage.DayRow
	Stored bool
	Entry  payroll.DayEntry
	Result payroll.DayResult
}

// MonthView is a month of day cells plus totals. Days always has 31 cells,
// like the printed sheet; Totals folds only the stored entries.
type MonthView struct {
	Employee *storage.Employee
	Month    string // "YYYY-MM"
	Days     []DayCell
	Totals   payroll.MonthTotals
}

func (s *Service) MonthView(emp *storage.Employee, ym string) (*MonthView, error) {
	start, end := storage.MonthBounds(ym)
	stored, err := s.rangeEntries(emp.ID, start, end)
	if err != nil {
		return nil, err
	}

	cfg := emp.Config()
	view := &MonthView{Employee: emp, Month: ym, Days: make([]DayCell, 0, 31)}

	byDay := make(map[int]payroll.DayEntry, len(stored))
	for date, row := range stored {
		d, err := strconv.Atoi(date[len(date)-2:])
		if err != nil || d < 1 || d > 31 {
			continue
		}
		byDay[d] = row.Entry()
	}
	view.Totals = payroll.CalcMonth(cfg, byDay)

	for d := 1; d <= 31; d++ {
		date := fmt.Sprintf("%s-%02d", ym, d)
		cell := DayCell{Date: date, Day: d}
		if row, ok := stored[date]; ok {
			cell.Row = row
			cell.Stored = true
		} else {
			cell.Row = defaultRow(emp, date)
		}
		cell.Entry = cell.Row.Entry()
		cell.Result = payroll.CalcDay(cell.Entry, cfg)
		view.Days = append(view.Days, cell)
	}

	return view, nil
}

// WeekView is a Monday-to-Sunday window of day cells plus totals. Missing
// days are synthesized as empty normal days, which classify as incomplete.
type WeekView struct {
	Employee *storage.Employee
	Days     []DayCell
	Totals   payroll.WeekTotals
}

func (s *Service) WeekView(emp *storage.Employee, weekStart time.Time) (*WeekView, error) {
	start := weekStart.Format(payroll.DateFormat)
	end := weekStart.AddDate(0, 0, 6).Format(payroll.DateFormat)
	stored, err := s.rangeEntries(emp.ID, start, end)
	if err != nil {
		return nil, err
	}

	cfg := emp.Config()
	entries := make(map[string]payroll.DayEntry, len(stored))
	for date, row := range stored {
		entries[date] = row.Entry()
	}

	view := &WeekView{
		Employee: emp,
		Days:     make([]DayCell, 0, 7),
		Totals:   payroll.CalcWeek(cfg, entries, weekStart),
	}

	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i).Format(payroll.DateFormat)
		cell := DayCell{Date: date, Day: i + 1}
		if row, ok := stored[date]; ok {
			cell.Row = row
			cell.Stored = true
		} else {
			cell.Row = defaultRow(emp, date)
		}
		cell.Entry = cell.Row.Entry()
		cell.Result = payroll.CalcDay(cell.Entry, cfg)
		view.Days = append(view.Days, cell)
	}

	return view, nil
}

// DayView loads and computes a single date.
func (s *Service) DayView(emp *storage.Employee, date string) (*DayCell, error) {
	stored, err := s.rangeEntries(emp.ID, date, date)
	if err != nil {
		return nil, err
	}
	cell := &DayCell{Date: date}
	if row, ok := stored[date]; ok {
		cell.Row = row
		cell.Stored = true
	} else {
		cell.Row = defaultRow(emp, date)
	}
	cell.Entry = cell.Row.Entry()
	cell.Result = payroll.CalcDay(cell.Entry, emp.Config())
	return cell, nil
}

func defaultRow(emp *storage.Employee, date string) storage.DayRow {
	return storage.DayRow{
		EmployeeID:  emp.ID,
		Date:        date,
		DayType:     payroll.DayNormal.String(),
		ScheduleMin: emp.DailyScheduleMin,
	}
}
