package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pontopro/internal/logger"
	"github.com/pontopro/internal/payroll"
)

// ErrAmbiguous is returned when an employee query matches more than one
// active employee.
var ErrAmbiguous = errors.New("query matches more than one employee")

// ErrNotFound is returned when no active employee matches a query.
var ErrNotFound = errors.New("employee not found")

// Employee is a stored employee with their pay configuration. Soft-deleted
// employees keep their rows with active = 0.
type Employee struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Role             string    `json:"role,omitempty"`
	StoreID          string    `json:"store_id"`
	PayType          string    `json:"pay_type"`
	MonthlySalary    float64   `json:"monthly_salary"`
	HourlyRate       float64   `json:"hourly_rate"`
	DailyScheduleMin int       `json:"daily_schedule_min"`
	MonthlyBaseMin   int       `json:"monthly_base_min"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
}

// Config adapts the stored row to the calculation engine's configuration.
func (e *Employee) Config() payroll.EmployeeConfig {
	return payroll.EmployeeConfig{
		PayType:          payroll.ParsePayType(e.PayType),
		MonthlySalary:    e.MonthlySalary,
		HourlyRate:       e.HourlyRate,
		DailyScheduleMin: e.DailyScheduleMin,
		MonthlyBaseMin:   e.MonthlyBaseMin,
	}
}

// DayRow is one stored day entry. Clock fields hold the raw 4-digit compact
// strings exactly as typed; parsing happens on the way into the engine.
type DayRow struct {
	EmployeeID  string `json:"employee_id"`
	Date        string `json:"date"` // ISO calendar date
	DayType     string `json:"day_type"`
	ClockIn     string `json:"clock_in,omitempty"`
	BreakStart  string `json:"break_start,omitempty"`
	BreakEnd    string `json:"break_end,omitempty"`
	ClockOut    string `json:"clock_out,omitempty"`
	SkipBreak   bool   `json:"skip_break"`
	ScheduleMin int    `json:"schedule_min,omitempty"` // 0 = use employee default
	Notes       string `json:"notes,omitempty"`
}

// Entry converts the stored row into an engine entry. Compact clock strings
// that fail to parse become nil, which the engine classifies as incomplete.
func (r DayRow) Entry() payroll.DayEntry {
	e := payroll.DayEntry{
		DayType:   payroll.ParseDayType(r.DayType),
		SkipBreak: r.SkipBreak,
		Notes:     r.Notes,
	}
	if r.ScheduleMin > 0 {
		v := r.ScheduleMin
		e.ScheduleMin = &v
	}
	e.ClockIn = compactToMinutes(r.ClockIn)
	e.BreakStart = compactToMinutes(r.BreakStart)
	e.BreakEnd = compactToMinutes(r.BreakEnd)
	e.ClockOut = compactToMinutes(r.ClockOut)
	return e
}

func compactToMinutes(compact string) *int {
	// Entries typed with the colon are tolerated, as the source data was.
	hhmm, ok := payroll.ClockFromCompact(strings.ReplaceAll(compact, ":", ""))
	if !ok {
		return nil
	}
	min, ok := payroll.MinutesFromClock(hhmm)
	if !ok {
		return nil
	}
	return &min
}

type Database struct {
	db *sql.DB
}

func New(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	database := &Database{db: db}
	if err := database.createTables(); err != nil {
		return nil, err
	}

	logger.Log.Debug().Str("path", path).Msg("database opened")
	return database, nil
}

func (d *Database) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			role TEXT,
			store_id TEXT NOT NULL,
			pay_type TEXT NOT NULL DEFAULT 'SALARY',
			monthly_salary REAL DEFAULT 0,
			hourly_rate REAL DEFAULT 0,
			daily_schedule_min INTEGER DEFAULT 480,
			monthly_base_min INTEGER DEFAULT 13200,
			active INTEGER DEFAULT 1,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS day_entries (
			employee_id TEXT NOT NULL,
			date TEXT NOT NULL,
			day_type TEXT NOT NULL DEFAULT 'NORMAL',
			clock_in TEXT,
			break_start TEXT,
			break_end TEXT,
			clock_out TEXT,
			skip_break INTEGER DEFAULT 0,
			schedule_min INTEGER DEFAULT 0,
			notes TEXT,
			updated_at TEXT,
			deleted_at TEXT,
			PRIMARY KEY (employee_id, date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_date ON day_entries(date)`,
	}

	for _, query := range queries {
		if _, err := d.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) CreateEmployee(e *Employee) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.Active = true

	_, err := d.db.Exec(
		`INSERT INTO employees (id, name, role, store_id, pay_type, monthly_salary,
		 hourly_rate, daily_schedule_min, monthly_base_min, active, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?)`,
		e.ID, e.Name, e.Role, e.StoreID, e.PayType, e.MonthlySalary,
		e.HourlyRate, e.DailyScheduleMin, e.MonthlyBaseMin,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting employee: %w", err)
	}
	return nil
}

func (d *Database) UpdateEmployee(e *Employee) error {
	_, err := d.db.Exec(
		`UPDATE employees SET name = ?, role = ?, store_id = ?, pay_type = ?,
		 monthly_salary = ?, hourly_rate = ?, daily_schedule_min = ?, monthly_base_min = ?
		 WHERE id = ?`,
		e.Name, e.Role, e.StoreID, e.PayType,
		e.MonthlySalary, e.HourlyRate, e.DailyScheduleMin, e.MonthlyBaseMin,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating employee: %w", err)
	}
	return nil
}

// DeactivateEmployee soft-deletes: the row and its entries stay.
func (d *Database) DeactivateEmployee(id string) error {
	res, err := d.db.Exec(`UPDATE employees SET active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deactivating employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *Database) GetEmployees(storeID string) ([]Employee, error) {
	query := `SELECT id, name, role, store_id, pay_type, monthly_salary, hourly_rate,
		daily_schedule_min, monthly_base_min, active, created_at
		FROM employees WHERE active = 1`
	args := []any{}
	if storeID != "" {
		query += ` AND store_id = ?`
		args = append(args, storeID)
	}
	query += ` ORDER BY created_at`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("selecting employees: %w", err)
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// FindEmployee resolves a query string to a single active employee. The query
// matches an id prefix or a case-insensitive name substring.
func (d *Database) FindEmployee(query string) (*Employee, error) {
	employees, err := d.GetEmployees("")
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	var matches []Employee
	for _, e := range employees {
		if strings.HasPrefix(e.ID, q) || strings.Contains(strings.ToLower(e.Name), q) {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrNotFound, query)
	case 1:
		return &matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		return nil, fmt.Errorf("%w: %q matches %s", ErrAmbiguous, query, strings.Join(names, ", "))
	}
}

func scanEmployee(rows *sql.Rows) (Employee, error) {
	var e Employee
	var role, createdAt sql.NullString
	var active int
	if err := rows.Scan(&e.ID, &e.Name, &role, &e.StoreID, &e.PayType, &e.MonthlySalary,
		&e.HourlyRate, &e.DailyScheduleMin, &e.MonthlyBaseMin, &active, &createdAt); err != nil {
		return Employee{}, fmt.Errorf("scanning employee: %w", err)
	}
	e.Role = role.String
	e.Active = active != 0
	if createdAt.Valid {
		t, err := time.Parse(time.RFC3339, createdAt.String)
		if err == nil {
			e.CreatedAt = t
		}
	}
	return e, nil
}

// UpsertEntry writes one day entry keyed by (employee, date), reviving a
// soft-deleted row if one exists.
func (d *Database) UpsertEntry(row DayRow) error {
	now := time.Now().Format(time.RFC3339)
	_, err := d.db.Exec(
		`INSERT INTO day_entries (employee_id, date, day_type, clock_in, break_start,
		 break_end, clock_out, skip_break, schedule_min, notes, updated_at, deleted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)
		 ON CONFLICT(employee_id, date) DO UPDATE SET
			day_type = excluded.day_type,
			clock_in = excluded.clock_in,
			break_start = excluded.break_start,
			break_end = excluded.break_end,
			clock_out = excluded.clock_out,
			skip_break = excluded.skip_break,
			schedule_min = excluded.schedule_min,
			notes = excluded.notes,
			updated_at = excluded.updated_at,
			deleted_at = NULL`,
		row.EmployeeID, row.Date, row.DayType, row.ClockIn, row.BreakStart,
		row.BreakEnd, row.ClockOut, boolToInt(row.SkipBreak), row.ScheduleMin,
		row.Notes, now,
	)
	if err != nil {
		return fmt.Errorf("upserting entry: %w", err)
	}
	logger.Log.Debug().Str("employee", row.EmployeeID).Str("date", row.Date).Msg("entry saved")
	return nil
}

// DeleteEntry soft-deletes one day entry.
func (d *Database) DeleteEntry(employeeID, date string) error {
	_, err := d.db.Exec(
		`UPDATE day_entries SET deleted_at = ? WHERE employee_id = ? AND date = ?`,
		time.Now().Format(time.RFC3339), employeeID, date,
	)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	return nil
}

// GetRangeEntries returns the live entries for one employee between two ISO
// dates inclusive, keyed by date.
func (d *Database) GetRangeEntries(employeeID, startISO, endISO string) (map[string]DayRow, error) {
	rows, err := d.db.Query(
		`SELECT employee_id, date, day_type, clock_in, break_start, break_end,
		 clock_out, skip_break, schedule_min, notes
		 FROM day_entries
		 WHERE employee_id = ? AND date >= ? AND date <= ? AND deleted_at IS NULL`,
		employeeID, startISO, endISO,
	)
	if err != nil {
		return nil, fmt.Errorf("selecting entries: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]DayRow)
	for rows.Next() {
		var r DayRow
		var clockIn, breakStart, breakEnd, clockOut, notes sql.NullString
		var skipBreak int
		if err := rows.Scan(&r.EmployeeID, &r.Date, &r.DayType, &clockIn, &breakStart,
			&breakEnd, &clockOut, &skipBreak, &r.ScheduleMin, &notes); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		r.ClockIn = clockIn.String
		r.BreakStart = breakStart.String
		r.BreakEnd = breakEnd.String
		r.ClockOut = clockOut.String
		r.Notes = notes.String
		r.SkipBreak = skipBreak != 0
		entries[r.Date] = r
	}
	return entries, rows.Err()
}

// MonthBounds returns the inclusive ISO date range covering a "YYYY-MM" month.
func MonthBounds(ym string) (string, string) {
	return ym + "-01", ym + "-31"
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
