package payroll

// Defaults applied when neither the entry nor the employee carries a value.
const (
	DefaultDailyScheduleMin = 480   // 8h
	DefaultMonthlyBaseMin   = 13200 // 220h
)

// PayType says how an employee is paid.
type PayType int

const (
	PaySalary PayType = iota // fixed monthly salary plus overtime premium
	PayHourly                // paid per worked hour
)

func (p PayType) String() string {
	if p == PayHourly {
		return "HOURLY"
	}
	return "SALARY"
}

// ParsePayType maps a stored token back to a PayType. Unknown tokens fall
// back to SALARY, matching the storage default.
func ParsePayType(s string) PayType {
	if s == "HOURLY" {
		return PayHourly
	}
	return PaySalary
}

// DayType tags a calendar day. The set is closed: CalcDay matches every
// member explicitly so a new tag cannot silently flow into time arithmetic.
type DayType int

const (
	DayNormal DayType = iota
	DayOff
	DayAbsent
	DayMedicalLeave
	DayHoliday
	DayOther
)

func (t DayType) String() string {
	switch t {
	case DayOff:
		return "OFF"
	case DayAbsent:
		return "ABSENT"
	case DayMedicalLeave:
		return "MEDICAL_LEAVE"
	case DayHoliday:
		return "HOLIDAY"
	case DayOther:
		return "OTHER"
	default:
		return "NORMAL"
	}
}

// ParseDayType maps a stored token back to a DayType, defaulting to NORMAL.
func ParseDayType(s string) DayType {
	switch s {
	case "OFF":
		return DayOff
	case "ABSENT":
		return DayAbsent
	case "MEDICAL_LEAVE":
		return DayMedicalLeave
	case "HOLIDAY":
		return DayHoliday
	case "OTHER":
		return DayOther
	default:
		return DayNormal
	}
}

// Status classifies the outcome of a day calculation, independent of the raw
// day-type tag.
type Status int

const (
	StatusOK Status = iota
	StatusExceeded
	StatusIncomplete
	StatusOff
	StatusAbsent
)

func (s Status) String() string {
	switch s {
	case StatusExceeded:
		return "EXCEEDED"
	case StatusIncomplete:
		return "INCOMPLETE"
	case StatusOff:
		return "OFF"
	case StatusAbsent:
		return "ABSENT"
	default:
		return "OK"
	}
}

// EmployeeConfig is the pay configuration a calculation runs against. The
// engine never mutates it.
type EmployeeConfig struct {
	PayType          PayType
	MonthlySalary    float64 // SALARY only
	HourlyRate       float64 // per hour
	DailyScheduleMin int
	MonthlyBaseMin   int
}

// DayEntry is one calendar day of logged times for one employee. Clock fields
// are minutes since midnight; nil means not logged or unparseable. When
// SkipBreak is set the break fields are ignored regardless of content.
type DayEntry struct {
	DayType     DayType
	ScheduleMin *int // per-day override of the employee schedule
	ClockIn     *int
	BreakStart  *int
	BreakEnd    *int
	ClockOut    *int
	SkipBreak   bool
	Notes       string
}

// DayResult is the computed outcome for one day. The minute fields are nil
// when the day is incomplete. Derived fresh on every call, never stored.
type DayResult struct {
	WorkedMin *int
	ExtraMin  *int
	BankMin   *int
	Status    Status
	PaidMin   int
}

const minutesPerDay = 24 * 60

// EffectiveSchedule resolves the scheduled shift length for a day: the
// entry-level override, then the employee default, then the global default.
func EffectiveSchedule(entry DayEntry, emp EmployeeConfig) int {
	if entry.ScheduleMin != nil {
		return *entry.ScheduleMin
	}
	if emp.DailyScheduleMin > 0 {
		return emp.DailyScheduleMin
	}
	return DefaultDailyScheduleMin
}

// CalcDay turns one day's entry plus the employee's pay configuration into
// worked/extra/bank minutes, a status, and paid minutes.
//
// Branch order matters: day-type overrides first, then time arithmetic for
// NORMAL, HOLIDAY and OTHER days.
func CalcDay(entry DayEntry, emp EmployeeConfig) DayResult {
	sched := EffectiveSchedule(entry, emp)

	switch entry.DayType {
	case DayOff:
		return DayResult{
			WorkedMin: intPtr(0),
			ExtraMin:  intPtr(0),
			BankMin:   intPtr(0),
			Status:    StatusOff,
		}

	case DayAbsent:
		// A salaried absence deducts a full scheduled day from the bank.
		// Hourly workers have nothing to deduct: a missed day is simply
		// not paid.
		bank := -sched
		if emp.PayType == PayHourly {
			bank = 0
		}
		return DayResult{
			WorkedMin: intPtr(0),
			ExtraMin:  intPtr(0),
			BankMin:   intPtr(bank),
			Status:    StatusAbsent,
		}

	case DayMedicalLeave:
		// Fully credited scheduled day.
		return DayResult{
			WorkedMin: intPtr(sched),
			ExtraMin:  intPtr(0),
			BankMin:   intPtr(0),
			Status:    StatusOK,
			PaidMin:   sched,
		}

	case DayNormal, DayHoliday, DayOther:
		return calcWorkedDay(entry, emp, sched)

	default:
		// Unknown tag: refuse to guess, surface as incomplete.
		return DayResult{Status: StatusIncomplete}
	}
}

func calcWorkedDay(entry DayEntry, emp EmployeeConfig, sched int) DayResult {
	if entry.ClockIn == nil || entry.ClockOut == nil {
		return DayResult{Status: StatusIncomplete}
	}

	total := *entry.ClockOut - *entry.ClockIn
	if total < 0 {
		total += minutesPerDay // overnight shift crossing midnight
	}

	br := 0
	if !entry.SkipBreak && entry.BreakStart != nil && entry.BreakEnd != nil {
		br = *entry.BreakEnd - *entry.BreakStart
		if br < 0 {
			br += minutesPerDay
		}
	}

	worked := max(total-br, 0)
	extra := max(worked-sched, 0)

	bank := worked - sched
	if emp.PayType == PayHourly {
		// An hourly short day reduces pay, it is not a deficit owed back.
		bank = max(bank, 0)
	}

	status := StatusOK
	if extra > 0 {
		status = StatusExceeded
	}

	return DayResult{
		WorkedMin: intPtr(worked),
		ExtraMin:  intPtr(extra),
		BankMin:   intPtr(bank),
		Status:    status,
		PaidMin:   worked,
	}
}

func intPtr(v int) *int { return &v }
