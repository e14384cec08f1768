package payroll

import (
	"fmt"
	"strconv"
	"strings"
)

// NoValue is printed wherever a time could not be determined.
const NoValue = "—"

// MinutesFromClock parses "HH:MM" into minutes since midnight.
// Returns false when either component is not a number.
func MinutesFromClock(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

// ClockFromCompact converts a 4-digit clock string ("0730") to "HH:MM".
// Anything that is not exactly 4 digits, or has hour > 23 or minute > 59,
// is rejected. No clamping, no partial parsing.
func ClockFromCompact(s string) (string, bool) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return "", false
	}
	if len(cleaned) != 4 || !allDigits(cleaned) {
		return "", false
	}
	h, _ := strconv.Atoi(cleaned[:2])
	m, _ := strconv.Atoi(cleaned[2:])
	if h > 23 || m > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", h, m), true
}

// ScheduleFromCompact converts a 4-digit duration ("0800" = 8h) to minutes.
// Unlike ClockFromCompact the hour part is unbounded: a schedule may exceed
// 23h59. Only the minute component is validated.
func ScheduleFromCompact(s string) (int, bool) {
	cleaned := digitsOnly(s)
	if len(cleaned) > 4 {
		cleaned = cleaned[:4]
	}
	if len(cleaned) != 4 {
		return 0, false
	}
	h, _ := strconv.Atoi(cleaned[:2])
	m, _ := strconv.Atoi(cleaned[2:])
	if m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// CompactFromMinutes renders minutes as a 4-digit clock string ("0800").
func CompactFromMinutes(min int) string {
	return fmt.Sprintf("%02d%02d", min/60, min%60)
}

// FormatClockMinutes renders minutes as "H:MM". The hour part is unbounded so
// cumulative totals render correctly (1500 min -> "25:00"). A nil value
// renders as the NoValue marker.
func FormatClockMinutes(min *int) string {
	if min == nil {
		return NoValue
	}
	return fmt.Sprintf("%d:%02d", *min/60, *min%60)
}

// FormatBank renders a signed bank balance as "+H:MM" or "-H:MM".
func FormatBank(min *int) string {
	if min == nil {
		return NoValue
	}
	v := *min
	if v < 0 {
		v = -v
		return "-" + FormatClockMinutes(&v)
	}
	return "+" + FormatClockMinutes(&v)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
