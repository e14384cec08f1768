package payroll

// Tone is the display category of a status badge.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneGood
	ToneWarn
	ToneBad
)

// Label returns the display name of a day type, as printed on timesheets.
func (t DayType) Label() string {
	switch t {
	case DayOff:
		return "Folga"
	case DayAbsent:
		return "Falta"
	case DayMedicalLeave:
		return "Atestado"
	case DayHoliday:
		return "Feriado"
	case DayOther:
		return "Outro"
	default:
		return "Normal"
	}
}

// StatusBadge maps a day's status and type to a short badge label and tone.
// Day-type overrides win over the computed status, matching the timesheet
// display rules.
func StatusBadge(status Status, dayType DayType) (string, Tone) {
	switch dayType {
	case DayOff:
		return "Folga", ToneGood
	case DayAbsent:
		return "Falta", ToneBad
	case DayMedicalLeave:
		return "Atest", ToneGood
	}
	switch status {
	case StatusOK:
		return "OK", ToneGood
	case StatusExceeded:
		return "Exced", ToneWarn
	case StatusIncomplete:
		return "Falta", ToneBad
	}
	return NoValue, ToneNeutral
}
