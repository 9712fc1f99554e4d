package monitor

// Severity is a qualitative risk level derived from the total
// violation count. It is never stored, only computed.
type Severity string

const (
	SeverityNormal   Severity = "Normal"
	SeverityLow      Severity = "Low Risk"
	SeverityMedium   Severity = "Medium Risk"
	SeverityHigh     Severity = "High Risk"
	SeverityCritical Severity = "Critical"
)

// ClassifySeverity maps a total violation count to a risk level.
// Bands are inclusive lower bounds, evaluated highest-first.
func ClassifySeverity(total int) Severity {
	switch {
	case total >= 20:
		return SeverityCritical
	case total >= 15:
		return SeverityHigh
	case total >= 8:
		return SeverityMedium
	case total >= 3:
		return SeverityLow
	default:
		return SeverityNormal
	}
}

// Level returns the severity as a number from 0 (Normal) to 4
// (Critical), for gauges and sorting.
func (s Severity) Level() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}
