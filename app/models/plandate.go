package models

import (
	"strings"
	"time"
)

// planDateWire is the canonical wire format for plan dates.
const planDateWire = "02/01/2006"

// planDateInputs are the formats accepted when reading a plan date. Rollout
// blobs written by earlier versions of the system mixed DD/MM/YYYY with ISO
// dates, and a few scripts stored full timestamps.
var planDateInputs = []string{
	planDateWire,
	"2006-01-02",
	time.RFC3339,
}

// PlanDate is a date inside a rollout plan. The zero value means "no date"
// (rendered as N/A); malformed input parses to the zero value rather than
// failing the surrounding plan.
type PlanDate struct {
	time.Time
}

// NewPlanDate truncates t to a calendar date.
func NewPlanDate(t time.Time) PlanDate {
	return PlanDate{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParsePlanDate reads a plan date from any accepted input format.
func ParsePlanDate(s string) PlanDate {
	s = strings.TrimSpace(s)
	if s == "" || s == "N/A" {
		return PlanDate{}
	}
	for _, layout := range planDateInputs {
		if t, err := time.Parse(layout, s); err == nil {
			return NewPlanDate(t)
		}
	}
	return PlanDate{}
}

// Valid reports whether the date is set.
func (d PlanDate) Valid() bool {
	return !d.Time.IsZero()
}

// String renders the canonical DD/MM/YYYY form, or "N/A" when unset.
func (d PlanDate) String() string {
	if !d.Valid() {
		return "N/A"
	}
	return d.Time.Format(planDateWire)
}

// AddDays returns the date shifted by the given number of calendar days.
func (d PlanDate) AddDays(days int) PlanDate {
	if !d.Valid() {
		return PlanDate{}
	}
	return NewPlanDate(d.Time.AddDate(0, 0, days))
}

// AddMonthsDays returns the date shifted by whole months then days, in that
// order. Month addition is calendar-aware so fractional-month plan arithmetic
// rolls over month boundaries the same way the scheduling screens always have.
func (d PlanDate) AddMonthsDays(months, days int) PlanDate {
	if !d.Valid() {
		return PlanDate{}
	}
	return NewPlanDate(d.Time.AddDate(0, months, days))
}

// Before reports whether d falls strictly before other. An unset date is
// never before anything.
func (d PlanDate) Before(other PlanDate) bool {
	return d.Valid() && other.Valid() && d.Time.Before(other.Time)
}

// After reports whether d falls strictly after other.
func (d PlanDate) After(other PlanDate) bool {
	return d.Valid() && other.Valid() && d.Time.After(other.Time)
}

// DaysUntil returns the number of whole days from d to other. Negative when
// other is in the past relative to d.
func (d PlanDate) DaysUntil(other PlanDate) int {
	return int(other.Time.Sub(d.Time).Hours() / 24)
}

// MarshalJSON writes the canonical wire format; unset dates serialize as null.
func (d PlanDate) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format(planDateWire) + `"`), nil
}

// UnmarshalJSON accepts both legacy input formats and null.
func (d *PlanDate) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*d = PlanDate{}
		return nil
	}
	s = strings.Trim(s, `"`)
	*d = ParsePlanDate(s)
	return nil
}
