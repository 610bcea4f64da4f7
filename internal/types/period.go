// Package types implements special types for the Pocketwise backend.
package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Period is the recurrence unit of a budget.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// Valid reports whether the period is one of the known recurrence units.
func (p Period) Valid() bool {
	return p == PeriodWeekly || p == PeriodMonthly || p == PeriodYearly
}

// Range resolves the period to the concrete date window containing t.
//
// Weeks start on Sunday. Unknown periods resolve like PeriodMonthly.
func (p Period) Range(t time.Time) Range {
	t = t.UTC()

	switch p {
	case PeriodWeekly:
		start := Day(t).AddDate(0, 0, -int(t.Weekday()))
		return Range{Start: start, End: start.AddDate(0, 0, 6)}
	case PeriodYearly:
		return Range{
			Start: time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, time.UTC),
		}
	default:
		start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		return Range{Start: start, End: start.AddDate(0, 1, -1)}
	}
}

// Scan reads the value from the database.
func (p *Period) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*p = Period(v)
	case []byte:
		*p = Period(v)
	default:
		return fmt.Errorf("cannot scan %T into Period", value)
	}

	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (p Period) Value() (driver.Value, error) {
	return string(p), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Period) GormDataType() string {
	return "string"
}

// Range is an inclusive window of calendar days.
//
// Start and End are UTC midnights; the window covers the whole End day.
type Range struct {
	Start time.Time `json:"start" example:"2024-02-01"`
	End   time.Time `json:"end" example:"2024-02-29"`
}

// MonthRange returns the window covering the calendar month containing t.
func MonthRange(t time.Time) Range {
	return PeriodMonthly.Range(t)
}

// String returns the range in "YYYY-MM-DD/YYYY-MM-DD" form.
func (r Range) String() string {
	return r.Start.Format(time.DateOnly) + "/" + r.End.Format(time.DateOnly)
}

// Contains reports whether the calendar day of t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Exclusive returns the first day after the range, for use in half-open
// database comparisons.
func (r Range) Exclusive() time.Time {
	return r.End.AddDate(0, 0, 1)
}

// Day truncates t to its calendar day in UTC.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
