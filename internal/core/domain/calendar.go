package domain

import (
	"fmt"
	"time"
)

const (
	dateLayout    = "2006-01-02"
	timeLayout    = "15:04"
	secondsPerDay = 24 * 60 * 60
)

// Date is a calendar day without a time zone. The zero value is not a valid
// date; use NewDate or ParseDate. Date is comparable and safe as a map key.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate normalises the given components the same way time.Date does, so
// NewDate(2024, 1, 32) is February 1st.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) Year() int             { return d.year }
func (d Date) Month() time.Month     { return d.month }
func (d Date) Day() int              { return d.day }
func (d Date) IsZero() bool          { return d == Date{} }
func (d Date) String() string        { return d.Time().Format(dateLayout) }
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// DaysSince returns the whole number of days from other to d.
func (d Date) DaysSince(other Date) int {
	return int((d.Time().Unix() - other.Time().Unix()) / secondsPerDay)
}

func (d Date) Before(other Date) bool { return d.Time().Before(other.Time()) }
func (d Date) After(other Date) bool  { return d.Time().After(other.Time()) }

// ISOWeek returns the ISO 8601 year and week number of d.
func (d Date) ISOWeek() (year, week int) {
	return d.Time().ISOWeek()
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// AnchorTime is a time of day with minute precision.
type AnchorTime struct {
	minutes int
}

// NewAnchorTime builds an anchor from hour and minute. Out of range values
// are rejected.
func NewAnchorTime(hour, minute int) (AnchorTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return AnchorTime{}, fmt.Errorf("invalid anchor time %02d:%02d", hour, minute)
	}
	return AnchorTime{minutes: hour*60 + minute}, nil
}

// MustAnchorTime is NewAnchorTime for constants and tests.
func MustAnchorTime(hour, minute int) AnchorTime {
	a, err := NewAnchorTime(hour, minute)
	if err != nil {
		panic(err)
	}
	return a
}

// ParseAnchorTime parses an HH:MM string.
func ParseAnchorTime(s string) (AnchorTime, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return AnchorTime{}, fmt.Errorf("invalid anchor time %q: %w", s, err)
	}
	return NewAnchorTime(t.Hour(), t.Minute())
}

func (a AnchorTime) Hour() int      { return a.minutes / 60 }
func (a AnchorTime) Minute() int    { return a.minutes % 60 }
func (a AnchorTime) Minutes() int   { return a.minutes }
func (a AnchorTime) String() string { return fmt.Sprintf("%02d:%02d", a.Hour(), a.Minute()) }

func (a AnchorTime) Before(other AnchorTime) bool { return a.minutes < other.minutes }

func (a AnchorTime) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *AnchorTime) UnmarshalText(b []byte) error {
	parsed, err := ParseAnchorTime(string(b))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// SlotKey addresses one cell of the planning grid.
type SlotKey struct {
	Date Date       `json:"date"`
	Time AnchorTime `json:"time"`
}

// At returns the UTC instant of the slot.
func (k SlotKey) At() time.Time {
	return k.Date.Time().Add(time.Duration(k.Time.minutes) * time.Minute)
}

// Before orders keys chronologically.
func (k SlotKey) Before(other SlotKey) bool {
	if k.Date != other.Date {
		return k.Date.Before(other.Date)
	}
	return k.Time.Before(other.Time)
}

func (k SlotKey) String() string {
	return k.Date.String() + " " + k.Time.String()
}
