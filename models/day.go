package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// DAY_LAYOUT is the ISO-8601 calendar date used in the gigs API path.
const DAY_LAYOUT = "2006-01-02"

var ErrInvalidDay = errors.New("invalid date, expected YYYY-MM-DD")

// Day is a calendar day with no time-of-day or zone component.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day t falls on, in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// Today returns the current calendar day in loc.
func Today(now time.Time, loc *time.Location) Day {
	return DayOf(now.In(loc))
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DAY_LAYOUT, s)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return DayOf(t), nil
}

// AddDays shifts the day by n calendar days. time.Date normalises the
// overflowing day-of-month, so month ends and leap years come out right.
func (d Day) AddDays(n int) Day {
	return DayOf(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC))
}

func (d Day) IsZero() bool {
	return d == Day{}
}

// Time returns midnight of the day in loc.
func (d Day) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Label is the human form shown in panel headings, e.g. "Friday 1st March 2024".
func (d Day) Label() string {
	t := d.Time(time.UTC)
	return fmt.Sprintf("%s %s %s %d", t.Weekday(), humanize.Ordinal(d.Day), d.Month, d.Year)
}

func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(b []byte) error {
	parsed, err := ParseDay(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
