package kernel

import (
	"fmt"
	"time"

	"messdelivery/internal/pkg/errs"
)

// DateLayout is the wire and storage format of a Date.
const DateLayout = time.DateOnly

var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("Date must be created via NewDate, DateOf or ParseDate")

// Date is a calendar day. It carries no time of day or zone: two Dates are
// equal when their year, month and day are equal.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate normalises out-of-range values the way time.Date does, so
// NewDate(2025, 1, 32) is 2025-02-01.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate parses YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%q is not YYYY-MM-DD", s))
	}
	return DateOf(t), nil
}

func (d Date) Year() int {
	return d.year
}

func (d Date) Month() time.Month {
	return d.month
}

func (d Date) Day() int {
	return d.day
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

func (d Date) IsEqual(other Date) bool {
	return d == other
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

func (d Date) Validate() error {
	if d.year == 0 && d.month == 0 && d.day == 0 {
		return ErrDateIsNotConstructed
	}
	return nil
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(data []byte) error {
	parsed, err := ParseDate(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
