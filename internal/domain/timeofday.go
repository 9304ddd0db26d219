// Package domain contains the core value types for house-rule booking checks.
// This package has no dependencies on other internal packages and is imported
// by every other one (config, service, report).
package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the length of the wall-clock day TimeOfDay values live on.
const MinutesPerDay = 24 * 60

// Period is the AM/PM half of a 12-hour clock reading.
type Period string

const (
	AM Period = "AM"
	PM Period = "PM"
)

// ParsePeriod accepts "AM" or "PM" in any case, with surrounding whitespace.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToUpper(strings.TrimSpace(s))); p {
	case AM, PM:
		return p, nil
	}
	return "", fmt.Errorf("%w: period %q must be AM or PM", ErrMalformedTime, s)
}

// Valid reports whether p is one of AM or PM.
func (p Period) Valid() bool {
	return p == AM || p == PM
}

// TimeOfDay is a wall-clock time with no date component, expressed on a
// 12-hour clock: Hour is 1-12, Minutes is 0-59 and Period is AM or PM.
// 12:00 AM is midnight and 12:00 PM is noon.
//
// TimeOfDay is a value type. Construct it with NewTimeOfDay or ParseTimeOfDay
// so the fields are range-checked; a zero TimeOfDay is not valid.
type TimeOfDay struct {
	Hour    int
	Minutes int
	Period  Period
}

// NewTimeOfDay returns a TimeOfDay after checking each field's range.
// Returns ErrMalformedTime naming the offending field otherwise.
func NewTimeOfDay(hour, minutes int, period Period) (TimeOfDay, error) {
	t := TimeOfDay{Hour: hour, Minutes: minutes, Period: period}
	if err := t.Validate(); err != nil {
		return TimeOfDay{}, err
	}
	return t, nil
}

// MustTimeOfDay is NewTimeOfDay for compile-time constants. It panics on
// malformed input.
func MustTimeOfDay(hour, minutes int, period Period) TimeOfDay {
	t, err := NewTimeOfDay(hour, minutes, period)
	if err != nil {
		panic(err)
	}
	return t
}

// Validate checks the hour, minute, and period ranges.
func (t TimeOfDay) Validate() error {
	if t.Hour < 1 || t.Hour > 12 {
		return fmt.Errorf("%w: hour %d out of range 1-12", ErrMalformedTime, t.Hour)
	}
	if t.Minutes < 0 || t.Minutes > 59 {
		return fmt.Errorf("%w: minutes %d out of range 0-59", ErrMalformedTime, t.Minutes)
	}
	if !t.Period.Valid() {
		return fmt.Errorf("%w: period %q must be AM or PM", ErrMalformedTime, string(t.Period))
	}
	return nil
}

// MinuteOfDay returns the number of minutes since midnight (12:00 AM = 0,
// 12:00 PM = 720, 11:59 PM = 1439).
func (t TimeOfDay) MinuteOfDay() int {
	h := t.Hour % 12
	if t.Period == PM {
		h += 12
	}
	return h*60 + t.Minutes
}

// FromMinuteOfDay is the inverse of MinuteOfDay. Values outside a single day
// wrap around, so 1440 is midnight and -30 is 11:30 PM.
func FromMinuteOfDay(m int) TimeOfDay {
	m = ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	h24 := m / 60
	t := TimeOfDay{Hour: h24 % 12, Minutes: m % 60, Period: AM}
	if h24 >= 12 {
		t.Period = PM
	}
	if t.Hour == 0 {
		t.Hour = 12
	}
	return t
}

// String renders t as "5:30 PM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%d:%02d %s", t.Hour, t.Minutes, t.Period)
}

// PickerValue renders t in the "hour|minutes|period" form submitted by the
// booking form's time picker, e.g. "5|30|PM".
func (t TimeOfDay) PickerValue() string {
	return fmt.Sprintf("%d|%d|%s", t.Hour, t.Minutes, t.Period)
}

// MarshalText encodes t as its String form. JSON and YAML both use it.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes any form accepted by ParseTimeOfDay.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTimeOfDay reads a time of day in one of three forms:
//
//	"5:30 PM", "5:30pm", "5 PM"   12-hour clock with period
//	"5|30|PM"                     time picker value
//	"17:30"                       24-hour clock (hour 0-23)
//
// Returns ErrMalformedTime for anything else, including out-of-range fields.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return TimeOfDay{}, fmt.Errorf("%w: empty time", ErrMalformedTime)
	}

	if strings.Contains(in, "|") {
		return parsePickerValue(in)
	}

	upper := strings.ToUpper(in)
	if strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM") {
		period := Period(upper[len(upper)-2:])
		hour, minutes, err := splitClock(strings.TrimSpace(upper[:len(upper)-2]), true)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("%w: %q: %v", ErrMalformedTime, s, err)
		}
		t, err := NewTimeOfDay(hour, minutes, period)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("%q: %w", s, err)
		}
		return t, nil
	}

	hour, minutes, err := splitClock(in, false)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q: %v", ErrMalformedTime, s, err)
	}
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: %q: hour %d out of range 0-23", ErrMalformedTime, s, hour)
	}
	if minutes < 0 || minutes > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q: minutes %d out of range 0-59", ErrMalformedTime, s, minutes)
	}
	return FromMinuteOfDay(hour*60 + minutes), nil
}

// parsePickerValue decodes "hour|minutes|period".
func parsePickerValue(s string) (TimeOfDay, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 3 {
		return TimeOfDay{}, fmt.Errorf("%w: picker value %q needs hour|minutes|period", ErrMalformedTime, s)
	}
	hour, err := atoiDigits(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: picker value %q: bad hour", ErrMalformedTime, s)
	}
	minutes, err := atoiDigits(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: picker value %q: bad minutes", ErrMalformedTime, s)
	}
	period, err := ParsePeriod(parts[2])
	if err != nil {
		return TimeOfDay{}, err
	}
	return NewTimeOfDay(hour, minutes, period)
}

// splitClock splits "H:MM" (or bare "H" when allowBareHour is set) into
// integer hour and minutes without range-checking them.
func splitClock(s string, allowBareHour bool) (int, int, error) {
	hourText, minuteText, found := strings.Cut(s, ":")
	if !found {
		if !allowBareHour {
			return 0, 0, errors.New("expected H:MM")
		}
		minuteText = "0"
	} else if len(minuteText) != 2 {
		return 0, 0, errors.New("minutes must be two digits")
	}
	hour, err := atoiDigits(hourText)
	if err != nil {
		return 0, 0, fmt.Errorf("bad hour %q", hourText)
	}
	minutes, err := atoiDigits(minuteText)
	if err != nil {
		return 0, 0, fmt.Errorf("bad minutes %q", minuteText)
	}
	return hour, minutes, nil
}

// atoiDigits is strconv.Atoi restricted to unsigned decimal text: signs,
// spaces and other non-digit bytes are rejected.
func atoiDigits(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty number")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%q is not a number", s)
		}
	}
	return strconv.Atoi(s)
}
