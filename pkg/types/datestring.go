package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateString is a calendar date in "YYYY-MM-DD" format. It identifies a
// day by its calendar identity only, so two timestamps on the same local
// day normalize to the same DateString regardless of their time-of-day or
// zone offset. All date comparisons in the service go through this type;
// comparing raw time.Time values for day equality is a recurring bug.
type DateString string

// NewDateString creates a DateString from the calendar-day part of t.
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString parses s as "YYYY-MM-DD".
func NewDateStringFromString(s string) (DateString, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date string %q: %w", s, err)
	}
	return DateString(t.Format(dateLayout)), nil
}

// String implements fmt.Stringer.
func (d DateString) String() string {
	return string(d)
}

// IsZero returns true if the value is empty.
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate checks that the value parses as "YYYY-MM-DD".
func (d DateString) Validate() error {
	_, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return fmt.Errorf("invalid date string %q: %w", string(d), err)
	}
	return nil
}

// IsBefore reports whether d is an earlier calendar day than other.
// Lexicographic comparison is correct for the zero-padded ISO layout.
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

// IsAfter reports whether d is a later calendar day than other.
func (d DateString) IsAfter(other DateString) bool {
	return string(d) > string(other)
}

// Time returns the date at midnight UTC.
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date string %q: %w", string(d), err)
	}
	return t, nil
}

// Weekday returns the day of week for the date.
func (d DateString) Weekday() (time.Weekday, error) {
	t, err := d.Time()
	if err != nil {
		return time.Sunday, err
	}
	return t.Weekday(), nil
}

// Value implements driver.Valuer for storing as text.
func (d DateString) Value() (driver.Value, error) {
	return string(d), nil
}

// Scan implements sql.Scanner. Accepts text, bytes and time.Time
// (Postgres DATE columns scan as time.Time with lib/pq).
func (d *DateString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
		return nil
	case string:
		*d = DateString(v)
		return nil
	case []byte:
		*d = DateString(v)
		return nil
	case time.Time:
		*d = NewDateString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateString", src)
	}
}
