package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and column representation of a calendar date.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component.
// It renders as a "YYYY-MM-DD" JSON string and maps to a DATE column,
// so the HTTP payload and the persisted value always agree.
type Date struct {
	time.Time
}

// Today returns the current calendar date in UTC.
func Today() Date {
	return DateOf(time.Now().UTC())
}

// DateOf truncates t down to its calendar date.
func DateOf(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// String renders the date in DateLayout form.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON renders the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses a quoted "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}

	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}

	*d = Date{parsed}
	return nil
}

// Value implements driver.Valuer so a Date can be bound as a query argument.
// The date is bound in its text form, which Postgres casts to DATE and SQLite
// stores verbatim, keeping both backends round-trippable through Scan.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner. Postgres DATE columns scan as time.Time;
// SQLite may hand back the stored text instead.
func (d *Date) Scan(src any) error {
	switch value := src.(type) {
	case time.Time:
		*d = DateOf(value)
		return nil
	case string:
		parsed, err := time.Parse(DateLayout, value)
		if err != nil {
			return fmt.Errorf("scanning date %q: %w", value, err)
		}
		*d = Date{parsed}
		return nil
	case []byte:
		return d.Scan(string(value))
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
