package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component.
// It is stored as a SQL date column and serialized as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// Today returns the current date in UTC, truncated to midnight.
func Today() Date {
	return DateOf(time.Now().UTC())
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON returns the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON parses a quoted "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %q, expected \"YYYY-MM-DD\"", s)
	}
	t, err := time.ParseInLocation(dateLayout, s[1:len(s)-1], time.UTC)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected \"YYYY-MM-DD\"", s)
	}
	*d = Date{t}
	return nil
}

// Value implements the driver.Valuer interface.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements the sql.Scanner interface.
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		t, err := time.ParseInLocation(dateLayout, string(v), time.UTC)
		if err != nil {
			return err
		}
		*d = Date{t}
		return nil
	case string:
		t, err := time.ParseInLocation(dateLayout, v, time.UTC)
		if err != nil {
			return err
		}
		*d = Date{t}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

// GormDataType tells GORM to map Date to a plain date column.
func (Date) GormDataType() string {
	return "date"
}
