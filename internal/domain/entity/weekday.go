package entity

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Weekday is a short day-of-week name as used in doctor schedules.
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

var weekdayNames = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// WeekdayOf returns the Weekday for a calendar date.
func WeekdayOf(date time.Time) Weekday {
	return weekdayNames[date.Weekday()]
}

// WeekdaySet is the set of weekdays a doctor accepts appointments.
// It is stored as a comma-separated string ("Mon,Tue,Fri"); parsing and
// serialization happen only at the storage boundary via Scan/Value.
type WeekdaySet []Weekday

// Contains reports whether the set includes the given weekday.
func (s WeekdaySet) Contains(day Weekday) bool {
	for _, d := range s {
		if d == day {
			return true
		}
	}
	return false
}

// Scan implements sql.Scanner.
func (s *WeekdaySet) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into WeekdaySet", value)
	}

	set := WeekdaySet{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		set = append(set, Weekday(part))
	}
	*s = set
	return nil
}

// Value implements driver.Valuer.
func (s WeekdaySet) Value() (driver.Value, error) {
	names := make([]string, len(s))
	for i, d := range s {
		names[i] = string(d)
	}
	return strings.Join(names, ","), nil
}

func (s WeekdaySet) String() string {
	v, _ := s.Value()
	return v.(string)
}
