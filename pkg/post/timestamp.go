package post

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the wall-clock layout used everywhere a scheduled time crosses a
// boundary (flags, JSON, display). Scheduled times are timezone-naive: they
// mean local wall-clock time wherever the schedule is read.
const Layout = "2006-01-02T15:04"

// ParseTime parses a wall-clock timestamp like "2025-05-10T09:00".
func ParseTime(v string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, v, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp wraps time.Time with wall-clock JSON encoding.
type Timestamp struct {
	time.Time
}

// SameDay reports whether the timestamp falls on the same calendar day.
func (t Timestamp) SameDay(then time.Time) bool {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := then.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// SameMonth reports whether the timestamp falls in the same calendar month.
func (t Timestamp) SameMonth(then time.Time) bool {
	return t.Year() == then.Year() && t.Month() == then.Month()
}

// WithDate keeps the hour and minute but moves the timestamp onto the given
// calendar day.
func (t Timestamp) WithDate(day time.Time) Timestamp {
	return Timestamp{Time: time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0, t.Location(),
	)}
}

// WithClock keeps the calendar day but sets a new hour and minute. Out of
// range values are rejected so a bad edit can never produce a corrupt
// timestamp.
func (t Timestamp) WithClock(hour, minute int) (Timestamp, error) {
	if hour < 0 || hour > 23 {
		return t, fmt.Errorf("post: hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return t, fmt.Errorf("post: minute %d out of range", minute)
	}
	return Timestamp{Time: time.Date(
		t.Year(), t.Month(), t.Day(),
		hour, minute, 0, 0, t.Location(),
	)}, nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.Format(Layout)
}
