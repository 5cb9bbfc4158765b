// Package schedule implements the calendar view-model: grid construction,
// day bucketing, rescheduling, and timeline position math. Everything here is
// pure so the CLI and TUI layers can share it.
package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects the visible calendar range.
type Mode string

const (
	ModeMonth Mode = "month"
	ModeWeek  Mode = "week"
)

// ParseMode converts a string to a Mode or returns an error for unknown values.
func ParseMode(raw string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(raw)))
	switch m {
	case ModeMonth, ModeWeek:
		return m, nil
	case "":
		return ModeMonth, nil
	}
	return "", fmt.Errorf("schedule: unknown view mode %q", raw)
}

// Day describes a single calendar day cell.
type Day struct {
	Date    time.Time
	InMonth bool
	IsToday bool
}

// BuildGrid computes the ordered day cells visible for the reference date.
// Month mode pads to whole Sunday-started weeks around the reference month;
// week mode returns exactly the seven days of the reference week. The grid is
// never empty.
func BuildGrid(ref time.Time, mode Mode, now time.Time) []Day {
	switch mode {
	case ModeWeek:
		return buildWeek(ref, now)
	default:
		return buildMonth(ref, now)
	}
}

func buildMonth(ref time.Time, now time.Time) []Day {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	last := first.AddDate(0, 1, -1)

	start := StartOfWeek(first)
	end := StartOfWeek(last).AddDate(0, 0, 7)

	days := make([]Day, 0, 42)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{
			Date:    d,
			InMonth: d.Month() == ref.Month() && d.Year() == ref.Year(),
			IsToday: sameDay(d, now),
		})
	}
	return days
}

func buildWeek(ref time.Time, now time.Time) []Day {
	start := StartOfWeek(ref)
	days := make([]Day, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, Day{
			Date:    d,
			InMonth: true,
			IsToday: sameDay(d, now),
		})
	}
	return days
}

// StartOfWeek truncates to midnight of the Sunday beginning t's week.
func StartOfWeek(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// DaysIn returns the number of days in t's month.
func DaysIn(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1).Day()
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
