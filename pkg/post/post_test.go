package post

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParsePlatform(t *testing.T) {
	p, err := ParsePlatform(" LinkedIn ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != LinkedIn {
		t.Fatalf("expected %q, got %q", LinkedIn, p)
	}

	if _, err := ParsePlatform("myspace"); err == nil {
		t.Fatalf("expected error for unknown platform")
	}
}

func TestNewMintsUniqueIDs(t *testing.T) {
	at := time.Date(2025, time.May, 10, 9, 0, 0, 0, time.Local)
	a, err := New("one", Instagram, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := New("two", Instagram, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID == "" || b.ID == "" {
		t.Fatalf("expected non-empty ids, got %q and %q", a.ID, b.ID)
	}
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids, both were %q", a.ID)
	}
	if a.Status != StatusScheduled {
		t.Fatalf("expected status %q, got %q", StatusScheduled, a.Status)
	}
}

func TestTimestampWithDatePreservesClock(t *testing.T) {
	ts := Timestamp{Time: time.Date(2025, time.May, 15, 14, 30, 0, 0, time.Local)}
	target := time.Date(2025, time.May, 20, 0, 0, 0, 0, time.Local)

	moved := ts.WithDate(target)
	if moved.String() != "2025-05-20T14:30" {
		t.Fatalf("expected 2025-05-20T14:30, got %s", moved)
	}
}

func TestTimestampWithClockRejectsOutOfRange(t *testing.T) {
	ts := Timestamp{Time: time.Date(2025, time.May, 15, 14, 30, 0, 0, time.Local)}

	if _, err := ts.WithClock(24, 0); err == nil {
		t.Fatalf("expected error for hour 24")
	}
	if _, err := ts.WithClock(12, 60); err == nil {
		t.Fatalf("expected error for minute 60")
	}

	set, err := ts.WithClock(23, 55)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.String() != "2025-05-15T23:55" {
		t.Fatalf("expected 2025-05-15T23:55, got %s", set)
	}
}

func TestTimestampJSONRoundTrip(t *testing.T) {
	in := Post{
		ID:            "p1",
		Title:         "launch",
		Platform:      YouTube,
		ScheduledTime: Timestamp{Time: time.Date(2025, time.May, 10, 9, 0, 0, 0, time.Local)},
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Post
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.ScheduledTime.Equal(in.ScheduledTime.Time) {
		t.Fatalf("expected %s, got %s", in.ScheduledTime, out.ScheduledTime)
	}
}
