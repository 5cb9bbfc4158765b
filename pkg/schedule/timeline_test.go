package schedule

import "testing"

func TestTimeAt(t *testing.T) {
	const width = 1000

	tests := []struct {
		name   string
		x      int
		hour   int
		minute int
	}{
		{"left edge", 0, 0, 0},
		{"before left clamps", -50, 0, 0},
		{"midpoint", 500, 12, 0},
		{"near right edge", 999, 23, 55},
		{"right edge clamps to last slot", 1000, 23, 55},
		{"past right clamps", 1200, 23, 55},
	}
	for _, tc := range tests {
		hour, minute := TimeAt(tc.x, 0, width)
		if hour != tc.hour || minute != tc.minute {
			t.Fatalf("%s: expected %02d:%02d, got %02d:%02d", tc.name, tc.hour, tc.minute, hour, minute)
		}
	}
}

func TestTimeAtSnapsDownToFiveMinutes(t *testing.T) {
	// 1440 columns gives one column per minute; minutes must floor to the
	// increment below.
	hour, minute := TimeAt(9*60+4, 0, 1440)
	if hour != 9 || minute != 0 {
		t.Fatalf("expected 09:00, got %02d:%02d", hour, minute)
	}
	hour, minute = TimeAt(9*60+7, 0, 1440)
	if hour != 9 || minute != 5 {
		t.Fatalf("expected 09:05, got %02d:%02d", hour, minute)
	}
}

func TestTimeAtHonorsLeftOffset(t *testing.T) {
	hour, minute := TimeAt(30+50, 30, 100)
	if hour != 12 || minute != 0 {
		t.Fatalf("expected 12:00, got %02d:%02d", hour, minute)
	}
}

func TestSlotIndexInverse(t *testing.T) {
	const width = 48
	for hour := 0; hour < 24; hour++ {
		idx := SlotIndex(hour, 0, width)
		if idx < 0 || idx >= width {
			t.Fatalf("hour %d: index %d out of range", hour, idx)
		}
		gotHour, _ := TimeAt(idx, 0, width)
		if gotHour != hour {
			t.Fatalf("hour %d: round-tripped to %d via index %d", hour, gotHour, idx)
		}
	}
}

func TestTimeAtZeroWidth(t *testing.T) {
	hour, minute := TimeAt(10, 0, 0)
	if hour != 0 || minute != 0 {
		t.Fatalf("expected 00:00 for zero width, got %02d:%02d", hour, minute)
	}
}
