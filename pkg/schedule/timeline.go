package schedule

// Timeline position math for the 24-hour time-slot editor. A pointer position
// along the timeline maps to a wall-clock time snapped down to 5-minute
// increments.

const (
	minutesPerDay = 24 * 60
	snapMinutes   = 5
)

// TimeAt maps a pointer x-position within the timeline's bounds to an hour
// and minute. Positions outside [left, left+width) clamp to the first and
// last slots.
func TimeAt(x, left, width int) (hour, minute int) {
	if width <= 0 {
		return 0, 0
	}
	frac := float64(x-left) / float64(width)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	total := int(frac * minutesPerDay)
	if total >= minutesPerDay {
		total = minutesPerDay - 1
	}
	hour = total / 60
	minute = (total % 60) / snapMinutes * snapMinutes
	return hour, minute
}

// SlotIndex converts an hour and minute to the position of its 5-minute slot
// within [0, width). It is the rendering inverse of TimeAt.
func SlotIndex(hour, minute, width int) int {
	if width <= 0 {
		return 0
	}
	total := hour*60 + minute
	idx := total * width / minutesPerDay
	if idx >= width {
		idx = width - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
