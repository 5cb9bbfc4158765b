package calendar

import (
	"testing"
	"time"

	"tableflip.dev/postdeck/pkg/schedule"
)

func monthCells(t *testing.T) []Cell {
	t.Helper()
	now := time.Date(2025, time.May, 15, 10, 0, 0, 0, time.Local)
	grid := schedule.BuildGrid(now, schedule.ModeMonth, now)
	return Cells(grid, make([]int, len(grid)))
}

func TestHitTestCorners(t *testing.T) {
	cells := monthCells(t)

	// First cell, header shown: row 0 is the weekday header.
	idx, ok := HitTest(0, 1, len(cells), true)
	if !ok || idx != 0 {
		t.Fatalf("expected cell 0, got %d ok=%v", idx, ok)
	}

	// Header row itself is a miss.
	if _, ok := HitTest(0, 0, len(cells), true); ok {
		t.Fatalf("expected header row to miss")
	}

	// Last cell of the first row: column 6 spans x = 18..20.
	idx, ok = HitTest(18, 1, len(cells), true)
	if !ok || idx != 6 {
		t.Fatalf("expected cell 6, got %d ok=%v", idx, ok)
	}

	// Separator column belongs to the cell on its left.
	idx, ok = HitTest(2, 1, len(cells), true)
	if !ok || idx != 0 {
		t.Fatalf("expected separator to hit cell 0, got %d ok=%v", idx, ok)
	}

	// Beyond the last column is a miss.
	if _, ok := HitTest(21, 1, len(cells), true); ok {
		t.Fatalf("expected x past column 6 to miss")
	}

	// Below the grid is a miss.
	rows := len(cells) / 7
	if _, ok := HitTest(0, rows+1, len(cells), true); ok {
		t.Fatalf("expected y below grid to miss")
	}
}

func TestHitTestRoundTripsAllCells(t *testing.T) {
	cells := monthCells(t)
	for want := range cells {
		row := want / 7
		col := want % 7
		got, ok := HitTest(col*cellPitch, row+1, len(cells), true)
		if !ok || got != want {
			t.Fatalf("cell %d: hit test returned %d ok=%v", want, got, ok)
		}
	}
}

func TestRenderRowCount(t *testing.T) {
	cells := monthCells(t)
	out := Render(cells, DefaultOptions())

	lines := 1
	for _, r := range out {
		if r == '\n' {
			lines++
		}
	}
	if want := Height(len(cells), true); lines != want {
		t.Fatalf("expected %d lines, got %d", want, lines)
	}
}
