// Package calendar renders the month/week day grid and maps pointer
// positions back onto day cells.
package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/postdeck/pkg/schedule"
)

// cellPitch is the rendered width of one day cell including its separator.
const cellPitch = 3

// Cell pairs a grid day with its render state.
type Cell struct {
	Day          schedule.Day
	Count        int
	IsSelected   bool
	IsDropTarget bool
}

// Options controls calendar styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	OutMonthStyle lipgloss.Style
	PostStyle     lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	DropStyle     lipgloss.Style
	ShowHeader    bool
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	header := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true)
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	outMonth := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	withPosts := lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	today := lipgloss.NewStyle().Underline(true)
	selected := lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0"))
	drop := lipgloss.NewStyle().Background(lipgloss.Color("70")).Foreground(lipgloss.Color("0"))
	return Options{
		HeaderStyle:   header,
		EmptyStyle:    empty,
		OutMonthStyle: outMonth,
		PostStyle:     withPosts,
		TodayStyle:    today,
		SelectedStyle: selected,
		DropStyle:     drop,
		ShowHeader:    true,
	}
}

// Cells annotates a grid with post counts. counts must be aligned with days,
// as produced from schedule.BucketByDay buckets.
func Cells(days []schedule.Day, counts []int) []Cell {
	cells := make([]Cell, len(days))
	for i, d := range days {
		c := Cell{Day: d}
		if i < len(counts) {
			c.Count = counts[i]
		}
		cells[i] = c
	}
	return cells
}

// Render produces the multi-line grid for the given cells, seven per row.
func Render(cells []Cell, opts Options) string {
	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}

	for row := 0; row*7 < len(cells); row++ {
		var rendered []string
		for col := 0; col < 7; col++ {
			idx := row*7 + col
			if idx >= len(cells) {
				break
			}
			rendered = append(rendered, renderCell(cells[idx], opts))
		}
		lines = append(lines, strings.Join(rendered, " "))
	}

	return strings.Join(lines, "\n")
}

func renderCell(c Cell, opts Options) string {
	text := fmt.Sprintf("%2d", c.Day.Date.Day())

	style := opts.EmptyStyle
	if !c.Day.InMonth {
		style = opts.OutMonthStyle
	}
	if c.Count > 0 {
		style = opts.PostStyle
	}
	if c.Day.IsToday {
		style = style.Copy().Inherit(opts.TodayStyle)
	}
	if c.IsSelected {
		style = style.Copy().Inherit(opts.SelectedStyle)
	}
	if c.IsDropTarget {
		style = style.Copy().Inherit(opts.DropStyle)
	}
	return style.Render(text)
}

// HitTest maps a position relative to the rendered grid's top-left corner to
// a cell index. The separator column counts as part of the cell on its left,
// which keeps near-miss drops forgiving.
func HitTest(x, y int, cellCount int, showHeader bool) (int, bool) {
	if x < 0 || y < 0 {
		return 0, false
	}
	if showHeader {
		y--
		if y < 0 {
			return 0, false
		}
	}
	col := x / cellPitch
	if col > 6 {
		return 0, false
	}
	idx := y*7 + col
	if idx >= cellCount {
		return 0, false
	}
	return idx, true
}

// Height reports the rendered height in rows.
func Height(cellCount int, showHeader bool) int {
	rows := (cellCount + 6) / 7
	if showHeader {
		rows++
	}
	return rows
}
