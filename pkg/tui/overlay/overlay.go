// Package overlay paints a floating panel over a rendered background view.
// The dashboard uses it for the day detail, edit form, and time slot panels.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Frame is the border drawn around every floating panel.
var Frame = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// Placement controls where the panel lands on the background.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
}

// Centered places the panel in the middle of the screen.
var Centered = Placement{Horizontal: lipgloss.Center, Vertical: lipgloss.Center}

// Compose paints the panel over the background, keeping background content
// visible outside the panel bounds. An empty panel returns the background
// normalized to width by height.
func Compose(background string, width, height int, panel string, placement Placement) string {
	bg := normalize(background, width, height)
	if panel == "" {
		return strings.Join(bg, "\n")
	}

	lines := strings.Split(panel, "\n")
	pw, ph := measure(lines)
	if pw == 0 || ph == 0 {
		return strings.Join(bg, "\n")
	}
	if pw > width {
		pw = width
	}
	if ph > height {
		ph = height
	}

	x, y := Offsets(width, height, pw, ph, placement)

	for row := 0; row < ph; row++ {
		dest := y + row
		if dest < 0 || dest >= len(bg) {
			continue
		}
		line := ""
		if row < len(lines) {
			line = lines[row]
		}
		line = pad(line, pw)

		base := bg[dest]
		bg[dest] = cut(base, 0, x) + line + cut(base, x+pw, width)
	}

	return strings.Join(bg, "\n")
}

// Offsets reports the top-left cell the panel occupies for the given
// placement. The dashboard uses it to map screen mouse coordinates back into
// panel-local ones.
func Offsets(width, height, panelWidth, panelHeight int, placement Placement) (int, int) {
	h := placement.Horizontal
	if h == 0 {
		h = lipgloss.Center
	}
	v := placement.Vertical
	if v == 0 {
		v = lipgloss.Center
	}

	x := placement.MarginX
	switch h {
	case lipgloss.Right:
		x = width - panelWidth - placement.MarginX
	case lipgloss.Center:
		x = (width - panelWidth) / 2
	}
	x = clamp(x, 0, width-panelWidth)

	y := placement.MarginY
	switch v {
	case lipgloss.Bottom:
		y = height - panelHeight - placement.MarginY
	case lipgloss.Center:
		y = (height - panelHeight) / 2
	}
	y = clamp(y, 0, height-panelHeight)

	return x, y
}

// Measure reports the rendered width and height of a panel view.
func Measure(panel string) (int, int) {
	return measure(strings.Split(panel, "\n"))
}

func measure(lines []string) (int, int) {
	w := 0
	for _, line := range lines {
		if lw := lipgloss.Width(line); lw > w {
			w = lw
		}
	}
	return w, len(lines)
}

func normalize(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = pad(lines[i], width)
	}
	return lines
}

func pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	if w >= width {
		return lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	return s + strings.Repeat(" ", width-w)
}

// cut returns the cells of s between the start and end columns.
func cut(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if w := lipgloss.Width(s); end > w {
		end = w
	}
	if start >= end {
		return ""
	}

	var out strings.Builder
	seen := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		next := seen + rw
		if next <= start {
			seen = next
			continue
		}
		if seen >= end || next > end {
			break
		}
		out.WriteRune(r)
		seen = next
	}
	return out.String()
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
