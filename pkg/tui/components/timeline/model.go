// Package timeline implements the 24-hour time-slot editor: a draggable
// axis that maps pointer positions to wall-clock times in 5-minute steps.
package timeline

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/postdeck/pkg/post"
	"tableflip.dev/postdeck/pkg/schedule"
	"tableflip.dev/postdeck/pkg/tui/events"
)

// ComponentID identifies timeline events at the top level.
const ComponentID = events.ComponentID("timeline")

// DefaultAxisWidth is one column per half hour.
const DefaultAxisWidth = 48

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	axisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Faint(true)
	hintStyle   = lipgloss.NewStyle().Faint(true).Italic(true)
)

// Model edits the scheduled time of exactly one post. Pointer moves preview
// into a local draft; nothing reaches the store until the edit is saved.
type Model struct {
	orig  post.Post
	draft post.Post

	axisX     int // absolute screen column of the axis start
	axisY     int // absolute screen row of the axis
	axisWidth int

	dragging bool
}

// New builds an editor over a local copy of the post.
func New(p post.Post) *Model {
	return &Model{
		orig:      p,
		draft:     p,
		axisWidth: DefaultAxisWidth,
	}
}

// Draft returns the locally edited copy.
func (m *Model) Draft() post.Post {
	return m.draft
}

// AxisOffset reports where the axis sits relative to the rendered view's
// top-left corner, so the host can translate global pointer coordinates.
func (m *Model) AxisOffset() (dx, dy int) {
	return 2 + len("00:00 "), 2
}

// SetBounds records the absolute screen position of the axis.
func (m *Model) SetBounds(x, y int) {
	m.axisX = x
	m.axisY = y
}

// Update handles pointer and key input. A click anywhere on the axis is a
// single-shot update; press-and-move previews continuously.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			prev, next := m.orig, m.draft
			return func() tea.Msg {
				return events.PostChangeMsg{Component: ComponentID, Prev: prev, Next: next}
			}
		case "esc":
			return func() tea.Msg {
				return events.CloseOverlayMsg{Component: ComponentID}
			}
		}
	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button != tea.MouseButtonLeft || !m.onAxis(msg.X, msg.Y) {
				return nil
			}
			m.dragging = true
			m.preview(msg.X)
		case tea.MouseActionMotion:
			if m.dragging {
				m.preview(msg.X)
			}
		case tea.MouseActionRelease:
			m.dragging = false
		}
	}
	return nil
}

func (m *Model) onAxis(x, y int) bool {
	return y == m.axisY && x >= m.axisX && x < m.axisX+m.axisWidth
}

// preview recomputes the draft time from the pointer position. An impossible
// clock value keeps the prior draft rather than committing a corrupt
// timestamp.
func (m *Model) preview(x int) {
	hour, minute := schedule.TimeAt(x, m.axisX, m.axisWidth)
	ts, err := m.draft.ScheduledTime.WithClock(hour, minute)
	if err != nil {
		return
	}
	m.draft.ScheduledTime = ts
}

// View renders the editor.
func (m *Model) View() string {
	marker := schedule.SlotIndex(m.draft.ScheduledTime.Hour(), m.draft.ScheduledTime.Minute(), m.axisWidth)

	axis := axisStyle.Render(strings.Repeat("┈", marker)) +
		markerStyle.Render("●") +
		axisStyle.Render(strings.Repeat("┈", m.axisWidth-marker-1))

	lines := []string{
		"  " + titleStyle.Render(fmt.Sprintf("Pick a time · %s", m.draft.Title)),
		"",
		"  " + labelStyle.Render("00:00 ") + axis + labelStyle.Render(" 23:55"),
		"  " + markerStyle.Render(m.draft.ScheduledTime.Format("15:04")),
		"",
		"  " + hintStyle.Render("drag or click the line · enter save · esc cancel"),
	}
	return strings.Join(lines, "\n")
}
