// Package app hosts the Bubble Tea program for the scheduling dashboard.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/postdeck/pkg/post"
	"tableflip.dev/postdeck/pkg/schedule"
	"tableflip.dev/postdeck/pkg/store"
	"tableflip.dev/postdeck/pkg/tui/components/calendar"
	"tableflip.dev/postdeck/pkg/tui/components/dayview"
	"tableflip.dev/postdeck/pkg/tui/components/editform"
	"tableflip.dev/postdeck/pkg/tui/components/timeline"
	"tableflip.dev/postdeck/pkg/tui/drag"
	"tableflip.dev/postdeck/pkg/tui/events"
	"tableflip.dev/postdeck/pkg/tui/overlay"
)

// Fixed rows above the calendar grid: the period title and a spacer.
const calTop = 2

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	modeStyle   = lipgloss.NewStyle().Faint(true)
	stripStyle  = lipgloss.NewStyle().Faint(true)
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pickedStyle = lipgloss.NewStyle().Reverse(true)
	hintStyle   = lipgloss.NewStyle().Faint(true).Italic(true)
	noteStyle   = lipgloss.NewStyle().Italic(true)
)

// Model is the top level dashboard: the day grid, the selected day's post
// strip, the drag gesture, and whichever overlay is open.
type Model struct {
	store *store.Store
	now   func() time.Time

	sel  time.Time
	mode schedule.Mode

	days    []schedule.Day
	buckets [][]post.Post
	strip   []post.Post

	gesture drag.Gesture
	dropIdx int

	width  int
	height int
	note   string

	day  *dayview.Model
	form *editform.Model
	line *timeline.Model
}

// Option configures the dashboard before it runs.
type Option func(*Model)

// WithMode sets the calendar mode the dashboard opens in.
func WithMode(mode schedule.Mode) Option {
	return func(m *Model) {
		m.mode = mode
	}
}

// New builds a dashboard over the store, opened on today in month view.
func New(s *store.Store, opts ...Option) *Model {
	m := &Model{
		store:   s,
		now:     time.Now,
		mode:    schedule.ModeMonth,
		dropIdx: -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.sel = m.now()
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd { return nil }

// refresh rebuilds the grid and buckets from the store around the selected
// day.
func (m *Model) refresh() {
	m.days = schedule.BuildGrid(m.sel, m.mode, m.now())
	all := m.store.All()
	m.buckets = schedule.BucketByDay(all, m.days)
	m.strip = schedule.PostsOn(all, m.sel)
	if m.day != nil {
		m.day.SetPosts(m.strip)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.placeTimeline()
		return m, nil

	case events.PostSelectMsg:
		if p, ok := m.store.Get(msg.ID); ok {
			m.form = editform.New(p)
		}
		return m, nil

	case events.EditTimeMsg:
		if p, ok := m.store.Get(msg.ID); ok {
			m.line = timeline.New(p)
			m.placeTimeline()
		}
		return m, nil

	case events.PostChangeMsg:
		m.commit(msg)
		return m, nil

	case events.PostsReloadedMsg:
		m.store.Sync(msg.Posts)
		m.refresh()
		return m, nil

	case events.CloseOverlayMsg:
		switch msg.Component {
		case dayview.ComponentID:
			m.day = nil
		case editform.ComponentID:
			m.form = nil
		case timeline.ComponentID:
			m.line = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	return m, m.routeOverlay(msg)
}

// commit applies an edited post to the store and closes the overlay the
// change came from.
func (m *Model) commit(msg events.PostChangeMsg) {
	if !m.store.Update(msg.Prev.ID, msg.Next) {
		m.note = fmt.Sprintf("post %s no longer exists", msg.Prev.ID)
		return
	}
	switch msg.Component {
	case editform.ComponentID:
		m.form = nil
		m.note = fmt.Sprintf("saved %s", msg.Next.Title)
	case timeline.ComponentID:
		m.line = nil
		m.note = fmt.Sprintf("%s now at %s", msg.Next.Title, msg.Next.ScheduledTime.Format("15:04"))
	}
	m.refresh()
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays own the keyboard while open, except ctrl+c.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.overlayOpen() {
		return m, m.routeOverlay(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.gesture.Dragging() {
			m.gesture.Cancel()
			m.dropIdx = -1
			m.note = "move cancelled"
		}
	case "w":
		if m.mode == schedule.ModeMonth {
			m.mode = schedule.ModeWeek
		} else {
			m.mode = schedule.ModeMonth
		}
		m.refresh()
	case "t":
		m.sel = m.now()
		m.refresh()
	case "h":
		m.shiftPeriod(-1)
	case "l":
		m.shiftPeriod(1)
	case "left":
		m.shiftDays(-1)
	case "right":
		m.shiftDays(1)
	case "up":
		m.shiftDays(-7)
	case "down":
		m.shiftDays(7)
	case "enter":
		m.day = dayview.New(post.Timestamp{Time: m.sel}, m.strip)
	}
	return m, nil
}

func (m *Model) shiftPeriod(n int) {
	if m.mode == schedule.ModeWeek {
		m.sel = m.sel.AddDate(0, 0, 7*n)
	} else {
		m.sel = m.sel.AddDate(0, n, 0)
	}
	m.refresh()
}

func (m *Model) shiftDays(n int) {
	m.sel = m.sel.AddDate(0, 0, n)
	m.refresh()
}

func (m *Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.overlayOpen() {
		return m, m.routeOverlay(msg)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if i, ok := m.stripIndex(msg.X, msg.Y); ok {
			m.gesture.Start(m.strip[i].ID, m.sel)
			m.note = fmt.Sprintf("moving %s", m.strip[i].Title)
			return m, nil
		}
		if idx, ok := calendar.HitTest(msg.X, msg.Y-calTop, len(m.days), true); ok {
			m.sel = m.days[idx].Date
			m.refresh()
		}

	case tea.MouseActionMotion:
		if !m.gesture.Dragging() {
			return m, nil
		}
		if idx, ok := calendar.HitTest(msg.X, msg.Y-calTop, len(m.days), true); ok {
			m.gesture.Move(m.days[idx].Date, true)
			m.dropIdx = idx
		} else {
			m.gesture.Move(time.Time{}, false)
			m.dropIdx = -1
		}

	case tea.MouseActionRelease:
		if !m.gesture.Dragging() {
			return m, nil
		}
		m.dropIdx = -1
		drop, ok := m.gesture.Drop()
		if !ok {
			m.note = "move cancelled"
			return m, nil
		}
		p, found := m.store.Get(drop.PostID)
		if !found {
			return m, nil
		}
		moved := schedule.Reschedule(p, drop.Day)
		m.store.Update(p.ID, moved)
		m.sel = drop.Day
		m.note = fmt.Sprintf("%s moved to %s", moved.Title, moved.ScheduledTime.Format("Mon Jan 2 15:04"))
		m.refresh()
	}
	return m, nil
}

// stripIndex maps a screen position to a post line in the selected day strip.
func (m *Model) stripIndex(x, y int) (int, bool) {
	top := m.stripTop()
	i := y - top
	if x < 0 || i < 0 || i >= len(m.strip) {
		return 0, false
	}
	return i, true
}

// stripTop is the row of the first post line: the grid, a spacer, and the
// strip heading sit above it.
func (m *Model) stripTop() int {
	return calTop + calendar.Height(len(m.days), true) + 2
}

func (m *Model) overlayOpen() bool {
	return m.day != nil || m.form != nil || m.line != nil
}

// routeOverlay forwards a message to the topmost open overlay.
func (m *Model) routeOverlay(msg tea.Msg) tea.Cmd {
	switch {
	case m.line != nil:
		return m.line.Update(msg)
	case m.form != nil:
		return m.form.Update(msg)
	case m.day != nil:
		return m.day.Update(msg)
	}
	return nil
}

// placeTimeline tells the timeline overlay where its axis sits on screen so
// it can hit test absolute mouse coordinates.
func (m *Model) placeTimeline() {
	if m.line == nil || m.width == 0 {
		return
	}
	panel := overlay.Frame.Render(m.line.View())
	pw, ph := overlay.Measure(panel)
	x, y := overlay.Offsets(m.width, m.height, pw, ph, overlay.Centered)
	dx, dy := m.line.AxisOffset()
	// Frame contributes one border cell and one padding cell on the left,
	// one border row on top.
	m.line.SetBounds(x+2+dx, y+1+dy)
}

func (m *Model) View() string {
	var b strings.Builder

	title := m.sel.Format("January 2006")
	if m.mode == schedule.ModeWeek {
		start := schedule.StartOfWeek(m.sel)
		title = fmt.Sprintf("%s - %s", start.Format("Jan 2"), start.AddDate(0, 0, 6).Format("Jan 2 2006"))
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString(modeStyle.Render(fmt.Sprintf("  · %s view", m.mode)))
	b.WriteString("\n\n")

	cells := calendar.Cells(m.days, counts(m.buckets))
	for i := range cells {
		if sameDay(cells[i].Day.Date, m.sel) {
			cells[i].IsSelected = true
		}
		if i == m.dropIdx {
			cells[i].IsDropTarget = true
		}
	}
	b.WriteString(calendar.Render(cells, calendar.DefaultOptions()))
	b.WriteString("\n\n")

	b.WriteString(m.renderStrip())
	b.WriteString("\n\n")

	if m.note != "" {
		b.WriteString(noteStyle.Render(m.note))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("←→↑↓ select · h/l page · w week/month · enter open · drag post to move · q quit"))

	view := b.String()
	if panel := m.panelView(); panel != "" {
		w, h := m.width, m.height
		if w == 0 {
			w, h = overlay.Measure(view)
		}
		return overlay.Compose(view, w, h, panel, overlay.Centered)
	}
	return view
}

func (m *Model) renderStrip() string {
	lines := []string{
		stripStyle.Render(fmt.Sprintf("%s · %d scheduled", m.sel.Format("Mon Jan 2"), len(m.strip))),
	}
	for _, p := range m.strip {
		line := fmt.Sprintf("%s  %-10s %s", timeStyle.Render(p.ScheduledTime.Format("15:04")), p.Platform, p.Title)
		if m.gesture.Dragging() && m.gesture.PostID() == p.ID {
			line = pickedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) panelView() string {
	switch {
	case m.line != nil:
		return overlay.Frame.Render(m.line.View())
	case m.form != nil:
		return overlay.Frame.Render(m.form.View())
	case m.day != nil:
		return overlay.Frame.Render(m.day.View())
	}
	return ""
}

func counts(buckets [][]post.Post) []int {
	out := make([]int, len(buckets))
	for i, b := range buckets {
		out[i] = len(b)
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Run starts the dashboard over the store and blocks until it exits.
func Run(ctx context.Context, s *store.Store, opts ...Option) error {
	return RunWatched(ctx, s, nil, opts...)
}

// RunWatched additionally follows the persistence layer, reloading the
// dashboard when another process edits the database.
func RunWatched(ctx context.Context, s *store.Store, p store.Persistence, opts ...Option) error {
	prog := tea.NewProgram(New(s, opts...),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if p != nil {
		changes, err := p.Watch(ctx)
		if err != nil {
			return err
		}
		go func() {
			for range changes {
				prog.Send(events.PostsReloadedMsg{Posts: p.ListAll(ctx)})
			}
		}()
	}

	_, err := prog.Run()
	return err
}
