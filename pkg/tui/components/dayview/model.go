// Package dayview shows the posts scheduled on a single day and routes the
// user toward the edit and time-slot overlays.
package dayview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/postdeck/pkg/post"
	"tableflip.dev/postdeck/pkg/tui/events"
)

// ComponentID identifies dayview events at the top level.
const ComponentID = events.ComponentID("dayview")

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle = lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0"))
	timeStyle   = lipgloss.NewStyle().Faint(true)
	emptyStyle  = lipgloss.NewStyle().Faint(true).Italic(true)
	hintStyle   = lipgloss.NewStyle().Faint(true).Italic(true)
)

// Model lists one day's posts with a movable cursor.
type Model struct {
	day    post.Timestamp
	posts  []post.Post
	cursor int
}

// New builds a day view for the given day.
func New(day post.Timestamp, posts []post.Post) *Model {
	return &Model{day: day, posts: posts}
}

// SetPosts refreshes the listing after a committed edit, keeping the cursor
// clamped to the new bounds.
func (m *Model) SetPosts(posts []post.Post) {
	m.posts = posts
	if m.cursor >= len(posts) {
		m.cursor = len(posts) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the post under the cursor.
func (m *Model) Selected() (post.Post, bool) {
	if len(m.posts) == 0 {
		return post.Post{}, false
	}
	return m.posts[m.cursor], true
}

// Update handles navigation keys.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.posts)-1 {
			m.cursor++
		}
	case "enter", "e":
		if p, ok := m.Selected(); ok {
			return func() tea.Msg {
				return events.PostSelectMsg{Component: ComponentID, ID: p.ID}
			}
		}
	case "t":
		if p, ok := m.Selected(); ok {
			return func() tea.Msg {
				return events.EditTimeMsg{Component: ComponentID, ID: p.ID}
			}
		}
	case "esc", "q":
		return func() tea.Msg {
			return events.CloseOverlayMsg{Component: ComponentID}
		}
	}
	return nil
}

// View renders the day's posts.
func (m *Model) View() string {
	lines := []string{
		"  " + titleStyle.Render(m.day.Format("January 2, 2006")),
		"",
	}

	if len(m.posts) == 0 {
		lines = append(lines, "  "+emptyStyle.Render("nothing scheduled"))
	}
	for i, p := range m.posts {
		row := fmt.Sprintf("%s  %-10s %s",
			timeStyle.Render(p.ScheduledTime.Format("15:04")), p.Platform, p.Title)
		if i == m.cursor {
			row = cursorStyle.Render(row)
		}
		lines = append(lines, "  "+row)
	}

	lines = append(lines, "", "  "+hintStyle.Render("enter edit · t time · esc close"))
	return strings.Join(lines, "\n")
}
