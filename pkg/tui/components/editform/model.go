// Package editform implements the modal form that edits a post's fields.
// Edits land in a local draft and reach the store only on save.
package editform

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/postdeck/pkg/post"
	"tableflip.dev/postdeck/pkg/tui/events"
)

// ComponentID identifies edit-form events at the top level.
const ComponentID = events.ComponentID("editform")

const (
	fieldTitle = iota
	fieldContent
	fieldPlatform
	fieldWhen
	fieldCount
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(10)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle  = lipgloss.NewStyle().Faint(true).Italic(true)
)

// Model is the edit form for a single post.
type Model struct {
	orig   post.Post
	inputs [fieldCount]textinput.Model
	focus  int
	errMsg string
}

// New builds a form pre-filled from the post.
func New(p post.Post) *Model {
	m := &Model{orig: p}

	labels := [fieldCount]string{"title", "content", "platform", "when"}
	values := [fieldCount]string{p.Title, p.Content, string(p.Platform), p.ScheduledTime.String()}
	for i := 0; i < fieldCount; i++ {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.SetValue(values[i])
		in.CharLimit = 280
		in.Width = 40
		m.inputs[i] = in
	}
	m.inputs[fieldTitle].Focus()
	return m
}

// Update handles field navigation, editing, and save/cancel.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return func() tea.Msg {
				return events.CloseOverlayMsg{Component: ComponentID}
			}
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return nil
		case "enter":
			if m.focus < fieldCount-1 {
				m.setFocus(m.focus + 1)
				return nil
			}
			return m.save()
		case "ctrl+s":
			return m.save()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// save validates the draft and emits the committed change. Failing
// validation keeps the form open with inline feedback and leaves the store
// untouched.
func (m *Model) save() tea.Cmd {
	next, err := m.draft()
	if err != "" {
		m.errMsg = err
		return nil
	}

	prev := m.orig
	return func() tea.Msg {
		return events.PostChangeMsg{Component: ComponentID, Prev: prev, Next: next}
	}
}

// draft assembles the edited post, returning a user-facing message when a
// field cannot be accepted.
func (m *Model) draft() (post.Post, string) {
	next := m.orig

	title := strings.TrimSpace(m.inputs[fieldTitle].Value())
	if title == "" {
		return post.Post{}, "a title is required"
	}
	next.Title = title
	next.Content = m.inputs[fieldContent].Value()

	platform, err := post.ParsePlatform(m.inputs[fieldPlatform].Value())
	if err != nil {
		return post.Post{}, "unknown platform"
	}
	next.Platform = platform

	when, err := post.ParseTime(strings.TrimSpace(m.inputs[fieldWhen].Value()))
	if err != nil {
		return post.Post{}, "time must look like " + post.Layout
	}
	next.ScheduledTime = post.Timestamp{Time: when}

	return next, ""
}

// View renders the form.
func (m *Model) View() string {
	labels := [fieldCount]string{"Title", "Content", "Platform", "When"}

	lines := []string{
		"  " + titleStyle.Render("Edit post"),
		"",
	}
	for i := 0; i < fieldCount; i++ {
		lines = append(lines, "  "+labelStyle.Render(labels[i])+m.inputs[i].View())
	}
	if m.errMsg != "" {
		lines = append(lines, "", "  "+errStyle.Render(m.errMsg))
	}
	lines = append(lines, "", "  "+hintStyle.Render("tab next · enter save · esc cancel"))
	return strings.Join(lines, "\n")
}
