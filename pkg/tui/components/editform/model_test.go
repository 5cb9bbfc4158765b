package editform

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/postdeck/pkg/post"
	"tableflip.dev/postdeck/pkg/tui/events"
)

func fixture(t *testing.T) post.Post {
	t.Helper()
	at, err := post.ParseTime("2025-05-10T09:00")
	if err != nil {
		t.Fatal(err)
	}
	return post.Post{
		ID:            "p1",
		Title:         "launch teaser",
		Content:       "something is coming",
		Platform:      post.Instagram,
		Status:        post.StatusScheduled,
		ScheduledTime: post.Timestamp{Time: at},
	}
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	panic("unhandled key " + s)
}

func TestSaveEmitsChange(t *testing.T) {
	p := fixture(t)
	m := New(p)

	cmd := m.Update(key("ctrl+s"))
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	change, ok := cmd().(events.PostChangeMsg)
	if !ok {
		t.Fatalf("expected PostChangeMsg, got %T", cmd())
	}
	if change.Prev.ID != p.ID || change.Next.ID != p.ID {
		t.Errorf("change should reference %s, got prev %s next %s", p.ID, change.Prev.ID, change.Next.ID)
	}
	if change.Next.Title != p.Title {
		t.Errorf("unedited save should keep the title, got %q", change.Next.Title)
	}
}

func TestEmptyTitleRejected(t *testing.T) {
	m := New(fixture(t))
	m.inputs[fieldTitle].SetValue("   ")

	if cmd := m.Update(key("ctrl+s")); cmd != nil {
		t.Fatal("blank title must not commit")
	}
	if m.errMsg == "" {
		t.Error("expected inline feedback for the blank title")
	}
}

func TestBadTimestampRejected(t *testing.T) {
	p := fixture(t)
	m := New(p)
	m.inputs[fieldWhen].SetValue("next tuesday")

	if cmd := m.Update(key("ctrl+s")); cmd != nil {
		t.Fatal("unparseable time must not commit")
	}

	// The draft stays editable and a corrected value saves.
	m.inputs[fieldWhen].SetValue("2025-05-12T14:30")
	cmd := m.Update(key("ctrl+s"))
	if cmd == nil {
		t.Fatal("corrected time should commit")
	}
	change := cmd().(events.PostChangeMsg)
	if got := change.Next.ScheduledTime.String(); got != "2025-05-12T14:30" {
		t.Errorf("expected rescheduled time, got %s", got)
	}
	if !change.Prev.ScheduledTime.Equal(p.ScheduledTime.Time) {
		t.Error("prev should carry the original time")
	}
}

func TestUnknownPlatformRejected(t *testing.T) {
	m := New(fixture(t))
	m.inputs[fieldPlatform].SetValue("myspace")

	if cmd := m.Update(key("ctrl+s")); cmd != nil {
		t.Fatal("unknown platform must not commit")
	}
}

func TestEnterAdvancesThenSaves(t *testing.T) {
	m := New(fixture(t))

	for i := 0; i < fieldCount-1; i++ {
		if cmd := m.Update(key("enter")); cmd != nil {
			t.Fatalf("enter on field %d should advance, not save", i)
		}
	}
	if m.focus != fieldWhen {
		t.Fatalf("expected focus on the last field, got %d", m.focus)
	}
	cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("enter on the last field should save")
	}
	if _, ok := cmd().(events.PostChangeMsg); !ok {
		t.Fatalf("expected PostChangeMsg, got %T", cmd())
	}
}

func TestEscCancels(t *testing.T) {
	m := New(fixture(t))
	m.inputs[fieldTitle].SetValue("edited but abandoned")

	cmd := m.Update(key("esc"))
	if cmd == nil {
		t.Fatal("esc should close the overlay")
	}
	if _, ok := cmd().(events.CloseOverlayMsg); !ok {
		t.Fatalf("expected CloseOverlayMsg, got %T", cmd())
	}
}
