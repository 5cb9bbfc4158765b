package timeline

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/postdeck/pkg/post"
	"tableflip.dev/postdeck/pkg/tui/events"
)

func editorAt(t *testing.T, hour, minute int) *Model {
	t.Helper()
	p := post.Post{
		ID:            "p1",
		Title:         "launch",
		Platform:      post.Instagram,
		ScheduledTime: post.Timestamp{Time: time.Date(2025, time.May, 10, hour, minute, 0, 0, time.Local)},
	}
	m := New(p)
	m.SetBounds(10, 5)
	return m
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

func TestClickMapsMidpointToNoon(t *testing.T) {
	m := editorAt(t, 9, 0)

	m.Update(press(10+DefaultAxisWidth/2, 5))
	got := m.Draft().ScheduledTime
	if got.Hour() != 12 || got.Minute() != 0 {
		t.Fatalf("expected 12:00, got %02d:%02d", got.Hour(), got.Minute())
	}
	if got.Day() != 10 {
		t.Fatalf("expected day preserved, got %d", got.Day())
	}
}

func TestDragPreviewsContinuously(t *testing.T) {
	m := editorAt(t, 9, 0)

	m.Update(press(10, 5))
	if got := m.Draft().ScheduledTime; got.Hour() != 0 || got.Minute() != 0 {
		t.Fatalf("expected 00:00 at left edge, got %02d:%02d", got.Hour(), got.Minute())
	}

	m.Update(motion(10+DefaultAxisWidth-1, 5))
	if got := m.Draft().ScheduledTime; got.Hour() != 23 || got.Minute() != 55 {
		t.Fatalf("expected 23:55 near right edge, got %02d:%02d", got.Hour(), got.Minute())
	}
}

func TestMotionWithoutPressIgnored(t *testing.T) {
	m := editorAt(t, 9, 30)

	m.Update(motion(10+DefaultAxisWidth/2, 5))
	if got := m.Draft().ScheduledTime; got.Hour() != 9 || got.Minute() != 30 {
		t.Fatalf("expected untouched 09:30, got %02d:%02d", got.Hour(), got.Minute())
	}
}

func TestPressOffAxisIgnored(t *testing.T) {
	m := editorAt(t, 9, 30)

	m.Update(press(10+DefaultAxisWidth/2, 6)) // wrong row
	if got := m.Draft().ScheduledTime; got.Hour() != 9 || got.Minute() != 30 {
		t.Fatalf("expected untouched 09:30, got %02d:%02d", got.Hour(), got.Minute())
	}
}

func TestEnterEmitsCommitWithOriginal(t *testing.T) {
	m := editorAt(t, 9, 0)
	m.Update(press(10+DefaultAxisWidth/2, 5))

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a command from enter")
	}
	msg, ok := cmd().(events.PostChangeMsg)
	if !ok {
		t.Fatalf("expected PostChangeMsg, got %T", cmd())
	}
	if msg.Prev.ScheduledTime.Hour() != 9 {
		t.Fatalf("expected prev to keep original time, got %s", msg.Prev.ScheduledTime)
	}
	if msg.Next.ScheduledTime.Hour() != 12 {
		t.Fatalf("expected next at 12:00, got %s", msg.Next.ScheduledTime)
	}
}

func TestEscDiscards(t *testing.T) {
	m := editorAt(t, 9, 0)
	m.Update(press(10+DefaultAxisWidth/2, 5))

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected a command from esc")
	}
	if _, ok := cmd().(events.CloseOverlayMsg); !ok {
		t.Fatalf("expected CloseOverlayMsg, got %T", cmd())
	}
}
