// Package events defines the typed messages exchanged between TUI
// components. Routing everything through explicit message types keeps the
// components decoupled from the top-level model.
package events

import (
	"fmt"

	"tableflip.dev/postdeck/pkg/post"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// PostSelectMsg is emitted when the user activates a post (e.g. presses
// Enter on it in the day view) to open the edit form.
type PostSelectMsg struct {
	Component ComponentID
	ID        string
}

// EditTimeMsg requests the time-slot editor for a post.
type EditTimeMsg struct {
	Component ComponentID
	ID        string
}

// PostChangeMsg announces a committed edit. Prev carries the value being
// replaced so persistence layers can relocate keyed records.
type PostChangeMsg struct {
	Component ComponentID
	Prev      post.Post
	Next      post.Post
}

// Describe renders the change in a human-friendly format for logs.
func (m PostChangeMsg) Describe() string {
	return fmt.Sprintf("id:%q at:%s", m.Next.ID, m.Next.ScheduledTime)
}

// CloseOverlayMsg asks the top-level model to dismiss the active overlay,
// discarding any uncommitted local edits.
type CloseOverlayMsg struct {
	Component ComponentID
}

// PostsReloadedMsg delivers a fresh snapshot after the backing storage
// changed outside the dashboard.
type PostsReloadedMsg struct {
	Posts []post.Post
}
