// Package drag models the drag-and-drop gesture used to reschedule posts.
// The gesture is a small state machine (idle, dragging) driven by pointer
// events; the caller owns hit testing and the actual store commit.
package drag

import "time"

// Phase is the gesture's current state.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

// Drop describes a completed gesture: the dragged post and the day cell it
// was released over.
type Drop struct {
	PostID string
	Day    time.Time
}

// Gesture tracks one drag at a time. The zero value is idle and ready to use.
type Gesture struct {
	phase     Phase
	postID    string
	origin    time.Time
	target    time.Time
	hasTarget bool
}

// Phase returns the current gesture state.
func (g *Gesture) State() Phase {
	return g.phase
}

// Dragging reports whether a drag is in progress.
func (g *Gesture) Dragging() bool {
	return g.phase == Dragging
}

// PostID returns the id of the post being dragged, or "" when idle.
func (g *Gesture) PostID() string {
	if g.phase != Dragging {
		return ""
	}
	return g.postID
}

// Origin returns the day the drag started from.
func (g *Gesture) Origin() time.Time {
	return g.origin
}

// Target returns the day currently under the pointer, if any.
func (g *Gesture) Target() (time.Time, bool) {
	if g.phase != Dragging {
		return time.Time{}, false
	}
	return g.target, g.hasTarget
}

// Start begins dragging a post from its current day. Starting while already
// dragging restarts the gesture.
func (g *Gesture) Start(postID string, origin time.Time) {
	g.phase = Dragging
	g.postID = postID
	g.origin = origin
	g.target = time.Time{}
	g.hasTarget = false
}

// Move updates the day under the pointer. over is false when the pointer is
// outside any day cell. Moves while idle are ignored.
func (g *Gesture) Move(day time.Time, over bool) {
	if g.phase != Dragging {
		return
	}
	g.target = day
	g.hasTarget = over
}

// Drop ends the gesture. It returns the drop description when the pointer
// was released over a valid day cell; releasing anywhere else cancels with
// no state change for the caller to apply.
func (g *Gesture) Drop() (Drop, bool) {
	if g.phase != Dragging || !g.hasTarget {
		g.reset()
		return Drop{}, false
	}
	d := Drop{PostID: g.postID, Day: g.target}
	g.reset()
	return d, true
}

// Cancel abandons the gesture.
func (g *Gesture) Cancel() {
	g.reset()
}

func (g *Gesture) reset() {
	*g = Gesture{}
}
