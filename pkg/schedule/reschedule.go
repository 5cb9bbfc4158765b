package schedule

import (
	"time"

	"tableflip.dev/postdeck/pkg/post"
)

// Reschedule moves a post onto the target calendar day, preserving its hour
// and minute. The input is not mutated; callers commit the returned copy via
// the store's replace-by-id.
func Reschedule(p post.Post, target time.Time) post.Post {
	p.ScheduledTime = p.ScheduledTime.WithDate(target)
	return p
}
