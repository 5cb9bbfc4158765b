package schedule

import (
	"time"

	"tableflip.dev/postdeck/pkg/post"
)

// PostsOn returns the posts whose scheduled time falls on the given calendar
// day, preserving input order.
func PostsOn(posts []post.Post, day time.Time) []post.Post {
	var matched []post.Post
	for _, p := range posts {
		if p.ScheduledTime.SameDay(day) {
			matched = append(matched, p)
		}
	}
	return matched
}

// BucketByDay annotates a grid with its posts. The result is aligned with
// days: result[i] holds the posts for days[i]. A post with a well-formed
// timestamp lands in at most one bucket.
func BucketByDay(posts []post.Post, days []Day) [][]post.Post {
	buckets := make([][]post.Post, len(days))
	for i, d := range days {
		buckets[i] = PostsOn(posts, d.Date)
	}
	return buckets
}
