package post

import (
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Platform identifies the social network a post targets.
type Platform string

const (
	Instagram Platform = "instagram"
	Twitter   Platform = "twitter"
	Facebook  Platform = "facebook"
	LinkedIn  Platform = "linkedin"
	YouTube   Platform = "youtube"
)

// AllPlatforms returns the supported platforms in display order.
func AllPlatforms() []Platform {
	return []Platform{
		Instagram,
		Twitter,
		Facebook,
		LinkedIn,
		YouTube,
	}
}

// ParsePlatform converts a string to a Platform or returns an error for
// unknown values.
func ParsePlatform(raw string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllPlatforms() {
		if candidate == p {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("post: unknown platform %q", raw)
}

// Status tracks where a post is in its publishing lifecycle.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusPosted    Status = "posted"
	StatusFailed    Status = "failed"
)

// Post is a schedulable social-media content item.
type Post struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content,omitempty"`
	Platform      Platform  `json:"platform"`
	Status        Status    `json:"status,omitempty"`
	ScheduledTime Timestamp `json:"scheduledTime"`
}

// New mints a post with a fresh id scheduled at the given wall-clock time.
func New(title string, platform Platform, at time.Time) (Post, error) {
	id, err := gonanoid.New()
	if err != nil {
		return Post{}, fmt.Errorf("post: mint id: %w", err)
	}
	return Post{
		ID:            id,
		Title:         title,
		Platform:      platform,
		Status:        StatusScheduled,
		ScheduledTime: Timestamp{Time: at},
	}, nil
}

func (p Post) String() string {
	return fmt.Sprintf("%s  [%s]  %s", p.ScheduledTime.String(), p.Platform, p.Title)
}
