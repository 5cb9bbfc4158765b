package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/postdeck/pkg/post"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestPersistenceWatchEmitsPlatformChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	e := post.Post{
		ID:            "w1",
		Title:         "hello world",
		Platform:      post.Instagram,
		ScheduledTime: post.Timestamp{Time: time.Date(2025, time.May, 10, 9, 0, 0, 0, time.Local)},
	}
	if err := p.Store(e); err != nil {
		t.Fatalf("store post: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventStoreInvalidated {
				return
			}
			if evt.Type == EventPostsChanged {
				if evt.Platform != post.Instagram {
					t.Fatalf("expected platform %q, got %q", post.Instagram, evt.Platform)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for posts change event")
		}
	}
}
