package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/postdeck/pkg/post"
	"tableflip.dev/postdeck/pkg/schedule"
)

func seedPost(id, title string, day, hour, minute int) post.Post {
	return post.Post{
		ID:            id,
		Title:         title,
		Platform:      post.Instagram,
		ScheduledTime: post.Timestamp{Time: time.Date(2025, time.May, day, hour, minute, 0, 0, time.Local)},
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New(seedPost("p1", "a", 10, 9, 0), seedPost("p1", "b", 11, 9, 0))
	if err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestUpdateReplacesByID(t *testing.T) {
	s, err := New(seedPost("p1", "a", 10, 9, 0), seedPost("p2", "b", 11, 9, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	edited, _ := s.Get("p1")
	edited.Title = "renamed"
	if !s.Update("p1", edited) {
		t.Fatalf("expected update to succeed")
	}

	got, ok := s.Get("p1")
	if !ok || got.Title != "renamed" {
		t.Fatalf("expected renamed post, got %+v ok=%v", got, ok)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 posts, got %d", s.Len())
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	s, _ := New(seedPost("p1", "a", 10, 9, 0))
	before := s.All()

	if s.Update("ghost", seedPost("ghost", "x", 12, 9, 0)) {
		t.Fatalf("expected unknown id update to report false")
	}

	after := s.All()
	if len(after) != len(before) || after[0] != before[0] {
		t.Fatalf("store changed on unknown id update: %+v vs %+v", before, after)
	}
}

func TestRescheduleScenario(t *testing.T) {
	// One post at 2025-05-10T09:00 dragged onto 2025-05-12 lands at
	// 2025-05-12T09:00 and leaves the old day bucket empty.
	s, _ := New(seedPost("p1", "launch", 10, 9, 0))
	target := time.Date(2025, time.May, 12, 0, 0, 0, 0, time.Local)

	p, ok := s.Get("p1")
	if !ok {
		t.Fatalf("expected p1 in store")
	}
	s.Update("p1", schedule.Reschedule(p, target))

	got, _ := s.Get("p1")
	if got.ScheduledTime.String() != "2025-05-12T09:00" {
		t.Fatalf("expected 2025-05-12T09:00, got %s", got.ScheduledTime)
	}

	oldDay := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.Local)
	if left := schedule.PostsOn(s.All(), oldDay); len(left) != 0 {
		t.Fatalf("expected empty bucket for May 10, got %d posts", len(left))
	}
	if moved := schedule.PostsOn(s.All(), target); len(moved) != 1 {
		t.Fatalf("expected 1 post on May 12, got %d", len(moved))
	}
}

func TestRescheduleIdempotent(t *testing.T) {
	s, _ := New(seedPost("p1", "launch", 10, 9, 0))
	target := time.Date(2025, time.May, 12, 0, 0, 0, 0, time.Local)

	p, _ := s.Get("p1")
	s.Update("p1", schedule.Reschedule(p, target))
	once := s.All()

	p, _ = s.Get("p1")
	s.Update("p1", schedule.Reschedule(p, target))
	twice := s.All()

	if len(once) != len(twice) || once[0] != twice[0] {
		t.Fatalf("expected identical store state, got %+v vs %+v", once, twice)
	}
}

func TestOnChangeHookSeesPrevAndNext(t *testing.T) {
	s, _ := New(seedPost("p1", "a", 10, 9, 0))

	var gotPrev, gotNext post.Post
	s.OnChange(func(prev, next post.Post) {
		gotPrev, gotNext = prev, next
	})

	added := seedPost("p2", "b", 11, 9, 0)
	if err := s.Add(added); err != nil {
		t.Fatalf("add: %v", err)
	}
	if gotPrev.ID != "" || gotNext.ID != "p2" {
		t.Fatalf("expected add hook with empty prev, got prev=%q next=%q", gotPrev.ID, gotNext.ID)
	}

	edited := added
	edited.Title = "renamed"
	s.Update("p2", edited)
	if gotPrev.Title != "b" || gotNext.Title != "renamed" {
		t.Fatalf("expected update hook b->renamed, got %q->%q", gotPrev.Title, gotNext.Title)
	}
}

func TestAllSortsByScheduledTime(t *testing.T) {
	s, _ := New(
		seedPost("p2", "later", 20, 18, 0),
		seedPost("p1", "earlier", 10, 9, 0),
	)
	all := s.All()
	if all[0].ID != "p1" || all[1].ID != "p2" {
		t.Fatalf("expected chronological order p1,p2; got %s,%s", all[0].ID, all[1].ID)
	}
}

func TestDiskvRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	in := seedPost("d1", "on disk", 10, 9, 0)
	if err := p.Store(in); err != nil {
		t.Fatalf("store: %v", err)
	}

	all := p.ListAll(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected 1 post, got %d", len(all))
	}
	if all[0] != in {
		t.Fatalf("round trip mismatch: %+v vs %+v", all[0], in)
	}

	day := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.Local)
	if on := p.On(context.Background(), day); len(on) != 1 {
		t.Fatalf("expected 1 post on May 10, got %d", len(on))
	}

	if err := p.Erase(in); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if all := p.ListAll(context.Background()); len(all) != 0 {
		t.Fatalf("expected empty store after erase, got %d", len(all))
	}
}
