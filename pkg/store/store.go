package store

import (
	"fmt"

	"tableflip.dev/postdeck/pkg/post"
)

// Store owns the in-memory post collection. All reads hand out copies and all
// writes go through Add/Update, so no caller ever mutates a post in place.
// The calendar view-model is single threaded (one UI event at a time), so the
// store performs no locking.
type Store struct {
	posts    []post.Post
	onChange func(prev, next post.Post)
}

// New seeds a store with the given posts. Duplicate ids in the seed are
// rejected.
func New(seed ...post.Post) (*Store, error) {
	s := &Store{posts: make([]post.Post, 0, len(seed))}
	for _, p := range seed {
		if err := s.Add(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// OnChange registers the outbound mutation hook. The previous value has an
// empty ID when the change was an addition.
func (s *Store) OnChange(fn func(prev, next post.Post)) {
	s.onChange = fn
}

// Sync replaces the store contents without firing the change hook. It backs
// reloads from persistence, where the data already lives on disk.
func (s *Store) Sync(posts []post.Post) {
	s.posts = append(s.posts[:0:0], posts...)
}

// Len returns the number of posts held.
func (s *Store) Len() int {
	return len(s.posts)
}

// All returns a copy of the collection ordered by scheduled time, then id.
func (s *Store) All() []post.Post {
	all := make([]post.Post, len(s.posts))
	copy(all, s.posts)
	sortPosts(all)
	return all
}

// Get looks up a post by id.
func (s *Store) Get(id string) (post.Post, bool) {
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return post.Post{}, false
}

// Add appends a new post. The id must be unique within the store.
func (s *Store) Add(p post.Post) error {
	if p.ID == "" {
		return fmt.Errorf("store: post id required")
	}
	if _, ok := s.Get(p.ID); ok {
		return fmt.Errorf("store: duplicate post id %q", p.ID)
	}
	s.posts = append(s.posts, p)
	if s.onChange != nil {
		s.onChange(post.Post{}, p)
	}
	return nil
}

// Update replaces the post with the matching id, producing a new backing
// collection rather than mutating the old element. An unknown id is a no-op
// and returns false. Replacing a post with an identical value still notifies
// the change hook; committing the same update twice leaves the store in the
// same state as committing it once.
func (s *Store) Update(id string, p post.Post) bool {
	for i, prev := range s.posts {
		if prev.ID != id {
			continue
		}
		p.ID = id
		next := make([]post.Post, len(s.posts))
		copy(next, s.posts)
		next[i] = p
		s.posts = next
		if s.onChange != nil {
			s.onChange(prev, p)
		}
		return true
	}
	return false
}
