package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/postdeck/pkg/post"
)

// Persistence defines the on-disk contract for scheduled posts. It plays the
// parent-component role from the calendar view-model's point of view: the
// in-memory Store is the single owner while mounted, and committed mutations
// flow out here through the store's change hook.
type Persistence interface {
	ListAll(ctx context.Context) []post.Post
	ListPlatform(ctx context.Context, platform post.Platform) []post.Post
	On(ctx context.Context, day time.Time) []post.Post
	Store(p post.Post) error
	Erase(p post.Post) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (post.Post, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return post.Post{}, err
	}
	var target post.Post
	if err := json.Unmarshal(val, &target); err != nil {
		return post.Post{}, err
	}
	if target.ID == "" {
		target.ID = keyToPathTransform(key).FileName
	}
	return target, nil
}

func (p *persistence) ListAll(ctx context.Context) []post.Post {
	all := make([]post.Post, 0)
	for key := range p.d.Keys(ctx.Done()) {
		e, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	sortPosts(all)
	return all
}

func (p *persistence) ListPlatform(ctx context.Context, platform post.Platform) []post.Post {
	all := make([]post.Post, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if pk := keyToPathTransform(key); pk.Path[0] != string(platform) {
			continue
		}
		e, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	sortPosts(all)
	return all
}

func (p *persistence) On(ctx context.Context, day time.Time) []post.Post {
	want := day.Format(layoutISO)
	all := make([]post.Post, 0)
	for key := range p.d.Keys(ctx.Done()) {
		pk := keyToPathTransform(key)
		if strings.Join(pk.Path[1:], "-") != want {
			continue
		}
		e, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	sortPosts(all)
	return all
}

func (p *persistence) Store(e post.Post) error {
	if e.ID == "" {
		return fmt.Errorf("store: post id required")
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(e), data)
}

func (p *persistence) Erase(e post.Post) error {
	return p.d.Erase(toKey(e))
}

const layoutISO = "2006-01-02"

func sortPosts(posts []post.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		lt := posts[i].ScheduledTime.Time
		rt := posts[j].ScheduledTime.Time
		if lt.Equal(rt) {
			return posts[i].ID < posts[j].ID
		}
		return lt.Before(rt)
	})
}

// toKey makes `platform-date-id`, which diskv lays out as
// platform/yyyy/mm/dd/id on disk.
func toKey(e post.Post) string {
	return fmt.Sprintf("%s-%s-%s", e.Platform, e.ScheduledTime.Format(layoutISO), e.ID)
}

// keyToPathTransform splits `platform-yyyy-mm-dd-id` into path segments. The
// id is a nanoid and may itself contain dashes, so only the first four
// segments become directories.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.SplitN(s, "-", 5)
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
