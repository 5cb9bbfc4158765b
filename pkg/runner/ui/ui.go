package ui

import (
	"context"
	"errors"

	"tableflip.dev/postdeck/pkg/post"
	"tableflip.dev/postdeck/pkg/schedule"
	"tableflip.dev/postdeck/pkg/store"
	"tableflip.dev/postdeck/pkg/tui/app"
)

type UI struct {
	Mode schedule.Mode

	Persistence store.Persistence
}

// Do seeds the dashboard from disk and writes every committed change back
// through the persistence layer.
func (d *UI) Do(ctx context.Context) error {
	if d.Persistence == nil {
		return errors.New("persistence not set")
	}

	s, err := store.New(d.Persistence.ListAll(ctx)...)
	if err != nil {
		return err
	}

	s.OnChange(func(prev, next post.Post) {
		if prev.ID != "" {
			// The disk key embeds the scheduled day, so a move means a
			// fresh record under the new key.
			_ = d.Persistence.Erase(prev)
		}
		_ = d.Persistence.Store(next)
	})

	var opts []app.Option
	if d.Mode != "" {
		opts = append(opts, app.WithMode(d.Mode))
	}
	return app.RunWatched(ctx, s, d.Persistence, opts...)
}
