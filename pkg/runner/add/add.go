package add

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/postdeck/pkg/post"
	"tableflip.dev/postdeck/pkg/printers"
	"tableflip.dev/postdeck/pkg/store"
)

type Add struct {
	Title    string
	Content  string
	Platform post.Platform
	At       *time.Time

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Title == "" {
		return errors.New("a post needs a title")
	}

	at := time.Now().Add(time.Hour).Truncate(time.Hour)
	if n.At != nil {
		at = *n.At
	}

	p, err := post.New(n.Title, n.Platform, at)
	if err != nil {
		return err
	}
	p.Content = n.Content

	pp := printers.PrettyPrint{}
	pp.Title(at.Format("January 2, 2006"))
	if n.Persistence != nil {
		if err := n.Persistence.Store(p); err != nil {
			return err
		}
		all := n.Persistence.On(ctx, at)
		pp.Posts(all...)
	} else {
		pp.Posts(p)
	}

	return nil
}
