package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/postdeck/pkg/post"
	"tableflip.dev/postdeck/pkg/printers"
	"tableflip.dev/postdeck/pkg/store"
)

type Get struct {
	ShowID   bool
	Platform post.Platform
	On       *time.Time

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.On != nil {
		all := n.Persistence.On(ctx, *n.On)
		all = n.filtered(all)
		pp.TitleWithCount(n.On.Format("January 2, 2006"), len(all))
		pp.Posts(all...)
		return nil
	}

	if n.Platform != "" {
		all := n.Persistence.ListPlatform(ctx, n.Platform)
		pp.TitleWithCount(string(n.Platform), len(all))
		pp.Posts(all...)
		return nil
	}

	all := n.Persistence.ListAll(ctx)
	pp.TitleWithCount("scheduled", len(all))
	pp.Posts(all...)

	return nil
}

func (n *Get) filtered(all []post.Post) []post.Post {
	if n.Platform == "" {
		return all
	}
	c := make([]post.Post, 0, len(all))
	for _, a := range all {
		if a.Platform == n.Platform {
			c = append(c, a)
		}
	}
	return c
}
