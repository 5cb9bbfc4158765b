package move

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/postdeck/pkg/printers"
	"tableflip.dev/postdeck/pkg/schedule"
	"tableflip.dev/postdeck/pkg/store"
)

// Move reschedules a post onto a new calendar day, keeping its time of day.
type Move struct {
	ID string
	To time.Time

	Persistence store.Persistence
}

func (n *Move) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not move, no persistence")
	}
	if n.ID == "" {
		return errors.New("a post id is required")
	}

	s, err := store.New(n.Persistence.ListAll(ctx)...)
	if err != nil {
		return err
	}
	p, ok := s.Get(n.ID)
	if !ok {
		// The calendar treats unknown ids as a no-op; on the CLI a quiet
		// notice is friendlier than silence.
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("no post with id %s\n", n.ID)
		return nil
	}

	moved := schedule.Reschedule(p, n.To)
	if !s.Update(n.ID, moved) {
		return nil
	}

	// The day moved, so the on-disk key moved with it.
	if err := n.Persistence.Erase(p); err != nil {
		return err
	}
	if err := n.Persistence.Store(moved); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(n.To.Format("January 2, 2006"))
	pp.Posts(n.Persistence.On(ctx, n.To)...)

	return nil
}
