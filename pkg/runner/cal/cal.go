package cal

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/postdeck/pkg/printers"
	"tableflip.dev/postdeck/pkg/store"
)

// Cal prints a month of scheduled posts.
type Cal struct {
	Month time.Time
	Long  bool

	Persistence store.Persistence
}

func (n *Cal) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not print calendar, no persistence")
	}

	month := n.Month
	if month.IsZero() {
		month = time.Now()
	}

	all := n.Persistence.ListAll(ctx)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	if n.Long {
		pp.Calendar(month, all...)
		return nil
	}
	pp.PrintMonth(month, all...)
	return nil
}
