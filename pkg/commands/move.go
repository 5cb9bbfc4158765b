package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/postdeck/pkg/commands/options"
	"tableflip.dev/postdeck/pkg/runner/move"
	"tableflip.dev/postdeck/pkg/store"
)

func addMove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	no := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Reschedule a post onto another day, keeping its time",
		Example: `
postdeck move --id V1StGXR8_Z5jdHi6B-myT --to "2026-3-4"
postdeck move --id V1StGXR8_Z5jdHi6B-myT --to "3/4"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if io.ID == "" {
				return errors.New("an id is required, try --id")
			}
			on, err := no.GetOn()
			if err != nil {
				return oo.HandleError(err)
			}
			if on == nil {
				return errors.New("a target day is required, try --to")
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := move.Move{
				ID:          io.ID,
				To:          *on,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddToArgs(cmd, no)

	topLevel.AddCommand(cmd)
}
