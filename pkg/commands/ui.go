package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/postdeck/pkg/runner/ui"
	"tableflip.dev/postdeck/pkg/schedule"
	"tableflip.dev/postdeck/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	view := ""

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the calendar dashboard",
		Example: `
postdeck ui
postdeck ui --view week
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := schedule.ParseMode(view)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := ui.UI{Mode: mode, Persistence: p}
			return i.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&view, "view", "", "Calendar view to open with, month or week.")

	topLevel.AddCommand(cmd)
}
