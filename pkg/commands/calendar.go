package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/postdeck/pkg/runner/cal"
	"tableflip.dev/postdeck/pkg/store"
)

func addCalendar(topLevel *cobra.Command) {
	long := false
	monthString := ""

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Print a month of scheduled posts",
		Example: `
postdeck calendar
postdeck cal --month "2026-3" --long
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			month := time.Time{}
			if monthString != "" {
				var err error
				month, err = time.ParseInLocation("2006-1", monthString, time.Local)
				if err != nil {
					return oo.HandleError(err)
				}
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := cal.Cal{
				Month:       month,
				Long:        long,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&monthString, "month", "", `Month to print, example: --month="2026-3".`)
	cmd.Flags().BoolVarP(&long, "long", "l", false, "List each day's posts under the grid.")

	topLevel.AddCommand(cmd)
}
