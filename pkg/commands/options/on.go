package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/postdeck/pkg/post"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
	layoutClock    = "2006-1-2 15:04"
)

// OnOptions names a calendar day.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-2-28" or --on="2/28".`)
}

// AddToArgs registers the same date parsing under --to for commands that
// move posts somewhere.
func AddToArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "to", "",
		`Target day, example: --to="2026-3-4" or --to="3/4".`)
}

func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		// Let the year be the same.
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
		if err != nil {
			return nil, err
		}
		t = t.AddDate(time.Now().Year(), 0, 0)
		// I am gonna assume if you said 1/3 on 12/5, you meant next year, not 11 months ago.
		if t.Before(time.Now()) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return &t, nil
}

// AtOptions names an exact scheduling moment.
type AtOptions struct {
	AtString string
}

func AddAtArgs(cmd *cobra.Command, o *AtOptions) {
	cmd.Flags().StringVar(&o.AtString, "at", "",
		`Schedule time, example: --at="2026-2-28 17:30".`)
}

func (o *AtOptions) GetAt() (*time.Time, error) {
	if o.AtString == "" {
		return nil, nil
	}
	t, err := post.ParseTime(o.AtString)
	if err != nil {
		t, err = time.ParseInLocation(layoutClock, o.AtString, time.Local)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}
