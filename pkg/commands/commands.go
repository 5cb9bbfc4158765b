package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/postdeck/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "postdeck",
		Short: base.Wrap80("Plan and reschedule social posts from a calendar on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddOutputArgs(cmd, oo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addPlatforms(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addMove(topLevel)
	addCalendar(topLevel)
	addVersion(topLevel)
}
