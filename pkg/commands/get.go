package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/postdeck/pkg/commands/options"
	"tableflip.dev/postdeck/pkg/runner/get"
	"tableflip.dev/postdeck/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	po := &options.PlatformOptions{}
	io := &options.IDOptions{}
	no := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List scheduled posts",
		Example: `
postdeck get
postdeck get --platform twitter
postdeck get --on "2026-3-1" --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			platform, err := po.GetPlatform()
			if err != nil {
				return oo.HandleError(err)
			}
			on, err := no.GetOn()
			if err != nil {
				return oo.HandleError(err)
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				Platform:    platform,
				On:          on,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddPlatformArgs(cmd, po)
	_ = cmd.RegisterFlagCompletionFunc("platform", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return options.PlatformCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	options.AddOnArgs(cmd, no)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
