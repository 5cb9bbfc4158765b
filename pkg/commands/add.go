package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/postdeck/pkg/commands/options"
	"tableflip.dev/postdeck/pkg/runner/add"
	"tableflip.dev/postdeck/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	po := &options.PlatformOptions{}
	ao := &options.AtOptions{}
	content := ""

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Schedule a new post",
		Example: `
postdeck add spring sale teaser --platform instagram --at "2026-3-1 09:00"
postdeck add weekly digest -p linkedin
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			platform, err := po.GetPlatform()
			if err != nil {
				return oo.HandleError(err)
			}
			if platform == "" {
				return errors.New("a platform is required, try --platform")
			}
			at, err := ao.GetAt()
			if err != nil {
				return oo.HandleError(err)
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Title:       strings.Join(args, " "),
				Content:     content,
				Platform:    platform,
				At:          at,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddPlatformArgs(cmd, po)
	_ = cmd.RegisterFlagCompletionFunc("platform", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return options.PlatformCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	options.AddAtArgs(cmd, ao)
	cmd.Flags().StringVarP(&content, "content", "c", "", "Body text for the post.")

	topLevel.AddCommand(cmd)
}
