package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/postdeck/pkg/runner/key"
)

func addPlatforms(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "Print the supported platforms and their badges",
		Example: `
postdeck platforms
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{}
			return oo.HandleError(k.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
