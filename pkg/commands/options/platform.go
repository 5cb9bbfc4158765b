package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/postdeck/pkg/post"
)

// PlatformOptions selects a publishing platform.
type PlatformOptions struct {
	PlatformString string
}

func AddPlatformArgs(cmd *cobra.Command, o *PlatformOptions) {
	cmd.Flags().StringVarP(&o.PlatformString, "platform", "p", "",
		"Filter or target a platform, one of: "+platformList()+".")
}

// GetPlatform resolves the flag, empty meaning no platform filter.
func (o *PlatformOptions) GetPlatform() (post.Platform, error) {
	if o.PlatformString == "" {
		return "", nil
	}
	return post.ParsePlatform(o.PlatformString)
}

func platformList() string {
	out := ""
	for i, p := range post.AllPlatforms() {
		if i > 0 {
			out += ", "
		}
		out += string(p)
	}
	return out
}

// PlatformCompletions offers platform names for shell completion.
func PlatformCompletions(toComplete string) []string {
	var out []string
	for _, p := range post.AllPlatforms() {
		out = append(out, string(p))
	}
	return out
}
