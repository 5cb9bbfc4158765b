// Package key prints the legend of supported platforms.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/postdeck/pkg/post"
)

type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	tbl := uitable.New()
	tbl.Separator = "  "

	bold := color.New(color.Bold)
	tbl.AddRow(bold.Sprint("Platform"), bold.Sprint("Badge"))
	for _, p := range post.AllPlatforms() {
		tbl.AddRow(string(p), Badge(p))
	}

	underlined := color.New(color.Bold, color.Underline)
	_, _ = fmt.Fprintln(color.Output, underlined.Sprint("\nPlatforms"))
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

// Badge returns the colored two-letter marker used for a platform.
func Badge(p post.Platform) string {
	switch p {
	case post.Instagram:
		return color.New(color.FgHiMagenta).Sprint("IG")
	case post.Twitter:
		return color.New(color.FgHiCyan).Sprint("TW")
	case post.Facebook:
		return color.New(color.FgBlue).Sprint("FB")
	case post.LinkedIn:
		return color.New(color.FgHiBlue).Sprint("LI")
	case post.YouTube:
		return color.New(color.FgHiRed).Sprint("YT")
	}
	return "??"
}
