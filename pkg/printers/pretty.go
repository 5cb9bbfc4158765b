package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/postdeck/pkg/post"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("V1StGXR8_Z5jdHi6B-myT  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" post")
	default:
		_, _ = c.Println(" posts")
	}
}

func (pp *PrettyPrint) Posts(posts ...post.Post) {
	if len(posts) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	w := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	c := color.New(color.FgCyan)

	for _, p := range posts {
		if pp.ShowID {
			_, _ = y.Print(p.ID)
			pad := len(spacing) - len(p.ID)
			if pad < 1 {
				pad = 1
			}
			_, _ = y.Print(strings.Repeat(" ", pad))
		}
		_, _ = w.Printf("%s  ", p.ScheduledTime.String())
		_, _ = c.Printf("%-10s", p.Platform)
		_, _ = t.Printf("  %s\n", p.Title)
	}
	_, _ = t.Println("")
}
