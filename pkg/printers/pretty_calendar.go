package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/postdeck/pkg/post"
	"tableflip.dev/postdeck/pkg/schedule"
)

// Calendar prints a long-form month view with each day's posts.
func (pp *PrettyPrint) Calendar(on time.Time, posts ...post.Post) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)
	pp.PrintMonthLong(then, posts...)
}

const width = len("11 12 13 14 15 16 17") // an example week

// PrintMonth prints a compact month grid, bolding days that hold posts.
func (pp *PrettyPrint) PrintMonth(then time.Time, posts ...post.Post) {
	days := schedule.DaysIn(then)

	count := make([]int, days)

	for _, p := range posts {
		if p.ScheduledTime.SameMonth(then) {
			count[p.ScheduledTime.Day()-1]++
		}
	}

	pp.PrintMonthCount(then, count)
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := schedule.DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			l2.Printf("%2d ", i+1)
		} else {
			l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

// PrintMonthLong prints one line per day with that day's scheduled posts.
func (pp *PrettyPrint) PrintMonthLong(then time.Time, posts ...post.Post) {
	p := color.New()
	w := color.New(color.Faint)
	b := color.New(color.Bold)
	s := color.New(color.Underline)
	bs := color.New(color.Underline, color.Bold)

	now := time.Now()
	grid := schedule.BuildGrid(then, schedule.ModeMonth, now)

	for _, day := range grid {
		if !day.InMonth {
			continue
		}

		printer := p
		if day.Date.Weekday() == time.Sunday {
			printer = s
		}
		if day.IsToday {
			printer = b
			if day.Date.Weekday() == time.Sunday {
				printer = bs
			}
		}
		_, _ = printer.Printf("%2d %s", day.Date.Day(), day.Date.Weekday().String()[0:1])

		found := false
		for _, e := range schedule.PostsOn(posts, day.Date) {
			if found {
				_, _ = p.Print("    ") // align under the first post.
			}
			found = true
			_, _ = w.Printf("  %s ", e.ScheduledTime.Format("15:04"))
			_, _ = p.Printf("[%s] %s\n", e.Platform, e.Title)
		}
		if !found {
			_, _ = p.Printf("\n")
		}
	}
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, then.Location()).Weekday()
}
