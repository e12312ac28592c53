package progress

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
)

// Stages are the steps of one run in execution order
var Stages = []string{"read", "extract", "render", "write"}

// Tracker prints a single progress bar line that advances once per stage
type Tracker struct {
	bar     progress.Model
	out     io.Writer
	total   int
	done    int
	enabled bool
}

// New creates a Tracker writing to out. A disabled Tracker prints nothing.
func New(out io.Writer, enabled bool) *Tracker {
	return &Tracker{
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
		out:     out,
		total:   len(Stages),
		enabled: enabled,
	}
}

// Advance marks stage as finished and redraws the bar
func (t *Tracker) Advance(stage string) {
	if t.done < t.total {
		t.done++
	}
	if !t.enabled {
		return
	}
	fmt.Fprintf(t.out, "\r%s %d/%d %-8s", t.bar.ViewAs(t.Percent()), t.done, t.total, stage)
	if t.done == t.total {
		fmt.Fprintln(t.out)
	}
}

// Percent returns the finished share of stages in [0, 1]
func (t *Tracker) Percent() float64 {
	if t.total == 0 {
		return 0
	}
	return float64(t.done) / float64(t.total)
}
