package progress

import (
	"context"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Wait blocks for d while a spinner runs on out. It returns early with the
// context error when ctx is done first.
func Wait(ctx context.Context, out io.Writer, d time.Duration, message string) error {
	if d <= 0 {
		return nil
	}

	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(out))
	s.Suffix = " " + message
	s.Start()
	defer s.Stop()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
