// Package progress renders live search throughput for the terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/mahdiidarabi/vanitykey/pkg/vanity"
)

// Text is a vanity.Reporter writing one status line per interval.
//
// In CI mode every update is a new line; otherwise the line is rewritten in
// place with a carriage return and terminated once the search stops.
type Text struct {
	w        io.Writer
	ci       bool
	interval time.Duration
	now      func() time.Time
}

// NewText creates a reporter writing to w every second.
func NewText(w io.Writer, ci bool) *Text {
	return &Text{
		w:        w,
		ci:       ci,
		interval: vanity.DefaultReportInterval,
		now:      time.Now,
	}
}

// WithInterval overrides the render interval.
func (t *Text) WithInterval(d time.Duration) *Text {
	if d > 0 {
		t.interval = d
	}
	return t
}

// AutoCI reports whether f should get line-per-update output, which is the
// case when it is not a terminal.
func AutoCI(f *os.File) bool {
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// Report implements vanity.Reporter.
func (t *Text) Report(p *vanity.Progress, stop *vanity.StopFlag) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	var lastAttempts uint64
	lastTime := t.now()
	rendered := false

	for {
		select {
		case <-stop.Done():
			if rendered && !t.ci {
				fmt.Fprintln(t.w)
			}
			return
		case <-ticker.C:
			if stop.Stopped() {
				continue
			}
			now := t.now()
			current := p.Total()
			line := FormatLine(Snapshot{
				Attempts: current,
				Rate:     instantRate(current, lastAttempts, now.Sub(lastTime)),
				Average:  p.Rate(),
				Elapsed:  p.Elapsed(),
			})
			if t.ci {
				fmt.Fprintln(t.w, line)
			} else {
				fmt.Fprintf(t.w, "\r%s", line)
			}
			rendered = true
			lastAttempts = current
			lastTime = now
		}
	}
}

// Snapshot is one rendered progress sample.
type Snapshot struct {
	Attempts uint64
	Rate     float64 // attempts/s since the previous sample
	Average  float64 // attempts/s since the start
	Elapsed  time.Duration
}

// FormatLine renders a snapshot as
// "Attempts: 1,234 | Rate: 500/s | Avg: 480/s | Elapsed: 0m02s".
func FormatLine(s Snapshot) string {
	return fmt.Sprintf("Attempts: %s | Rate: %s/s | Avg: %s/s | Elapsed: %s",
		humanize.Comma(int64(s.Attempts)),
		humanize.Comma(int64(s.Rate)),
		humanize.Comma(int64(s.Average)),
		FormatElapsed(s.Elapsed),
	)
}

// FormatElapsed renders whole minutes and zero-padded seconds, e.g. "12m05s".
func FormatElapsed(d time.Duration) string {
	secs := int64(d / time.Second)
	return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
}

func instantRate(current, last uint64, dt time.Duration) float64 {
	if dt <= 0 || current < last {
		return 0
	}
	return float64(current-last) / dt.Seconds()
}
