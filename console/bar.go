// Package console renders task events on a terminal.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/eugenmik/bulk-image-resizer/batch"
)

const barWidth = 40

// Bar is a single line progress bar redrawn in place with \r.
// A nil *Bar draws nothing.
type Bar struct {
	w       io.Writer
	percent int
	drawn   bool
}

// NewBar ...
func NewBar(w io.Writer) *Bar {
	return &Bar{w: w}
}

// Percent ...
func (b *Bar) Percent() int {
	if b == nil {
		return 0
	}
	return b.percent
}

func (b *Bar) String() string {
	filled := b.percent * barWidth / 100
	return fmt.Sprintf("[%s%s] %3d%%", strings.Repeat("=", filled), strings.Repeat(" ", barWidth-filled), b.percent)
}

// Set clamps percent into 0..100 and redraws
func (b *Bar) Set(percent int) {
	if b == nil {
		return
	}
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	b.percent = percent
	b.draw()
}

func (b *Bar) draw() {
	fmt.Fprintf(b.w, "\r  %s", b)
	b.drawn = true
}

// Clear blanks the line so another line can be printed over it
func (b *Bar) Clear() {
	if b == nil || !b.drawn {
		return
	}
	fmt.Fprintf(b.w, "\r%s\r", strings.Repeat(" ", barWidth+10))
	b.drawn = false
}

// Redraw puts the bar back after Clear
func (b *Bar) Redraw() {
	if b == nil || b.drawn {
		return
	}
	b.draw()
}

// Finish ends the bar line
func (b *Bar) Finish() {
	if b == nil || !b.drawn {
		return
	}
	fmt.Fprintln(b.w)
	b.drawn = false
}

// Render drains events until the channel is closed. Log lines go to out,
// progress to bar, which may be nil. The first write error is returned once
// the channel is drained so the sender never blocks.
func Render(events <-chan batch.Event, out io.Writer, bar *Bar) (err error) {
	for e := range events {
		switch e.Kind {
		case batch.EventLog:
			bar.Clear()
			if _, werr := fmt.Fprintln(out, e.Text); werr != nil && err == nil {
				err = werr
			}
			if bar.Percent() > 0 {
				bar.Redraw()
			}
		case batch.EventProgress:
			bar.Set(e.Percent)
		case batch.EventDone:
			bar.Finish()
		}
	}
	return
}
