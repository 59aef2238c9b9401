package display

import (
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/motcom/g/internal/models"
)

// sourceState tracks whether a source has printed its first match yet.
type sourceState int

const (
	noMatchYet sourceState = iota
	firstMatchEmitted
)

// Formatter renders match events. It holds no per-source state and is safe
// for concurrent use.
type Formatter struct {
	ctx     models.DisplayContext
	palette Palette
}

// NewFormatter creates a Formatter for the given run context.
func NewFormatter(ctx models.DisplayContext, palette Palette) *Formatter {
	return &Formatter{
		ctx:     ctx,
		palette: palette,
	}
}

// Context returns the run context the formatter was created with.
func (f *Formatter) Context() models.DisplayContext {
	return f.ctx
}

// FormatResult renders all matches of one source as a single block.
// The block starts with the file banner when the source is named, and ends
// with a newline. A source without matches renders as the empty string.
func (f *Formatter) FormatResult(name string, events []models.MatchEvent) string {
	var b strings.Builder
	state := noMatchYet

	for _, ev := range events {
		if state == noMatchYet {
			state = firstMatchEmitted
			if name != "" && f.ctx.Banners {
				b.WriteString(f.Banner(name))
			}
		}
		b.WriteString(f.FormatLine(ev))
		b.WriteByte('\n')
	}

	return b.String()
}

// Banner renders the blank separator line and the file name.
func (f *Formatter) Banner(name string) string {
	return "\n" + f.paint(f.palette.Banner, name) + "\n"
}

// FormatLine renders one matched line without a trailing newline. With color
// on, only the first matched span is highlighted; otherwise the line is
// printed as read.
func (f *Formatter) FormatLine(ev models.MatchEvent) string {
	var b strings.Builder

	if f.ctx.ShowLineNumbers {
		b.WriteString(f.paint(f.palette.LineNumber, strconv.Itoa(ev.Candidate.Line)))
		b.WriteString(": ")
	}

	if f.ctx.Color {
		b.WriteString(ev.Before())
		b.WriteString(f.paint(f.palette.Match, ev.Span()))
		b.WriteString(ev.After())
	} else {
		b.WriteString(ev.Candidate.Text)
	}

	return b.String()
}

func (f *Formatter) paint(c *color.Color, s string) string {
	if !f.ctx.Color || c == nil {
		return s
	}
	return c.Sprint(s)
}
