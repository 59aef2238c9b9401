// Package scanner reads sources and runs their lines through a pattern.
//
// Each source is scanned as one independent task. When several sources are
// given they run on a bounded worker pool; a single source is scanned on the
// calling goroutine. A source that cannot be opened, read, or decoded as
// UTF-8 text is skipped: the failure is counted and logged at debug level
// but never reaches the caller.
package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/motcom/g/internal/models"
	"github.com/motcom/g/internal/pattern"
)

// ErrUnreadableSource marks a source that could not be opened or decoded.
var ErrUnreadableSource = errors.New("unreadable source")

// Result holds the matches of one source, in line order.
type Result struct {
	Source models.Source
	Events []models.MatchEvent
}

// ReadLines reads r to the end and splits it into lines. Line terminators
// ("\n" or "\r\n") are removed and a final line without terminator is kept.
// Input that is not valid UTF-8 is an error.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(transform.NewReader(r, encoding.UTF8Validator))

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// ScanLines runs every line through p and returns one event per matching
// line. Line numbers are 1-based positions within lines.
func ScanLines(p *pattern.Pattern, source string, lines []string) []models.MatchEvent {
	var events []models.MatchEvent
	for i, text := range lines {
		start, end, ok := p.Find(text)
		if !ok {
			continue
		}
		events = append(events, models.MatchEvent{
			Candidate: models.Candidate{
				Text:   text,
				Line:   i + 1,
				Source: source,
			},
			Start: start,
			End:   end,
		})
	}
	return events
}

// ScanSource opens src, reads all of its lines and matches them against p.
// Open, read and decode failures are returned wrapped in ErrUnreadableSource.
func ScanSource(p *pattern.Pattern, src models.Source) (Result, error) {
	rc, err := src.Open()
	if err != nil {
		return Result{}, fmt.Errorf("%w: open: %v", ErrUnreadableSource, err)
	}
	defer rc.Close()

	lines, err := ReadLines(rc)
	if err != nil {
		return Result{}, fmt.Errorf("%w: read: %v", ErrUnreadableSource, err)
	}

	return Result{
		Source: src,
		Events: ScanLines(p, src.Name, lines),
	}, nil
}
