package display

import (
	"io"
	"sync"

	"github.com/motcom/g/internal/scanner"
)

// Printer writes formatted results to a shared writer. Each source's block
// is written with a single Write under a lock, so output from concurrent
// scan tasks interleaves only between whole blocks.
type Printer struct {
	mu        sync.Mutex
	w         io.Writer
	formatter *Formatter
	lines     int
	err       error
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, formatter *Formatter) *Printer {
	return &Printer{
		w:         w,
		formatter: formatter,
	}
}

// Emit renders result and writes it. After the first write error further
// output is dropped; the error is available from Err.
func (p *Printer) Emit(result scanner.Result) {
	block := p.formatter.FormatResult(result.Source.Name, result.Events)
	if block == "" {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return
	}
	if _, err := io.WriteString(p.w, block); err != nil {
		p.err = err
		return
	}
	p.lines += len(result.Events)
}

// Lines returns the number of matched lines written.
func (p *Printer) Lines() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lines
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

var _ scanner.Sink = (*Printer)(nil)
