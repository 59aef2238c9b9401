package scanner

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/motcom/g/internal/logger"
	"github.com/motcom/g/internal/models"
	"github.com/motcom/g/internal/pattern"
)

// Sink receives the results of scanned sources. Emit may be called from
// several goroutines at once.
type Sink interface {
	Emit(result Result)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(result Result)

// Emit calls f(result).
func (f SinkFunc) Emit(result Result) {
	f(result)
}

// Stats summarizes a run.
type Stats struct {
	Sources int
	Skipped int
	Matches int
}

// Scanner drives the scan of a list of sources.
type Scanner struct {
	pattern *pattern.Pattern
	sink    Sink
	logger  logger.Logger
	workers int
	ordered bool
}

// New creates a Scanner that matches with p and hands results to sink.
// The worker pool defaults to runtime.NumCPU().
func New(p *pattern.Pattern, sink Sink) *Scanner {
	return &Scanner{
		pattern: p,
		sink:    sink,
		logger:  logger.NewNoOpLogger(),
		workers: runtime.NumCPU(),
	}
}

// WithWorkers sets the worker pool size. Values below 1 select runtime.NumCPU().
func (s *Scanner) WithWorkers(n int) *Scanner {
	if n < 1 {
		n = runtime.NumCPU()
	}
	s.workers = n
	return s
}

// WithLogger sets the diagnostics logger.
func (s *Scanner) WithLogger(l logger.Logger) *Scanner {
	if l != nil {
		s.logger = l
	}
	return s
}

// WithOrdered makes Run emit results in source order after all sources are
// scanned, instead of as each source completes.
func (s *Scanner) WithOrdered(ordered bool) *Scanner {
	s.ordered = ordered
	return s
}

// Workers returns the worker pool size.
func (s *Scanner) Workers() int {
	return s.workers
}

// Run scans every source and emits the results of those with matches.
// Unreadable sources are skipped. Run returns when all sources are done or
// ctx is cancelled.
func (s *Scanner) Run(ctx context.Context, sources []models.Source) Stats {
	var (
		skipped atomic.Int64
		matches atomic.Int64
	)

	results := make([]*Result, len(sources))

	scanOne := func(i int, src models.Source) {
		result, err := ScanSource(s.pattern, src)
		if err != nil {
			skipped.Add(1)
			s.logger.Debugf("skip %s: %v", sourceLabel(src), err)
			return
		}
		s.logger.Tracef("scanned %s: %d match(es)", sourceLabel(src), len(result.Events))
		if len(result.Events) == 0 {
			return
		}
		matches.Add(int64(len(result.Events)))
		if s.ordered {
			results[i] = &result
			return
		}
		s.sink.Emit(result)
	}

	if len(sources) == 1 {
		if ctx.Err() == nil {
			scanOne(0, sources[0])
		}
	} else {
		group, groupCtx := errgroup.WithContext(ctx)
		group.SetLimit(s.workers)
		for i, src := range sources {
			if groupCtx.Err() != nil {
				break
			}
			i, src := i, src
			group.Go(func() error {
				if groupCtx.Err() != nil {
					return nil
				}
				scanOne(i, src)
				return nil
			})
		}
		group.Wait()
	}

	if s.ordered {
		for _, result := range results {
			if result != nil {
				s.sink.Emit(*result)
			}
		}
	}

	return Stats{
		Sources: len(sources),
		Skipped: int(skipped.Load()),
		Matches: int(matches.Load()),
	}
}

func sourceLabel(src models.Source) string {
	if src.Named() {
		return src.Name
	}
	return "<stdin>"
}
