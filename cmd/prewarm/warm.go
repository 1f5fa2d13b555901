package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"filmstrip/internal/cache"
	"filmstrip/internal/filmstrip"
	"filmstrip/internal/logging"
	"filmstrip/internal/media"
	"filmstrip/internal/memory"
	"filmstrip/internal/metrics"

	"golang.org/x/term"
)

// outcome classifies the prewarm result for one file.
type outcome int

const (
	outcomeGenerated outcome = iota
	outcomeSkipped
	outcomeFailed
)

// tally accumulates per-file outcomes for the run summary.
type tally struct {
	generated int
	skipped   int
	failed    int
}

func (t *tally) add(o outcome) {
	switch o {
	case outcomeGenerated:
		t.generated++
	case outcomeSkipped:
		t.skipped++
	case outcomeFailed:
		t.failed++
	}
}

// total is the number of files accounted for so far.
func (t tally) total() int {
	return t.generated + t.skipped + t.failed
}

// publish records the run outcome in the process metrics.
func (t tally) publish(duration time.Duration) {
	metrics.PrewarmFilesTotal.WithLabelValues("generated").Set(float64(t.generated))
	metrics.PrewarmFilesTotal.WithLabelValues("skipped").Set(float64(t.skipped))
	metrics.PrewarmFilesTotal.WithLabelValues("failed").Set(float64(t.failed))
	metrics.PrewarmLastRunDuration.Set(duration.Seconds())
}

// warm renders previews for paths through poolSize workers and reports
// the per-file outcomes. Workers hold between files while mon reports
// memory pressure. It returns a partial tally when ctx is cancelled
// mid-run. report, if non-nil, observes the tally after every file from
// the collecting goroutine.
func warm(ctx context.Context, gen *filmstrip.Generator, store cache.Cache, mon *memory.Monitor, paths []string, opts, defaults filmstrip.Options, poolSize int, report func(tally)) tally {
	jobs := make(chan string)
	results := make(chan outcome)

	var wg sync.WaitGroup
	for i := 0; i < poolSize; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logging.Debug("Worker %d started", id)
			for path := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				if !mon.WaitIfPaused(ctx) {
					return
				}

				o := warmOne(ctx, gen, store, path, opts, defaults)

				select {
				case results <- o:
				case <-ctx.Done():
					return
				}
			}
			logging.Debug("Worker %d finished", id)
		}(i)
	}

	go func() {
		defer close(jobs)
		for _, path := range paths {
			select {
			case jobs <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var t tally
	for o := range results {
		t.add(o)
		if report != nil {
			report(t)
		}
	}
	return t
}

// warmOne classifies one file: already cached, rendered now, or failed.
// The cache probe uses the same variant identity the HTTP handler
// derives, so a warmed entry is exactly the one a request would read.
func warmOne(ctx context.Context, gen *filmstrip.Generator, store cache.Cache, path string, opts, defaults filmstrip.Options) outcome {
	ref, err := media.NewRef(path)
	if err != nil {
		logging.Warn("Cannot identify %s: %v", path, err)
		return outcomeFailed
	}
	ref = filmstrip.VariantRef(ref, opts, defaults)

	if _, ok := store.Fetch(ctx, ref.ID); ok {
		logging.Debug("Already cached: %s", path)
		return outcomeSkipped
	}

	if _, err := gen.Render(ctx, ref, opts); err != nil {
		logging.Warn("Render failed for %s (%s): %v", path, filmstrip.FailureKind(err), err)
		return outcomeFailed
	}
	logging.Debug("Generated preview for %s", path)
	return outcomeGenerated
}

// progress draws an in-place status line for interactive runs. It stays
// silent when stdout is not a terminal.
type progress struct {
	out     io.Writer
	total   int
	width   int
	enabled bool
}

func newProgress(total int) *progress {
	return &progress{
		out:     os.Stdout,
		total:   total,
		width:   len(strconv.Itoa(total)),
		enabled: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

func (p *progress) update(t tally) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.out, "\r  [%*d/%d]  generated %d  skipped %d  failed %d",
		p.width, t.total(), p.total, t.generated, t.skipped, t.failed)
}

// finish terminates the status line so the summary starts on its own row.
func (p *progress) finish() {
	if p.enabled {
		fmt.Fprintln(p.out)
	}
}
