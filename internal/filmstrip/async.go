package filmstrip

import (
	"context"
	"image"
	"sync"

	"filmstrip/internal/media"
	"filmstrip/internal/metrics"
)

// Phase is the lifecycle state of an asynchronous preview request.
type Phase int32

const (
	PhasePending Phase = iota
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Request is a one-shot asynchronous preview computation. It starts
// Pending and transitions exactly once, to Succeeded or Failed, after the
// task has fully completed; the result is never observable earlier.
type Request struct {
	mu    sync.Mutex
	phase Phase
	img   image.Image
	err   error

	done chan struct{}
	once sync.Once
}

// StartRequest runs task in a new goroutine and returns immediately with
// the Pending request.
func StartRequest(ctx context.Context, task func(ctx context.Context) (image.Image, error)) *Request {
	r := &Request{done: make(chan struct{})}

	metrics.AsyncRequestsInFlight.Inc()
	go func() {
		defer metrics.AsyncRequestsInFlight.Dec()
		r.publish(task(ctx))
	}()

	return r
}

func (r *Request) publish(img image.Image, err error) {
	r.once.Do(func() {
		r.mu.Lock()
		if err != nil {
			r.phase = PhaseFailed
			r.err = err
		} else {
			r.phase = PhaseSucceeded
			r.img = img
		}
		r.mu.Unlock()
		close(r.done)
	})
}

// Phase returns the current lifecycle state.
func (r *Request) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// Image returns the completed raster. It is nil until the request
// succeeds.
func (r *Request) Image() image.Image {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.img
}

// Err returns the failure cause. It is nil unless the request failed.
func (r *Request) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Done returns a channel closed when the request leaves Pending.
func (r *Request) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the request completes or ctx is cancelled. A
// cancelled wait does not stop the underlying task.
func (r *Request) Wait(ctx context.Context) (image.Image, error) {
	select {
	case <-r.done:
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.img, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// GenerateAsync starts a preview generation in the background. The
// request publishes only after the raster is fully composed and any cache
// write-back has finished. Generate absorbs failures into a placeholder,
// so the returned request always ends Succeeded.
func (g *Generator) GenerateAsync(ctx context.Context, ref media.Ref, opts Options) *Request {
	return StartRequest(ctx, func(ctx context.Context) (image.Image, error) {
		return g.Generate(ctx, ref, opts), nil
	})
}
