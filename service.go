// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// service.go — DecodeService, a fixed worker pool that honors the
// DecodeIsCostly advisory: cheap payloads decode inline, costly ones are
// scheduled off the caller's goroutine and observed through a Future.

package shade

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bionicspirit/shade/internal/metrics"
)

// ServiceOptions configures a DecodeService.
type ServiceOptions struct {
	// Workers is the number of decode goroutines (default: GOMAXPROCS).
	Workers int
	// QueueSize is the pending-task buffer (default 64).
	QueueSize int
	// Metrics receives per-decode latency, size, and error counts.
	Metrics metrics.Recorder
	// Logger receives worker-level decode failures.
	Logger Logger
}

func (o *ServiceOptions) defaults() {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.QueueSize <= 0 {
		o.QueueSize = 64
	}
	if o.Metrics == nil {
		o.Metrics = metrics.Noop{}
	}
	if o.Logger == nil {
		o.Logger = noopLogger{}
	}
}

// DecodeService runs costly decodes on a fixed pool of workers so they
// stay off latency-sensitive caller goroutines. Transcoders themselves
// remain synchronous; the service only does the scheduling.
type DecodeService struct {
	opts   ServiceOptions
	tasks  chan func()
	stopCh chan struct{}
	wg     sync.WaitGroup
	closed atomic.Bool
}

// NewDecodeService creates a DecodeService and starts its workers.
func NewDecodeService(opts ServiceOptions) *DecodeService {
	opts.defaults()
	s := &DecodeService{
		opts:   opts,
		tasks:  make(chan func(), opts.QueueSize),
		stopCh: make(chan struct{}),
	}
	for i := 0; i < opts.Workers; i++ {
		s.wg.Add(1)
		go s.worker()
	}
	return s
}

func (s *DecodeService) worker() {
	defer s.wg.Done()
	for {
		select {
		case <-s.stopCh:
			s.drain()
			return
		case task := <-s.tasks:
			task()
		}
	}
}

// drain runs any tasks still queued at shutdown so their futures resolve.
func (s *DecodeService) drain() {
	for {
		select {
		case task := <-s.tasks:
			task()
		default:
			return
		}
	}
}

// Close stops the workers, running any queued tasks first. Idempotent.
func (s *DecodeService) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(s.stopCh)
	s.wg.Wait()
	s.drain()
	return nil
}

// Future is the handle for a decode scheduled on a DecodeService.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Get blocks until the decode completes or ctx is done. Cancellation
// abandons the result; the decode itself still runs to completion on its
// worker.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func resolvedFuture[T any](v T, err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), val: v, err: err}
	close(f.done)
	return f
}

// Submit decodes d with tc. Payloads the transcoder reports as cheap are
// decoded inline on the caller's goroutine and returned already resolved;
// costly payloads are queued to the worker pool. Submitting to a closed
// service resolves with ErrServiceClosed.
func Submit[T any](s *DecodeService, tc Transcoder[T], d CachedData) *Future[T] {
	if !tc.DecodeIsCostly(d) {
		v, err := tc.Decode(d)
		return resolvedFuture(v, err)
	}
	if s.closed.Load() {
		var zero T
		return resolvedFuture(zero, ErrServiceClosed)
	}

	f := &Future[T]{done: make(chan struct{})}
	task := func() {
		start := time.Now()
		f.val, f.err = tc.Decode(d)
		s.opts.Metrics.RecordLatency("decode", time.Since(start))
		s.opts.Metrics.RecordBytes("decode", len(d.Data))
		if f.err != nil {
			s.opts.Metrics.RecordError("decode")
			s.opts.Logger.Error("async decode failed", "err", f.err, "flags", d.Flags)
		}
		close(f.done)
	}

	select {
	case s.tasks <- task:
		return f
	case <-s.stopCh:
		var zero T
		return resolvedFuture(zero, ErrServiceClosed)
	}
}
