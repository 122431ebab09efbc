// Package background runs fire-and-forget side effects on a bounded
// worker pool so slow dependencies never block request handling.
package background

import (
	"context"
	"log"
	"sync"
	"time"
)

const defaultTaskTimeout = 10 * time.Second

type task struct {
	name string
	fn   func(ctx context.Context)
}

// Runner executes submitted tasks on a fixed set of worker goroutines.
// The queue is bounded; when it is full new tasks are dropped and logged
// rather than blocking the caller.
type Runner struct {
	queue   chan task
	wg      sync.WaitGroup
	timeout time.Duration

	mu     sync.Mutex
	closed bool
}

// New starts a runner with the given number of workers and queue capacity.
func New(workers, queueSize int) *Runner {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 16
	}
	r := &Runner{
		queue:   make(chan task, queueSize),
		timeout: defaultTaskTimeout,
	}
	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go r.worker()
	}
	return r
}

// Submit enqueues a task for execution. It never blocks: if the queue is
// full or the runner is closed the task is dropped and false is returned.
func (r *Runner) Submit(name string, fn func(ctx context.Context)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		log.Printf("[Background] Runner closed, dropping task %s", name)
		return false
	}
	select {
	case r.queue <- task{name: name, fn: fn}:
		return true
	default:
		log.Printf("[Background] Queue full, dropping task %s", name)
		return false
	}
}

// Close stops accepting tasks and waits for queued ones to finish.
func (r *Runner) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Runner) worker() {
	defer r.wg.Done()
	for t := range r.queue {
		r.run(t)
	}
}

func (r *Runner) run(t task) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[Background] Task %s panicked: %v", t.name, rec)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	t.fn(ctx)
}
