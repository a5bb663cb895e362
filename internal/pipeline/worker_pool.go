package pipeline

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type Task func(ctx context.Context) Result

// Result reports the outcome of one task.
type Result struct {
	UserID  uuid.UUID
	Matches int
	Err     error
}

// WorkerPool runs submitted tasks on a fixed number of goroutines. Call Run
// before Submit, then Close once every task has been submitted.
type WorkerPool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
}

func NewWorkerPool(workers, buffer int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &WorkerPool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

func (p *WorkerPool) Submit(t Task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- t
}

func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

// Run starts the workers and returns the result stream, closed once all
// workers exit. Tasks left in the queue after ctx is cancelled are drained
// without running.
func (p *WorkerPool) Run(ctx context.Context) <-chan Result {
	out := make(chan Result, p.workers*2)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for t := range p.tasks {
				if t == nil {
					continue
				}
				if ctx.Err() != nil {
					out <- Result{Err: ctx.Err()}
					continue
				}
				out <- t(ctx)
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}
