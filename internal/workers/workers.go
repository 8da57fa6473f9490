package workers

import (
	"context"
	"sync"
)

// Workers runs a fixed set of workers, each in its own goroutine.
type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers returns an aggregate of the given workers. Nil entries are
// skipped.
func NewWorkers(workers ...Worker) *Workers {
	w := &Workers{}
	for _, worker := range workers {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

// Run starts every worker and returns immediately. Workers stop when ctx is
// cancelled; use Wait to block until all of them returned.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

// Wait blocks until every started worker returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}

// Len returns the number of workers in the aggregate.
func (w *Workers) Len() int {
	return len(w.workers)
}
