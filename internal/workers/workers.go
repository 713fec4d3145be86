package workers

import (
	"context"
	"sync"
)

// Workers runs a fixed set of workers on their own goroutines.
type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers groups ws. Nil entries are skipped.
func NewWorkers(ws ...Worker) *Workers {
	w := &Workers{workers: make([]Worker, 0, len(ws))}
	for _, worker := range ws {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

// Start launches every worker with ctx and returns immediately.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
