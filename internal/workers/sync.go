package workers

import (
	"context"
	"time"
)

type jobWorker struct {
	job      Job
	interval time.Duration
}

// NewJobWorker adapts a ticker job, such as the periodic queue drain, to the
// Worker lifecycle: the job starts with Run and is stopped once ctx is done.
func NewJobWorker(job Job, interval time.Duration) Worker {
	return &jobWorker{job: job, interval: interval}
}

func (w *jobWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.interval)
	<-ctx.Done()
	w.job.Stop()
}
