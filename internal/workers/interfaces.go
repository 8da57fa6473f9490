// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that runs several
// workers under one context, and the client workers: the periodic queue
// drain and the connectivity probe.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
// Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Prober records the reachability of the Remote Authority.
type Prober interface {
	Probe(ctx context.Context) bool
}

// Job is a ticker-driven job with an explicit lifecycle.
type Job interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
