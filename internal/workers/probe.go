package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/shopman/internal/logger"
)

const defaultProbeInterval = 10 * time.Second

type probeWorker struct {
	prober   Prober
	interval time.Duration
	logger   *logger.Logger
}

// NewProbeWorker returns a worker that probes the Remote Authority once on
// start and then every interval (10 seconds when interval is not positive).
func NewProbeWorker(prober Prober, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &probeWorker{prober: prober, interval: interval, logger: logger}
}

func (w *probeWorker) Run(ctx context.Context) {
	w.logger.Debug().Str("func", "probeWorker.Run").Dur("interval", w.interval).Msg("connectivity probe started")

	w.prober.Probe(ctx)

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Str("func", "probeWorker.Run").Msg("connectivity probe stopped")
			return
		case <-t.C:
			w.prober.Probe(ctx)
		}
	}
}
