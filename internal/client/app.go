package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/shopman/internal/config"
	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/service"
	"github.com/MKhiriev/shopman/internal/tui"
	"github.com/MKhiriev/shopman/internal/workers"
)

// App runs the background workers of the client for as long as the UI is
// open.
type App struct {
	ui       UI
	workers  *workers.Workers
	listName string
	logger   *logger.Logger
}

// NewApp wires the sync engine, the periodic drain and the connectivity probe
// into one worker set.
func NewApp(services *service.ClientServices, prober workers.Prober, ui UI, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil || prober == nil {
		return nil, errors.New("client app needs services, prober and ui")
	}

	return &App{
		ui: ui,
		workers: workers.NewWorkers(
			services.SyncEngine,
			workers.NewJobWorker(services.SyncJob, cfg.Workers.SyncInterval),
			workers.NewProbeWorker(prober, cfg.Workers.ProbeInterval, logger),
		),
		listName: cfg.ListName,
		logger:   logger,
	}, nil
}

// Run starts the workers, shows the UI and stops the workers once the UI
// returns. Leaving the UI on purpose is not an error.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	a.logger.Info().Int("workers", a.workers.Len()).Msg("starting client workers")
	a.workers.Run(ctx)
	defer func() {
		cancel()
		a.workers.Wait()
		a.logger.Info().Msg("client workers stopped")
	}()

	err := a.ui.Run(ctx, a.listName)
	if err == nil || errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return fmt.Errorf("ui: %w", err)
}
