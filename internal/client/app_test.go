package client

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/shopman/internal/config"
	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/service"
	"github.com/MKhiriev/shopman/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	service.SyncEngine
	running atomic.Bool
	stopped atomic.Bool
}

func (e *fakeEngine) Run(ctx context.Context) {
	e.running.Store(true)
	<-ctx.Done()
	e.stopped.Store(true)
}

type fakeJob struct {
	started atomic.Bool
	stopped atomic.Bool
}

func (j *fakeJob) Start(context.Context, time.Duration) { j.started.Store(true) }
func (j *fakeJob) Stop()                                { j.stopped.Store(true) }

type fakeProber struct {
	probes atomic.Int32
}

func (p *fakeProber) Probe(context.Context) bool {
	p.probes.Add(1)
	return true
}

type fakeUI struct {
	listName string
	err      error
	during   func()
}

func (u *fakeUI) Run(_ context.Context, listName string) error {
	u.listName = listName
	if u.during != nil {
		u.during()
	}
	return u.err
}

func newTestApp(t *testing.T, ui *fakeUI) (*App, *fakeEngine, *fakeJob, *fakeProber) {
	t.Helper()

	engine, job, prober := &fakeEngine{}, &fakeJob{}, &fakeProber{}
	services := &service.ClientServices{SyncEngine: engine, SyncJob: job}
	cfg := &config.ClientConfig{
		Workers:  config.ClientWorkers{SyncInterval: time.Minute, ProbeInterval: time.Hour},
		ListName: "Семья",
	}

	app, err := NewApp(services, prober, ui, cfg, logger.Nop())
	require.NoError(t, err)
	return app, engine, job, prober
}

func TestApp_RunsWorkersWhileUIIsOpen(t *testing.T) {
	ui := &fakeUI{}
	app, engine, job, prober := newTestApp(t, ui)

	ui.during = func() {
		require.Eventually(t, func() bool {
			return engine.running.Load() && job.started.Load() && prober.probes.Load() > 0
		}, time.Second, 5*time.Millisecond)
	}

	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, "Семья", ui.listName)
	assert.True(t, engine.stopped.Load())
	assert.True(t, job.stopped.Load())
}

func TestApp_UserQuitIsNotAnError(t *testing.T) {
	app, _, _, _ := newTestApp(t, &fakeUI{err: tui.ErrUserQuit})
	assert.NoError(t, app.Run(context.Background()))
}

func TestApp_UIErrorIsReturned(t *testing.T) {
	boom := errors.New("terminal gone")
	app, _, _, _ := newTestApp(t, &fakeUI{err: boom})

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakeProber{}, &fakeUI{}, &config.ClientConfig{}, logger.Nop())
	assert.Error(t, err)
}
