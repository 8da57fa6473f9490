package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/shopman/internal/adapter"
	"github.com/MKhiriev/shopman/internal/client"
	"github.com/MKhiriev/shopman/internal/config"
	"github.com/MKhiriev/shopman/internal/connectivity"
	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/service"
	"github.com/MKhiriev/shopman/internal/state"
	"github.com/MKhiriev/shopman/internal/store"
	"github.com/MKhiriev/shopman/internal/tui"
	"github.com/MKhiriev/shopman/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("shopman-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("shopman-client", cfg.Storage.LogDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	remote, err := adapter.NewHTTPRemoteAuthority(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote authority client")
	}

	storages := store.NewClientStorages(ctx, cfg.Storage, log)
	defer storages.Close()

	monitor := connectivity.NewMonitor(remote, log)
	appStore := state.NewAppStore()
	services := service.NewClientServices(storages, remote, monitor, appStore, cfg.Workers, log)

	ui := tui.New(services, appStore, buildInfo, log)

	app, err := client.NewApp(services, monitor, ui, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		// os.Exit skips deferred calls
		stop()
		storages.Close()
		os.Exit(1)
	}
}
