package service

import (
	"github.com/MKhiriev/shopman/internal/adapter"
	"github.com/MKhiriev/shopman/internal/config"
	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/state"
	"github.com/MKhiriev/shopman/internal/store"
)

type ClientServices struct {
	SyncEngine     SyncEngine
	ItemService    ClientItemService
	ListService    ClientListService
	ArchiveService ClientArchiveService
	SyncJob        ClientSyncJob
}

func NewClientServices(localStore store.LocalStore, remote adapter.RemoteAuthority, connectivity Connectivity, appStore *state.AppStore, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	engine := NewSyncEngine(localStore, remote, connectivity, appStore, cfg.MaxRetries, logger)

	return &ClientServices{
		SyncEngine:     engine,
		ItemService:    NewClientItemService(localStore, remote, engine, connectivity, appStore, logger),
		ListService:    NewClientListService(localStore, remote, engine, connectivity, appStore, logger),
		ArchiveService: NewClientArchiveService(remote, engine, connectivity, appStore, logger),
		SyncJob:        NewClientSyncJob(engine),
	}
}
