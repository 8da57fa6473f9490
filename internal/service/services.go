package service

import (
	"fmt"

	"github.com/MKhiriev/shopman/internal/config"
	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/store"
	"github.com/MKhiriev/shopman/internal/utils"
)

// Services groups the server-side services of the reference backend.
type Services struct {
	AppInfoService AppInfoService
	ListService    ListService
	ItemService    ItemService
	ArchiveService ArchiveService
	PushService    PushService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	ids := utils.NewUUIDGenerator()

	listService := NewListValidationService().Wrap(NewListService(storages.ListStorage, ids, cfg.App, logger))
	itemService := NewItemValidationService().Wrap(NewItemService(storages.ItemStorage, storages.ListStorage, ids, logger))
	archiveService := NewArchiveValidationService().Wrap(NewArchiveService(storages, ids, logger))

	return &Services{
		AppInfoService: appInfoService,
		ListService:    listService,
		ItemService:    itemService,
		ArchiveService: archiveService,
		PushService:    NewPushService(storages.PushSubscriptionStorage, storages.ListStorage, logger),
	}, nil
}
