package service

import (
	"github.com/MKhiriev/press-pay/internal/config"
	"github.com/MKhiriev/press-pay/internal/logger"
	"github.com/MKhiriev/press-pay/internal/store"
)

type Services struct {
	AuthService    AuthService
	EntryService   EntryService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		EntryService:   NewEntryService(storages.UserRepository, storages.EntryRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
