package service

import (
	"context"

	"github.com/MKhiriev/press-pay/internal/config"
	"github.com/MKhiriev/press-pay/internal/logger"
)

const unknownVersion = "N/A"

type appInfoService struct {
	serviceName string
	appVersion  string

	logger *logger.Logger
}

// NewAppInfoService fails when cfg carries no service name. A missing
// version is reported as "N/A".
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.ServiceName == "" {
		return nil, ErrServiceNameIsNotSpecified
	}

	version := cfg.Version
	if version == "" {
		version = unknownVersion
	}

	return &appInfoService{
		serviceName: cfg.ServiceName,
		appVersion:  version,
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetServiceName(ctx context.Context) string {
	return s.serviceName
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
