package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/cursion-setup/internal/adapter"
	"github.com/MKhiriev/cursion-setup/internal/logger"
	"github.com/MKhiriev/cursion-setup/models"
)

type licenseService struct {
	adapter adapter.LicenseAdapter
	logger  *logger.Logger
}

// NewLicenseService returns a [LicenseService] backed by licenseAdapter.
func NewLicenseService(licenseAdapter adapter.LicenseAdapter, log *logger.Logger) LicenseService {
	return &licenseService{
		adapter: licenseAdapter,
		logger:  log.WithComponent("license-service"),
	}
}

func (s *licenseService) Verify(ctx context.Context, key string) (models.License, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return models.License{}, ErrEmptyLicenseKey
	}

	license, err := s.adapter.VerifyLicense(ctx, key)
	if err != nil {
		mapped := mapAdapterError(err)
		s.logger.Warn().Err(mapped).Msg("license verification failed")
		return models.License{}, mapped
	}

	data, ignored := filterLicenseData(license.Data)
	if len(ignored) > 0 {
		s.logger.Debug().Strs("keys", ignored).Msg("ignoring unknown license data keys")
	}

	s.logger.Info().Int("provisioned_keys", len(data)).Msg("license verified")

	return models.License{Key: key, Data: data}, nil
}
