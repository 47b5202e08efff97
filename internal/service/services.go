package service

import (
	"github.com/MKhiriev/cursion-setup/internal/adapter"
	"github.com/MKhiriev/cursion-setup/internal/crypto"
	"github.com/MKhiriev/cursion-setup/internal/logger"
	"github.com/MKhiriev/cursion-setup/internal/store"
	"github.com/MKhiriev/cursion-setup/internal/validators"
)

// Services groups the installer's services so they can be handed to the
// interactive flow as one value.
type Services struct {
	LicenseService LicenseService
	SecretsService SecretsService
	EnvService     EnvService
}

func NewServices(
	licenseAdapter adapter.LicenseAdapter,
	storages *store.Storages,
	generator crypto.SecretGenerator,
	validator validators.Validator,
	log *logger.Logger,
) *Services {
	return &Services{
		LicenseService: NewLicenseService(licenseAdapter, log),
		SecretsService: NewSecretsService(generator),
		EnvService:     NewEnvService(storages.EnvFiles, validator, log),
	}
}
