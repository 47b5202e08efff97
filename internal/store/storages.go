package store

import (
	"github.com/MKhiriev/cursion-setup/internal/config"
	"github.com/MKhiriev/cursion-setup/internal/logger"
)

// Storages groups the storage backends used by the installer so they can be
// passed to the service layer as a single value.
type Storages struct {
	// EnvFiles reads and patches the deployment's .env files.
	EnvFiles EnvFileStorage
}

// NewStorages builds the storage layer from cfg. Env file writes are atomic
// unless cfg.Files.NonAtomic is set.
func NewStorages(cfg config.InstallerStorage, log *logger.Logger) *Storages {
	log.Info().Str("env_dir", cfg.Files.EnvDir).Msg("creating new storages...")

	return &Storages{
		EnvFiles: NewEnvFileStorage(log, WithAtomicWrites(!cfg.Files.NonAtomic)),
	}
}
