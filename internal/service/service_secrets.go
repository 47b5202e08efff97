package service

import (
	"fmt"

	"github.com/MKhiriev/cursion-setup/internal/crypto"
	"github.com/MKhiriev/cursion-setup/models"
)

type secretsService struct {
	generator crypto.SecretGenerator
}

// NewSecretsService returns a [SecretsService] drawing from generator.
func NewSecretsService(generator crypto.SecretGenerator) SecretsService {
	return &secretsService{generator: generator}
}

func (s *secretsService) Generate() (models.GeneratedSecrets, error) {
	dbPassword, err := s.generator.GenerateDBPassword()
	if err != nil {
		return models.GeneratedSecrets{}, fmt.Errorf("%w: %w", ErrGenerateSecrets, err)
	}

	secretKey, err := s.generator.GenerateSecretKey()
	if err != nil {
		return models.GeneratedSecrets{}, fmt.Errorf("%w: %w", ErrGenerateSecrets, err)
	}

	return models.GeneratedSecrets{DBPassword: dbPassword, SecretKey: secretKey}, nil
}
