package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/cursion-setup/internal/logger"
	"github.com/MKhiriev/cursion-setup/internal/store"
	"github.com/MKhiriev/cursion-setup/internal/validators"
	"github.com/MKhiriev/cursion-setup/models"
)

type envService struct {
	files     store.EnvFileStorage
	validator validators.Validator
	logger    *logger.Logger
}

// NewEnvService returns an [EnvService] writing through files. answers are
// checked with validator before anything is touched.
func NewEnvService(files store.EnvFileStorage, validator validators.Validator, log *logger.Logger) EnvService {
	return &envService{
		files:     files,
		validator: validator,
		logger:    log.WithComponent("env-service"),
	}
}

func (s *envService) Overrides(group models.VariableGroup, answers models.SetupAnswers) models.OverrideSet {
	switch group {
	case models.ServerGroup:
		return serverOverrides(answers)
	case models.ClientGroup:
		return clientOverrides(answers)
	case models.MCPGroup:
		return mcpOverrides(answers)
	default:
		return models.OverrideSet{}
	}
}

func (s *envService) Apply(ctx context.Context, answers models.SetupAnswers, targets []models.EnvTarget) ([]models.AppliedTarget, error) {
	if err := s.validator.Validate(ctx, answers); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAnswers, err)
	}

	for _, t := range targets {
		if !knownGroup(t.Group) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, t.Group)
		}
	}

	// Every rename runs before the first merge.
	renamed := make([]bool, len(targets))
	for i, t := range targets {
		if t.TemplatePath == "" {
			continue
		}

		ok, err := s.files.RenameIfExists(ctx, t.TemplatePath, t.Path)
		if err != nil {
			return nil, fmt.Errorf("prepare %s env file: %w", t.Group, err)
		}
		renamed[i] = ok
		if ok {
			s.logger.Info().Str("from", t.TemplatePath).Str("to", t.Path).Msg("env template moved into place")
		}
	}

	applied := make([]models.AppliedTarget, 0, len(targets))
	for i, t := range targets {
		overrides := s.Overrides(t.Group, answers)
		if overrides.Len() == 0 && t.Optional {
			s.logger.Debug().Str("group", string(t.Group)).Msg("no variables for optional env file, skipping")
			continue
		}

		err := s.files.Merge(ctx, t.Path, overrides)
		if err != nil && t.Optional && errors.Is(err, store.ErrFileNotFound) {
			s.logger.Warn().Str("path", t.Path).Msg("optional env file is missing, skipping")
			continue
		}
		if err != nil {
			return applied, fmt.Errorf("update %s env file: %w", t.Group, err)
		}

		preserved, err := s.verify(ctx, t.Path, overrides)
		if err != nil {
			return applied, fmt.Errorf("verify %s env file: %w", t.Group, err)
		}

		applied = append(applied, models.AppliedTarget{
			Target:    t,
			Renamed:   renamed[i],
			Keys:      overrides.Keys(),
			Preserved: preserved,
		})

		s.logger.Info().
			Str("group", string(t.Group)).
			Str("path", t.Path).
			Int("keys", overrides.Len()).
			Int("preserved", preserved).
			Msg("env file updated")
	}

	return applied, nil
}

// verify reads path back and checks that every override key holds its value.
// It returns the number of keys in the file that were not overridden.
func (s *envService) verify(ctx context.Context, path string, overrides models.OverrideSet) (int, error) {
	file, err := s.files.Read(ctx, path)
	if err != nil {
		return 0, err
	}

	for _, pair := range overrides.Pairs() {
		value, ok := file.Lookup(pair.Key)
		if !ok || value != pair.Value {
			return 0, fmt.Errorf("%w: %s", ErrEnvMismatch, pair.Key)
		}
	}

	preserved := 0
	for _, key := range file.Keys() {
		if !overrides.Has(key) {
			preserved++
		}
	}
	return preserved, nil
}

func knownGroup(g models.VariableGroup) bool {
	switch g {
	case models.ServerGroup, models.ClientGroup, models.MCPGroup:
		return true
	}
	return false
}
