// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the installer's business logic: license
// verification, secret generation and writing the collected answers into the
// deployment's env files.
package service

import (
	"context"

	"github.com/MKhiriev/cursion-setup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// LicenseService verifies license keys against the Cursion API.
type LicenseService interface {
	// Verify trims key and submits it. On success it returns the license with
	// only the provisioned credentials that belong to the server group.
	//
	// Returns [ErrEmptyLicenseKey] for a blank key, [ErrInvalidLicense] when
	// the server refused the key, and [ErrLicenseServerUnavailable] (wrapped)
	// when no verdict could be obtained.
	Verify(ctx context.Context, key string) (models.License, error)
}

// SecretsService produces the secrets a fresh deployment needs.
type SecretsService interface {
	// Generate returns a new database password and application secret key.
	Generate() (models.GeneratedSecrets, error)
}

// EnvService turns validated answers into env file contents.
type EnvService interface {
	// Overrides builds the ordered variables of one group from answers.
	Overrides(group models.VariableGroup, answers models.SetupAnswers) models.OverrideSet

	// Apply validates answers, runs the template rename pre-step for every
	// target that has one, then merges each target's group into its file in
	// order. It stops at the first failure and returns it together with the
	// targets already written.
	Apply(ctx context.Context, answers models.SetupAnswers, targets []models.EnvTarget) ([]models.AppliedTarget, error)
}
