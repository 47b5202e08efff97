// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/cursion-setup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validAnswers() models.SetupAnswers {
	return models.SetupAnswers{
		License: models.License{Key: "lic-123"},
		Admin:   models.AdminCredentials{Email: "admin@example.com", Password: "s3cret"},
		Domains: models.Domains{Server: "api.example.com", Client: "app.example.com"},
		GPTKey:  "sk-test",
		Secrets: models.GeneratedSecrets{DBPassword: "pw", SecretKey: "key="},
	}
}

// ---------------------------------------------------------------------------
// Validate dispatch
// ---------------------------------------------------------------------------

func TestSetupValidator_Dispatch(t *testing.T) {
	v := NewSetupValidator()
	ctx := context.Background()
	answers := validAnswers()

	require.NoError(t, v.Validate(ctx, answers))
	require.NoError(t, v.Validate(ctx, &answers))
	require.NoError(t, v.Validate(ctx, answers.Admin))
	require.NoError(t, v.Validate(ctx, &answers.Admin))
	require.NoError(t, v.Validate(ctx, answers.Domains))
	require.NoError(t, v.Validate(ctx, &answers.Domains))

	assert.ErrorIs(t, v.Validate(ctx, "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, answers, "bogus"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, answers.Admin, FieldGPTKey), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// SetupAnswers
// ---------------------------------------------------------------------------

func TestSetupValidator_Answers(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(a *models.SetupAnswers)
		wantErr error
	}{
		{"empty license", func(a *models.SetupAnswers) { a.License.Key = " " }, ErrEmptyLicenseKey},
		{"bad email", func(a *models.SetupAnswers) { a.Admin.Email = "admin" }, ErrInvalidEmail},
		{"named email", func(a *models.SetupAnswers) { a.Admin.Email = "Admin <admin@example.com>" }, ErrInvalidEmail},
		{"empty password", func(a *models.SetupAnswers) { a.Admin.Password = "" }, ErrEmptyPassword},
		{"multiline password", func(a *models.SetupAnswers) { a.Admin.Password = "a\nb" }, ErrMultilineValue},
		{"empty server domain", func(a *models.SetupAnswers) { a.Domains.Server = "" }, ErrInvalidDomain},
		{"client domain scheme", func(a *models.SetupAnswers) { a.Domains.Client = "https:app.example.com" }, ErrInvalidDomain},
		{"mcp domain space", func(a *models.SetupAnswers) { a.Domains.MCP = "mcp example.com" }, ErrInvalidDomain},
		{"empty gpt key", func(a *models.SetupAnswers) { a.GPTKey = "" }, ErrEmptyGPTKey},
		{"missing secrets", func(a *models.SetupAnswers) { a.Secrets.SecretKey = "" }, ErrEmptySecrets},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := validAnswers()
			tt.mutate(&answers)

			err := NewSetupValidator().Validate(context.Background(), answers)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSetupValidator_Answers_FieldScoping(t *testing.T) {
	answers := validAnswers()
	answers.GPTKey = ""

	v := NewSetupValidator()
	assert.NoError(t, v.Validate(context.Background(), answers, FieldLicenseKey, FieldServerDomain))
	assert.ErrorIs(t, v.Validate(context.Background(), answers, FieldGPTKey), ErrEmptyGPTKey)
}

func TestSetupValidator_Answers_ErrorNamesField(t *testing.T) {
	answers := validAnswers()
	answers.Domains.Client = ""

	err := NewSetupValidator().Validate(context.Background(), answers)
	require.Error(t, err)
	assert.Contains(t, err.Error(), FieldClientDomain)
}

// ---------------------------------------------------------------------------
// Domains
// ---------------------------------------------------------------------------

func TestValidateDomain(t *testing.T) {
	tests := []struct {
		domain string
		valid  bool
	}{
		{"api.example.com", true},
		{"localhost", true},
		{"api.example.com:8443", true},
		{"xn--bcher-kva.example", true},
		{"", false},
		{"api example.com", false},
		{"api.example.com/", false},
		{"https:api.example.com", false},
		{"HTTP:api.example.com", false},
		{".example.com", false},
		{"example.com.", false},
		{"-example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			err := validateDomain(tt.domain)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidDomain)
			}
		})
	}
}

func TestSetupValidator_Domains_MCPOptional(t *testing.T) {
	d := models.Domains{Server: "api.example.com", Client: "app.example.com"}
	assert.NoError(t, NewSetupValidator().Validate(context.Background(), d, FieldMCPDomain))
}

// ---------------------------------------------------------------------------
// Admin
// ---------------------------------------------------------------------------

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, validateEmail("admin@example.com"))
	assert.NoError(t, validateEmail("ops+cursion@sub.example.org"))

	assert.ErrorIs(t, validateEmail(""), ErrInvalidEmail)
	assert.ErrorIs(t, validateEmail("admin@"), ErrInvalidEmail)
	assert.ErrorIs(t, validateEmail(" admin@example.com"), ErrInvalidEmail)
	assert.ErrorIs(t, validateEmail("a@b.com\nX=1"), ErrMultilineValue)
}
