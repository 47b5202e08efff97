package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/cursion-setup/internal/config"
	"github.com/MKhiriev/cursion-setup/internal/logger"
	"github.com/MKhiriev/cursion-setup/internal/mock"
	"github.com/MKhiriev/cursion-setup/internal/service"
	"github.com/MKhiriev/cursion-setup/internal/validators"
	"github.com/MKhiriev/cursion-setup/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

type testDeps struct {
	prompter *mock.MockPrompter
	license  *mock.MockLicenseService
	secrets  *mock.MockSecretsService
	env      *mock.MockEnvService
}

var (
	testLicense = models.License{Key: "lic-1", Data: map[string]string{"TWILIO_SID": "AC1"}}
	testSecrets = models.GeneratedSecrets{DBPassword: "db-pass", SecretKey: "secret-key"}
)

func newTestConfig(setup config.InstallerSetup) *config.InstallerConfig {
	return &config.InstallerConfig{
		Storage: config.InstallerStorage{
			Files: config.InstallerFiles{
				EnvDir:     "/srv/env",
				ClientFile: ".client.env",
				ServerFile: ".server.env",
				MCPFile:    ".mcp.env",
			},
		},
		Setup: setup,
	}
}

func newTestApp(t *testing.T, setup config.InstallerSetup) (*App, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := testDeps{
		prompter: mock.NewMockPrompter(ctrl),
		license:  mock.NewMockLicenseService(ctrl),
		secrets:  mock.NewMockSecretsService(ctrl),
		env:      mock.NewMockEnvService(ctrl),
	}

	services := &service.Services{
		LicenseService: deps.license,
		SecretsService: deps.secrets,
		EnvService:     deps.env,
	}

	app := NewApp(services, deps.prompter, validators.NewSetupValidator(), fixedIDs("session-1"), newTestConfig(setup), logger.Nop())
	return app, deps
}

func fullSetup() config.InstallerSetup {
	return config.InstallerSetup{
		LicenseKey:    "lic-1",
		AdminEmail:    "admin@example.com",
		AdminPassword: "pa55",
		ServerDomain:  "api.example.com",
		ClientDomain:  "app.example.com",
		GPTKey:        "sk-1",
	}
}

// ── Run: pre-supplied answers ───────────────────────────────────────────────

func TestApp_Run_AllAnswersSupplied(t *testing.T) {
	app, deps := newTestApp(t, fullSetup())

	deps.prompter.EXPECT().Welcome()
	deps.license.EXPECT().Verify(gomock.Any(), "lic-1").Return(testLicense, nil)
	deps.secrets.EXPECT().Generate().Return(testSecrets, nil)

	var got models.SetupAnswers
	var gotTargets []models.EnvTarget
	deps.env.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, answers models.SetupAnswers, targets []models.EnvTarget) ([]models.AppliedTarget, error) {
			got, gotTargets = answers, targets
			return []models.AppliedTarget{{Target: targets[0], Keys: []string{"ADMIN_USER"}}}, nil
		})

	gomock.InOrder(
		deps.prompter.EXPECT().Success(msgLicenseVerified),
		deps.prompter.EXPECT().Success(credentialsUpdated("admin@example.com")),
		deps.prompter.EXPECT().Success(msgDomainsUpdated),
		deps.prompter.EXPECT().Success(msgGPTKeyAdded),
		deps.prompter.EXPECT().Success(msgComplete),
	)

	err := app.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.SetupAnswers{
		License: testLicense,
		Admin:   models.AdminCredentials{Email: "admin@example.com", Password: "pa55"},
		Domains: models.Domains{Server: "api.example.com", Client: "app.example.com"},
		GPTKey:  "sk-1",
		Secrets: testSecrets,
	}, got)
	require.Len(t, gotTargets, 2)
	assert.Equal(t, models.ClientGroup, gotTargets[0].Group)
	assert.Equal(t, models.ServerGroup, gotTargets[1].Group)
}

func TestApp_Run_LogsSessionSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompter := mock.NewMockPrompter(ctrl)
	license := mock.NewMockLicenseService(ctrl)
	secrets := mock.NewMockSecretsService(ctrl)
	env := mock.NewMockEnvService(ctrl)

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	services := &service.Services{LicenseService: license, SecretsService: secrets, EnvService: env}
	app := NewApp(services, prompter, validators.NewSetupValidator(), fixedIDs("session-42"), newTestConfig(fullSetup()), log)

	prompter.EXPECT().Welcome()
	prompter.EXPECT().Success(gomock.Any()).AnyTimes()
	license.EXPECT().Verify(gomock.Any(), "lic-1").Return(testLicense, nil)
	secrets.EXPECT().Generate().Return(testSecrets, nil)
	env.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.SetupAnswers, targets []models.EnvTarget) ([]models.AppliedTarget, error) {
			return []models.AppliedTarget{{Target: targets[0], Keys: []string{"ADMIN_USER"}, Preserved: 7}}, nil
		})

	require.NoError(t, app.Run(context.Background()))

	out := buf.String()
	assert.Contains(t, out, `"session_id":"session-42"`)
	assert.Contains(t, out, `"preserved":7`)
	assert.Contains(t, out, `"component":"client"`)
}

// ── Run: interactive retries ────────────────────────────────────────────────

func TestApp_Run_InteractiveRetries(t *testing.T) {
	app, deps := newTestApp(t, config.InstallerSetup{})
	p := deps.prompter

	p.EXPECT().Welcome()
	gomock.InOrder(
		p.EXPECT().Prompt(gomock.Any(), labelLicenseKey, true).Return("bad", nil),
		deps.license.EXPECT().Verify(gomock.Any(), "bad").
			Return(models.License{}, fmt.Errorf("%w: rejected", service.ErrInvalidLicense)),
		p.EXPECT().Failure(msgLicenseIncorrect),
		p.EXPECT().Prompt(gomock.Any(), labelLicenseKey, true).Return("lic-1", nil),
		deps.license.EXPECT().Verify(gomock.Any(), "lic-1").Return(testLicense, nil),
		p.EXPECT().Success(msgLicenseVerified),

		p.EXPECT().Prompt(gomock.Any(), labelAdminEmail, false).Return("not-an-email", nil),
		p.EXPECT().Failure(gomock.Any()),
		p.EXPECT().Prompt(gomock.Any(), labelAdminEmail, false).Return("admin@example.com", nil),
		p.EXPECT().Prompt(gomock.Any(), labelAdminPassword, true).Return("one", nil),
		p.EXPECT().Prompt(gomock.Any(), labelConfirmPassword, true).Return("two", nil),
		p.EXPECT().Failure(msgPasswordMismatch),
		p.EXPECT().Prompt(gomock.Any(), labelAdminPassword, true).Return("pa55", nil),
		p.EXPECT().Prompt(gomock.Any(), labelConfirmPassword, true).Return("pa55", nil),
		p.EXPECT().Success(credentialsUpdated("admin@example.com")),

		p.EXPECT().Prompt(gomock.Any(), labelServerDomain, false).Return("wrong.example.com", nil),
		p.EXPECT().Prompt(gomock.Any(), labelClientDomain, false).Return("app.example.com", nil),
		p.EXPECT().Confirm(gomock.Any(), domainsConfirmLabel("https://wrong.example.com", "https://app.example.com")).Return(false, nil),
		p.EXPECT().Prompt(gomock.Any(), labelServerDomain, false).Return("api.example.com/", nil),
		p.EXPECT().Prompt(gomock.Any(), labelClientDomain, false).Return("app.example.com", nil),
		p.EXPECT().Confirm(gomock.Any(), domainsConfirmLabel("https://api.example.com", "https://app.example.com")).Return(true, nil),
		p.EXPECT().Success(msgDomainsUpdated),

		p.EXPECT().Prompt(gomock.Any(), labelGPTKey, true).Return("", nil),
		p.EXPECT().Failure(msgGPTKeyMissing),
		p.EXPECT().Prompt(gomock.Any(), labelGPTKey, true).Return("sk-1", nil),
		p.EXPECT().Success(msgGPTKeyAdded),

		deps.secrets.EXPECT().Generate().Return(testSecrets, nil),
		deps.env.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, answers models.SetupAnswers, _ []models.EnvTarget) ([]models.AppliedTarget, error) {
				assert.Equal(t, "api.example.com", answers.Domains.Server)
				assert.Equal(t, "pa55", answers.Admin.Password)
				return nil, nil
			}),
		p.EXPECT().Success(msgComplete),
	)

	require.NoError(t, app.Run(context.Background()))
}

func TestApp_Run_InvalidSuppliedPasswordFallsBackToPrompt(t *testing.T) {
	setup := fullSetup()
	setup.AdminPassword = "multi\nline"
	app, deps := newTestApp(t, setup)
	p := deps.prompter

	p.EXPECT().Welcome()
	p.EXPECT().Success(gomock.Any()).AnyTimes()
	deps.license.EXPECT().Verify(gomock.Any(), "lic-1").Return(testLicense, nil)
	gomock.InOrder(
		p.EXPECT().Failure(validators.ErrMultilineValue.Error()),
		p.EXPECT().Prompt(gomock.Any(), labelAdminPassword, true).Return("pa55", nil),
		p.EXPECT().Prompt(gomock.Any(), labelConfirmPassword, true).Return("pa55", nil),
	)
	deps.secrets.EXPECT().Generate().Return(testSecrets, nil)
	deps.env.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	require.NoError(t, app.Run(context.Background()))
}

func TestApp_Run_HiddenAnswersKeepSpaces(t *testing.T) {
	setup := fullSetup()
	setup.AdminPassword = ""
	setup.GPTKey = ""
	app, deps := newTestApp(t, setup)
	p := deps.prompter

	p.EXPECT().Welcome()
	p.EXPECT().Success(gomock.Any()).AnyTimes()
	deps.license.EXPECT().Verify(gomock.Any(), "lic-1").Return(testLicense, nil)
	gomock.InOrder(
		p.EXPECT().Prompt(gomock.Any(), labelAdminPassword, true).Return(" pa55 ", nil),
		p.EXPECT().Prompt(gomock.Any(), labelConfirmPassword, true).Return(" pa55 ", nil),
		p.EXPECT().Prompt(gomock.Any(), labelGPTKey, true).Return("   ", nil),
		p.EXPECT().Failure(msgGPTKeyMissing),
		p.EXPECT().Prompt(gomock.Any(), labelGPTKey, true).Return("sk-1", nil),
	)
	deps.secrets.EXPECT().Generate().Return(testSecrets, nil)
	deps.env.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, answers models.SetupAnswers, _ []models.EnvTarget) ([]models.AppliedTarget, error) {
			assert.Equal(t, " pa55 ", answers.Admin.Password)
			assert.Equal(t, "sk-1", answers.GPTKey)
			return nil, nil
		})

	require.NoError(t, app.Run(context.Background()))
}

// ── Run: MCP ────────────────────────────────────────────────────────────────

func TestApp_Run_MCPPrompted(t *testing.T) {
	setup := fullSetup()
	setup.EnableMCP = true
	app, deps := newTestApp(t, setup)
	p := deps.prompter

	p.EXPECT().Welcome()
	p.EXPECT().Success(gomock.Any()).AnyTimes()
	deps.license.EXPECT().Verify(gomock.Any(), "lic-1").Return(testLicense, nil)
	gomock.InOrder(
		p.EXPECT().Prompt(gomock.Any(), labelMCPDomain, false).Return("  ", nil),
		p.EXPECT().Failure(validators.ErrInvalidDomain.Error()),
		p.EXPECT().Prompt(gomock.Any(), labelMCPDomain, false).Return("mcp.example.com/", nil),
	)
	deps.secrets.EXPECT().Generate().Return(testSecrets, nil)
	deps.env.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, answers models.SetupAnswers, targets []models.EnvTarget) ([]models.AppliedTarget, error) {
			assert.Equal(t, "mcp.example.com", answers.Domains.MCP)
			require.Len(t, targets, 3)
			assert.Equal(t, models.MCPGroup, targets[2].Group)
			return nil, nil
		})

	require.NoError(t, app.Run(context.Background()))
}

// ── Run: failures ───────────────────────────────────────────────────────────

func TestApp_Run_LicenseServerUnavailable(t *testing.T) {
	app, deps := newTestApp(t, fullSetup())

	deps.prompter.EXPECT().Welcome()
	deps.license.EXPECT().Verify(gomock.Any(), "lic-1").
		Return(models.License{}, fmt.Errorf("%w: timeout", service.ErrLicenseServerUnavailable))

	err := app.Run(context.Background())

	assert.ErrorIs(t, err, service.ErrLicenseServerUnavailable)
}

func TestApp_Run_UserAbort(t *testing.T) {
	errAbort := errors.New("aborted")
	setup := fullSetup()
	setup.AdminEmail = ""
	app, deps := newTestApp(t, setup)

	deps.prompter.EXPECT().Welcome()
	deps.prompter.EXPECT().Success(msgLicenseVerified)
	deps.license.EXPECT().Verify(gomock.Any(), "lic-1").Return(testLicense, nil)
	deps.prompter.EXPECT().Prompt(gomock.Any(), labelAdminEmail, false).Return("", errAbort)

	err := app.Run(context.Background())

	assert.ErrorIs(t, err, errAbort)
}

func TestApp_Run_GenerateSecretsError(t *testing.T) {
	app, deps := newTestApp(t, fullSetup())

	deps.prompter.EXPECT().Welcome()
	deps.prompter.EXPECT().Success(gomock.Any()).AnyTimes()
	deps.license.EXPECT().Verify(gomock.Any(), "lic-1").Return(testLicense, nil)
	deps.secrets.EXPECT().Generate().Return(models.GeneratedSecrets{}, service.ErrGenerateSecrets)

	err := app.Run(context.Background())

	assert.ErrorIs(t, err, service.ErrGenerateSecrets)
}

func TestApp_Run_ApplyError(t *testing.T) {
	app, deps := newTestApp(t, fullSetup())
	errDisk := errors.New("disk full")

	deps.prompter.EXPECT().Welcome()
	deps.prompter.EXPECT().Success(gomock.Any()).Times(4)
	deps.license.EXPECT().Verify(gomock.Any(), "lic-1").Return(testLicense, nil)
	deps.secrets.EXPECT().Generate().Return(testSecrets, nil)
	deps.env.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errDisk)

	err := app.Run(context.Background())

	assert.ErrorIs(t, err, errDisk)
}
