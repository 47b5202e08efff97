package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/cursion-setup/internal/config"
	"github.com/MKhiriev/cursion-setup/internal/logger"
	"github.com/MKhiriev/cursion-setup/internal/service"
	"github.com/MKhiriev/cursion-setup/internal/utils"
	"github.com/MKhiriev/cursion-setup/internal/validators"
	"github.com/MKhiriev/cursion-setup/models"
	"github.com/rs/zerolog"
)

var _ Client = (*App)(nil)

// App is a single installer session. Pre-supplied answers from the
// configuration skip the matching prompts.
type App struct {
	services  *service.Services
	prompter  Prompter
	validator validators.Validator
	ids       utils.IDGenerator
	setup     config.InstallerSetup
	targets   []models.EnvTarget
	logger    *logger.Logger
}

func NewApp(
	services *service.Services,
	prompter Prompter,
	validator validators.Validator,
	ids utils.IDGenerator,
	cfg *config.InstallerConfig,
	log *logger.Logger,
) *App {
	return &App{
		services:  services,
		prompter:  prompter,
		validator: validator,
		ids:       ids,
		setup:     cfg.Setup,
		targets:   cfg.Targets(),
		logger:    log.WithComponent("client"),
	}
}

// Run walks through every installer step and writes the env files. Any
// prompter error, including a user abort, ends the session unchanged on disk.
func (a *App) Run(ctx context.Context) error {
	sessionID := a.ids.Generate()
	ctx = utils.WithRequestID(ctx, sessionID)
	log := a.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("session_id", sessionID)
	})
	ctx = log.WithContext(ctx)

	a.prompter.Welcome()

	license, err := a.askLicense(ctx)
	if err != nil {
		return err
	}

	admin, err := a.askAdmin(ctx)
	if err != nil {
		return err
	}

	domains, err := a.askDomains(ctx)
	if err != nil {
		return err
	}

	gptKey, err := a.askGPTKey(ctx)
	if err != nil {
		return err
	}

	if a.setup.EnableMCP {
		domains.MCP, err = a.askMCPDomain(ctx)
		if err != nil {
			return err
		}
	}

	secrets, err := a.services.SecretsService.Generate()
	if err != nil {
		return fmt.Errorf("generate secrets: %w", err)
	}

	answers := models.SetupAnswers{
		License: license,
		Admin:   admin,
		Domains: domains,
		GPTKey:  gptKey,
		Secrets: secrets,
	}

	applied, err := a.services.EnvService.Apply(ctx, answers, a.targets)
	if err != nil {
		log.Err(err).Int("applied", len(applied)).Msg("env files were not fully updated")
		return fmt.Errorf("apply configuration: %w", err)
	}

	for _, target := range applied {
		log.Info().
			Str("group", string(target.Target.Group)).
			Str("path", target.Target.Path).
			Bool("renamed", target.Renamed).
			Int("keys", len(target.Keys)).
			Int("preserved", target.Preserved).
			Msg("env file updated")
	}

	a.prompter.Success(msgComplete)
	return nil
}

// askLicense repeats until the license service accepts a key. A rejected
// pre-supplied key falls back to prompting.
func (a *App) askLicense(ctx context.Context) (models.License, error) {
	key := a.setup.LicenseKey

	for {
		if key == "" {
			var err error
			key, err = a.prompter.Prompt(ctx, labelLicenseKey, true)
			if err != nil {
				return models.License{}, err
			}
		}

		license, err := a.services.LicenseService.Verify(ctx, key)
		switch {
		case err == nil:
			a.prompter.Success(msgLicenseVerified)
			return license, nil
		case errors.Is(err, service.ErrInvalidLicense), errors.Is(err, service.ErrEmptyLicenseKey):
			logger.FromContext(ctx).Warn().Err(err).Msg("license key rejected")
			a.prompter.Failure(msgLicenseIncorrect)
			key = ""
		default:
			return models.License{}, fmt.Errorf("verify license: %w", err)
		}
	}
}

func (a *App) askAdmin(ctx context.Context) (models.AdminCredentials, error) {
	email := a.setup.AdminEmail

	for {
		if email == "" {
			var err error
			email, err = a.prompter.Prompt(ctx, labelAdminEmail, false)
			if err != nil {
				return models.AdminCredentials{}, err
			}
		}

		err := a.validator.Validate(ctx, models.AdminCredentials{Email: email}, validators.FieldAdminEmail)
		if err == nil {
			break
		}
		a.prompter.Failure(err.Error())
		email = ""
	}

	password := a.setup.AdminPassword
	if password != "" {
		err := a.validator.Validate(ctx, models.AdminCredentials{Password: password}, validators.FieldAdminPassword)
		if err != nil {
			a.prompter.Failure(err.Error())
			password = ""
		}
	}

	for password == "" {
		first, err := a.prompter.Prompt(ctx, labelAdminPassword, true)
		if err != nil {
			return models.AdminCredentials{}, err
		}

		second, err := a.prompter.Prompt(ctx, labelConfirmPassword, true)
		if err != nil {
			return models.AdminCredentials{}, err
		}

		if first != second {
			a.prompter.Failure(msgPasswordMismatch)
			continue
		}
		if err = a.validator.Validate(ctx, models.AdminCredentials{Password: first}, validators.FieldAdminPassword); err != nil {
			a.prompter.Failure(err.Error())
			continue
		}

		password = first
	}

	a.prompter.Success(credentialsUpdated(email))
	return models.AdminCredentials{Email: email, Password: password}, nil
}

// askDomains asks for confirmation only when at least one domain was typed
// in this session.
func (a *App) askDomains(ctx context.Context) (models.Domains, error) {
	server, client := a.setup.ServerDomain, a.setup.ClientDomain

	for {
		confirmed := server != "" && client != ""

		var err error
		if server == "" {
			if server, err = a.prompter.Prompt(ctx, labelServerDomain, false); err != nil {
				return models.Domains{}, err
			}
		}
		if client == "" {
			if client, err = a.prompter.Prompt(ctx, labelClientDomain, false); err != nil {
				return models.Domains{}, err
			}
		}

		domains := models.Domains{
			Server: models.CleanDomain(server),
			Client: models.CleanDomain(client),
		}

		err = a.validator.Validate(ctx, domains, validators.FieldServerDomain, validators.FieldClientDomain)
		if err != nil {
			a.prompter.Failure(err.Error())
			server, client = "", ""
			continue
		}

		if !confirmed {
			confirmed, err = a.prompter.Confirm(ctx, domainsConfirmLabel(domains.ServerURL(), domains.ClientURL()))
			if err != nil {
				return models.Domains{}, err
			}
		}

		if !confirmed {
			server, client = "", ""
			continue
		}

		a.prompter.Success(msgDomainsUpdated)
		return domains, nil
	}
}

func (a *App) askGPTKey(ctx context.Context) (string, error) {
	key := a.setup.GPTKey

	for key == "" {
		var err error
		key, err = a.prompter.Prompt(ctx, labelGPTKey, true)
		if err != nil {
			return "", err
		}

		if strings.TrimSpace(key) == "" {
			a.prompter.Failure(msgGPTKeyMissing)
			key = ""
		}
	}

	a.prompter.Success(msgGPTKeyAdded)
	return key, nil
}

func (a *App) askMCPDomain(ctx context.Context) (string, error) {
	domain := models.CleanDomain(a.setup.MCPDomain)

	for {
		if domain == "" {
			answer, err := a.prompter.Prompt(ctx, labelMCPDomain, false)
			if err != nil {
				return "", err
			}
			domain = models.CleanDomain(answer)
		}

		err := a.validator.Validate(ctx, models.Domains{MCP: domain}, validators.FieldMCPDomain)
		if err == nil && domain != "" {
			a.prompter.Success(msgMCPUpdated)
			return domain, nil
		}

		if err == nil {
			err = validators.ErrInvalidDomain
		}
		a.prompter.Failure(err.Error())
		domain = ""
	}
}
