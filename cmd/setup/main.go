package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/cursion-setup/internal/adapter"
	"github.com/MKhiriev/cursion-setup/internal/client"
	"github.com/MKhiriev/cursion-setup/internal/config"
	"github.com/MKhiriev/cursion-setup/internal/crypto"
	"github.com/MKhiriev/cursion-setup/internal/logger"
	"github.com/MKhiriev/cursion-setup/internal/service"
	"github.com/MKhiriev/cursion-setup/internal/store"
	"github.com/MKhiriev/cursion-setup/internal/tui"
	"github.com/MKhiriev/cursion-setup/internal/utils"
	"github.com/MKhiriev/cursion-setup/internal/validators"
	"github.com/MKhiriev/cursion-setup/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	buildInfo := printBuildInfo()

	cfg, err := config.GetInstallerConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		logger.NewLogger("cursion-setup").Error().Err(err).Msg("error getting configs")
		return 2
	}

	log := logger.NewClientLogger("cursion-setup", cfg.App.LogFile)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Str("env_dir", cfg.Storage.Files.EnvDir).
		Bool("mcp", cfg.Setup.EnableMCP).
		Msg("installer started")

	ids := utils.NewUUIDGenerator()

	licenseAdapter, err := adapter.NewHTTPLicenseAdapter(cfg.Adapter, ids, log)
	if err != nil {
		log.Error().Err(err).Msg("create license adapter")
		fmt.Fprintf(os.Stderr, "create license adapter: %v\n", err)
		return 1
	}

	validator := validators.NewSetupValidator()
	storages := store.NewStorages(cfg.Storage, log)
	services := service.NewServices(licenseAdapter, storages, crypto.NewSecretGenerator(), validator, log)

	ui := tui.New(log)
	var app client.Client = client.NewApp(services, ui, validator, ids, cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		switch {
		case errors.Is(err, tui.ErrUserQuit), errors.Is(err, context.Canceled):
			log.Warn().Err(err).Msg("installer aborted")
			ui.Failure("setup aborted")
		default:
			log.Error().Err(err).Msg("installer failed")
			ui.Failure(tui.HumanizeError(err))
		}
		return 1
	}

	log.Info().Msg("installer finished")
	return 0
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())

	return info
}
