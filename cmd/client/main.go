package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/client"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("go-note-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	args := flag.Args()
	if len(args) == 1 && args[0] == "build-info" {
		info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
		fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", info.Version, info.Date, info.Commit)
		return
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	app, err := client.NewApp(serverAdapter, args, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
