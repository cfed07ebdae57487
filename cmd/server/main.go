package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/vista6040/vistamap/internal/config"
	"github.com/vista6040/vistamap/internal/landmark"
	"github.com/vista6040/vistamap/internal/logger"
	"github.com/vista6040/vistamap/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile    string `short:"c" long:"config"        env:"CONFIG_FILE"    description:"Path to configuration file"          default:"config.yaml"`
	LandmarksFile string `short:"L" long:"landmarks"     env:"LANDMARKS_FILE" description:"Landmark dataset (YAML), overrides config"`
	Addr          string `short:"a" long:"addr"          env:"LISTEN_ADDRESS" description:"Address to listen on"                default:"0.0.0.0"`
	Port          int    `short:"p" long:"port"          env:"LISTEN_PORT"    description:"Port to listen on"                   default:"8080"`
	PreviewWidth  int    `short:"w" long:"preview-width" env:"PREVIEW_WIDTH"  description:"Width of raster previews in pixels" default:"450"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if opts.LandmarksFile != "" {
		cfg.LandmarksFile = opts.LandmarksFile
	}

	set, err := landmark.Load(cfg.LandmarksFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load landmarks")
	}

	srvCtx, err := server.NewServerContext(cfg, set, opts.PreviewWidth)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to render maps")
	}

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Int("maps_loaded", len(cfg.Maps)).
		Str("primary", set.Primary().Name).
		Msg("Web server started")

	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           srvCtx.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
