package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/vista6040/vistamap/internal/config"
	"github.com/vista6040/vistamap/internal/landmark"
	"github.com/vista6040/vistamap/internal/logger"
	"github.com/vista6040/vistamap/internal/render"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile    string   `short:"c" long:"config"    env:"CONFIG_FILE"    description:"Path to configuration file" default:"config.yaml"`
	LandmarksFile string   `short:"L" long:"landmarks" env:"LANDMARKS_FILE" description:"Landmark dataset (YAML), overrides config"`
	OutDir        string   `short:"o" long:"out"       description:"Output directory" default:"dist"`
	Limit         []string `short:"l" long:"limit"     description:"Limit rendering to specific map names"`
	Formats       []string `short:"f" long:"format"    description:"Output formats" choice:"html" choice:"svg" choice:"webp" choice:"png" default:"html" default:"svg"`
	Width         int      `short:"w" long:"width"     description:"Raster width in pixels, 0 keeps the scene size"`
	Force         bool     `short:"F" long:"force"     description:"Force overwrite of existing files"`
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

	opts.Logger.Setup()

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

	renderer, err := render.NewRenderer(cfg, set)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare renderer")
	}

	// Filter maps if limit is set
	mapsToRender := cfg.Maps
	if len(opts.Limit) > 0 {
		mapsToRender = make([]config.Map, 0)
		available := make(map[string]config.Map)
		for _, m := range cfg.Maps {
			available[m.Name] = m
			for _, alias := range m.Aliases {
				available[alias] = m
			}
		}

		seen := make(map[string]bool)
		for _, name := range opts.Limit {
			m, ok := available[name]
			if !ok {
				log.Error().
					Str("name", name).
					Msg("Map specified in --limit not found in configuration")
				continue
			}
			if seen[m.Name] {
				continue
			}
			seen[m.Name] = true
			mapsToRender = append(mapsToRender, m)
		}
	}

	log.Info().
		Int("maps_total", len(cfg.Maps)).
		Int("maps_queued", len(mapsToRender)).
		Strs("formats", opts.Formats).
		Msg("Starting render")

	failed := 0
	for _, m := range mapsToRender {
		for _, format := range opts.Formats {
			path := filepath.Join(opts.OutDir, m.Name+"."+format)
			if err := renderOne(renderer, cfg, set, m, format, path, opts); err != nil {
				log.Error().Err(err).Str("map", m.Name).Str("format", format).Msg("Failed to render")
				failed++
			}
		}
	}

	if failed > 0 {
		log.Fatal().Int("failed", failed).Msg("Render finished with errors")
	}
	log.Info().Str("out", opts.OutDir).Msg("Render finished successfully")
}

func renderOne(r *render.Renderer, cfg *config.Config, set *landmark.Set, m config.Map, format, path string, opts Options) error {
	if !opts.Force {
		if info, err := os.Stat(path); err == nil && info.Size() > 0 {
			log.Debug().Str("path", path).Msg("Output exists, skipping")
			return nil
		}
	}

	var data []byte
	var err error

	switch strings.ToLower(format) {
	case "html":
		data, err = r.Page(m)
	case "svg":
		data, err = r.SVG(m)
	case "webp", "png":
		img, rerr := render.Raster(set, cfg.SceneOptions(m), opts.Width)
		if rerr != nil {
			return rerr
		}
		var buf bytes.Buffer
		if format == "webp" {
			err = render.EncodeWebP(&buf, img)
		} else {
			err = render.EncodePNG(&buf, img)
		}
		data = buf.Bytes()
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	log.Info().Str("map", m.Name).Str("path", path).Int("bytes", len(data)).Msg("Rendered")
	return nil
}
