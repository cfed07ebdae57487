package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/vista6040/vistamap/assets"
	"github.com/vista6040/vistamap/internal/config"
	"github.com/vista6040/vistamap/internal/landmark"
	"github.com/vista6040/vistamap/internal/render"

	"github.com/rs/zerolog/log"
)

// Content types of served payloads.
const (
	contentHTML    = "text/html; charset=utf-8"
	contentSVG     = "image/svg+xml"
	contentWebP    = "image/webp"
	contentGeoJSON = "application/geo+json"
	contentJSON    = "application/json"
	contentCSS     = "text/css; charset=utf-8"
	contentJS      = "text/javascript; charset=utf-8"
)

// payload is a pre-rendered response body with its validator.
type payload struct {
	contentType string
	etag        string
	body        []byte
}

func newPayload(contentType string, body []byte) payload {
	h := fnv.New64a()
	_, _ = h.Write(body)

	return payload{
		contentType: contentType,
		etag:        fmt.Sprintf(`"%x-%x"`, len(body), h.Sum64()),
		body:        body,
	}
}

// mapAssets are the rendered documents of one profile.
type mapAssets struct {
	page    payload
	scene   payload
	preview payload
}

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config          *config.Config
	Set             *landmark.Set
	MapNameResolver map[string]string
	Favicon         payload
	Landmarks       payload
	GeoJSON         payload
	Style           payload
	Script          payload
	maps            map[string]mapAssets
}

// NewServerContext renders every configured map profile once. Profiles
// that fail to render are skipped with a warning, like maps without
// layers; the set itself is immutable so responses never change.
func NewServerContext(cfg *config.Config, set *landmark.Set, previewWidth int) (*ServerContext, error) {
	log.Info().Int("config_maps_count", len(cfg.Maps)).Msg("Initializing server context")

	renderer, err := render.NewRenderer(cfg, set)
	if err != nil {
		return nil, err
	}

	resolver := make(map[string]string)
	rendered := make(map[string]mapAssets)
	validMaps := make([]config.Map, 0, len(cfg.Maps))

	for _, m := range cfg.Maps {
		if _, dup := rendered[m.Name]; dup {
			log.Warn().Str("map", m.Name).Msg("Skipping map: duplicate name")
			continue
		}

		docs, err := renderMap(renderer, cfg, set, m, previewWidth)
		if err != nil {
			log.Warn().Err(err).Str("map", m.Name).Msg("Skipping map: render failed")
			continue
		}
		rendered[m.Name] = docs

		resolver[m.Name] = m.Name
		for _, alias := range m.Aliases {
			resolver[alias] = m.Name
		}

		log.Debug().
			Str("map", m.Name).
			Bool("preview", m.Preview).
			Int("page_bytes", len(docs.page.body)).
			Msg("Map rendered and added to context")

		validMaps = append(validMaps, m)
	}

	sort.SliceStable(validMaps, func(i, j int) bool {
		idxI, idxJ := 999999, 999999
		if validMaps[i].Index != nil {
			idxI = *validMaps[i].Index
		}
		if validMaps[j].Index != nil {
			idxJ = *validMaps[j].Index
		}
		if idxI != idxJ {
			return idxI < idxJ
		}

		return validMaps[i].Name < validMaps[j].Name
	})
	cfg.Maps = validMaps

	if len(cfg.Maps) == 0 {
		return nil, fmt.Errorf("no renderable maps in configuration")
	}

	set.ComputeDistances()
	landmarks, err := json.Marshal(set.All())
	if err != nil {
		return nil, fmt.Errorf("encode landmarks: %w", err)
	}

	geojson, err := set.FeatureCollection().MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode geojson: %w", err)
	}

	log.Info().
		Int("valid_maps_count", len(cfg.Maps)).
		Int("landmarks", set.Len()).
		Msg("Server context initialized successfully")

	return &ServerContext{
		Config:          cfg,
		Set:             set,
		MapNameResolver: resolver,
		Favicon:         newPayload(contentSVG, assets.Favicon),
		Landmarks:       newPayload(contentJSON, landmarks),
		GeoJSON:         newPayload(contentGeoJSON, geojson),
		Style:           newPayload(contentCSS, []byte(renderer.Style())),
		Script:          newPayload(contentJS, []byte(renderer.Script())),
		maps:            rendered,
	}, nil
}

func renderMap(r *render.Renderer, cfg *config.Config, set *landmark.Set, m config.Map, previewWidth int) (mapAssets, error) {
	page, err := r.Page(m)
	if err != nil {
		return mapAssets{}, fmt.Errorf("page: %w", err)
	}

	svg, err := r.SVG(m)
	if err != nil {
		return mapAssets{}, fmt.Errorf("svg: %w", err)
	}

	img, err := render.Raster(set, cfg.SceneOptions(m), previewWidth)
	if err != nil {
		return mapAssets{}, fmt.Errorf("raster: %w", err)
	}

	var webp bytes.Buffer
	if err := render.EncodeWebP(&webp, img); err != nil {
		return mapAssets{}, fmt.Errorf("webp: %w", err)
	}

	return mapAssets{
		page:    newPayload(contentHTML, page),
		scene:   newPayload(contentSVG, svg),
		preview: newPayload(contentWebP, webp.Bytes()),
	}, nil
}
