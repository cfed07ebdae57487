// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Routes wires the handlers into a mux wrapped with request logging.
func (s *ServerContext) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/maps", s.HandleMapsList)
	mux.HandleFunc("/api/landmarks", s.HandleLandmarks)
	mux.HandleFunc("/favicon.svg", s.HandleFavicon)
	mux.HandleFunc("/assets/", s.HandleAsset)
	mux.HandleFunc("/maps/", s.HandleMapAsset)
	mux.HandleFunc("/", s.HandleIndex)

	return RequestLogger(mux)
}

// HandleMapsList serves the JSON list of available map profiles.
func (s *ServerContext) HandleMapsList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", contentJSON)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(s.Config.Maps)
}

// HandleLandmarks serves the landmark dataset with calculated distances.
func (s *ServerContext) HandleLandmarks(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, s.Landmarks)
}

// HandleFavicon serves the site favicon.
func (s *ServerContext) HandleFavicon(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/favicon.svg" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=86400")
	s.serve(w, r, s.Favicon)
}

// HandleAsset serves the minified frontend script and stylesheet that
// pages also carry inline.
func (s *ServerContext) HandleAsset(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/assets/script.js":
		s.serve(w, r, s.Script)
	case "/assets/style.css":
		s.serve(w, r, s.Style)
	default:
		http.NotFound(w, r)
	}
}

// HandleIndex serves the interactive page of a map profile: "/" for the
// first profile, "/{name}" for a profile or one of its aliases.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	name := strings.Trim(r.URL.Path, "/")
	if strings.ContainsAny(name, "./") {
		http.NotFound(w, r)
		return
	}

	if name == "" {
		name = s.Config.Maps[0].Name
	}

	m, ok := s.lookup(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	s.serve(w, r, m.page)
}

// HandleMapAsset serves rendered documents of a map profile.
func (s *ServerContext) HandleMapAsset(w http.ResponseWriter, r *http.Request) {
	// Path: /maps/{mapName}/{asset}
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 3 {
		http.NotFound(w, r)
		return
	}

	m, ok := s.lookup(parts[1])
	if !ok {
		http.NotFound(w, r)
		return
	}

	switch parts[2] {
	case "scene.svg":
		s.serve(w, r, m.scene)
	case "preview.webp":
		s.serve(w, r, m.preview)
	case "landmarks.geojson":
		s.serve(w, r, s.GeoJSON)
	default:
		http.NotFound(w, r)
	}
}

func (s *ServerContext) lookup(name string) (mapAssets, bool) {
	canonical, ok := s.MapNameResolver[name]
	if !ok {
		return mapAssets{}, false
	}
	m, ok := s.maps[canonical]

	return m, ok
}

// serve writes a pre-rendered payload honoring If-None-Match.
func (s *ServerContext) serve(w http.ResponseWriter, r *http.Request, p payload) {
	if etagMatch(r.Header.Get("If-None-Match"), p.etag) {
		w.Header().Set("ETag", p.etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", p.contentType)
	w.Header().Set("ETag", p.etag)
	if w.Header().Get("Cache-Control") == "" {
		w.Header().Set("Cache-Control", "public, no-cache")
	}
	_, _ = w.Write(p.body)
}

// etagMatch reports whether an If-None-Match header value selects etag.
// The header may list several tags or "*"; weak tags compare by value.
func etagMatch(header, etag string) bool {
	if header == "" {
		return false
	}

	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "*" {
			return true
		}
		if strings.TrimPrefix(tag, "W/") == etag {
			return true
		}
	}

	return false
}
