// Package render turns landmark scenes into deliverable documents:
// minified SVG, the interactive HTML page and raster previews.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/vista6040/vistamap/assets"
	"github.com/vista6040/vistamap/internal/config"
	"github.com/vista6040/vistamap/internal/interaction"
	"github.com/vista6040/vistamap/internal/landmark"
	"github.com/vista6040/vistamap/internal/scene"

	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/svg"
)

// Media types handled by the minifier.
const (
	TypeHTML = "text/html"
	TypeCSS  = "text/css"
	TypeJS   = "text/javascript"
	TypeSVG  = "image/svg+xml"
)

// Link is an entry of the page navigation.
type Link struct {
	Name  string
	Title string
}

// PageData feeds the page template.
type PageData struct {
	Title      string
	Name       string
	Style      template.CSS
	Script     template.JS
	Map        template.HTML
	Overlays   template.HTML
	LiveRegion template.HTML
	Links      []Link
	Modal      bool
	Preview    bool
	Placement  string
	Closed     string
}

// Renderer renders map profiles of one landmark set.
type Renderer struct {
	cfg    *config.Config
	set    *landmark.Set
	min    *minify.M
	page   *template.Template
	style  string
	script string
}

// NewRenderer prepares the minifier, the page template and the minified
// frontend assets.
func NewRenderer(cfg *config.Config, set *landmark.Set) (*Renderer, error) {
	m := minify.New()
	m.AddFunc(TypeCSS, css.Minify)
	m.AddFunc(TypeHTML, html.Minify)
	m.AddFunc(TypeJS, js.Minify)
	m.AddFunc(TypeSVG, svg.Minify)

	style, err := m.String(TypeCSS, PaletteCSS(":root")+assets.Style)
	if err != nil {
		return nil, fmt.Errorf("minify css: %w", err)
	}

	script, err := m.String(TypeJS, assets.Script)
	if err != nil {
		return nil, fmt.Errorf("minify js: %w", err)
	}

	page, err := template.New("index").Parse(assets.PageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	return &Renderer{
		cfg:    cfg,
		set:    set,
		min:    m,
		page:   page,
		style:  style,
		script: script,
	}, nil
}

// Style returns the minified stylesheet, palette included.
func (r *Renderer) Style() string { return r.style }

// Script returns the minified client script.
func (r *Renderer) Script() string { return r.script }

// Minify runs the minifier for mediatype over data.
func (r *Renderer) Minify(mediatype string, data []byte) ([]byte, error) {
	return r.min.Bytes(mediatype, data)
}

// SVG renders the standalone scene of a profile, palette included.
func (r *Renderer) SVG(m config.Map) ([]byte, error) {
	root, err := scene.Build(r.set, r.cfg.SceneOptions(m))
	if err != nil {
		return nil, err
	}

	palette := scene.El("style").WithText(PaletteCSS("svg"))
	root.Children = append([]*scene.Node{palette}, root.Children...)

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	if err := scene.Encode(&buf, root); err != nil {
		return nil, err
	}

	return r.Minify(TypeSVG, buf.Bytes())
}

// Page renders the interactive HTML page of a profile.
func (r *Renderer) Page(m config.Map) ([]byte, error) {
	data, err := r.pageData(m)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute page template: %w", err)
	}

	out, err := r.Minify(TypeHTML, buf.Bytes())
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("map", m.Name).
		Int("bytes", len(out)).
		Bool("modal", data.Modal).
		Msg("Page rendered")

	return out, nil
}

func (r *Renderer) pageData(m config.Map) (PageData, error) {
	opts := r.cfg.SceneOptions(m)
	dirs := r.cfg.Directions()

	container, err := scene.Container(r.set, opts)
	if err != nil {
		return PageData{}, err
	}

	outcomes := interaction.Outcomes(r.set, interaction.Options{
		Directions:  dirs,
		Preview:     opts.Preview,
		EnableModal: opts.EnableModal,
	})

	hrefs := make(map[string]string, len(outcomes))
	closed := interaction.ClosedAnnouncement
	overlays := scene.El("div", "class", "map-overlays", "hidden", "hidden")
	for _, o := range outcomes {
		hrefs[o.Landmark.ID] = o.Href
		overlays.Append(overlayTemplate(opts.ID, interaction.Tooltip, o.Landmark.ID, o.Hover, o.Tooltip))
		if o.Modal != nil {
			overlays.Append(overlayTemplate(opts.ID, interaction.Modal, o.Landmark.ID, o.Opened, o.Modal))
			closed = o.Closed
		}
	}

	// link opened on click when the modal is off
	for _, g := range container.ByClass("landmark") {
		id, _ := g.Get("data-id")
		if href := hrefs[id]; href != "" {
			g.Set("data-href", href)
		}
	}

	placement, err := json.Marshal(interaction.DefaultPlacement)
	if err != nil {
		return PageData{}, fmt.Errorf("encode placement: %w", err)
	}

	data := PageData{
		Title:      m.Title,
		Name:       m.Name,
		Style:      template.CSS(r.style),
		Script:     template.JS(r.script),
		Map:        encodeHTML(container),
		Overlays:   encodeHTML(overlays),
		LiveRegion: encodeHTML(interaction.LiveRegion()),
		Links:      r.links(),
		Modal:      opts.ModalEnabled(),
		Preview:    opts.Preview,
		Placement:  string(placement),
		Closed:     closed,
	}
	if data.Title == "" {
		data.Title = m.Name
	}

	return data, nil
}

func (r *Renderer) links() []Link {
	links := make([]Link, 0, len(r.cfg.Maps))
	for _, m := range r.cfg.Maps {
		title := m.Title
		if title == "" {
			title = m.Name
		}
		links = append(links, Link{Name: m.Name, Title: title})
	}

	return links
}

func overlayTemplate(ns string, kind interaction.Kind, id, announce string, body *scene.Node) *scene.Node {
	return scene.El("template",
		"data-ns", ns,
		"data-kind", kind.String(),
		"data-id", id,
		"data-announce", announce,
	).Append(body)
}

// encodeHTML serializes a trusted render tree; text and attributes are
// escaped by scene.Encode.
func encodeHTML(n *scene.Node) template.HTML {
	var buf bytes.Buffer
	_ = scene.Encode(&buf, n)

	return template.HTML(buf.String())
}
