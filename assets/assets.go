// Package assets embeds the static files of the web frontend.
package assets

import _ "embed"

var (
	//go:embed index.html.tpl
	PageTemplate string

	//go:embed script.js
	Script string

	//go:embed style.css
	Style string

	//go:embed favicon.svg
	Favicon []byte
)
