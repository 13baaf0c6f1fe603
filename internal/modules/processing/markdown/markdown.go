// Package markdown renders the markdown bodies of speeches, writings,
// poems, and tributes to HTML for public detail responses.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

var renderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
	),
)

// Render converts markdown source to HTML. Raw HTML in the source is
// escaped; tribute content is user-submitted.
func Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
