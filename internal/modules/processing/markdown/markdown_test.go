package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("basic markdown", func(t *testing.T) {
		html, err := Render("# শিরোনাম\n\nsome **bold** text")
		require.NoError(t, err)
		assert.Contains(t, html, "<h1>শিরোনাম</h1>")
		assert.Contains(t, html, "<strong>bold</strong>")
	})

	t.Run("raw html is escaped", func(t *testing.T) {
		html, err := Render("<script>alert(1)</script>")
		require.NoError(t, err)
		assert.NotContains(t, html, "<script>")
	})

	t.Run("empty input", func(t *testing.T) {
		html, err := Render("")
		require.NoError(t, err)
		assert.Empty(t, html)
	})
}
