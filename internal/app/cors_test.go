package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractOriginHost(t *testing.T) {
	assert.Equal(t, "smaranika.example.org", extractOriginHost("https://smaranika.example.org"))
	assert.Equal(t, "localhost:3000", extractOriginHost("http://localhost:3000"))
	assert.Equal(t, "not a url", extractOriginHost("not a url"))
}

func TestMatchOriginPattern(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		assert.True(t, matchOriginPattern("smaranika.example.org", "smaranika.example.org"))
		assert.False(t, matchOriginPattern("smaranika.example.org", "evil.example.org"))
	})

	t.Run("subdomain wildcard", func(t *testing.T) {
		assert.True(t, matchOriginPattern("*.example.org", "admin.example.org"))
		assert.False(t, matchOriginPattern("*.example.org", "example.com"))
	})

	t.Run("port wildcard", func(t *testing.T) {
		assert.True(t, matchOriginPattern("localhost:*", "localhost:5173"))
		assert.False(t, matchOriginPattern("localhost:*", "remotehost:5173"))
	})
}
