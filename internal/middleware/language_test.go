package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func resolveFor(t *testing.T, target, acceptLanguage string) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var got string
	r := gin.New()
	r.Use(ResolveLanguage())
	r.GET("/probe", func(c *gin.Context) {
		got = Language(c)
	})

	req := httptest.NewRequest("GET", target, nil)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	r.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestResolveLanguage(t *testing.T) {
	t.Run("defaults to bengali", func(t *testing.T) {
		assert.Equal(t, "bn", resolveFor(t, "/probe", ""))
	})

	t.Run("query param wins", func(t *testing.T) {
		assert.Equal(t, "en", resolveFor(t, "/probe?lang=en", "bn"))
	})

	t.Run("accept-language fallback", func(t *testing.T) {
		assert.Equal(t, "en", resolveFor(t, "/probe", "en-US,en;q=0.9"))
		assert.Equal(t, "bn", resolveFor(t, "/probe", "bn-BD,bn;q=0.9,en;q=0.5"))
	})

	t.Run("unknown values fall back to bengali", func(t *testing.T) {
		assert.Equal(t, "bn", resolveFor(t, "/probe?lang=fr", ""))
		assert.Equal(t, "bn", resolveFor(t, "/probe", "de-DE"))
	})
}

func TestPreferredFromHeader(t *testing.T) {
	assert.Equal(t, "en", preferredFromHeader("en-GB;q=0.8, fr;q=0.5"))
	assert.Equal(t, "bn", preferredFromHeader("fr, bn;q=0.7"))
	assert.Equal(t, "", preferredFromHeader("fr-FR, de"))
	assert.Equal(t, "", preferredFromHeader(""))
}
