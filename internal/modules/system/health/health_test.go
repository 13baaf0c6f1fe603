package health

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	checks := gin.H{"database": "ok", "redis": "dial tcp: connection refused"}

	t.Run("healthy is 200 ok", func(t *testing.T) {
		status, body := report(true, false, gin.H{"database": "ok", "redis": "ok"})
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("degraded is 503", func(t *testing.T) {
		status, body := report(false, true, checks)
		assert.Equal(t, http.StatusServiceUnavailable, status)
		assert.Equal(t, "degraded", body["status"])
	})

	t.Run("unauthenticated callers get no backend detail", func(t *testing.T) {
		_, body := report(false, false, checks)
		_, exposed := body["checks"]
		assert.False(t, exposed, "backend error strings must stay admin-only")
	})

	t.Run("admins get the per-check detail", func(t *testing.T) {
		_, body := report(false, true, checks)
		require.Contains(t, body, "checks")
		assert.Equal(t, checks, body["checks"])
	})
}
