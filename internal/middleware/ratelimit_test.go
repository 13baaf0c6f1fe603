package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// stubCounterHook answers INCR with a fixed count without a live server,
// and records how many commands the middleware issued.
type stubCounterHook struct {
	incrValue int64
	commands  *int
}

func (h stubCounterHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h stubCounterHook) ProcessHook(redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		*h.commands++
		switch c := cmd.(type) {
		case *redis.IntCmd:
			c.SetVal(h.incrValue)
		case *redis.BoolCmd:
			c.SetVal(true)
		}
		return nil
	}
}

func (h stubCounterHook) ProcessPipelineHook(redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		*h.commands += len(cmds)
		return nil
	}
}

func rateLimitedRequest(t *testing.T, incrValue int64, authed bool) (*httptest.ResponseRecorder, int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	commands := 0
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	rdb.AddHook(stubCounterHook{incrValue: incrValue, commands: &commands})

	r := gin.New()
	if authed {
		r.Use(func(c *gin.Context) {
			c.Set(ContextKeyUserID, "admin-id")
			c.Next()
		})
	}
	r.Use(RateLimit(rdb))
	r.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest("GET", "/probe", nil)
	req.RemoteAddr = "198.51.100.7:40000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, commands
}

func TestRateLimit(t *testing.T) {
	t.Run("under the limit passes", func(t *testing.T) {
		w, commands := rateLimitedRequest(t, 1, false)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Positive(t, commands)
	})

	t.Run("over the limit rejects with 429", func(t *testing.T) {
		w, _ := rateLimitedRequest(t, rateLimitMax+1, false)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "1", w.Header().Get("Retry-After"))
	})

	t.Run("authenticated caller skips the limiter entirely", func(t *testing.T) {
		w, commands := rateLimitedRequest(t, rateLimitMax+1, true)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, commands, "exempt requests must not touch redis")
	})
}
