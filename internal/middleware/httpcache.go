package middleware

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	APICachePrefix          = "smrk-api-cache:"
	defaultHTTPCacheTTL     = 15 * time.Second
	defaultHTTPCacheMaxBody = 1 << 20 // 1 MiB
)

type HTTPCacheOptions struct {
	TTL          time.Duration
	Disable      bool
	SkipPaths    []string
	MaxBodyBytes int
}

type cachedHTTPResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type,omitempty"`
	BodyBase64  string `json:"body_base64"`
	Body        []byte `json:"-"`
}

type cacheBodyWriter struct {
	gin.ResponseWriter
	body         []byte
	maxBodyBytes int
	overflow     bool
}

func (w *cacheBodyWriter) Write(data []byte) (int, error) {
	w.capture(data)
	return w.ResponseWriter.Write(data)
}

func (w *cacheBodyWriter) WriteString(s string) (int, error) {
	w.capture([]byte(s))
	return w.ResponseWriter.WriteString(s)
}

func (w *cacheBodyWriter) capture(data []byte) {
	if w.maxBodyBytes <= 0 || w.overflow || len(data) == 0 {
		return
	}
	remaining := w.maxBodyBytes - len(w.body)
	if remaining <= 0 {
		w.overflow = true
		return
	}
	if len(data) > remaining {
		w.body = append(w.body, data[:remaining]...)
		w.overflow = true
		return
	}
	w.body = append(w.body, data...)
}

// HTTPCache caches public GET responses in Redis. Authenticated requests
// and responses flagged uncacheable bypass the cache; the request language
// is part of the cache key because responses are language-resolved.
func HTTPCache(rdb *redis.Client, opts HTTPCacheOptions) gin.HandlerFunc {
	if opts.TTL <= 0 {
		opts.TTL = defaultHTTPCacheTTL
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultHTTPCacheMaxBody
	}
	return func(c *gin.Context) {
		if opts.Disable || rdb == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		if shouldSkipCachePath(path, opts.SkipPaths) {
			c.Next()
			return
		}

		if IsAuthenticated(c) {
			c.Next()
			return
		}

		cacheKey := APICachePrefix + Language(c) + ":" + c.Request.URL.RequestURI()
		if payload, ok := readCachedResponse(c.Request.Context(), rdb, cacheKey); ok {
			c.Header("x-smrk-cache", "hit")
			c.Data(payload.Status, payload.ContentType, payload.Body)
			c.Abort()
			return
		}

		buffer := &cacheBodyWriter{
			ResponseWriter: c.Writer,
			maxBodyBytes:   opts.MaxBodyBytes,
		}
		c.Writer = buffer
		c.Next()

		status := c.Writer.Status()
		if status != http.StatusOK || buffer.overflow || len(buffer.body) == 0 {
			return
		}
		if !isCacheableResponse(c.Writer.Header()) {
			return
		}

		payload := cachedHTTPResponse{
			Status:      status,
			ContentType: c.Writer.Header().Get("Content-Type"),
			BodyBase64:  base64.StdEncoding.EncodeToString(buffer.body),
		}
		raw, err := json.Marshal(payload)
		if err != nil {
			return
		}
		_ = rdb.Set(c.Request.Context(), cacheKey, raw, opts.TTL).Err()
	}
}

// PurgeHTTPCache removes all cached API responses, called after admin writes.
func PurgeHTTPCache(ctx context.Context, rdb *redis.Client) (int64, error) {
	if rdb == nil {
		return 0, nil
	}
	var (
		cursor  uint64
		deleted int64
	)
	for {
		keys, next, err := rdb.Scan(ctx, cursor, APICachePrefix+"*", 200).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			n, err := rdb.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, err
			}
			deleted += n
		}
		cursor = next
		if cursor == 0 {
			return deleted, nil
		}
	}
}

func readCachedResponse(ctx context.Context, rdb *redis.Client, cacheKey string) (cachedHTTPResponse, bool) {
	raw, err := rdb.Get(ctx, cacheKey).Bytes()
	if err != nil || len(raw) == 0 {
		return cachedHTTPResponse{}, false
	}
	var payload cachedHTTPResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return cachedHTTPResponse{}, false
	}
	if payload.Status <= 0 {
		payload.Status = http.StatusOK
	}
	if payload.ContentType == "" {
		payload.ContentType = "application/json; charset=utf-8"
	}
	body, err := base64.StdEncoding.DecodeString(payload.BodyBase64)
	if err != nil {
		return cachedHTTPResponse{}, false
	}
	payload.Body = body
	return payload, true
}

func shouldSkipCachePath(path string, patterns []string) bool {
	for _, pattern := range patterns {
		p := strings.TrimSpace(pattern)
		if p == "" {
			continue
		}
		if strings.HasSuffix(p, "*") {
			if strings.HasPrefix(path, strings.TrimSuffix(p, "*")) {
				return true
			}
			continue
		}
		if path == p {
			return true
		}
	}
	return false
}

func isCacheableResponse(headers http.Header) bool {
	cacheControl := strings.ToLower(headers.Get("Cache-Control"))
	return !strings.Contains(cacheControl, "no-cache") &&
		!strings.Contains(cacheControl, "no-store") &&
		!strings.Contains(cacheControl, "private")
}
