package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smaranika/core/internal/middleware"
	"github.com/smaranika/core/internal/models"
	"github.com/smaranika/core/internal/modules/aggregate"
	"github.com/smaranika/core/internal/modules/auth/user"
	"github.com/smaranika/core/internal/modules/content/library"
	"github.com/smaranika/core/internal/modules/content/timeline"
	"github.com/smaranika/core/internal/modules/content/tribute"
	"github.com/smaranika/core/internal/modules/storage/backup"
	"github.com/smaranika/core/internal/modules/system/health"
	"github.com/smaranika/core/internal/modules/system/option"
	pkgredis "github.com/smaranika/core/internal/pkg/redis"
	"github.com/smaranika/core/internal/pkg/response"
	"go.uber.org/zap"
)

const apiPrefix = "/api/v1"

func (a *App) registerRoutes(rc *pkgredis.Client, backupSvc *backup.Service) {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.GET("/", func(c *gin.Context) {
		response.OK(c, gin.H{
			"name":    "smaranika-core",
			"version": "1.0.0",
		})
	})

	api := r.Group(apiPrefix)
	api.Use(middleware.OptionalAuth(db))
	// Rate limiting and idempotence run after auth resolution so the
	// admin exemption applies (requires Redis).
	api.Use(middleware.RateLimit(rc.Raw()))
	api.Use(middleware.Idempotence(rc.Raw()))
	api.Use(middleware.ResolveLanguage())
	api.Use(middleware.HTTPCache(rc.Raw(), middleware.HTTPCacheOptions{
		SkipPaths: []string{
			apiPrefix + "/user*",
			apiPrefix + "/health",
		},
	}))

	// Any successful write invalidates the public response cache.
	api.Use(func(c *gin.Context) {
		c.Next()
		if c.Request.Method != http.MethodGet && c.Writer.Status() < http.StatusBadRequest {
			if _, err := middleware.PurgeHTTPCache(c.Request.Context(), rc.Raw()); err != nil {
				a.logger.Warn("cache purge failed", zap.Error(err))
			}
		}
	})

	// Media sections.
	library.Register[models.Video](api, authMW, db, library.Options{Path: "videos", DefaultPublished: true})
	library.Register[models.Photo](api, authMW, db, library.Options{Path: "photos", DefaultPublished: true})
	library.Register[models.Poster](api, authMW, db, library.Options{Path: "posters", DefaultPublished: true})
	library.Register[models.Audio](api, authMW, db, library.Options{Path: "audios", DefaultPublished: true})
	library.Register[models.Document](api, authMW, db, library.Options{Path: "documents", DefaultPublished: true})

	// Written archive; bodies are markdown, rendered in responses.
	library.Register[models.Speech](api, authMW, db, library.Options{Path: "speeches", DefaultPublished: true, RenderBody: true})
	library.Register[models.Writing](api, authMW, db, library.Options{Path: "writings", DefaultPublished: true, RenderBody: true})
	library.Register[models.Poem](api, authMW, db, library.Options{Path: "poems", DefaultPublished: true, RenderBody: true})
	library.Register[models.Quote](api, authMW, db, library.Options{Path: "quotes", DefaultPublished: true})
	library.Register[models.News](api, authMW, db, library.Options{Path: "news", DefaultPublished: true, RenderBody: true})

	// Places and occasions. Locations stay drafts until reviewed.
	library.Register[models.MemorialEvent](api, authMW, db, library.Options{Path: "events", DefaultPublished: true})
	library.Register[models.Location](api, authMW, db, library.Options{Path: "locations", DefaultPublished: false})

	tribute.Register(api, authMW, db)
	timeline.Register(api, authMW, db)
	aggregate.Register(api, db)
	user.Register(api, authMW, db)
	option.Register(api, authMW, db)
	health.Register(api, db, rc)
	backup.Register(api, authMW, backupSvc)
}
