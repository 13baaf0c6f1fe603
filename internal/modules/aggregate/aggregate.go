// Package aggregate serves the landing-page payload in one request: site
// settings, the featured slice of each published section, the approved
// featured tributes, the timeline and section counts.
package aggregate

import (
	"github.com/gin-gonic/gin"
	"github.com/smaranika/core/internal/middleware"
	"github.com/smaranika/core/internal/models"
	"github.com/smaranika/core/internal/modules/content/library"
	"github.com/smaranika/core/internal/modules/system/option"
	"github.com/smaranika/core/internal/pkg/bilingual"
	"github.com/smaranika/core/internal/pkg/response"
	"gorm.io/gorm"
)

// featuredLimit caps each section's slice on the landing page.
const featuredLimit = 6

type Handler struct {
	db      *gorm.DB
	options *option.Service
}

func Register(rg *gin.RouterGroup, db *gorm.DB) {
	h := &Handler{db: db, options: option.NewService(db)}
	rg.GET("/aggregate", h.aggregate)
}

// aggregate GET /aggregate
func (h *Handler) aggregate(c *gin.Context) {
	lang := middleware.Lang(c)

	site, err := h.options.Public()
	if err != nil {
		response.InternalError(c, err)
		return
	}

	sections := gin.H{}
	counts := gin.H{}
	var firstErr error

	collect := func(name string, fetch func() ([]library.ContentResponse, int64, error)) {
		if firstErr != nil {
			return
		}
		items, total, err := fetch()
		if err != nil {
			firstErr = err
			return
		}
		sections[name] = items
		counts[name] = total
	}

	collect("videos", func() ([]library.ContentResponse, int64, error) {
		return featuredOf[models.Video](h.db, lang, false)
	})
	collect("photos", func() ([]library.ContentResponse, int64, error) {
		return featuredOf[models.Photo](h.db, lang, false)
	})
	collect("posters", func() ([]library.ContentResponse, int64, error) {
		return featuredOf[models.Poster](h.db, lang, false)
	})
	collect("audios", func() ([]library.ContentResponse, int64, error) {
		return featuredOf[models.Audio](h.db, lang, false)
	})
	collect("documents", func() ([]library.ContentResponse, int64, error) {
		return featuredOf[models.Document](h.db, lang, false)
	})
	collect("speeches", func() ([]library.ContentResponse, int64, error) {
		return featuredOf[models.Speech](h.db, lang, true)
	})
	collect("writings", func() ([]library.ContentResponse, int64, error) {
		return featuredOf[models.Writing](h.db, lang, true)
	})
	collect("poems", func() ([]library.ContentResponse, int64, error) {
		return featuredOf[models.Poem](h.db, lang, true)
	})
	collect("quotes", func() ([]library.ContentResponse, int64, error) {
		return featuredOf[models.Quote](h.db, lang, false)
	})
	collect("news", func() ([]library.ContentResponse, int64, error) {
		return featuredOf[models.News](h.db, lang, false)
	})
	collect("events", func() ([]library.ContentResponse, int64, error) {
		return featuredOf[models.MemorialEvent](h.db, lang, false)
	})
	collect("locations", func() ([]library.ContentResponse, int64, error) {
		return featuredOf[models.Location](h.db, lang, false)
	})
	if firstErr != nil {
		response.InternalError(c, firstErr)
		return
	}

	timeline, err := h.publishedTimeline(lang)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	tributes, tributeCount, err := h.featuredTributes()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	counts["tributes"] = tributeCount

	response.OK(c, gin.H{
		"site":     site,
		"sections": sections,
		"timeline": timeline,
		"tributes": tributes,
		"counts":   counts,
	})
}

// featuredOf returns the featured published records of one content type,
// plus the section's total published count.
func featuredOf[T any](db *gorm.DB, lang bilingual.Lang, renderBody bool) ([]library.ContentResponse, int64, error) {
	var total int64
	if err := db.Model(new(T)).Where("published = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []T
	err := db.Where("published = ? AND featured = ?", true, true).
		Order("created_at DESC").
		Limit(featuredLimit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]library.ContentResponse, len(items))
	for i := range items {
		out[i] = library.ToResponse(contentOf(&items[i]), lang, renderBody)
	}
	return out, total, nil
}

// contentOf reaches the embedded base through the shared interface.
func contentOf[T any](item *T) *models.ContentBase {
	type hasContent interface{ Content() *models.ContentBase }
	return any(item).(hasContent).Content()
}

func (h *Handler) publishedTimeline(lang bilingual.Lang) ([]library.ContentResponse, error) {
	var events []models.TimelineEvent
	err := h.db.Where("published = ?", true).
		Order("display_order ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	out := make([]library.ContentResponse, len(events))
	for i := range events {
		out[i] = library.ToResponse(&events[i].ContentBase, lang, true)
	}
	return out, nil
}

func (h *Handler) featuredTributes() ([]models.Tribute, int64, error) {
	var total int64
	err := h.db.Model(&models.Tribute{}).
		Where("status = ?", models.TributeApproved).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var tributes []models.Tribute
	err = h.db.Where("status = ? AND featured = ?", models.TributeApproved, true).
		Order("created_at DESC").
		Limit(featuredLimit).
		Find(&tributes).Error
	if err != nil {
		return nil, 0, err
	}
	return tributes, total, nil
}
