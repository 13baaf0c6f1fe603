package timeline

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/smaranika/core/internal/middleware"
	"github.com/smaranika/core/internal/models"
	"github.com/smaranika/core/internal/modules/content/library"
	"github.com/smaranika/core/internal/pkg/pagination"
	"github.com/smaranika/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct {
	svc *Service
}

func Register(rg *gin.RouterGroup, authMW gin.HandlerFunc, db *gorm.DB) {
	h := &Handler{svc: NewService(db)}

	g := rg.Group("/timeline")
	g.GET("", h.list)
	g.GET("/:id", h.get)

	a := g.Group("", authMW)
	a.GET("/all", h.listAll)
	a.POST("", h.create)
	a.POST("/reorder", h.reorder)
	a.PUT("/:id", h.update)
	a.PATCH("/:id", h.update)
	a.PATCH("/:id/publish", h.togglePublish)
	a.PATCH("/:id/feature", h.toggleFeature)
	a.POST("/:id/move", h.move)
	a.DELETE("/:id", h.delete)
}

// list GET /timeline — published events in display order.
func (h *Handler) list(c *gin.Context) {
	h.listWith(c, true)
}

// listAll GET /timeline/all [auth]
func (h *Handler) listAll(c *gin.Context) {
	h.listWith(c, false)
}

func (h *Handler) listWith(c *gin.Context, publicOnly bool) {
	q := pagination.FromContext(c)
	events, pag, err := h.svc.List(q, publicOnly)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	lang := middleware.Lang(c)
	out := make([]interface{}, len(events))
	for i := range events {
		out[i] = toResponse(&events[i], lang)
	}
	response.Paged(c, out, pag)
}

func (h *Handler) get(c *gin.Context) {
	event, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if event == nil || (!event.State().Public() && !middleware.IsAuthenticated(c)) {
		response.NotFound(c)
		return
	}
	response.OK(c, toResponse(event, middleware.Lang(c)))
}

// create POST /timeline [auth] — appends at the end of the collection.
func (h *Handler) create(c *gin.Context) {
	var dto CreateTimelineEventDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	event, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(event, middleware.Lang(c)))
}

func (h *Handler) update(c *gin.Context) {
	var dto library.UpdateContentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	event, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if event == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, toResponse(event, middleware.Lang(c)))
}

func (h *Handler) togglePublish(c *gin.Context) {
	h.toggle(c, h.svc.TogglePublished)
}

func (h *Handler) toggleFeature(c *gin.Context) {
	h.toggle(c, h.svc.ToggleFeatured)
}

func (h *Handler) toggle(c *gin.Context, fn func(string) (*models.TimelineEvent, error)) {
	event, err := fn(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, toResponse(event, middleware.Lang(c)))
}

// move POST /timeline/:id/move [auth] — one step up or down. Moving the
// first event up or the last down returns the event unchanged.
func (h *Handler) move(c *gin.Context) {
	var dto MoveDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	event, err := h.svc.Move(c.Param("id"), dto.Direction)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, toResponse(event, middleware.Lang(c)))
}

// reorder POST /timeline/reorder [auth] — full permutation replace; a
// request that does not match the collection exactly is rejected with 409.
func (h *Handler) reorder(c *gin.Context) {
	var dto ReorderDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	events, err := h.svc.Reorder(dto.IDs)
	if err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			response.Conflict(c, "reorder does not match the timeline", gin.H{
				"missing":    conflict.Missing,
				"unexpected": conflict.Unexpected,
			})
			return
		}
		response.InternalError(c, err)
		return
	}

	lang := middleware.Lang(c)
	out := make([]interface{}, len(events))
	for i := range events {
		out[i] = toResponse(&events[i], lang)
	}
	response.OK(c, out)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
