package library

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/smaranika/core/internal/middleware"
	"github.com/smaranika/core/internal/pkg/pagination"
	"github.com/smaranika/core/internal/pkg/response"
	"gorm.io/gorm"
)

// Handler serves one content type's HTTP surface.
type Handler[T any, PT Item[T]] struct {
	svc  *Service[T, PT]
	opts Options
}

// Register instantiates the generic service and handler for one content
// type and mounts its routes.
func Register[T any, PT Item[T]](rg *gin.RouterGroup, authMW gin.HandlerFunc, db *gorm.DB, opts Options) {
	svc := NewService[T, PT](db, opts)
	h := &Handler[T, PT]{svc: svc, opts: opts}

	g := rg.Group("/" + opts.Path)
	g.GET("", h.list)
	g.GET("/:id", h.get)

	a := g.Group("", authMW)
	a.GET("/all", h.listAll)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.PATCH("/:id", h.update)
	a.PATCH("/:id/publish", h.togglePublish)
	a.PATCH("/:id/feature", h.toggleFeature)
	a.DELETE("/:id", h.delete)
}

// list GET /{type} — public, published records only.
func (h *Handler[T, PT]) list(c *gin.Context) {
	h.listWith(c, true)
}

// listAll GET /{type}/all [auth] — every state, for the back office.
func (h *Handler[T, PT]) listAll(c *gin.Context) {
	h.listWith(c, false)
}

func (h *Handler[T, PT]) listWith(c *gin.Context, publicOnly bool) {
	q := pagination.FromContext(c)
	items, pag, err := h.svc.List(q, publicOnly)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	lang := middleware.Lang(c)
	out := make([]interface{}, len(items))
	for i := range items {
		out[i] = ToResponse(PT(&items[i]).Content(), lang, h.opts.RenderBody)
	}
	response.Paged(c, out, pag)
}

// get GET /{type}/:id — 404 when the record exists but is unpublished,
// unless the caller is an authenticated admin.
func (h *Handler[T, PT]) get(c *gin.Context) {
	item, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil || (!item.Content().State().Public() && !middleware.IsAuthenticated(c)) {
		response.NotFound(c)
		return
	}
	response.OK(c, ToResponse(item.Content(), middleware.Lang(c), h.opts.RenderBody))
}

// create POST /{type} [auth]
func (h *Handler[T, PT]) create(c *gin.Context) {
	var dto CreateContentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, ToResponse(item.Content(), middleware.Lang(c), h.opts.RenderBody))
}

// update PUT/PATCH /{type}/:id [auth]
func (h *Handler[T, PT]) update(c *gin.Context) {
	var dto UpdateContentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, ToResponse(item.Content(), middleware.Lang(c), h.opts.RenderBody))
}

// togglePublish PATCH /{type}/:id/publish [auth]
func (h *Handler[T, PT]) togglePublish(c *gin.Context) {
	h.toggle(c, h.svc.TogglePublished)
}

// toggleFeature PATCH /{type}/:id/feature [auth]
func (h *Handler[T, PT]) toggleFeature(c *gin.Context) {
	h.toggle(c, h.svc.ToggleFeatured)
}

func (h *Handler[T, PT]) toggle(c *gin.Context, fn func(string) (PT, error)) {
	item, err := fn(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, ToResponse(item.Content(), middleware.Lang(c), h.opts.RenderBody))
}

// delete DELETE /{type}/:id [auth]
func (h *Handler[T, PT]) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
