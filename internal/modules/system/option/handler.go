package option

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/smaranika/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct {
	svc *Service
}

type setOptionDTO struct {
	Value string `json:"value" binding:"required"`
}

func Register(rg *gin.RouterGroup, authMW gin.HandlerFunc, db *gorm.DB) {
	h := &Handler{svc: NewService(db)}

	rg.GET("/site", h.site)

	a := rg.Group("/options", authMW)
	a.GET("", h.list)
	a.GET("/:name", h.get)
	a.PATCH("/:name", h.set)
	a.DELETE("/:name", h.delete)
}

// site GET /site — public presentation settings for the frontend shell.
func (h *Handler) site(c *gin.Context) {
	snapshot, err := h.svc.Public()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, snapshot)
}

// list GET /options [auth]
func (h *Handler) list(c *gin.Context) {
	all, err := h.svc.All()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, all)
}

// get GET /options/:name [auth]
func (h *Handler) get(c *gin.Context) {
	value, err := h.svc.Get(c.Param("name"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"name": c.Param("name"), "value": value})
}

// set PATCH /options/:name [auth] — upsert.
func (h *Handler) set(c *gin.Context) {
	var dto setOptionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.Set(c.Param("name"), dto.Value); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"name": c.Param("name"), "value": dto.Value})
}

// delete DELETE /options/:name [auth]
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("name")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
