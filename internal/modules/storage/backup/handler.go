package backup

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/smaranika/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func Register(rg *gin.RouterGroup, authMW gin.HandlerFunc, svc *Service) {
	h := &Handler{svc: svc}

	a := rg.Group("/backup", authMW)
	a.POST("", h.run)
	a.GET("/latest", h.latest)
}

// run POST /backup [auth] — synchronous dump-and-upload.
func (h *Handler) run(c *gin.Context) {
	info, err := h.svc.Run(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrDisabled) {
			response.BadRequest(c, "backup is not configured")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, info)
}

// latest GET /backup/latest [auth]
func (h *Handler) latest(c *gin.Context) {
	info, err := h.svc.Latest(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrDisabled) {
			response.BadRequest(c, "backup is not configured")
			return
		}
		response.InternalError(c, err)
		return
	}
	if info == nil {
		response.NotFoundMsg(c, "no backups uploaded yet")
		return
	}
	response.OK(c, info)
}
