package tribute

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/smaranika/core/internal/middleware"
	"github.com/smaranika/core/internal/models"
	"github.com/smaranika/core/internal/pkg/pagination"
	"github.com/smaranika/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct{ svc *Service }

func Register(rg *gin.RouterGroup, authMW gin.HandlerFunc, db *gorm.DB) {
	h := &Handler{svc: NewService(db)}
	g := rg.Group("/tributes")

	g.POST("", h.submit)
	g.GET("", h.list)
	g.GET("/:id", h.get)

	a := g.Group("", authMW)
	a.GET("/all", h.listAll)
	a.PATCH("/:id/approve", h.approve)
	a.PATCH("/:id/reject", h.reject)
	a.PATCH("/:id/feature", h.toggleFeature)
	a.DELETE("/:id", h.delete)
}

// submit POST /tributes — public entry point, always lands in PENDING.
func (h *Handler) submit(c *gin.Context) {
	var dto SubmitTributeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	t, err := h.svc.Submit(&dto, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			response.ValidationFailed(c, verr.Error(), verr.Fields)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(t, middleware.Lang(c)))
}

// list GET /tributes — public, APPROVED only.
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	tributes, pag, err := h.svc.List(q, true, nil)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	lang := middleware.Lang(c)
	out := make([]tributeResponse, len(tributes))
	for i := range tributes {
		out[i] = toResponse(&tributes[i], lang)
	}
	response.Paged(c, out, pag)
}

// listAll GET /tributes/all [auth] — every status, optional ?status= filter.
func (h *Handler) listAll(c *gin.Context) {
	q := pagination.FromContext(c)

	var status *models.TributeStatus
	if raw := c.Query("status"); raw != "" {
		st := models.TributeStatus(raw)
		switch st {
		case models.TributePending, models.TributeApproved, models.TributeRejected:
			status = &st
		default:
			response.BadRequest(c, "unknown status filter: "+raw)
			return
		}
	}

	tributes, pag, err := h.svc.List(q, false, status)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	lang := middleware.Lang(c)
	out := make([]adminTributeResponse, len(tributes))
	for i := range tributes {
		out[i] = toAdminResponse(&tributes[i], lang)
	}
	response.Paged(c, out, pag)
}

// get GET /tributes/:id — 404 unless APPROVED (admins see every status).
func (h *Handler) get(c *gin.Context) {
	t, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if t == nil {
		response.NotFound(c)
		return
	}

	if middleware.IsAuthenticated(c) {
		response.OK(c, toAdminResponse(t, middleware.Lang(c)))
		return
	}
	if !t.Public() {
		response.NotFound(c)
		return
	}
	response.OK(c, toResponse(t, middleware.Lang(c)))
}

// approve PATCH /tributes/:id/approve [auth]
func (h *Handler) approve(c *gin.Context) {
	t, err := h.svc.Approve(c.Param("id"))
	if err != nil {
		h.moderationError(c, err)
		return
	}
	response.OK(c, toAdminResponse(t, middleware.Lang(c)))
}

// reject PATCH /tributes/:id/reject [auth]
func (h *Handler) reject(c *gin.Context) {
	var dto RejectTributeDTO
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&dto); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	t, err := h.svc.Reject(c.Param("id"), dto.Reason)
	if err != nil {
		h.moderationError(c, err)
		return
	}
	response.OK(c, toAdminResponse(t, middleware.Lang(c)))
}

// toggleFeature PATCH /tributes/:id/feature [auth]
func (h *Handler) toggleFeature(c *gin.Context) {
	t, err := h.svc.ToggleFeatured(c.Param("id"))
	if err != nil {
		h.moderationError(c, err)
		return
	}
	response.OK(c, toAdminResponse(t, middleware.Lang(c)))
}

// delete DELETE /tributes/:id [auth]
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		h.moderationError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) moderationError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		response.NotFoundMsg(c, "tribute not found")
		return
	}
	response.InternalError(c, err)
}
