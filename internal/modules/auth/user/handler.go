package user

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/smaranika/core/internal/middleware"
	"github.com/smaranika/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct {
	svc *Service
}

func Register(rg *gin.RouterGroup, authMW gin.HandlerFunc, db *gorm.DB) {
	h := &Handler{svc: NewService(db)}

	g := rg.Group("/user")
	g.GET("", h.master)
	g.POST("/register", h.register)
	g.POST("/login", h.login)

	a := g.Group("", authMW)
	a.GET("/me", h.me)
	a.PATCH("", h.update)
	a.POST("/logout", h.logout)
}

// master GET /user — public admin profile, 404 until registration.
func (h *Handler) master(c *gin.Context) {
	u, err := h.svc.GetMaster()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFoundMsg(c, "no admin account registered")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, toResponse(u))
}

// register POST /user/register — open only while no admin exists.
func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.Register(&dto)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			response.Forbidden(c, "registration is closed")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(u))
}

// login POST /user/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, u, err := h.svc.Login(&dto, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, ErrBadCredentials) {
			response.Unauthorized(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, loginResponse{Token: token, User: toResponse(u)})
}

// me GET /user/me [auth]
func (h *Handler) me(c *gin.Context) {
	u, err := h.svc.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, toResponse(u))
}

// update PATCH /user [auth]
func (h *Handler) update(c *gin.Context) {
	var dto UpdateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.Update(middleware.CurrentUserID(c), &dto)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, toResponse(u))
}

// logout POST /user/logout [auth] — revokes the presented session.
func (h *Handler) logout(c *gin.Context) {
	if err := h.svc.Logout(middleware.CurrentUserID(c), middleware.CurrentSessionID(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
