package response

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
)

// Pagination metadata returned with paginated responses. Page is 0-indexed;
// Last is true once the requested page is at or past the final page.
type Pagination struct {
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	Last          bool  `json:"last"`
}

// pagedResponse is the envelope for paginated list responses.
type pagedResponse struct {
	Content       interface{} `json:"content"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
	Last          bool        `json:"last"`
}

// OK sends a 200 response. Arrays/slices are wrapped in {data: [...]}.
func OK(c *gin.Context, data interface{}) {
	if data != nil {
		v := reflect.ValueOf(data)
		if v.Kind() == reflect.Slice {
			c.JSON(http.StatusOK, gin.H{"data": data})
			return
		}
	}
	c.JSON(http.StatusOK, data)
}

// Paged sends a paginated response following the listing contract.
func Paged(c *gin.Context, content interface{}, p Pagination) {
	c.JSON(http.StatusOK, pagedResponse{
		Content:       content,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Last:          p.Last,
	})
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	abortWith(c, http.StatusBadRequest, message, nil)
}

// ValidationFailed sends a 422 error naming the fields at fault.
func ValidationFailed(c *gin.Context, message string, fields []string) {
	abortWith(c, http.StatusUnprocessableEntity, message, gin.H{"fields": fields})
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context) {
	abortWith(c, http.StatusUnauthorized, "authentication required", nil)
}

// Forbidden sends a 403 error response.
func Forbidden(c *gin.Context, message string) {
	abortWith(c, http.StatusForbidden, message, nil)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context) {
	abortWith(c, http.StatusNotFound, "not found", nil)
}

// NotFoundMsg sends a 404 error with a custom message.
func NotFoundMsg(c *gin.Context, message string) {
	abortWith(c, http.StatusNotFound, message, nil)
}

// MethodNotAllowed sends a 405 error response.
func MethodNotAllowed(c *gin.Context) {
	abortWith(c, http.StatusMethodNotAllowed, "method not allowed", nil)
}

// Conflict sends a 409 error response with optional detail payload.
func Conflict(c *gin.Context, message string, detail gin.H) {
	abortWith(c, http.StatusConflict, message, detail)
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context, err error) {
	abortWith(c, http.StatusInternalServerError, err.Error(), nil)
}

func abortWith(c *gin.Context, status int, message string, extra gin.H) {
	body := gin.H{"ok": 0, "code": status, "message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.AbortWithStatusJSON(status, body)
}
