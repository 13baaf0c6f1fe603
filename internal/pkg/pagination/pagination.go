package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/smaranika/core/internal/pkg/response"
	"gorm.io/gorm"
)

const (
	DefaultSize = 10
	MaxSize     = 100
)

// Query holds parsed pagination parameters. Page is 0-indexed.
type Query struct {
	Page int
	Size int
}

// FromContext extracts and validates pagination params from the request.
func FromContext(c *gin.Context) Query {
	page := parseIntOr(c.DefaultQuery("page", "0"), 0)
	size := parseIntOr(c.DefaultQuery("size", "10"), DefaultSize)

	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	return Query{Page: page, Size: size}
}

// Meta computes the pagination metadata for a total element count. A page
// at or beyond the final page reads as the last page, never an error.
func Meta(q Query, total int64) response.Pagination {
	totalPages := int((total + int64(q.Size) - 1) / int64(q.Size))
	return response.Pagination{
		TotalElements: total,
		TotalPages:    totalPages,
		Page:          q.Page,
		Size:          q.Size,
		Last:          q.Page >= totalPages-1,
	}
}

// Paginate applies limit/offset to a GORM query and returns the pagination
// metadata. Out-of-range pages yield an empty result set.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}

	offset := q.Page * q.Size
	if err := db.Offset(offset).Limit(q.Size).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}

	return Meta(q, total), nil
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
