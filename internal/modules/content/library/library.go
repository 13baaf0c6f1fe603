// Package library is the shared CRUD and publication layer for every
// admin-authored content type (videos, photos, posters, audios, documents,
// speeches, writings, poems, quotes, news, events, locations). One generic
// service and handler replace the per-type near-duplicate modules.
package library

import (
	"errors"

	"github.com/smaranika/core/internal/models"
	"github.com/smaranika/core/internal/pkg/pagination"
	"github.com/smaranika/core/internal/pkg/response"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Item constrains a pointer to a content model exposing its shared base.
type Item[T any] interface {
	*T
	Content() *models.ContentBase
}

// Options configures one content type's instantiation of the library.
type Options struct {
	// Path is the URL segment the type is served under ("videos", "quotes").
	Path string
	// DefaultPublished applies when a create request leaves published unset.
	DefaultPublished bool
	// RenderBody renders the bilingual markdown body to HTML in responses.
	RenderBody bool
}

type Service[T any, PT Item[T]] struct {
	db   *gorm.DB
	opts Options
}

func NewService[T any, PT Item[T]](db *gorm.DB, opts Options) *Service[T, PT] {
	return &Service[T, PT]{db: db, opts: opts}
}

// List returns a page of records, featured first. Public listings filter on
// the published flag before counting so the totals reflect visible records.
func (s *Service[T, PT]) List(q pagination.Query, publicOnly bool) ([]T, response.Pagination, error) {
	tx := s.db.Model(new(T)).Order("featured DESC, created_at DESC")
	if publicOnly {
		tx = tx.Where("published = ?", true)
	}
	var items []T
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service[T, PT]) GetByID(id string) (PT, error) {
	var item T
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return PT(&item), nil
}

func (s *Service[T, PT]) Create(dto *CreateContentDTO) (PT, error) {
	var item T
	pt := PT(&item)
	dto.Apply(pt.Content(), s.opts.DefaultPublished)
	if err := s.db.Create(pt).Error; err != nil {
		return nil, err
	}
	return pt, nil
}

func (s *Service[T, PT]) Update(id string, dto *UpdateContentDTO) (PT, error) {
	item, err := s.GetByID(id)
	if err != nil || item == nil {
		return item, err
	}
	updates := dto.Changes()
	if len(updates) == 0 {
		return item, nil
	}
	if err := s.db.Model(item).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// TogglePublished flips the published flag atomically in a single column
// update; the record's other fields are never touched.
func (s *Service[T, PT]) TogglePublished(id string) (PT, error) {
	return s.toggleColumn(id, "published")
}

// ToggleFeatured flips the featured flag; allowed regardless of published.
func (s *Service[T, PT]) ToggleFeatured(id string) (PT, error) {
	return s.toggleColumn(id, "featured")
}

func (s *Service[T, PT]) toggleColumn(id, column string) (PT, error) {
	res := s.db.Model(new(T)).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr("NOT "+column))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(id)
}

func (s *Service[T, PT]) Delete(id string) error {
	res := s.db.Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
