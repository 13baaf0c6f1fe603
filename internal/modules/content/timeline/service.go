// Package timeline manages the ordered life-event collection. Unlike the
// library types, timeline events carry an explicit display order that stays
// contiguous (0..n-1) across appends, moves, reorders and deletes.
package timeline

import (
	"errors"

	"github.com/smaranika/core/internal/models"
	"github.com/smaranika/core/internal/modules/content/library"
	"github.com/smaranika/core/internal/pkg/pagination"
	"github.com/smaranika/core/internal/pkg/response"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("timeline event not found")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns a page of events in display order. Chronology on the site is
// the curated order, not created_at.
func (s *Service) List(q pagination.Query, publicOnly bool) ([]models.TimelineEvent, response.Pagination, error) {
	tx := s.db.Model(&models.TimelineEvent{}).Order("display_order ASC")
	if publicOnly {
		tx = tx.Where("published = ?", true)
	}
	var events []models.TimelineEvent
	pag, err := pagination.Paginate(tx, q, &events)
	return events, pag, err
}

func (s *Service) GetByID(id string) (*models.TimelineEvent, error) {
	var event models.TimelineEvent
	if err := s.db.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// Create appends the event at the end of the collection. The order slot is
// claimed inside the insert transaction so concurrent appends cannot collide.
func (s *Service) Create(dto *CreateTimelineEventDTO) (*models.TimelineEvent, error) {
	var event models.TimelineEvent
	dto.CreateContentDTO.Apply(&event.ContentBase, true)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.TimelineEvent{}).Count(&count).Error; err != nil {
			return err
		}
		var maxOrder int
		if count > 0 {
			if err := tx.Model(&models.TimelineEvent{}).
				Select("MAX(display_order)").Scan(&maxOrder).Error; err != nil {
				return err
			}
		}
		event.DisplayOrder = NextOrder(maxOrder, count == 0)
		return tx.Create(&event).Error
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Update edits content fields only; display order is changed through Move
// and Reorder so the contiguity invariant never depends on client input.
func (s *Service) Update(id string, dto *library.UpdateContentDTO) (*models.TimelineEvent, error) {
	event, err := s.GetByID(id)
	if err != nil || event == nil {
		return event, err
	}
	updates := dto.Changes()
	if len(updates) == 0 {
		return event, nil
	}
	if err := s.db.Model(event).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *Service) TogglePublished(id string) (*models.TimelineEvent, error) {
	return s.toggleColumn(id, "published")
}

func (s *Service) ToggleFeatured(id string) (*models.TimelineEvent, error) {
	return s.toggleColumn(id, "featured")
}

func (s *Service) toggleColumn(id, column string) (*models.TimelineEvent, error) {
	res := s.db.Model(&models.TimelineEvent{}).
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

// Move swaps the event with its neighbour in the given direction. A move
// past either end of the collection succeeds without changing anything.
func (s *Service) Move(id string, dir Direction) (*models.TimelineEvent, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		ids, err := orderedIDs(tx)
		if err != nil {
			return err
		}
		index := -1
		for i, cur := range ids {
			if cur == id {
				index = i
				break
			}
		}
		if index < 0 {
			return ErrNotFound
		}
		moved := MoveAdjacent(ids, index, dir)
		return applyOrder(tx, ids, moved)
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Reorder replaces the whole ordering with the requested id sequence. The
// request must name every event exactly once; otherwise nothing changes and
// a ConflictError is returned.
func (s *Service) Reorder(orderedIDs []string) ([]models.TimelineEvent, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		current, err := currentIDs(tx)
		if err != nil {
			return err
		}
		plan, err := ReorderPlan(current, orderedIDs)
		if err != nil {
			return err
		}
		for id, order := range plan {
			if err := tx.Model(&models.TimelineEvent{}).
				Where("id = ?", id).
				UpdateColumn("display_order", order).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	var events []models.TimelineEvent
	if err := s.db.Order("display_order ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Delete removes the event and closes the gap it leaves, keeping the
// remaining orders contiguous from zero.
func (s *Service) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var event models.TimelineEvent
		if err := tx.First(&event, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Delete(&event).Error; err != nil {
			return err
		}
		return tx.Model(&models.TimelineEvent{}).
			Where("display_order > ?", event.DisplayOrder).
			UpdateColumn("display_order", gorm.Expr("display_order - 1")).Error
	})
}

func currentIDs(tx *gorm.DB) ([]string, error) {
	var ids []string
	err := tx.Model(&models.TimelineEvent{}).Pluck("id", &ids).Error
	return ids, err
}

func orderedIDs(tx *gorm.DB) ([]string, error) {
	var ids []string
	err := tx.Model(&models.TimelineEvent{}).
		Order("display_order ASC").Pluck("id", &ids).Error
	return ids, err
}

// applyOrder writes only the positions that changed between the two
// sequences; an unchanged ordering touches no rows.
func applyOrder(tx *gorm.DB, before, after []string) error {
	for i, id := range after {
		if i < len(before) && before[i] == id {
			continue
		}
		if err := tx.Model(&models.TimelineEvent{}).
			Where("id = ?", id).
			UpdateColumn("display_order", i).Error; err != nil {
			return err
		}
	}
	return nil
}
