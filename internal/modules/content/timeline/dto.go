package timeline

import (
	"github.com/smaranika/core/internal/models"
	"github.com/smaranika/core/internal/modules/content/library"
	"github.com/smaranika/core/internal/pkg/bilingual"
)

// CreateTimelineEventDTO shares the content fields with the library types;
// the display order is assigned server-side, never accepted from clients.
type CreateTimelineEventDTO struct {
	library.CreateContentDTO
}

// MoveDTO selects the direction of an adjacent move.
type MoveDTO struct {
	Direction Direction `json:"direction" binding:"required,oneof=up down"`
}

// ReorderDTO carries the full desired id ordering.
type ReorderDTO struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

type timelineEventResponse struct {
	library.ContentResponse
	DisplayOrder int `json:"displayOrder"`
}

func toResponse(e *models.TimelineEvent, lang bilingual.Lang) timelineEventResponse {
	return timelineEventResponse{
		ContentResponse: library.ToResponse(&e.ContentBase, lang, true),
		DisplayOrder:    e.DisplayOrder,
	}
}
