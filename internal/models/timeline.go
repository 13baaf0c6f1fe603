package models

// TimelineEvent is a curated life-timeline entry. DisplayOrder defines the
// public rendering order (ascending) and is kept contiguous from 0 across
// the whole collection.
type TimelineEvent struct {
	ContentBase
	DisplayOrder int `json:"display_order" gorm:"not null;index"`
}

func (TimelineEvent) TableName() string { return "timeline_events" }
