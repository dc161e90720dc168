package models

import (
	"time"

	"github.com/google/uuid"
)

// TimelineEventType restricts the category of a timeline event.
type TimelineEventType string

const (
	TimelineEventEducation   TimelineEventType = "education"
	TimelineEventAchievement TimelineEventType = "achievement"
	TimelineEventWork        TimelineEventType = "work"
)

// ValidTimelineEventType reports whether s is one of the allowed event types.
func ValidTimelineEventType(s string) bool {
	switch TimelineEventType(s) {
	case TimelineEventEducation, TimelineEventAchievement, TimelineEventWork:
		return true
	}
	return false
}

// TimelineEvent represents a dated entry in the career/education timeline.
// Independent of projects and media.
type TimelineEvent struct {
	ID          uuid.UUID         `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Year        string            `json:"year" db:"year" gorm:"type:varchar(4);not null"`
	Title       string            `json:"title" db:"title" gorm:"type:varchar(255);not null"`
	Description string            `json:"description" db:"description" gorm:"type:text;not null"`
	Type        TimelineEventType `json:"type" db:"type" gorm:"type:text;not null"`
	Location    *string           `json:"location,omitempty" db:"location" gorm:"type:varchar(255)"`
	Image       string            `json:"image" db:"image" gorm:"type:varchar(500);not null"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (TimelineEvent) TableName() string {
	return "timeline_events"
}
