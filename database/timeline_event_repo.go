package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mgrandjean/portfolio-backend/models"
)

type TimelineEventRepo struct {
	db *gorm.DB
}

func NewTimelineEventRepo(db *gorm.DB) *TimelineEventRepo {
	return &TimelineEventRepo{db}
}

// FindAll returns all timeline events, newest year first, ties broken by
// creation time descending
func (r *TimelineEventRepo) FindAll() ([]*models.TimelineEvent, error) {
	var events []*models.TimelineEvent
	err := r.db.Order("year DESC, created_at DESC").Find(&events).Error
	return events, err
}

// FindByType returns all timeline events of the given type, same ordering as FindAll
func (r *TimelineEventRepo) FindByType(eventType models.TimelineEventType) ([]*models.TimelineEvent, error) {
	var events []*models.TimelineEvent
	err := r.db.Where("type = ?", eventType).Order("year DESC, created_at DESC").Find(&events).Error
	return events, err
}

// FindByID returns a timeline event by its ID, or nil when absent
func (r *TimelineEventRepo) FindByID(id uuid.UUID) (*models.TimelineEvent, error) {
	var event models.TimelineEvent
	err := r.db.First(&event, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Save upserts a timeline event row
func (r *TimelineEventRepo) Save(event *models.TimelineEvent) error {
	return r.db.Save(event).Error
}

// Delete removes a timeline event from the database by id
func (r *TimelineEventRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TimelineEvent{}, "id = ?", id).Error
}
