package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mgrandjean/portfolio-backend/errs"
	"github.com/mgrandjean/portfolio-backend/models"
)

// TimelineEventRepository is the persistence contract the timeline catalog
// depends on. Both listing methods return events ordered year descending,
// ties broken by creation time descending.
type TimelineEventRepository interface {
	FindAll() ([]*models.TimelineEvent, error)
	FindByType(eventType models.TimelineEventType) ([]*models.TimelineEvent, error)
	FindByID(id uuid.UUID) (*models.TimelineEvent, error)
	Save(event *models.TimelineEvent) error
	Delete(id uuid.UUID) error
}

// CreateTimelineEventParams carries the fields of a new timeline event.
type CreateTimelineEventParams struct {
	Year        string
	Title       string
	Description string
	Type        string
	Location    *string
	Image       string
}

// UpdateTimelineEventParams is a partial update: nil fields keep the
// existing value.
type UpdateTimelineEventParams struct {
	Year        *string
	Title       *string
	Description *string
	Type        *string
	Location    *string
	Image       *string
}

// TimelineService is an independent CRUD catalog of dated career/education
// events; no relation to projects or media.
type TimelineService struct {
	eventRepo TimelineEventRepository
	logger    zerolog.Logger
}

func NewTimelineService(eventRepo TimelineEventRepository) *TimelineService {
	return &TimelineService{
		eventRepo: eventRepo,
		logger:    log.With().Str("serviceName", "timelineService").Logger(),
	}
}

// List returns all timeline events, newest first.
func (s *TimelineService) List() ([]models.TimelineEvent, error) {
	rows, err := s.eventRepo.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "timeline events", err)
	}
	return derefEvents(rows), nil
}

// ListByType returns the timeline events of one category, newest first.
func (s *TimelineService) ListByType(eventType string) ([]models.TimelineEvent, error) {
	if !models.ValidTimelineEventType(eventType) {
		return nil, errs.NewInvalidFieldError("type", "must be one of education, achievement, work")
	}

	rows, err := s.eventRepo.FindByType(models.TimelineEventType(eventType))
	if err != nil {
		return nil, errs.NewDatabaseError("find", "timeline events", err)
	}
	return derefEvents(rows), nil
}

// Create persists a new timeline event with a generated id.
func (s *TimelineService) Create(params CreateTimelineEventParams) (models.TimelineEvent, error) {
	if err := validateEventFields(params.Year, params.Title, params.Description, params.Type, params.Image); err != nil {
		return models.TimelineEvent{}, err
	}

	event := models.TimelineEvent{
		ID:          uuid.New(),
		Year:        params.Year,
		Title:       params.Title,
		Description: params.Description,
		Type:        models.TimelineEventType(params.Type),
		Location:    params.Location,
		Image:       params.Image,
	}

	if err := s.eventRepo.Save(&event); err != nil {
		return models.TimelineEvent{}, errs.NewDatabaseError("save", "timeline event", err)
	}

	s.logger.Info().Str("eventId", event.ID.String()).Str("title", event.Title).Msg("timeline event created")
	return event, nil
}

// FindByID returns the timeline event with the given id.
func (s *TimelineService) FindByID(id uuid.UUID) (models.TimelineEvent, error) {
	event, err := s.eventRepo.FindByID(id)
	if err != nil {
		return models.TimelineEvent{}, errs.NewDatabaseError("find", "timeline event", err)
	}
	if event == nil {
		return models.TimelineEvent{}, errs.NewNotFound(fmt.Sprintf("Timeline event with ID %s", id))
	}
	return *event, nil
}

// Update merges the supplied fields over the existing event; unsupplied
// fields are retained.
func (s *TimelineService) Update(id uuid.UUID, params UpdateTimelineEventParams) (models.TimelineEvent, error) {
	event, err := s.FindByID(id)
	if err != nil {
		return models.TimelineEvent{}, err
	}

	if params.Year != nil {
		event.Year = *params.Year
	}
	if params.Title != nil {
		event.Title = *params.Title
	}
	if params.Description != nil {
		event.Description = *params.Description
	}
	if params.Type != nil {
		if !models.ValidTimelineEventType(*params.Type) {
			return models.TimelineEvent{}, errs.NewInvalidFieldError("type", "must be one of education, achievement, work")
		}
		event.Type = models.TimelineEventType(*params.Type)
	}
	if params.Location != nil {
		event.Location = params.Location
	}
	if params.Image != nil {
		event.Image = *params.Image
	}

	if err := s.eventRepo.Save(&event); err != nil {
		return models.TimelineEvent{}, errs.NewDatabaseError("save", "timeline event", err)
	}
	return event, nil
}

// Delete removes a timeline event, failing when it does not exist.
func (s *TimelineService) Delete(id uuid.UUID) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "timeline event", err)
	}
	return nil
}

func validateEventFields(year, title, description, eventType, image string) error {
	switch {
	case year == "":
		return errs.NewMissingRequiredFieldError("year")
	case title == "":
		return errs.NewMissingRequiredFieldError("title")
	case description == "":
		return errs.NewMissingRequiredFieldError("description")
	case image == "":
		return errs.NewMissingRequiredFieldError("image")
	}
	if !models.ValidTimelineEventType(eventType) {
		return errs.NewInvalidFieldError("type", "must be one of education, achievement, work")
	}
	return nil
}

func derefEvents(rows []*models.TimelineEvent) []models.TimelineEvent {
	events := make([]models.TimelineEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, *row)
	}
	return events
}
