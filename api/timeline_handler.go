package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mgrandjean/portfolio-backend/services"
)

type timelineHandler struct {
	responder       Responder
	logger          zerolog.Logger
	timelineService *services.TimelineService
}

func newTimelineHandler(timelineService *services.TimelineService) timelineHandler {
	logger := log.With().Str("handlerName", "timelineHandler").Logger()

	return timelineHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		timelineService: timelineService,
	}
}

type createTimelineEventRequest struct {
	Year        string  `json:"year"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Location    *string `json:"location,omitempty"`
	Image       string  `json:"image"`
}

type updateTimelineEventRequest struct {
	Year        *string `json:"year,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Type        *string `json:"type,omitempty"`
	Location    *string `json:"location,omitempty"`
	Image       *string `json:"image,omitempty"`
}

// getAllTimelineEvents lists events newest first, optionally filtered by the
// type query parameter
func (h timelineHandler) getAllTimelineEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if eventType := r.URL.Query().Get("type"); eventType != "" {
			events, err := h.timelineService.ListByType(eventType)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			h.responder.WriteJSON(w, events)
			return
		}

		events, err := h.timelineService.List()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, events)
	}
}

// getTimelineEvent retrieves a single event by ID
func (h timelineHandler) getTimelineEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := parseIDParam(r, "eventID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		event, err := h.timelineService.FindByID(eventID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, event)
	}
}

// createTimelineEvent persists a new dated entry
func (h timelineHandler) createTimelineEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createTimelineEventRequest
		if err := decodeJSONBody(r, &body); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		event, err := h.timelineService.Create(services.CreateTimelineEventParams{
			Year:        body.Year,
			Title:       body.Title,
			Description: body.Description,
			Type:        body.Type,
			Location:    body.Location,
			Image:       body.Image,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, event)
	}
}

// updateTimelineEvent merges the supplied fields over the existing event
func (h timelineHandler) updateTimelineEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := parseIDParam(r, "eventID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var body updateTimelineEventRequest
		if err := decodeJSONBody(r, &body); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		event, err := h.timelineService.Update(eventID, services.UpdateTimelineEventParams{
			Year:        body.Year,
			Title:       body.Title,
			Description: body.Description,
			Type:        body.Type,
			Location:    body.Location,
			Image:       body.Image,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, event)
	}
}

// deleteTimelineEvent removes an event by ID
func (h timelineHandler) deleteTimelineEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := parseIDParam(r, "eventID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.timelineService.Delete(eventID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "timeline event deleted successfully",
		})
	}
}
