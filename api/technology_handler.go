package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mgrandjean/portfolio-backend/services"
)

type technologyHandler struct {
	responder         Responder
	logger            zerolog.Logger
	technologyService *services.TechnologyService
}

func newTechnologyHandler(technologyService *services.TechnologyService) technologyHandler {
	logger := log.With().Str("handlerName", "technologyHandler").Logger()

	return technologyHandler{
		responder:         NewResponder(logger),
		logger:            logger,
		technologyService: technologyService,
	}
}

// getAllTechnologies retrieves all registered technologies
func (h technologyHandler) getAllTechnologies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologies, err := h.technologyService.List()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, technologies)
	}
}

// getTechnology retrieves a technology by ID
func (h technologyHandler) getTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologyID, err := parseIDParam(r, "technologyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		technology, err := h.technologyService.GetByID(technologyID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, technology)
	}
}

// createTechnology registers a technology, reusing any existing tag with the
// same name
func (h technologyHandler) createTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body services.TechnologyInput
		if err := decodeJSONBody(r, &body); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		technology, err := h.technologyService.ResolveOrCreate(body.Technology, body.IconURL)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, technology)
	}
}

// deleteTechnology removes a technology by ID
func (h technologyHandler) deleteTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologyID, err := parseIDParam(r, "technologyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.technologyService.Delete(technologyID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "technology deleted successfully",
		})
	}
}
