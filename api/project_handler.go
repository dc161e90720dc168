package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mgrandjean/portfolio-backend/errs"
	"github.com/mgrandjean/portfolio-backend/services"
)

type projectHandler struct {
	responder      Responder
	logger         zerolog.Logger
	projectService *services.ProjectService
}

func newProjectHandler(projectService *services.ProjectService) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		projectService: projectService,
	}
}

// createProjectRequest is the JSON body for project creation. Media must be
// uploaded beforehand and referenced by id; technologies are named specs
// that are resolved or created on the fly.
type createProjectRequest struct {
	Name             string                     `json:"name"`
	Description      string                     `json:"description"`
	ShortDescription string                     `json:"shortDescription"`
	IsPublished      bool                       `json:"isPublished"`
	Featured         bool                       `json:"featured"`
	RepositoryLink   *string                    `json:"repositoryLink,omitempty"`
	ProjectLink      *string                    `json:"projectLink,omitempty"`
	MediaIDs         []string                   `json:"media"`
	TechStack        []services.TechnologyInput `json:"techStack"`
}

// getAllProjects retrieves all projects with their media and tech stack
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectService.List()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"projects": projects,
			"total":    len(projects),
		})
	}
}

// getProject retrieves a specific project by ID
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectService.Get(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project referencing uploaded media by id
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createProjectRequest
		if err := decodeJSONBody(r, &body); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		mediaIDs := make([]uuid.UUID, 0, len(body.MediaIDs))
		for _, raw := range body.MediaIDs {
			mediaID, err := uuid.Parse(raw)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("media", "invalid media id: "+raw))
				return
			}
			mediaIDs = append(mediaIDs, mediaID)
		}

		project, err := h.projectService.Create(services.CreateProjectParams{
			Name:             body.Name,
			Description:      body.Description,
			ShortDescription: body.ShortDescription,
			IsPublished:      body.IsPublished,
			Featured:         body.Featured,
			RepositoryLink:   body.RepositoryLink,
			ProjectLink:      body.ProjectLink,
			MediaIDs:         mediaIDs,
			TechStack:        body.TechStack,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, project)
	}
}

// deleteProject deletes a project by ID. Attached media are left in the
// catalog and must be deleted separately if desired.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectService.Delete(projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// addProjectMedia attaches an existing media to the project by id
func (h projectHandler) addProjectMedia() http.HandlerFunc {
	type addMediaRequest struct {
		MediaID string `json:"mediaId"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var body addMediaRequest
		if err := decodeJSONBody(r, &body); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		mediaID, err := uuid.Parse(body.MediaID)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("mediaId", "must be a valid UUID"))
			return
		}

		project, err := h.projectService.AddMediaByID(projectID, mediaID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// removeProjectMedia detaches a media from the project and deletes the
// underlying media record
func (h projectHandler) removeProjectMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		mediaID, err := parseIDParam(r, "mediaID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectService.RemoveMedia(r.Context(), projectID, mediaID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// addProjectTechnology resolves a technology by name and attaches it
func (h projectHandler) addProjectTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var body services.TechnologyInput
		if err := decodeJSONBody(r, &body); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectService.AddTechnology(projectID, body)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// removeProjectTechnology detaches a technology from the project
func (h projectHandler) removeProjectTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		technologyID, err := parseIDParam(r, "technologyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectService.RemoveTechnology(projectID, technologyID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}
