package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/mgrandjean/portfolio-backend/database"
	"github.com/mgrandjean/portfolio-backend/errs"
	"github.com/mgrandjean/portfolio-backend/services"
	"github.com/mgrandjean/portfolio-backend/storage"
)

// initializeHandlers wires the domain services over the repositories and the
// object store, and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, store storage.ObjectStore) *routeHandlers {
	mediaService := services.NewMediaService(db.MediaRepo(), store)
	technologyService := services.NewTechnologyService(db.TechnologyRepo())
	projectService := services.NewProjectService(db.ProjectRepo(), mediaService, technologyService)
	timelineService := services.NewTimelineService(db.TimelineEventRepo())

	return &routeHandlers{
		mediaHandler:      newMediaHandler(mediaService),
		projectHandler:    newProjectHandler(projectService),
		technologyHandler: newTechnologyHandler(technologyService),
		timelineHandler:   newTimelineHandler(timelineService),
	}
}

// decodeJSONBody reads and decodes a JSON request body.
func decodeJSONBody(r *http.Request, dest any) error {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return errs.NewBadRequestError("failed to read request body")
	}
	if err := json.Unmarshal(bodyBytes, dest); err != nil {
		return errs.NewMalformedPayloadError("JSON", err)
	}
	return nil
}
