package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// setupRoutes registers all endpoints. Read routes are public; every
// mutating route sits behind the auth middleware.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, startupTime time.Time) {
	// Public read routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", healthCheck(startupTime))

		r.Get("/media", handlers.mediaHandler.listMedia())
		r.Get("/media/stats/overview", handlers.mediaHandler.getMediaStats())
		r.Get("/media/{mediaID}", handlers.mediaHandler.getMedia())
		r.Get("/media/{mediaID}/signed-url", handlers.mediaHandler.getSignedURL())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())

		r.Get("/technologies", handlers.technologyHandler.getAllTechnologies())
		r.Get("/technologies/{technologyID}", handlers.technologyHandler.getTechnology())

		r.Get("/timeline", handlers.timelineHandler.getAllTimelineEvents())
		r.Get("/timeline/{eventID}", handlers.timelineHandler.getTimelineEvent())
	})

	// Authenticated mutating routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/media/upload", handlers.mediaHandler.uploadMedia())
		r.Put("/media/{mediaID}/metadata", handlers.mediaHandler.updateMediaMetadata())
		r.Delete("/media/{mediaID}", handlers.mediaHandler.deleteMedia())

		r.Post("/projects", handlers.projectHandler.createProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())
		r.Post("/projects/{projectID}/media", handlers.projectHandler.addProjectMedia())
		r.Delete("/projects/{projectID}/media/{mediaID}", handlers.projectHandler.removeProjectMedia())
		r.Post("/projects/{projectID}/technologies", handlers.projectHandler.addProjectTechnology())
		r.Delete("/projects/{projectID}/technologies/{technologyID}", handlers.projectHandler.removeProjectTechnology())

		r.Post("/technologies", handlers.technologyHandler.createTechnology())
		r.Delete("/technologies/{technologyID}", handlers.technologyHandler.deleteTechnology())

		r.Post("/timeline", handlers.timelineHandler.createTimelineEvent())
		r.Put("/timeline/{eventID}", handlers.timelineHandler.updateTimelineEvent())
		r.Delete("/timeline/{eventID}", handlers.timelineHandler.deleteTimelineEvent())
	})
}

// healthCheck reports liveness and uptime
func healthCheck(startupTime time.Time) http.HandlerFunc {
	responder := NewResponder(zerolog.Nop())

	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, map[string]interface{}{
			"status": "ok",
			"uptime": time.Since(startupTime).String(),
		})
	}
}
