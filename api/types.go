package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	mediaHandler      mediaHandler
	projectHandler    projectHandler
	technologyHandler technologyHandler
	timelineHandler   timelineHandler
}

// ErrorResponse is the JSON body every failed request carries.
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}
