package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler          authHandler
	profileHandler       profileHandler
	projectHandler       projectHandler
	categoryHandler      categoryHandler
	certificationHandler certificationHandler
	serviceHandler       serviceHandler
	contactHandler       contactHandler
	uploadHandler        uploadHandler
	mediaHandler         mediaHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"order"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}
