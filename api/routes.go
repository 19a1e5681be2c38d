package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read endpoints and the authenticated admin
// endpoints. Reads are open; every mutation sits behind the session check.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/auth/logout", handlers.authHandler.logout())

		r.Get("/profile", handlers.profileHandler.getProfile())
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Get("/project-categories", handlers.categoryHandler.getCategories())
		r.Get("/certifications", handlers.certificationHandler.getAllCertifications())
		r.Get("/certification/{certificationID}", handlers.certificationHandler.getCertification())
		r.Get("/services", handlers.serviceHandler.getServices())

		r.Post("/contact", handlers.contactHandler.submitContact())
	})

	// Authenticated admin routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Put("/profile", handlers.profileHandler.updateProfile())

		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())
		r.Put("/projects/reorder", handlers.projectHandler.reorderProjects())

		r.Put("/project-categories", handlers.categoryHandler.updateCategories())

		r.Post("/certification", handlers.certificationHandler.createCertification())
		r.Put("/certification/{certificationID}", handlers.certificationHandler.updateCertification())
		r.Delete("/certification/{certificationID}", handlers.certificationHandler.deleteCertification())
		r.Put("/certifications/reorder", handlers.certificationHandler.reorderCertifications())

		r.Put("/services", handlers.serviceHandler.updateServices())

		r.Post("/upload", handlers.uploadHandler.uploadImages())
		r.Post("/media/cleanup", handlers.mediaHandler.cleanupMedia())
	})
}
