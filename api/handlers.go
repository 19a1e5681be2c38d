package api

import (
	"github.com/jsasing/portfolio-backend/media"
	"github.com/jsasing/portfolio-backend/services"
	"github.com/jsasing/portfolio-backend/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(store storage.Store, objects media.ObjectStore, mailer services.Mailer, cfg map[string]string) *routeHandlers {
	sweeper := media.NewSweeper(store, objects)

	return &routeHandlers{
		authHandler:          newAuthHandler(cfg),
		profileHandler:       newProfileHandler(store, sweeper),
		projectHandler:       newProjectHandler(store, sweeper),
		categoryHandler:      newCategoryHandler(store),
		certificationHandler: newCertificationHandler(store, sweeper),
		serviceHandler:       newServiceHandler(store, sweeper),
		contactHandler:       newContactHandler(store, mailer),
		uploadHandler:        newUploadHandler(objects),
		mediaHandler:         newMediaHandler(sweeper),
	}
}
