package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jsasing/portfolio-backend/errs"
	"github.com/jsasing/portfolio-backend/media"
	"github.com/jsasing/portfolio-backend/models"
	"github.com/jsasing/portfolio-backend/normalize"
	"github.com/jsasing/portfolio-backend/storage"
)

type serviceHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     storage.Store
	sweeper   *media.Sweeper
}

func newServiceHandler(store storage.Store, sweeper *media.Sweeper) serviceHandler {
	logger := log.With().Str("handlerName", "serviceHandler").Logger()

	return serviceHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		sweeper:   sweeper,
	}
}

// getServices returns the services list
// @Summary Get services
// @Description Retrieves the services list in display order
// @Tags Services
// @Produce json
// @Success 200 {array} models.Service "List of services"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching services"
// @Router /services [get]
func (h serviceHandler) getServices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := h.store.Services().List()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find services", "services", err))
			return
		}

		h.responder.WriteJSON(w, services)
	}
}

// updateServices replaces the whole services list
// @Summary Update services
// @Description Replaces the services list wholesale, dropping empty entries and renumbering positions
// @Tags Services
// @Accept json
// @Produce json
// @Param services body []models.Service true "New services list"
// @Success 200 {array} models.Service "Saved services list"
// @Failure 400 {object} ErrorResponse "Bad Request - Malformed body"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error saving services"
// @Router /services [put]
func (h serviceHandler) updateServices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		previous, err := h.store.Services().List()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find services", "services", err))
			return
		}

		var services []models.Service
		if err := json.NewDecoder(r.Body).Decode(&services); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode services request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		saved, err := h.store.Services().ReplaceAll(normalize.Services(services))
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("update services", "services", err))
			return
		}

		// Icons the replaced list may have orphaned
		previousIcons := make([]string, 0, len(previous))
		for _, service := range previous {
			previousIcons = append(previousIcons, service.Icon)
		}
		go h.sweeper.RemoveIfUnused(context.Background(), previousIcons)

		h.responder.WriteJSON(w, saved)
	}
}
