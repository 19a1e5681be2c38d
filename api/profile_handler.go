package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jsasing/portfolio-backend/errs"
	"github.com/jsasing/portfolio-backend/media"
	"github.com/jsasing/portfolio-backend/normalize"
	"github.com/jsasing/portfolio-backend/storage"
)

type profileHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     storage.Store
	sweeper   *media.Sweeper
}

func newProfileHandler(store storage.Store, sweeper *media.Sweeper) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		sweeper:   sweeper,
	}
}

// getProfile returns the site owner's profile
// @Summary Get profile
// @Description Retrieves the singleton profile record, normalized
// @Tags Profile
// @Produce json
// @Success 200 {object} models.Profile "Profile record"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching profile"
// @Router /profile [get]
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.store.Profile().Get()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("get profile", "profile", err))
			return
		}

		h.responder.WriteJSON(w, normalize.Profile(profile))
	}
}

// updateProfile applies a partial update to the profile
// @Summary Update profile
// @Description Merges the submitted fields over the stored profile, normalizes and persists the result
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body models.Profile true "Profile fields to update"
// @Success 200 {object} models.Profile "Updated profile"
// @Failure 400 {object} ErrorResponse "Bad Request - Malformed body"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error saving profile"
// @Router /profile [put]
func (h profileHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing, err := h.store.Profile().Get()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("get profile", "profile", err))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		// Partial update: unmarshal over a copy of the stored record so
		// omitted fields keep their current values.
		updated := existing
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&updated); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode profile request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		normalized := normalize.Profile(updated)

		saved, err := h.store.Profile().Put(normalized)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("update profile", "profile", err))
			return
		}

		// Images the update may have orphaned; the sweep never blocks the
		// response.
		candidates := []string{existing.ProfilePhoto, existing.Favicon}
		candidates = append(candidates, normalize.ExtractImageSrcs(existing.Bio)...)
		go h.sweeper.RemoveIfUnused(context.Background(), candidates)

		h.responder.WriteJSON(w, saved)
	}
}
