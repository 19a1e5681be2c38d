package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jsasing/portfolio-backend/errs"
	"github.com/jsasing/portfolio-backend/media"
	"github.com/jsasing/portfolio-backend/models"
	"github.com/jsasing/portfolio-backend/normalize"
	"github.com/jsasing/portfolio-backend/storage"
)

type certificationHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     storage.Store
	sweeper   *media.Sweeper
}

func newCertificationHandler(store storage.Store, sweeper *media.Sweeper) certificationHandler {
	logger := log.With().Str("handlerName", "certificationHandler").Logger()

	return certificationHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		sweeper:   sweeper,
	}
}

// getAllCertifications retrieves all certifications in display order
// @Summary Get all certifications
// @Description Retrieves every certification, normalized and sorted by display order
// @Tags Certifications
// @Produce json
// @Success 200 {array} models.Certification "List of certifications"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching certifications"
// @Router /certifications [get]
func (h certificationHandler) getAllCertifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certs, err := h.store.Certifications().List()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find certifications", "certifications", err))
			return
		}

		h.responder.WriteJSON(w, normalize.Certifications(certs))
	}
}

// getCertification retrieves a specific certification by ID
// @Summary Get certification
// @Description Retrieves a certification by ID with its palette resolved
// @Tags Certifications
// @Produce json
// @Param certificationID path string true "Certification ID"
// @Success 200 {object} models.Certification "Certification details"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing certificationID"
// @Failure 404 {object} ErrorResponse "Not Found - Certification not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching certification"
// @Router /certification/{certificationID} [get]
func (h certificationHandler) getCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificationID := chi.URLParam(r, "certificationID")
		if certificationID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing certificationID"))
			return
		}

		cert, err := h.store.Certifications().Get(certificationID)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find certification", "certification", err))
			return
		}

		if cert == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("certification not found"))
			return
		}

		h.responder.WriteJSON(w, normalize.Certification(*cert))
	}
}

// createCertification creates a new certification
// @Summary Create certification
// @Description Creates a new certification at the end of the display order
// @Tags Certifications
// @Accept json
// @Produce json
// @Param certification body models.Certification true "Certification data"
// @Success 201 {object} models.Certification "Created certification"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid certification data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating certification"
// @Router /certification [post]
func (h certificationHandler) createCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var cert models.Certification
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&cert); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode certification request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if cert.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		existing, err := h.store.Certifications().List()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find certifications", "certifications", err))
			return
		}

		cert.ID = "cert-" + uuid.NewString()[:8]
		if cert.Order <= 0 {
			cert.Order = len(existing) + 1
		}

		saved, err := h.store.Certifications().Put(normalize.Certification(cert))
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("create certification", "certification", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, saved)
	}
}

// updateCertification updates an existing certification
// @Summary Update certification
// @Description Merges the submitted fields over the stored certification, normalizes and persists the result
// @Tags Certifications
// @Accept json
// @Produce json
// @Param certificationID path string true "Certification ID"
// @Param certification body models.Certification true "Certification fields to update"
// @Success 200 {object} models.Certification "Updated certification"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid certification data"
// @Failure 404 {object} ErrorResponse "Not Found - Certification not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating certification"
// @Router /certification/{certificationID} [put]
func (h certificationHandler) updateCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificationID := chi.URLParam(r, "certificationID")
		if certificationID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing certificationID"))
			return
		}

		before, err := h.store.Certifications().Get(certificationID)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find certification", "certification", err))
			return
		}

		if before == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("certification not found"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		updated := *before
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&updated); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode certification request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		updated.ID = certificationID

		saved, err := h.store.Certifications().Put(normalize.Certification(updated))
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("update certification", "certification", err))
			return
		}

		go h.sweeper.RemoveIfUnused(context.Background(), []string{before.Thumbnail})

		h.responder.WriteJSON(w, saved)
	}
}

// deleteCertification deletes a certification by ID
// @Summary Delete certification
// @Description Deletes a certification and closes the gap in the display order
// @Tags Certifications
// @Produce json
// @Param certificationID path string true "Certification ID"
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing certificationID"
// @Failure 404 {object} ErrorResponse "Not Found - Certification not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting certification"
// @Router /certification/{certificationID} [delete]
func (h certificationHandler) deleteCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificationID := chi.URLParam(r, "certificationID")
		if certificationID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing certificationID"))
			return
		}

		target, err := h.store.Certifications().Get(certificationID)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find certification", "certification", err))
			return
		}

		if target == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("certification not found"))
			return
		}

		if _, err := h.store.Certifications().Delete(certificationID); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("delete certification", "certification", err))
			return
		}

		remaining, err := h.store.Certifications().List()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find certifications", "certifications", err))
			return
		}
		if err := h.store.Certifications().PutAll(normalize.ResequenceCertifications(remaining)); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("resequence certifications", "certifications", err))
			return
		}

		go h.sweeper.RemoveIfUnused(context.Background(), []string{target.Thumbnail})

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "certification deleted successfully",
		})
	}
}

// reorderCertifications applies a full reordering of the certification list
// @Summary Reorder certifications
// @Description Accepts the complete ordered list of certification IDs and rewrites display positions 1..N
// @Tags Certifications
// @Accept json
// @Produce json
// @Param order body []string true "Ordered certification IDs"
// @Success 200 {array} models.Certification "Certifications in the new order"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid order payload"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error saving order"
// @Router /certifications/reorder [put]
func (h certificationHandler) reorderCertifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		orderedIDs := normalize.ExtractOrderIDs(bodyBytes)

		certs, err := h.store.Certifications().List()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find certifications", "certifications", err))
			return
		}

		reordered, err := normalize.ReorderCertifications(certs, orderedIDs)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.store.Certifications().PutAll(reordered); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("reorder certifications", "certifications", err))
			return
		}

		h.responder.WriteJSON(w, reordered)
	}
}
