package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jsasing/portfolio-backend/errs"
	"github.com/jsasing/portfolio-backend/models"
	"github.com/jsasing/portfolio-backend/normalize"
	"github.com/jsasing/portfolio-backend/storage"
)

type categoryHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     storage.Store
}

func newCategoryHandler(store storage.Store) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// getCategories returns the managed project category list
// @Summary Get project categories
// @Description Returns the managed category list; when none is stored, derives it from project labels
// @Tags Categories
// @Produce json
// @Success 200 {array} models.ProjectCategory "Category list"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching categories"
// @Router /project-categories [get]
func (h categoryHandler) getCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stored, err := h.store.Categories().List()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find categories", "categories", err))
			return
		}

		if len(stored) == 0 {
			projects, err := h.store.Projects().List()
			if err != nil {
				h.responder.WriteError(w, errs.NewStorageError("find projects", "projects", err))
				return
			}
			h.responder.WriteJSON(w, normalize.DeriveCategoriesFromProjects(projects))
			return
		}

		h.responder.WriteJSON(w, normalize.CategoryList(stored))
	}
}

// categoriesRequest accepts either a bare array of categories or an object
// wrapping it in a "categories" key.
type categoriesRequest struct {
	Categories []models.ProjectCategory `json:"categories"`
}

func decodeCategoriesBody(bodyBytes []byte) ([]models.ProjectCategory, error) {
	var asList []models.ProjectCategory
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&asList); err == nil {
		return asList, nil
	}

	var wrapped categoriesRequest
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&wrapped); err != nil {
		return nil, err
	}
	return wrapped.Categories, nil
}

// updateCategories replaces the category list and reconciles project labels
// @Summary Update project categories
// @Description Replaces the category list; renames propagate to project labels and deleted categories are stripped from projects
// @Tags Categories
// @Accept json
// @Produce json
// @Param categories body []models.ProjectCategory true "New category list"
// @Success 200 {array} models.ProjectCategory "Saved category list"
// @Failure 400 {object} ErrorResponse "Bad Request - Malformed body"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error saving categories"
// @Router /project-categories [put]
func (h categoryHandler) updateCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		input, err := decodeCategoriesBody(bodyBytes)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode categories request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		projects, err := h.store.Projects().List()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find projects", "projects", err))
			return
		}

		previous, err := h.store.Categories().List()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find categories", "categories", err))
			return
		}
		if len(previous) == 0 {
			previous = normalize.DeriveCategoriesFromProjects(projects)
		}

		categories, updatedProjects := normalize.ReconcileCategories(input, previous, projects)

		if err := h.store.Projects().PutAll(updatedProjects); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("update projects", "projects", err))
			return
		}

		saved, err := h.store.Categories().ReplaceAll(categories)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("update categories", "categories", err))
			return
		}

		h.responder.WriteJSON(w, saved)
	}
}
