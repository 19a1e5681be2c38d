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

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     storage.Store
	sweeper   *media.Sweeper
}

func newProjectHandler(store storage.Store, sweeper *media.Sweeper) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		sweeper:   sweeper,
	}
}

// projectImageCandidates collects a project's own image paths for the
// post-write sweep.
func projectImageCandidates(project models.Project) []string {
	candidates := make([]string, 0, len(project.Gallery)+2)
	candidates = append(candidates, project.Thumbnail)
	candidates = append(candidates, project.Gallery...)
	candidates = append(candidates, normalize.ExtractImageSrcs(project.Description)...)
	return candidates
}

// getAllProjects retrieves all projects in display order
// @Summary Get all projects
// @Description Retrieves every project, normalized and sorted by display order
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project "List of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.store.Projects().List()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, normalize.Projects(projects))
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Description Retrieves detailed information about a specific project by ID
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} models.Project "Project details"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching project"
// @Router /project/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		project, err := h.store.Projects().Get(projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find project", "project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, normalize.Project(*project))
	}
}

// createProject creates a new project
// @Summary Create project
// @Description Creates a new project at the end of the display order
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body models.Project true "Project data"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating project"
// @Router /project [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		// Decode over display defaults so absent focus fields read as
		// centered rather than zero.
		project := models.Project{
			ThumbnailFocusX: normalize.DefaultFocus,
			ThumbnailFocusY: normalize.DefaultFocus,
		}
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&project); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if project.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		existing, err := h.store.Projects().List()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find projects", "projects", err))
			return
		}

		project.ID = "proj-" + uuid.NewString()[:8]
		if project.Order <= 0 {
			project.Order = len(existing) + 1
		}

		saved, err := h.store.Projects().Put(normalize.Project(project))
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("create project", "project", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, saved)
	}
}

// updateProject updates an existing project
// @Summary Update project
// @Description Merges the submitted fields over the stored project, normalizes and persists the result
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Param project body models.Project true "Project fields to update"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating project"
// @Router /project/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		before, err := h.store.Projects().Get(projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find project", "project", err))
			return
		}

		if before == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		// Partial update over a copy of the stored record
		updated := *before
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&updated); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		updated.ID = projectID

		saved, err := h.store.Projects().Put(normalize.Project(updated))
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("update project", "project", err))
			return
		}

		// Sweep images the previous revision referenced
		go h.sweeper.RemoveIfUnused(context.Background(), projectImageCandidates(*before))

		h.responder.WriteJSON(w, saved)
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Description Deletes a project and closes the gap in the display order
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting project"
// @Router /project/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		target, err := h.store.Projects().Get(projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find project", "project", err))
			return
		}

		if target == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if _, err := h.store.Projects().Delete(projectID); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("delete project", "project", err))
			return
		}

		// Close the ordering gap left by the deleted project
		remaining, err := h.store.Projects().List()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find projects", "projects", err))
			return
		}
		if err := h.store.Projects().PutAll(normalize.ResequenceProjects(remaining)); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("resequence projects", "projects", err))
			return
		}

		go h.sweeper.RemoveIfUnused(context.Background(), projectImageCandidates(*target))

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// reorderProjects applies a full reordering of the project list
// @Summary Reorder projects
// @Description Accepts the complete ordered list of project IDs and rewrites display positions 1..N
// @Tags Projects
// @Accept json
// @Produce json
// @Param order body []string true "Ordered project IDs"
// @Success 200 {array} models.Project "Projects in the new order"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid order payload"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error saving order"
// @Router /projects/reorder [put]
func (h projectHandler) reorderProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		orderedIDs := normalize.ExtractOrderIDs(bodyBytes)

		projects, err := h.store.Projects().List()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find projects", "projects", err))
			return
		}

		reordered, err := normalize.ReorderProjects(projects, orderedIDs)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.store.Projects().PutAll(reordered); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("reorder projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, reordered)
	}
}
