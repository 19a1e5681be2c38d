package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jsasing/portfolio-backend/errs"
	"github.com/jsasing/portfolio-backend/media"
)

type mediaHandler struct {
	responder Responder
	logger    zerolog.Logger
	sweeper   *media.Sweeper
}

func newMediaHandler(sweeper *media.Sweeper) mediaHandler {
	logger := log.With().Str("handlerName", "mediaHandler").Logger()

	return mediaHandler{
		responder: NewResponder(logger),
		logger:    logger,
		sweeper:   sweeper,
	}
}

// cleanupMedia removes every stored image no content record references
// @Summary Clean up unused media
// @Description Enumerates the media root and deletes every image that no profile, project, certification or service references
// @Tags Media
// @Produce json
// @Success 200 {object} map[string]interface{} "Deleted image paths"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Cleanup failed"
// @Router /media/cleanup [post]
func (h mediaHandler) cleanupMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := h.sweeper.CleanupAllUnused(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("media cleanup failed", err))
			return
		}

		if deleted == nil {
			deleted = []string{}
		}

		actor, _ := ctxAdminUser(r.Context())
		h.logger.Info().Str("admin", actor).Int("deleted", len(deleted)).Msg("Media cleanup completed")

		h.responder.WriteJSON(w, map[string]interface{}{
			"status":  "success",
			"deleted": deleted,
		})
	}
}
