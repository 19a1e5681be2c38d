package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jsasing/portfolio-backend/errs"
	"github.com/jsasing/portfolio-backend/media"
)

// maxUploadBytes caps a single image upload at 5MB.
const maxUploadBytes = 5 * 1024 * 1024

// maxUploadFiles caps how many files a single batch may carry.
const maxUploadFiles = 10

// allowedUploadTypes maps accepted image content types to their canonical
// file extensions.
var allowedUploadTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	objects   media.ObjectStore
}

func newUploadHandler(objects media.ObjectStore) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		objects:   objects,
	}
}

// uploadResult reports the outcome for one file of an upload batch.
type uploadResult struct {
	Name  string `json:"name"`
	Path  string `json:"path,omitempty"`
	Error string `json:"error,omitempty"`
}

// uploadImages stores a batch of uploaded images and returns their public paths
// @Summary Upload images
// @Description Accepts one or more multipart image uploads and stores them under the given category. Files succeed or fail independently.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Image files (jpeg, png, webp or gif, max 5MB each)"
// @Param category formData string false "Target folder under /images (default: projects)"
// @Success 200 {object} map[string]any "Per-file results with the public path of each stored image"
// @Failure 400 {object} ErrorResponse "Bad Request - No files provided"
// @Failure 413 {object} ErrorResponse "Request Entity Too Large - Batch exceeds size limit"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Upload failed"
// @Router /upload [post]
func (h uploadHandler) uploadImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadFiles*maxUploadBytes+4096)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewUploadTooLargeError(maxUploadBytes))
			return
		}

		headers := uploadFileHeaders(r)
		if len(headers) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("no file provided"))
			return
		}
		if len(headers) > maxUploadFiles {
			h.responder.WriteError(w, errs.NewBadRequestError(fmt.Sprintf("at most %d files per upload", maxUploadFiles)))
			return
		}

		category := sanitizeUploadCategory(r.FormValue("category"))

		results := make([]uploadResult, 0, len(headers))
		succeeded := 0
		for _, header := range headers {
			publicPath, err := h.storeUpload(r, header, category)
			if err != nil {
				h.logger.Warn().Err(err).Str("filename", header.Filename).Msg("Upload rejected")
				results = append(results, uploadResult{Name: header.Filename, Error: err.Error()})
				continue
			}
			results = append(results, uploadResult{Name: header.Filename, Path: publicPath})
			succeeded++
		}

		h.responder.WriteJSON(w, map[string]any{
			"uploaded": succeeded,
			"failed":   len(results) - succeeded,
			"results":  results,
		})
	}
}

// storeUpload validates and stores a single file of the batch.
func (h uploadHandler) storeUpload(r *http.Request, header *multipart.FileHeader, category string) (string, error) {
	if header.Size > maxUploadBytes {
		return "", errs.NewUploadTooLargeError(maxUploadBytes)
	}

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedUploadTypes[contentType]
	if !ok {
		allowed := make([]string, 0, len(allowedUploadTypes))
		for t := range allowedUploadTypes {
			allowed = append(allowed, t)
		}
		return "", errs.NewUnsupportedUploadError(contentType, allowed)
	}

	// Keep the original extension when it looks sane
	if nameExt := strings.TrimPrefix(strings.ToLower(path.Ext(header.Filename)), "."); nameExt != "" && len(nameExt) <= 4 {
		ext = nameExt
	}

	file, err := header.Open()
	if err != nil {
		return "", errs.NewInternalErrorWithCause("upload failed", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", errs.NewInternalErrorWithCause("upload failed", err)
	}

	filename := fmt.Sprintf("%s-%d.%s", uuid.NewString()[:8], time.Now().UnixMilli(), ext)
	storagePath := fmt.Sprintf("/images/%s/%s", category, filename)

	publicPath, err := h.objects.Upload(r.Context(), storagePath, data, contentType)
	if err != nil {
		h.logger.Error().Err(err).Str("path", storagePath).Msg("Failed to store uploaded file")
		return "", errs.NewInternalErrorWithCause("upload failed", err)
	}

	return publicPath, nil
}

// uploadFileHeaders collects the batch from the "files" field, falling back
// to a single "file" field.
func uploadFileHeaders(r *http.Request) []*multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	if headers := r.MultipartForm.File["files"]; len(headers) > 0 {
		return headers
	}
	return r.MultipartForm.File["file"]
}

// sanitizeUploadCategory restricts the target folder to a single safe path
// segment, defaulting to "projects".
func sanitizeUploadCategory(raw string) string {
	category := strings.TrimSpace(strings.ToLower(raw))
	if category == "" {
		return "projects"
	}

	var b strings.Builder
	for _, r := range category {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "projects"
	}
	return b.String()
}
