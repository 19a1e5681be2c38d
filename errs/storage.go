package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrAlreadyExists     = errors.New("already exists")
	ErrStorageQuery      = errors.New("storage operation failed")
	ErrStorageConnection = errors.New("storage connection failed")
	ErrMailUnavailable   = errors.New("email service unavailable")
	ErrUnsupportedUpload = errors.New("unsupported upload type")
	ErrUploadTooLarge    = errors.New("upload too large")
)

func NewAlreadyExists(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
	}
}

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewStorageError classifies a failure of the persistence collaborator.
// A storage failure is fatal to the operation that triggered it; no partial
// commit is assumed by callers.
func NewStorageError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if cause != nil {
		errStr := cause.Error()
		switch {
		case strings.Contains(errStr, "duplicate key"):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        fmt.Errorf("%s already exists", entity),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "not found"), strings.Contains(errStr, "record not found"):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        fmt.Errorf("%s not found", entity),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "connection"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrStorageConnection,
				Details:    "Unable to reach the storage backend",
				Cause:      cause,
			}
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStorageQuery,
		Details:    details,
		Cause:      cause,
	}
}

// NewMailUnavailableError reports that the outbound mail collaborator is
// missing configuration or failed to deliver. Distinct from validation
// failures so the contact form can tell the two apart.
func NewMailUnavailableError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrMailUnavailable,
		Cause:      cause,
	}
}

func NewUnsupportedUploadError(contentType string, allowed []string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnsupportedUpload,
		Details:    fmt.Sprintf("Unsupported upload type: %s. Allowed types: %v", contentType, allowed),
		Field:      "file",
	}
}

func NewUploadTooLargeError(maxBytes int64) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusRequestEntityTooLarge,
		err:        ErrUploadTooLarge,
		Details:    fmt.Sprintf("File exceeds maximum allowed size of %d bytes", maxBytes),
		Field:      "file",
	}
}

func IsMailUnavailable(err error) bool {
	return errors.Is(err, ErrMailUnavailable)
}

func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorageQuery) || errors.Is(err, ErrStorageConnection)
}
