package api

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jsasing/portfolio-backend/errs"
	"github.com/jsasing/portfolio-backend/models"
	"github.com/jsasing/portfolio-backend/normalize"
	"github.com/jsasing/portfolio-backend/services"
	"github.com/jsasing/portfolio-backend/storage"
)

// maxContactMessageLength caps the plain-text message body.
const maxContactMessageLength = 5000

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     storage.Store
	mailer    services.Mailer
}

func newContactHandler(store storage.Store, mailer services.Mailer) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		mailer:    mailer,
	}
}

type contactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	MessageHTML string `json:"messageHtml"`
}

// submitContact accepts a contact-form submission
// @Summary Submit contact form
// @Description Persists the submission and emails a notification to the site owner
// @Tags Contact
// @Accept json
// @Produce json
// @Param submission body contactRequest true "Contact form fields"
// @Success 200 {object} map[string]string "Submission confirmation"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing or oversized fields"
// @Failure 503 {object} ErrorResponse "Service Unavailable - Mail delivery failed"
// @Router /contact [post]
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		name := strings.TrimSpace(req.Name)
		subject := strings.TrimSpace(req.Subject)
		message := normalize.ContactMessage(req.MessageHTML, req.Message)

		if name == "" || subject == "" || message.Text == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name, subject and message are required"))
			return
		}
		if len(message.Text) > maxContactMessageLength {
			h.responder.WriteError(w, errs.NewInvalidFieldError("message", "message is too long"))
			return
		}

		submission := models.ContactSubmission{
			ID:          "msg-" + uuid.NewString()[:8],
			Name:        name,
			Email:       strings.TrimSpace(req.Email),
			Subject:     subject,
			MessageText: message.Text,
			MessageHTML: message.HTML,
			CreatedAt:   time.Now().UTC(),
		}

		if err := h.store.Contacts().Add(submission); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("add submission", "contact submission", err))
			return
		}

		email := services.ContactEmail{
			SenderName:  name,
			SenderEmail: submission.Email,
			Subject:     fmt.Sprintf("[Portfolio Contact] %s", subject),
			Html:        renderContactEmailHTML(name, subject, message.HTML),
			Text:        renderContactEmailText(name, subject, message.Text),
		}

		if err := h.mailer.SendContactEmail(email); err != nil {
			// The submission is already stored; surface the delivery failure
			h.logger.Error().Err(err).Msg("Contact email delivery failed")
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "Message received",
		})
	}
}

func renderContactEmailText(name, subject, messageText string) string {
	return strings.Join([]string{
		"New contact form submission",
		"Name: " + name,
		"Subject: " + subject,
		"",
		"Message:",
		messageText,
	}, "\n")
}

func renderContactEmailHTML(name, subject, messageHTML string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.6;">
  <h2>New contact form submission</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Subject:</strong> %s</p>
  <p><strong>Message:</strong></p>
  <div style="white-space: normal; font-family: inherit;">%s</div>
</div>`, html.EscapeString(name), html.EscapeString(subject), messageHTML)
}
