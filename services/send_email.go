// Package services holds outbound integrations, currently the Resend email
// delivery used by the contact form.
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jsasing/portfolio-backend/config"
	"github.com/jsasing/portfolio-backend/errs"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for the Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from the Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from the Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// ContactEmail is a rendered contact-form notification ready for delivery.
type ContactEmail struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Html        string
	Text        string
}

// Mailer delivers contact-form notifications. Implementations must return
// an errs.ErrMailUnavailable error when delivery is not possible so the
// handler can map it to 503 while the submission stays persisted.
type Mailer interface {
	SendContactEmail(email ContactEmail) error
}

// ResendMailer sends notifications through the Resend HTTP API.
type ResendMailer struct {
	apiKey    string
	fromEmail string
	toEmail   string
	client    *http.Client
}

// NewResendMailer builds a mailer from the environment config. Missing
// Resend configuration is not an error at startup; delivery attempts will
// report the mail service as unavailable instead.
func NewResendMailer(cfg map[string]string) *ResendMailer {
	return &ResendMailer{
		apiKey:    config.GetString(cfg, "RESEND_API_KEY", ""),
		fromEmail: config.GetString(cfg, "RESEND_FROM_EMAIL", ""),
		toEmail:   config.GetString(cfg, "CONTACT_TO_EMAIL", ""),
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SendContactEmail delivers one contact-form notification to the site owner.
func (m *ResendMailer) SendContactEmail(email ContactEmail) error {
	if m.apiKey == "" || m.fromEmail == "" || m.toEmail == "" {
		return errs.NewMailUnavailableError(fmt.Errorf("resend credentials are not configured"))
	}

	payload := ResendEmailRequest{
		From:    m.fromEmail,
		To:      []string{m.toEmail},
		ReplyTo: email.SenderEmail,
		Subject: email.Subject,
		Html:    email.Html,
		Text:    email.Text,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest("POST", resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return errs.NewMailUnavailableError(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return errs.NewMailUnavailableError(fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message))
		}
		return errs.NewMailUnavailableError(fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes)))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent contact email via Resend")
	}

	return nil
}
