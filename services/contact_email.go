package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bcheng/portfolio-backend/config"
	"github.com/bcheng/portfolio-backend/models"
)

const resendEndpoint = "https://api.resend.com/emails"

// resendEmailRequest represents the request payload for the Resend API
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

type resendEmailResponse struct {
	ID string `json:"id"`
}

type resendErrorResponse struct {
	Message string `json:"message"`
}

// Mailer sends the contact-form notification email through the Resend API.
// Delivery is best effort: the message is already persisted by the time a
// notification goes out, so callers log failures and move on.
type Mailer struct {
	apiKey    string
	fromEmail string
	toEmail   string
	client    *http.Client
	logger    zerolog.Logger
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		apiKey:    cfg.ResendAPIKey,
		fromEmail: cfg.ResendFromEmail,
		toEmail:   cfg.ContactEmail,
		client:    &http.Client{Timeout: 10 * time.Second},
		logger:    log.With().Str("service", "mailer").Logger(),
	}
}

// Enabled reports whether the mailer has enough configuration to send.
func (m *Mailer) Enabled() bool {
	return m.apiKey != "" && m.toEmail != ""
}

// SendContactNotification emails the site owner about a new contact message.
func (m *Mailer) SendContactNotification(contact models.Contact) error {
	if !m.Enabled() {
		m.logger.Debug().Msg("mailer not configured, skipping contact notification")
		return nil
	}

	subject := fmt.Sprintf("New message from %s %s", contact.FirstName, contact.LastName)
	if contact.Subject != nil && *contact.Subject != "" {
		subject = *contact.Subject
	}

	payload := resendEmailRequest{
		From:    m.fromEmail,
		To:      []string{m.toEmail},
		ReplyTo: contact.Email,
		Subject: subject,
		Html:    contactHTMLBody(contact),
		Text:    contactTextBody(contact),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp resendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse resendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		m.logger.Warn().Err(err).Msg("failed to parse Resend response, but email was sent")
	} else {
		m.logger.Info().Str("emailId", emailResponse.ID).Msg("contact notification sent")
	}

	return nil
}

func contactHTMLBody(contact models.Contact) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString("<h2>New message from your portfolio</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s %s</p>", contact.FirstName, contact.LastName)
	fmt.Fprintf(&b, `<p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>`, contact.Email, contact.Email)
	if contact.Phone != nil && *contact.Phone != "" {
		fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", *contact.Phone)
	}
	if contact.Subject != nil && *contact.Subject != "" {
		fmt.Fprintf(&b, "<p><strong>Subject:</strong> %s</p>", *contact.Subject)
	}
	fmt.Fprintf(&b, `<div style="border-left: 4px solid #e60012; padding-left: 12px;"><p style="white-space: pre-wrap;">%s</p></div>`, contact.Message)
	fmt.Fprintf(&b, `<p style="color: #666; font-size: 12px;">Received %s &mdash; ID %s</p>`, contact.CreatedAt.Format(time.RFC1123), contact.ID)
	b.WriteString("</div>")
	return b.String()
}

func contactTextBody(contact models.Contact) string {
	var b strings.Builder
	b.WriteString("New message from your portfolio\n\n")
	fmt.Fprintf(&b, "Name: %s %s\n", contact.FirstName, contact.LastName)
	fmt.Fprintf(&b, "Email: %s\n", contact.Email)
	if contact.Phone != nil && *contact.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", *contact.Phone)
	}
	if contact.Subject != nil && *contact.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", *contact.Subject)
	}
	fmt.Fprintf(&b, "\n%s\n\n---\nReceived %s\nID: %s\n", contact.Message, contact.CreatedAt.Format(time.RFC1123), contact.ID)
	return b.String()
}
