package services

import (
	"fmt"
	"html"
	"log"
	"os"

	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client *resend.Client
}

var emailService *EmailService

// InitEmailService initializes the email service with Resend API
func InitEmailService() {
	apiKey := os.Getenv("RESEND_API_KEY")

	if apiKey == "" {
		log.Println("WARNING: RESEND_API_KEY not set. Email service will not be available.")
		return
	}

	emailService = &EmailService{
		client: resend.NewClient(apiKey),
	}

	log.Println("Email service initialized successfully with Resend")
}

// GetEmailService returns the singleton email service instance
func GetEmailService() *EmailService {
	return emailService
}

func fromAddress() string {
	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "Shalom Vision <noreply@shalomvision.org>"
	}
	return from
}

// SendContactMessage forwards a contact-form submission to the ministry inbox.
func (s *EmailService) SendContactMessage(name, replyTo, subject, message string) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	to := os.Getenv("CONTACT_EMAIL")
	if to == "" {
		return fmt.Errorf("CONTACT_EMAIL not configured")
	}

	htmlBody := fmt.Sprintf(`
<div style="font-family: sans-serif; max-width: 600px;">
    <h2>New message from the website contact form</h2>
    <p><strong>From:</strong> %s (%s)</p>
    <p><strong>Subject:</strong> %s</p>
    <hr>
    <p style="white-space: pre-wrap;">%s</p>
</div>`,
		html.EscapeString(name), html.EscapeString(replyTo),
		html.EscapeString(subject), html.EscapeString(message))

	params := &resend.SendEmailRequest{
		From:    fromAddress(),
		To:      []string{to},
		Subject: fmt.Sprintf("Contact form: %s", subject),
		Html:    htmlBody,
		ReplyTo: replyTo,
	}

	_, err := s.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send contact message: %v", err)
		return err
	}

	return nil
}

// SendTestimonyNotice tells the editors a new testimony is waiting for
// approval. Sent when a visitor submits a story through the public form.
func (s *EmailService) SendTestimonyNotice(title, testifierName string) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	to := os.Getenv("CONTACT_EMAIL")
	if to == "" {
		return fmt.Errorf("CONTACT_EMAIL not configured")
	}

	htmlBody := fmt.Sprintf(`
<div style="font-family: sans-serif; max-width: 600px;">
    <h2>New testimony awaiting approval</h2>
    <p><strong>%s</strong> shared by %s</p>
    <p>Review and approve it in the admin area.</p>
</div>`,
		html.EscapeString(title), html.EscapeString(testifierName))

	params := &resend.SendEmailRequest{
		From:    fromAddress(),
		To:      []string{to},
		Subject: "New testimony submitted",
		Html:    htmlBody,
	}

	_, err := s.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send testimony notice: %v", err)
		return err
	}

	return nil
}
