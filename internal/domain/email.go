package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RegistrationEmailData holds data for the visitor confirmation email.
type RegistrationEmailData struct {
	Email        string
	Salutation   string
	FullName     string
	EventTitle   string
	EventStart   string
	Location     string
	Language     string
	Registration *Registration
}

// CoordinatorEmailData holds data for the email sent to each event coordinator
// when a visitor registers.
type CoordinatorEmailData struct {
	Email           string
	CoordinatorName string
	EventTitle      string
	Registration    *Registration
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationEmailData) error
	SendCoordinatorNotification(ctx context.Context, data *CoordinatorEmailData) error
}
