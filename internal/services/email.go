package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventlisting/internal/domain"
)

const (
	templateRegistrationConfirmation = "registration_confirmation"
	templateCoordinatorNotification  = "coordinator_notification"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendRegistrationConfirmation sends the visitor confirmation using the "registration_confirmation" template.
func (s *emailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationEmailData) error {
	if data == nil {
		return fmt.Errorf("registration email data is nil")
	}
	return s.send(ctx, templateRegistrationConfirmation, data.Email, data)
}

// SendCoordinatorNotification tells a coordinator about a new registration.
func (s *emailService) SendCoordinatorNotification(ctx context.Context, data *domain.CoordinatorEmailData) error {
	if data == nil {
		return fmt.Errorf("coordinator email data is nil")
	}
	return s.send(ctx, templateCoordinatorNotification, data.Email, data)
}

func (s *emailService) send(ctx context.Context, template, to string, data any) error {
	subject, htmlBody, textBody, err := s.renderer.Render(template, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", template, err)
	}
	if err := s.mailer.Send(ctx, to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", template, err)
	}
	s.logger.InfoContext(ctx, "email sent", "template", template, "to", to)
	return nil
}
