package services

import (
	"context"
	"fmt"
	"log/slog"

	"mergington/internal/domain"
)

type emailService struct {
	logger   *slog.Logger
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(logger *slog.Logger, mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{logger: logger, mailer: mailer, renderer: renderer}
}

// SendSignupConfirmation sends the "signup_confirmation" template to the new participant.
func (s *emailService) SendSignupConfirmation(ctx context.Context, data *domain.SignupConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("signup confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("signup_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render signup_confirmation template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send signup confirmation email: %w", err)
	}
	s.logger.DebugContext(ctx, "signup confirmation sent", "email", data.Email, "activity", data.ActivityName)
	return nil
}
