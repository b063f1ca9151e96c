package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"mergington/internal/domain"
)

// SignupCoordinator registers participants. Each signup runs its membership and capacity
// checks under the target activity's guard; signups for different activities do not contend.
type SignupCoordinator struct {
	logger  *slog.Logger
	repo    domain.ActivityRepository
	emails  domain.EmailService
	metrics domain.SignupMetrics

	pending sync.WaitGroup
}

// NewSignupCoordinator returns a coordinator over repo. emails and metrics may be nil.
func NewSignupCoordinator(
	logger *slog.Logger,
	repo domain.ActivityRepository,
	emails domain.EmailService,
	metrics domain.SignupMetrics,
) *SignupCoordinator {
	return &SignupCoordinator{
		logger:  logger,
		repo:    repo,
		emails:  emails,
		metrics: metrics,
	}
}

var _ domain.SignupService = (*SignupCoordinator)(nil)

// Signup adds email to the named activity. Errors: domain.ErrNotFound for an unknown
// activity, domain.ErrInvalidInput for a malformed email, domain.ErrAlreadyRegistered for a
// repeat signup, domain.ErrCapacityExceeded when the activity is full.
func (c *SignupCoordinator) Signup(ctx context.Context, activityName, email string) (*domain.SignupConfirmation, error) {
	var (
		normalized   string
		confirmation domain.SignupConfirmationEmailData
	)
	err := c.repo.Update(ctx, activityName, func(a *domain.Activity) error {
		var err error
		if normalized, err = domain.NormalizeEmail(email); err != nil {
			return err
		}
		if err := a.AddParticipant(normalized); err != nil {
			return err
		}
		confirmation = domain.SignupConfirmationEmailData{
			Email:           normalized,
			ActivityName:    activityName,
			Description:     a.Description,
			Schedule:        a.Schedule,
			SpotsLeft:       a.SpotsLeft(),
			MaxParticipants: a.MaxParticipants,
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.observe(domain.SignupOutcomeNotFound)
			return nil, err
		case errors.Is(err, domain.ErrAlreadyRegistered):
			c.observe(domain.SignupOutcomeAlreadyRegistered)
			return nil, err
		case errors.Is(err, domain.ErrCapacityExceeded):
			c.observe(domain.SignupOutcomeCapacityExceeded)
			return nil, err
		case errors.Is(err, domain.ErrInvalidInput):
			c.observe(domain.SignupOutcomeInvalid)
			return nil, err
		}
		c.observe(domain.SignupOutcomeError)
		return nil, fmt.Errorf("signup: %w", err)
	}

	c.observe(domain.SignupOutcomeSuccess)
	c.logger.InfoContext(ctx, "participant signed up", "activity", activityName, "email", normalized, "spots_left", confirmation.SpotsLeft)
	c.sendConfirmation(ctx, &confirmation)

	return &domain.SignupConfirmation{
		Activity: activityName,
		Email:    normalized,
		Message:  fmt.Sprintf("Signed up %s for %s", normalized, activityName),
	}, nil
}

// Wait blocks until queued confirmation emails have been handed to the mailer.
func (c *SignupCoordinator) Wait() {
	c.pending.Wait()
}

func (c *SignupCoordinator) sendConfirmation(ctx context.Context, data *domain.SignupConfirmationEmailData) {
	if c.emails == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	c.pending.Add(1)
	go func() {
		defer c.pending.Done()
		if err := c.emails.SendSignupConfirmation(ctx, data); err != nil {
			c.logger.WarnContext(ctx, "signup confirmation email failed", "activity", data.ActivityName, "email", data.Email, "err", err)
		}
	}()
}

func (c *SignupCoordinator) observe(outcome string) {
	if c.metrics != nil {
		c.metrics.ObserveSignup(outcome)
	}
}
