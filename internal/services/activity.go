package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"mergington/internal/domain"
)

type activityService struct {
	logger  *slog.Logger
	repo    domain.ActivityRepository
	metrics domain.SignupMetrics
}

// NewActivityService creates an ActivityService backed by the given catalog.
// metrics may be nil.
func NewActivityService(logger *slog.Logger, repo domain.ActivityRepository, metrics domain.SignupMetrics) domain.ActivityService {
	return &activityService{
		logger:  logger,
		repo:    repo,
		metrics: metrics,
	}
}

func (s *activityService) ListActivities(ctx context.Context) (map[string]*domain.Activity, error) {
	activities, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

func (s *activityService) CreateActivity(ctx context.Context, name string, details domain.ActivityDetails) (*domain.Activity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: activity_name is required", domain.ErrInvalidInput)
	}
	if errs := details.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(errs, "; "))
	}

	activity := domain.NewActivity(name, details)
	if err := s.repo.Create(ctx, activity); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create activity: %w", err)
	}
	if s.metrics != nil {
		s.metrics.ObserveActivityCreated()
	}
	s.logger.InfoContext(ctx, "activity created", "activity", name, "max_participants", details.MaxParticipants)
	return activity.Clone(), nil
}
