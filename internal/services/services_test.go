package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"mergington/internal/domain"
)

// testLogger discards output so tests don't assert on log lines.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeMetrics implements domain.SignupMetrics and counts observations.
type fakeMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
	created  int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{outcomes: make(map[string]int)}
}

func (m *fakeMetrics) ObserveSignup(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[outcome]++
}

func (m *fakeMetrics) ObserveActivityCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created++
}

func (m *fakeMetrics) count(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outcomes[outcome]
}

// fakeEmailService implements domain.EmailService and records sent confirmations.
type fakeEmailService struct {
	mu   sync.Mutex
	sent []*domain.SignupConfirmationEmailData
	err  error
}

func (f *fakeEmailService) SendSignupConfirmation(_ context.Context, data *domain.SignupConfirmationEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, data)
	return f.err
}

func (f *fakeEmailService) sentTo() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.sent))
	for _, d := range f.sent {
		out = append(out, d.Email)
	}
	return out
}

// fakeActivityRepository implements domain.ActivityRepository with canned errors.
type fakeActivityRepository struct {
	listErr   error
	createErr error
	updateErr error
	created   []*domain.Activity
}

func (f *fakeActivityRepository) List(context.Context) (map[string]*domain.Activity, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return map[string]*domain.Activity{}, nil
}

func (f *fakeActivityRepository) Get(context.Context, string) (*domain.Activity, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeActivityRepository) Create(_ context.Context, a *domain.Activity) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, a)
	return nil
}

func (f *fakeActivityRepository) Update(context.Context, string, func(*domain.Activity) error) error {
	return f.updateErr
}
